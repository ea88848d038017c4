// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

type RuleID string

const (
	RuleAbove RuleID = "total.above"
	RuleBelow RuleID = "total.below"
	RuleEqual RuleID = "total.equal"
)

type RuleSummary struct {
	ID          RuleID     `json:"id"`
	Condition   string     `json:"condition"`
	Kind        ResultKind `json:"kind"`
	Description string     `json:"description"`
}

func AllRuleSummaries() []RuleSummary {
	return []RuleSummary{
		{
			ID:          RuleAbove,
			Condition:   "x + y > 100",
			Kind:        KindFlag,
			Description: "Returns true.",
		},
		{
			ID:          RuleBelow,
			Condition:   "x + y < 100",
			Kind:        KindFlag,
			Description: "Returns false.",
		},
		{
			ID:          RuleEqual,
			Condition:   "x + y == 100",
			Kind:        KindMessage,
			Description: `Returns the message "Result is 100".`,
		},
	}
}

// RuleFor reports which rule produced the result of an evaluation.
func RuleFor(eval Evaluation) RuleID {
	if eval.Result.Kind() == KindMessage {
		return RuleEqual
	}
	if b, _ := eval.Result.Flag(); b {
		return RuleAbove
	}
	return RuleBelow
}
