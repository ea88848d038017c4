// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

const (
	// DefaultY is used for the second operand when the caller omits it.
	DefaultY float64 = 10

	// Threshold is the value the operand sum is compared against.
	Threshold float64 = 100
)

var ErrInvalidArgument = errors.New("invalid argument")

// Operands is one input pair. A nil Y means the operand was omitted.
type Operands struct {
	X float64  `json:"x"`
	Y *float64 `json:"y,omitempty"`
}

type Evaluation struct {
	X          float64 `json:"x" yaml:"x"`
	Y          float64 `json:"y" yaml:"y"`
	YDefaulted bool    `json:"yDefaulted" yaml:"yDefaulted"`
	Total      float64 `json:"total" yaml:"total"`
	Result     Result  `json:"result" yaml:"result"`
}

// Classify is ClassifyPair with y set to DefaultY.
func Classify(x float64) Result {
	return ClassifyPair(x, DefaultY)
}

// ClassifyPair sums x and y and compares the total with Threshold:
// above yields Flag(true), below yields Flag(false) and an exact hit
// yields the message "Result is <total>". Finite operands are added as
// the decimals they print as, so 99.9 + 0.1 is exactly 100.
func ClassifyPair(x, y float64) Result {
	exact, ok := ExactSum(x, y)
	if !ok {
		return classifyFloat(x + y)
	}

	switch exact.Cmp(new(big.Rat).SetFloat64(Threshold)) {
	case 1:
		return Flag(true)
	case -1:
		return Flag(false)
	default:
		return Message("Result is " + exact.RatString())
	}
}

func classifyFloat(total float64) Result {
	switch {
	case total > Threshold:
		return Flag(true)
	case total < Threshold:
		return Flag(false)
	default:
		return Message("Result is " + FormatTotal(total))
	}
}

// ExactSum adds the shortest decimal forms of x and y without rounding.
// It reports false when either operand is NaN or infinite.
func ExactSum(x, y float64) (*big.Rat, bool) {
	rx, ok := Decimal(x)
	if !ok {
		return nil, false
	}
	ry, ok := Decimal(y)
	if !ok {
		return nil, false
	}
	return new(big.Rat).Add(rx, ry), true
}

// Decimal returns v as the exact value of its shortest decimal form.
func Decimal(v float64) (*big.Rat, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return new(big.Rat).SetString(strconv.FormatFloat(v, 'g', -1, 64))
}

func Evaluate(x float64, y *float64) Evaluation {
	eval := Evaluation{X: x, Y: DefaultY, YDefaulted: true}
	if y != nil {
		eval.Y = *y
		eval.YDefaulted = false
	}
	eval.Total = eval.X + eval.Y
	if exact, ok := ExactSum(eval.X, eval.Y); ok {
		eval.Total, _ = exact.Float64()
	}
	eval.Result = ClassifyPair(eval.X, eval.Y)
	return eval
}

// FormatTotal renders a sum in its shortest decimal form ("100", "0.5").
func FormatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}

// ValidateOperand rejects values that cannot take part in an ordered
// comparison. NaN would otherwise fall through to the message branch.
func ValidateOperand(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidArgument, name, v)
	}
	return nil
}

// ExactOperand reports an ErrInvalidArgument error when raw, a decimal
// literal, does not survive conversion to v unchanged (integers beyond
// 2^53, or more digits than a float64 keeps).
func ExactOperand(name, raw string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ValidateOperand(name, v)
	}

	want, ok := new(big.Rat).SetString(raw)
	if !ok {
		return fmt.Errorf("%w: %s is not a decimal number: %q", ErrInvalidArgument, name, raw)
	}
	got, _ := Decimal(v)
	if want.Cmp(got) != 0 {
		return fmt.Errorf("%w: %s %q cannot be represented exactly (nearest is %s)",
			ErrInvalidArgument, name, raw, FormatTotal(v))
	}
	return nil
}

func (o Operands) Validate() error {
	if err := ValidateOperand("x", o.X); err != nil {
		return err
	}
	if o.Y != nil {
		if err := ValidateOperand("y", *o.Y); err != nil {
			return err
		}
		if math.IsInf(o.X+*o.Y, 0) {
			return fmt.Errorf("%w: x + y overflows", ErrInvalidArgument)
		}
	}
	return nil
}
