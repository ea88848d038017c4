// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"

	"github.com/rafaelvolkmer/sumcheck/internal/domain/model"
)

type ListRulesUseCase struct{}

func NewListRulesUseCase() *ListRulesUseCase {
	return &ListRulesUseCase{}
}

func (uc *ListRulesUseCase) Execute(ctx context.Context) []model.RuleSummary {
	_ = ctx
	return model.AllRuleSummaries()
}
