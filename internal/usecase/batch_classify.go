// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rafaelvolkmer/sumcheck/internal/domain/model"
	"github.com/rafaelvolkmer/sumcheck/internal/domain/ports"
)

type BatchClassifyRequest struct {
	Input string
}

type BatchClassifyUseCase struct {
	source ports.PairSource
	logger *zap.Logger
}

func NewBatchClassifyUseCase(source ports.PairSource, logger *zap.Logger) *BatchClassifyUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchClassifyUseCase{
		source: source,
		logger: logger,
	}
}

func (uc *BatchClassifyUseCase) Execute(ctx context.Context, req BatchClassifyRequest) ([]model.Evaluation, error) {
	if req.Input == "" {
		return nil, fmt.Errorf("input is required")
	}

	pairs, err := uc.source.Read(ctx, req.Input)
	if err != nil {
		return nil, fmt.Errorf("read pairs: %w", err)
	}

	evals := make([]model.Evaluation, 0, len(pairs))
	for i, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := pair.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}

		eval := model.Evaluate(pair.X, pair.Y)
		logEvaluation(uc.logger, eval)
		evals = append(evals, eval)
	}

	uc.logger.Debug("batch classified",
		zap.String("input", req.Input),
		zap.Int("items", len(evals)),
	)
	return evals, nil
}
