// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/rafaelvolkmer/sumcheck/internal/domain/model"
)

type ClassifyRequest struct {
	X float64
	Y *float64
}

type ClassifyUseCase struct {
	logger *zap.Logger
}

func NewClassifyUseCase(logger *zap.Logger) *ClassifyUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassifyUseCase{logger: logger}
}

func (uc *ClassifyUseCase) Execute(ctx context.Context, req ClassifyRequest) (*model.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	operands := model.Operands{X: req.X, Y: req.Y}
	if err := operands.Validate(); err != nil {
		return nil, err
	}

	eval := model.Evaluate(operands.X, operands.Y)
	logEvaluation(uc.logger, eval)
	return &eval, nil
}

// logEvaluation emits the intermediate values at debug level; the CLI only
// enables that level with --verbose.
func logEvaluation(logger *zap.Logger, eval model.Evaluation) {
	if ce := logger.Check(zap.DebugLevel, "classified pair"); ce != nil {
		ce.Write(
			zap.Float64("x", eval.X),
			zap.Float64("y", eval.Y),
			zap.Bool("yDefaulted", eval.YDefaulted),
			zap.Float64("total", eval.Total),
			zap.String("rule", string(model.RuleFor(eval))),
			zap.Stringer("result", eval.Result),
		)
	}
}
