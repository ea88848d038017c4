// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package ports

import (
	"context"

	"github.com/rafaelvolkmer/sumcheck/internal/domain/model"
)

type PairSource interface {
	Read(ctx context.Context, name string) ([]model.Operands, error)
}

type OutputRenderer interface {
	Format() string
	Render(eval *model.Evaluation) (string, error)
	RenderBatch(evals []model.Evaluation) (string, error)
}

type RendererRegistry interface {
	Get(format string) (OutputRenderer, bool)
	List() []OutputRenderer
	Formats() string
}
