// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"strings"

	"github.com/rafaelvolkmer/sumcheck/internal/domain/model"
	"github.com/rafaelvolkmer/sumcheck/internal/domain/ports"
)

const (
	ansiReset = "\033[0m"

	colMuted  = "\033[38;5;246m"
	colAccent = "\033[38;5;208m"

	colGood   = "\033[38;5;108m"
	colDanger = "\033[38;5;167m"
)

type TextRenderer struct {
	color bool
}

func NewTextRenderer(color bool) *TextRenderer {
	return &TextRenderer{color: color}
}

var _ ports.OutputRenderer = (*TextRenderer)(nil)

func (r *TextRenderer) Format() string {
	return "text"
}

// Render prints a single evaluation as "x + y = total -> result".
func (r *TextRenderer) Render(eval *model.Evaluation) (string, error) {
	if eval == nil {
		return "", fmt.Errorf("nothing to render")
	}
	return r.line(*eval), nil
}

func (r *TextRenderer) RenderBatch(evals []model.Evaluation) (string, error) {
	lines := make([]string, 0, len(evals))
	for _, eval := range evals {
		lines = append(lines, r.line(eval))
	}
	return strings.Join(lines, "\n"), nil
}

func (r *TextRenderer) line(eval model.Evaluation) string {
	y := model.FormatTotal(eval.Y)
	if eval.YDefaulted {
		y += r.paint(colMuted, " (default)")
	}

	return fmt.Sprintf("%s + %s = %s -> %s",
		model.FormatTotal(eval.X),
		y,
		model.FormatTotal(eval.Total),
		r.colorResult(eval.Result),
	)
}

func (r *TextRenderer) colorResult(res model.Result) string {
	if res.Kind() == model.KindMessage {
		return r.paint(colAccent, res.String())
	}
	if b, _ := res.Flag(); b {
		return r.paint(colGood, res.String())
	}
	return r.paint(colDanger, res.String())
}

func (r *TextRenderer) paint(col, s string) string {
	if !r.color {
		return s
	}
	return col + s + ansiReset
}
