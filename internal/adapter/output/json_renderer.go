// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"

	"github.com/rafaelvolkmer/sumcheck/internal/domain/model"
	"github.com/rafaelvolkmer/sumcheck/internal/domain/ports"
)

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

var _ ports.OutputRenderer = (*JSONRenderer)(nil)

func (r *JSONRenderer) Format() string {
	return "json"
}

func (r *JSONRenderer) Render(eval *model.Evaluation) (string, error) {
	return marshalJSON(eval)
}

func (r *JSONRenderer) RenderBatch(evals []model.Evaluation) (string, error) {
	if evals == nil {
		evals = []model.Evaluation{}
	}
	return marshalJSON(evals)
}

func marshalJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
