// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rafaelvolkmer/sumcheck/internal/domain/model"
	"github.com/rafaelvolkmer/sumcheck/internal/domain/ports"
)

type YAMLRenderer struct{}

func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

var _ ports.OutputRenderer = (*YAMLRenderer)(nil)

func (r *YAMLRenderer) Format() string {
	return "yaml"
}

func (r *YAMLRenderer) Render(eval *model.Evaluation) (string, error) {
	return marshalYAML(eval)
}

func (r *YAMLRenderer) RenderBatch(evals []model.Evaluation) (string, error) {
	if evals == nil {
		evals = []model.Evaluation{}
	}
	return marshalYAML(evals)
}

func marshalYAML(v interface{}) (string, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
