// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"sort"
	"strings"

	"github.com/rafaelvolkmer/sumcheck/internal/domain/ports"
)

type RendererRegistry struct {
	byFormat map[string]ports.OutputRenderer
}

func NewRendererRegistry(renderers ...ports.OutputRenderer) *RendererRegistry {
	m := make(map[string]ports.OutputRenderer, len(renderers))
	for _, r := range renderers {
		if r == nil {
			continue
		}
		m[strings.ToLower(r.Format())] = r
	}
	return &RendererRegistry{byFormat: m}
}

var _ ports.RendererRegistry = (*RendererRegistry)(nil)

func (r *RendererRegistry) Get(format string) (ports.OutputRenderer, bool) {
	if r == nil {
		return nil, false
	}
	out, ok := r.byFormat[strings.ToLower(strings.TrimSpace(format))]
	return out, ok
}

// List returns the renderers sorted by format name.
func (r *RendererRegistry) List() []ports.OutputRenderer {
	if r == nil {
		return nil
	}
	out := make([]ports.OutputRenderer, 0, len(r.byFormat))
	for _, v := range r.byFormat {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Format() < out[j].Format()
	})
	return out
}

// Formats joins the registered format names with "|" for usage text.
func (r *RendererRegistry) Formats() string {
	renderers := r.List()
	names := make([]string, 0, len(renderers))
	for _, v := range renderers {
		names = append(names, v.Format())
	}
	return strings.Join(names, "|")
}
