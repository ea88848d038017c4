// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package infrastructure

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"

	"github.com/rafaelvolkmer/sumcheck/internal/domain/model"
	"github.com/rafaelvolkmer/sumcheck/internal/domain/ports"
)

// StdinName selects standard input instead of a file.
const StdinName = "-"

// LineSource reads one operand pair per line: "x" or "x y", separated by
// whitespace or a comma. Blank lines and "#" comments are ignored.
type LineSource struct {
	stdin io.Reader
}

func NewLineSource(stdin io.Reader) *LineSource {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &LineSource{stdin: stdin}
}

var _ ports.PairSource = (*LineSource)(nil)

func (s *LineSource) Read(ctx context.Context, name string) ([]model.Operands, error) {
	if name == StdinName {
		return ParsePairs(ctx, s.stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return ParsePairs(ctx, f)
}

func ParsePairs(ctx context.Context, r io.Reader) ([]model.Operands, error) {
	var pairs []model.Operands

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pair, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		pairs = append(pairs, pair)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	return pairs, nil
}

func parseLine(line string) (model.Operands, error) {
	fields, err := splitFields(line)
	if err != nil {
		return model.Operands{}, err
	}

	switch len(fields) {
	case 1, 2:
	default:
		return model.Operands{}, fmt.Errorf("%w: expected \"x\" or \"x y\", got %d fields", model.ErrInvalidArgument, len(fields))
	}

	x, err := ParseOperand("x", fields[0])
	if err != nil {
		return model.Operands{}, err
	}
	pair := model.Operands{X: x}

	if len(fields) == 2 {
		y, err := ParseOperand("y", fields[1])
		if err != nil {
			return model.Operands{}, err
		}
		pair.Y = &y
	}

	return pair, nil
}

// splitFields splits on commas when the line has any, otherwise on
// whitespace. An empty comma-separated field is an error.
func splitFields(line string) ([]string, error) {
	if !strings.Contains(line, ",") {
		return strings.Fields(line), nil
	}

	parts := strings.Split(line, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
		if parts[i] == "" {
			return nil, fmt.Errorf("%w: empty field %d", model.ErrInvalidArgument, i+1)
		}
	}
	return parts, nil
}

// ParseOperand converts a textual operand to a number. Values a float64
// cannot hold exactly are rejected rather than rounded.
func ParseOperand(name, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	v, err := cast.ToFloat64E(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number: %q", model.ErrInvalidArgument, name, raw)
	}
	if err := model.ExactOperand(name, trimmed, v); err != nil {
		return 0, err
	}
	return v, nil
}
