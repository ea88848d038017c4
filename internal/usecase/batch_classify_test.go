// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelvolkmer/sumcheck/internal/domain/model"
)

type stubSource struct {
	pairs []model.Operands
	err   error
	seen  string
}

func (s *stubSource) Read(ctx context.Context, name string) ([]model.Operands, error) {
	s.seen = name
	return s.pairs, s.err
}

func TestBatchClassifyUseCase(t *testing.T) {
	source := &stubSource{pairs: []model.Operands{
		{X: 50, Y: ptr(60)},
		{X: 50, Y: ptr(20)},
		{X: 90},
	}}
	uc := NewBatchClassifyUseCase(source, nil)

	evals, err := uc.Execute(context.Background(), BatchClassifyRequest{Input: "pairs.txt"})
	require.NoError(t, err)
	assert.Equal(t, "pairs.txt", source.seen)

	require.Len(t, evals, 3)
	assert.Equal(t, model.Flag(true), evals[0].Result)
	assert.Equal(t, model.Flag(false), evals[1].Result)
	assert.Equal(t, model.Message("Result is 100"), evals[2].Result)
	assert.True(t, evals[2].YDefaulted)
}

func TestBatchClassifyUseCaseErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewBatchClassifyUseCase(&stubSource{}, nil).Execute(ctx, BatchClassifyRequest{})
	assert.Error(t, err)

	readErr := errors.New("boom")
	_, err = NewBatchClassifyUseCase(&stubSource{err: readErr}, nil).Execute(ctx, BatchClassifyRequest{Input: "-"})
	assert.ErrorIs(t, err, readErr)

	bad := &stubSource{pairs: []model.Operands{{X: 1}, {X: math.Inf(1)}}}
	_, err = NewBatchClassifyUseCase(bad, nil).Execute(ctx, BatchClassifyRequest{Input: "-"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "item 2")
}

func TestBatchClassifyUseCaseCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := &stubSource{pairs: []model.Operands{{X: 1}}}
	_, err := NewBatchClassifyUseCase(source, nil).Execute(ctx, BatchClassifyRequest{Input: "-"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchClassifyUseCaseEmptyInput(t *testing.T) {
	evals, err := NewBatchClassifyUseCase(&stubSource{}, nil).Execute(context.Background(), BatchClassifyRequest{Input: "-"})
	require.NoError(t, err)
	assert.Empty(t, evals)
}
