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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rafaelvolkmer/sumcheck/internal/domain/model"
)

func TestClassifyUseCase(t *testing.T) {
	uc := NewClassifyUseCase(nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  ClassifyRequest
		want model.Result
	}{
		{name: "sum 110", req: ClassifyRequest{X: 50, Y: ptr(60)}, want: model.Flag(true)},
		{name: "sum 70", req: ClassifyRequest{X: 50, Y: ptr(20)}, want: model.Flag(false)},
		{name: "sum 100", req: ClassifyRequest{X: 90, Y: ptr(10)}, want: model.Message("Result is 100")},
		{name: "default y", req: ClassifyRequest{X: 95}, want: model.Flag(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval, err := uc.Execute(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, eval.Result)
			assert.Equal(t, tt.req.Y == nil, eval.YDefaulted)
		})
	}
}

func TestClassifyUseCaseRejectsNaN(t *testing.T) {
	_, err := NewClassifyUseCase(nil).Execute(context.Background(), ClassifyRequest{X: math.NaN()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidArgument))
}

func TestClassifyUseCaseCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClassifyUseCase(nil).Execute(ctx, ClassifyRequest{X: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassifyUseCaseVerboseLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	uc := NewClassifyUseCase(zap.New(core))

	_, err := uc.Execute(context.Background(), ClassifyRequest{X: 90})
	require.NoError(t, err)

	entries := logs.FilterMessage("classified pair").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, 90.0, fields["x"])
	assert.Equal(t, 10.0, fields["y"])
	assert.Equal(t, true, fields["yDefaulted"])
	assert.Equal(t, 100.0, fields["total"])
	assert.Equal(t, string(model.RuleEqual), fields["rule"])
	assert.Equal(t, "Result is 100", fields["result"])
}

func TestClassifyUseCaseQuietAtWarnLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	uc := NewClassifyUseCase(zap.New(core))

	_, err := uc.Execute(context.Background(), ClassifyRequest{X: 1, Y: ptr(2)})
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}

func TestListRulesUseCase(t *testing.T) {
	rules := NewListRulesUseCase().Execute(context.Background())
	require.Len(t, rules, 3)
	assert.Equal(t, model.RuleAbove, rules[0].ID)
	assert.Equal(t, model.KindMessage, rules[2].Kind)
}

func ptr(v float64) *float64 {
	return &v
}
