// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrKeyConstant(t *testing.T) {
	assert.Equal(t, "error", ErrKey)
}

func TestAppendCtx(t *testing.T) {
	attr := slog.String("key1", "value1")
	ctx := AppendCtx(context.TODO(), attr)
	require.NotNil(t, ctx)

	attrs, ok := ctx.Value(slogFields).([]slog.Attr)
	require.True(t, ok, "expected slog attributes in context")
	require.Len(t, attrs, 1)
	assert.Equal(t, "key1", attrs[0].Key)
	assert.Equal(t, "value1", attrs[0].Value.String())
}

func TestAppendCtx_WithParent(t *testing.T) {
	parentCtx := AppendCtx(context.Background(), slog.String("parent_key", "parent_value"))
	childCtx := AppendCtx(parentCtx, slog.String("child_key", "child_value"))

	attrs, ok := childCtx.Value(slogFields).([]slog.Attr)
	require.True(t, ok, "expected slog attributes in context")
	require.Len(t, attrs, 2)
	assert.Equal(t, "parent_key", attrs[0].Key)
	assert.Equal(t, "child_key", attrs[1].Key)
}

func TestAppendCtx_NilParent(t *testing.T) {
	//nolint:staticcheck // exercising the nil-parent path on purpose
	ctx := AppendCtx(nil, slog.String("key", "value"))
	require.NotNil(t, ctx)

	attrs, ok := ctx.Value(slogFields).([]slog.Attr)
	require.True(t, ok)
	assert.Len(t, attrs, 1)
}

func TestPriority(t *testing.T) {
	attr := PriorityCritical()
	assert.Equal(t, "priority", attr.Key)
	assert.Equal(t, "critical", attr.Value.String())
}
