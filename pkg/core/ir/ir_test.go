// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"testing"

	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

// Aliases
var (
	F16 = Scalar(dtypes.Float16)
	F32 = Scalar(dtypes.Float32)
	I32 = Scalar(dtypes.Int32)
)

func TestType(t *testing.T) {
	assert.False(t, Type{}.Ok())
	assert.True(t, F32.IsScalar())
	assert.False(t, F32.IsVector())
	assert.Equal(t, "Float32", F32.String())

	v, err := Vectorize(F16, 2)
	require.NoError(t, err)
	assert.True(t, v.IsVector())
	assert.Equal(t, 2, v.Lanes)
	assert.Equal(t, F16, v.ScalarType())
	assert.Equal(t, "Float16x2", v.String())

	_, err = Vectorize(v, 2)
	require.ErrorIs(t, err, ErrInvalidType)
	_, err = Vectorize(F16, 0)
	require.ErrorIs(t, err, ErrInvalidType)
	_, err = Vectorize(Invalid(), 4)
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestPromoteTypes(t *testing.T) {
	got, err := PromoteTypes(I32, F16)
	require.NoError(t, err)
	assert.Equal(t, F16, got)

	f16x4, _ := Vectorize(F16, 4)
	f32x4, _ := Vectorize(F32, 4)
	got, err = PromoteTypes(F32, f16x4)
	require.NoError(t, err)
	assert.Equal(t, f32x4, got)
	got, err = PromoteTypes(f16x4, F32)
	require.NoError(t, err)
	assert.Equal(t, f32x4, got)

	f16x2, _ := Vectorize(F16, 2)
	_, err = PromoteTypes(f16x2, f16x4)
	require.ErrorIs(t, err, ErrInvalidType)
	_, err = PromoteTypes(Invalid(), F32)
	require.ErrorIs(t, err, ErrInvalidType)
}

type fakeSymbol string

func (s fakeSymbol) Name() string                { return string(s) }
func (s fakeSymbol) CodegenName() (string, bool) { return "", false }
func (s fakeSymbol) IsGeneric() bool             { return true }

func TestExpressions(t *testing.T) {
	x := NewVar("x", F32)
	c := Const(float16.Fromfloat32(0.5))
	assert.Equal(t, F16, c.Type())
	assert.Equal(t, Invalid(), Const("string").Type())

	three := Const(int32(3))
	args := []Expr{x, three}
	call := NewCall(fakeSymbol("generic_max"), F32, args...)
	args[0] = three
	assert.Equal(t, x, call.Args[0], "NewCall must copy its arguments")
	assert.Equal(t, F32, call.Type())
	assert.Equal(t, "generic_max(x, 3)", call.String())
	assert.Equal(t, []Type{F32, F16, I32}, Types(x, c, three))

	cast := &Cast{Operand: x, Target: F16}
	assert.Equal(t, F16, cast.Type())
	assert.Equal(t, "(Float16)(x)", cast.String())
}
