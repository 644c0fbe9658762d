// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package typeinference

import (
	"testing"

	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"
)

// Aliases
var (
	Pred = ir.BoolType
	I8   = ir.Scalar(dtypes.Int8)
	I32  = ir.Scalar(dtypes.Int32)
	U8   = ir.Scalar(dtypes.Uint8)
	F16  = ir.Scalar(dtypes.Float16)
	BF16 = ir.Scalar(dtypes.BFloat16)
	F32  = ir.Scalar(dtypes.Float32)
	F64  = ir.Scalar(dtypes.Float64)
)

func TestElementwise(t *testing.T) {
	_, err := Elementwise(nil)
	require.ErrorIs(t, err, ErrArity)

	got, err := Elementwise([]ir.Type{F16})
	require.NoError(t, err)
	require.Equal(t, F16, got)

	got, err = Elementwise([]ir.Type{I32, F16, F32})
	require.NoError(t, err)
	require.Equal(t, F32, got)

	got, err = Elementwise([]ir.Type{F16, BF16})
	require.NoError(t, err)
	require.Equal(t, F32, got)

	_, err = Elementwise([]ir.Type{ir.Invalid()})
	require.ErrorIs(t, err, ir.ErrInvalidType)

	f32x2 := must.M1(ir.Vectorize(F32, 2))
	f32x4 := must.M1(ir.Vectorize(F32, 4))
	_, err = Elementwise([]ir.Type{F32, f32x2, f32x4})
	require.ErrorIs(t, err, ir.ErrInvalidType)
}

func TestElementwiseIsOrderIndependent(t *testing.T) {
	all := []ir.Type{Pred, I8, I32, U8, F16, BF16, F32, F64, must.M1(ir.Vectorize(F16, 2))}
	for _, t1 := range all {
		for _, t2 := range all {
			r12, err := Elementwise([]ir.Type{t1, t2})
			require.NoError(t, err)
			r21, err := Elementwise([]ir.Type{t2, t1})
			require.NoError(t, err)
			require.Equalf(t, r12, r21, "Elementwise(%s, %s)", t1, t2)
		}
	}
}

func TestBool(t *testing.T) {
	for _, argTypes := range [][]ir.Type{nil, {F32}, {F16}, {I32, F64}, {must.M1(ir.Vectorize(F16, 2))}} {
		got, err := Bool(argTypes)
		require.NoError(t, err)
		require.Equal(t, ir.BoolType, got)
	}
}

func TestMakeVector(t *testing.T) {
	_, err := MakeVector(nil)
	require.ErrorIs(t, err, ErrArity)

	for n := 1; n <= 8; n++ {
		argTypes := make([]ir.Type, n)
		for ii := range argTypes {
			argTypes[ii] = F16
		}
		got, err := MakeVector(argTypes)
		require.NoError(t, err)
		require.Equal(t, n, got.Lanes)
		require.Equal(t, dtypes.Float16, got.DType)
	}

	_, err = MakeVector([]ir.Type{F16, F32})
	require.ErrorIs(t, err, ErrHeterogeneousVector)
	require.ErrorContains(t, err, "Float16, Float32")

	// Vectors of vectors are not supported.
	f16x2 := must.M1(ir.Vectorize(F16, 2))
	_, err = MakeVector([]ir.Type{f16x2, f16x2})
	require.ErrorIs(t, err, ir.ErrInvalidType)
}

func TestFixed(t *testing.T) {
	rule := Fixed(F16)
	for _, argTypes := range [][]ir.Type{nil, {F32}, {I32, F64}} {
		got, err := rule(argTypes)
		require.NoError(t, err)
		require.Equal(t, F16, got)
	}
}
