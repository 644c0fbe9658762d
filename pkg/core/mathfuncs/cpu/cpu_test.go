// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package cpu

import (
	"testing"

	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/gomlx/irmath/pkg/core/mathfuncs"
	"github.com/gomlx/irmath/pkg/core/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat32(t *testing.T) {
	f32, err := NewFloat32(primitives.NewRegistry())
	require.NoError(t, err)
	x := ir.NewVar("x", ir.Scalar(dtypes.Float32))
	y := ir.NewVar("y", ir.Scalar(dtypes.Float32))

	tests := []struct {
		name    string
		build   func() (ir.Expr, error)
		codegen string
	}{
		{"sin", func() (ir.Expr, error) { return f32.Sin(x) }, "sinf"},
		{"abs", func() (ir.Expr, error) { return f32.Abs(x) }, "fabsf"},
		{"erf", func() (ir.Expr, error) { return f32.Erf(x) }, "erff"},
		{"min", func() (ir.Expr, error) { return f32.Min(x, y) }, "fminf"},
		{"atan2", func() (ir.Expr, error) { return f32.Atan2(y, x) }, "atan2f"},
		{"fma", func() (ir.Expr, error) { return f32.Fma(x, y, x) }, "fmaf"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e, err := test.build()
			require.NoError(t, err)
			call, ok := e.(*ir.Call)
			require.True(t, ok)
			codegen, found := call.Func.CodegenName()
			require.True(t, found)
			assert.Equal(t, test.codegen, codegen)
			assert.Equal(t, Prefix+"_"+test.name, call.Func.Name())
			assert.Equal(t, ir.Scalar(dtypes.Float32), e.Type())
		})
	}

	// Atan2 keeps the operand order.
	e, err := f32.Atan2(y, x)
	require.NoError(t, err)
	assert.Equal(t, "cpu_f32_atan2(y, x)", e.String())

	// No libm function for the predicates.
	assert.False(t, f32.Capabilities().Has(mathfuncs.OpTypeIsNaN))
	_, err = f32.IsNaN(x)
	require.ErrorIs(t, err, mathfuncs.ErrUnimplementedOperation)
}

func TestResolve(t *testing.T) {
	fs := mathfuncs.Resolve(mathfuncs.DeviceCPU, dtypes.Float32)
	x := ir.NewVar("x", ir.Scalar(dtypes.Float32))

	e, err := fs.Log1p(x)
	require.NoError(t, err)
	assert.Equal(t, "cpu_f32_log1p(x)", e.String())

	e, err = fs.IsFinite(x)
	require.NoError(t, err)
	assert.Equal(t, "generic_isfinite(x)", e.String())
	assert.Equal(t, ir.BoolType, e.Type())

	// float64 has no specialization.
	e, err = mathfuncs.Resolve(mathfuncs.DeviceCPU, dtypes.Float64).Sin(ir.NewVar("d", ir.Scalar(dtypes.Float64)))
	require.NoError(t, err)
	assert.Equal(t, "generic_sin(d)", e.String())
}
