// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package codegen

import (
	"testing"

	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/gomlx/irmath/pkg/core/mathfuncs"
	"github.com/gomlx/irmath/pkg/core/primitives"
	"github.com/gomlx/irmath/pkg/core/primitives/typeinference"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asCall(e ir.Expr, err error) *ir.Call {
	return must.M1(e, err).(*ir.Call)
}

func TestSymbolName(t *testing.T) {
	g := mathfuncs.Generic()
	f16 := ir.NewVar("h", ir.Scalar(dtypes.Float16))
	f32 := ir.NewVar("x", ir.Scalar(dtypes.Float32))
	f64 := ir.NewVar("d", ir.Scalar(dtypes.Float64))
	half2 := ir.NewVar("h2", ir.Type{DType: dtypes.Float16, Lanes: 2})
	i32 := ir.NewVar("i", ir.Scalar(dtypes.Int32))

	tests := []struct {
		name   string
		call   *ir.Call
		device mathfuncs.Device
		want   string
	}{
		{"cpu sin f32", asCall(g.Sin(f32)), mathfuncs.DeviceCPU, "sinf"},
		{"cpu sin f64", asCall(g.Sin(f64)), mathfuncs.DeviceCPU, "sin"},
		{"cpu abs f32", asCall(g.Abs(f32)), mathfuncs.DeviceCPU, "fabsf"},
		{"cpu isnan f32", asCall(g.IsNaN(f32)), mathfuncs.DeviceCPU, "isnan"},
		{"cpu atan2 f64", asCall(g.Atan2(f64, f64)), mathfuncs.DeviceCPU, "atan2"},
		{"cuda sin f16", asCall(g.Sin(f16)), mathfuncs.DeviceCUDA, "hsin"},
		{"cuda sin half2", asCall(g.Sin(half2)), mathfuncs.DeviceCUDA, "h2sin"},
		{"cuda fma half2", asCall(g.Fma(half2, half2, half2)), mathfuncs.DeviceCUDA, "__hfma2"},
		{"cuda rsqrt f32", asCall(g.Rsqrt(f32)), mathfuncs.DeviceCUDA, "rsqrtf"},
		{"cuda pow f32", asCall(g.Pow(f32, f32)), mathfuncs.DeviceCUDA, "powf"},
		{"cuda make half2", asCall(g.MakeVector(f16, f16)), mathfuncs.DeviceCUDA, "__halves2half2"},
		{"cuda make float4", asCall(g.MakeVectorFromScalar(f32, 4)), mathfuncs.DeviceCUDA, "make_float4"},
		{"cuda make int2", asCall(g.MakeVector(i32, i32)), mathfuncs.DeviceCUDA, "make_int2"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := SymbolName(test.call, test.device)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestSymbolNameMissing(t *testing.T) {
	g := mathfuncs.Generic()
	f16 := ir.NewVar("h", ir.Scalar(dtypes.Float16))
	f32 := ir.NewVar("x", ir.Scalar(dtypes.Float32))
	half2 := ir.NewVar("h2", ir.Type{DType: dtypes.Float16, Lanes: 2})

	for _, test := range []struct {
		name   string
		call   *ir.Call
		device mathfuncs.Device
	}{
		{"cpu sin f16", asCall(g.Sin(f16)), mathfuncs.DeviceCPU},
		{"cpu rsqrt f32", asCall(g.Rsqrt(f32)), mathfuncs.DeviceCPU},
		{"cpu make_vector", asCall(g.MakeVector(f32, f32)), mathfuncs.DeviceCPU},
		{"cuda tan f16", asCall(g.Tan(f16)), mathfuncs.DeviceCUDA},
		{"cuda make half4", asCall(g.MakeVectorFromScalar(f16, 4)), mathfuncs.DeviceCUDA},
		{"cuda isinf half2", asCall(g.IsInf(half2)), mathfuncs.DeviceCUDA},
		{"cuda isnan half2", asCall(g.IsNaN(half2)), mathfuncs.DeviceCUDA},
		{"tpu sin f32", asCall(g.Sin(f32)), mathfuncs.Device("tpu")},
	} {
		_, err := SymbolName(test.call, test.device)
		require.ErrorIsf(t, err, ErrNoSymbol, "test %q", test.name)
	}
}

func TestSymbolNameSpecialized(t *testing.T) {
	registry := primitives.NewRegistry()
	x := ir.NewVar("x", ir.Scalar(dtypes.Float32))

	decl := must.M1(registry.Register("fast_sin", "__sinf", typeinference.Elementwise, false))
	got, err := SymbolName(must.M1(decl.Call(x)), mathfuncs.DeviceCPU)
	require.NoError(t, err)
	assert.Equal(t, "__sinf", got)

	decl = must.M1(registry.Register("no_symbol", "", typeinference.Elementwise, false))
	_, err = SymbolName(must.M1(decl.Call(x)), mathfuncs.DeviceCPU)
	require.ErrorIs(t, err, ErrNoSymbol)
}

func TestCUDAHalfSymbols(t *testing.T) {
	symbols := CUDAHalfSymbols()
	assert.Equal(t, "hsin", symbols[mathfuncs.OpTypeSin])
	assert.Equal(t, "__hisnan", symbols[mathfuncs.OpTypeIsNaN])
	symbols[mathfuncs.OpTypeSin] = "changed"
	assert.Equal(t, "hsin", CUDAHalfSymbols()[mathfuncs.OpTypeSin])
}
