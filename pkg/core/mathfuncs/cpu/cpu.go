// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package cpu registers the math function set specialized for float32 on CPUs, using the C99 libm
// single precision functions (sinf, expf, fmaf, ...).
//
// Import it for its side effect of registering the specialization:
//
//	import _ "github.com/gomlx/irmath/pkg/core/mathfuncs/cpu"
package cpu

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/gomlx/irmath/pkg/core/mathfuncs"
	"github.com/gomlx/irmath/pkg/core/mathfuncs/notimplemented"
	"github.com/gomlx/irmath/pkg/core/primitives"
)

// Prefix of the names of the declarations of Float32.
const Prefix = "cpu_f32"

var libm = map[mathfuncs.OpType]string{
	mathfuncs.OpTypeSin:   "sinf",
	mathfuncs.OpTypeCos:   "cosf",
	mathfuncs.OpTypeTan:   "tanf",
	mathfuncs.OpTypeSinh:  "sinhf",
	mathfuncs.OpTypeCosh:  "coshf",
	mathfuncs.OpTypeTanh:  "tanhf",
	mathfuncs.OpTypeAsin:  "asinf",
	mathfuncs.OpTypeAcos:  "acosf",
	mathfuncs.OpTypeAtan:  "atanf",
	mathfuncs.OpTypeExp:   "expf",
	mathfuncs.OpTypeExpm1: "expm1f",
	mathfuncs.OpTypeErf:   "erff",
	mathfuncs.OpTypeSqrt:  "sqrtf",
	mathfuncs.OpTypeLog:   "logf",
	mathfuncs.OpTypeLog2:  "log2f",
	mathfuncs.OpTypeLog10: "log10f",
	mathfuncs.OpTypeLog1p: "log1pf",
	mathfuncs.OpTypeRound: "roundf",
	mathfuncs.OpTypeAbs:   "fabsf",
	mathfuncs.OpTypeTrunc: "truncf",
	mathfuncs.OpTypeCeil:  "ceilf",
	mathfuncs.OpTypeFloor: "floorf",
	mathfuncs.OpTypeMin:   "fminf",
	mathfuncs.OpTypeMax:   "fmaxf",
	mathfuncs.OpTypeMod:   "fmodf",
	mathfuncs.OpTypePow:   "powf",
	mathfuncs.OpTypeAtan2: "atan2f",
	mathfuncs.OpTypeFma:   "fmaf",
}

func init() {
	f32, err := NewFloat32(primitives.Default)
	if err != nil {
		exceptions.Panicf("cpu: failed to declare the float32 math functions: %+v", err)
	}
	mathfuncs.MustRegister(mathfuncs.DeviceCPU, dtypes.Float32, f32)
}

// Float32 is the CPU FunctionSet for single precision.
type Float32 struct {
	notimplemented.FunctionSet
	libm *mathfuncs.Intrinsics
}

var _ mathfuncs.FunctionSet = (*Float32)(nil)

// NewFloat32 declares the libm functions in registry and returns the FunctionSet using them.
func NewFloat32(registry *primitives.Registry) (*Float32, error) {
	in, err := mathfuncs.RegisterIntrinsics(registry, Prefix, dtypes.Float32, libm)
	if err != nil {
		return nil, err
	}
	return &Float32{libm: in}, nil
}

// Name implements mathfuncs.FunctionSet.
func (f *Float32) Name() string { return "cpu_float32" }

// Capabilities implements mathfuncs.FunctionSet.
func (f *Float32) Capabilities() mathfuncs.Capabilities { return f.libm.Ops() }

func (f *Float32) Sin(x ir.Expr) (ir.Expr, error)   { return f.libm.Call(mathfuncs.OpTypeSin, x) }
func (f *Float32) Cos(x ir.Expr) (ir.Expr, error)   { return f.libm.Call(mathfuncs.OpTypeCos, x) }
func (f *Float32) Tan(x ir.Expr) (ir.Expr, error)   { return f.libm.Call(mathfuncs.OpTypeTan, x) }
func (f *Float32) Sinh(x ir.Expr) (ir.Expr, error)  { return f.libm.Call(mathfuncs.OpTypeSinh, x) }
func (f *Float32) Cosh(x ir.Expr) (ir.Expr, error)  { return f.libm.Call(mathfuncs.OpTypeCosh, x) }
func (f *Float32) Tanh(x ir.Expr) (ir.Expr, error)  { return f.libm.Call(mathfuncs.OpTypeTanh, x) }
func (f *Float32) Asin(x ir.Expr) (ir.Expr, error)  { return f.libm.Call(mathfuncs.OpTypeAsin, x) }
func (f *Float32) Acos(x ir.Expr) (ir.Expr, error)  { return f.libm.Call(mathfuncs.OpTypeAcos, x) }
func (f *Float32) Atan(x ir.Expr) (ir.Expr, error)  { return f.libm.Call(mathfuncs.OpTypeAtan, x) }
func (f *Float32) Exp(x ir.Expr) (ir.Expr, error)   { return f.libm.Call(mathfuncs.OpTypeExp, x) }
func (f *Float32) Expm1(x ir.Expr) (ir.Expr, error) { return f.libm.Call(mathfuncs.OpTypeExpm1, x) }
func (f *Float32) Erf(x ir.Expr) (ir.Expr, error)   { return f.libm.Call(mathfuncs.OpTypeErf, x) }
func (f *Float32) Sqrt(x ir.Expr) (ir.Expr, error)  { return f.libm.Call(mathfuncs.OpTypeSqrt, x) }
func (f *Float32) Log(x ir.Expr) (ir.Expr, error)   { return f.libm.Call(mathfuncs.OpTypeLog, x) }
func (f *Float32) Log2(x ir.Expr) (ir.Expr, error)  { return f.libm.Call(mathfuncs.OpTypeLog2, x) }
func (f *Float32) Log10(x ir.Expr) (ir.Expr, error) { return f.libm.Call(mathfuncs.OpTypeLog10, x) }
func (f *Float32) Log1p(x ir.Expr) (ir.Expr, error) { return f.libm.Call(mathfuncs.OpTypeLog1p, x) }
func (f *Float32) Round(x ir.Expr) (ir.Expr, error) { return f.libm.Call(mathfuncs.OpTypeRound, x) }
func (f *Float32) Abs(x ir.Expr) (ir.Expr, error)   { return f.libm.Call(mathfuncs.OpTypeAbs, x) }
func (f *Float32) Trunc(x ir.Expr) (ir.Expr, error) { return f.libm.Call(mathfuncs.OpTypeTrunc, x) }
func (f *Float32) Ceil(x ir.Expr) (ir.Expr, error)  { return f.libm.Call(mathfuncs.OpTypeCeil, x) }
func (f *Float32) Floor(x ir.Expr) (ir.Expr, error) { return f.libm.Call(mathfuncs.OpTypeFloor, x) }

func (f *Float32) Min(x, y ir.Expr) (ir.Expr, error) { return f.libm.Call(mathfuncs.OpTypeMin, x, y) }
func (f *Float32) Max(x, y ir.Expr) (ir.Expr, error) { return f.libm.Call(mathfuncs.OpTypeMax, x, y) }
func (f *Float32) Mod(x, y ir.Expr) (ir.Expr, error) { return f.libm.Call(mathfuncs.OpTypeMod, x, y) }
func (f *Float32) Pow(x, y ir.Expr) (ir.Expr, error) { return f.libm.Call(mathfuncs.OpTypePow, x, y) }
func (f *Float32) Atan2(y, x ir.Expr) (ir.Expr, error) {
	return f.libm.Call(mathfuncs.OpTypeAtan2, y, x)
}

func (f *Float32) Fma(x, y, z ir.Expr) (ir.Expr, error) {
	return f.libm.Call(mathfuncs.OpTypeFma, x, y, z)
}
