// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package cuda

import (
	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/gomlx/irmath/pkg/core/mathfuncs"
	"github.com/gomlx/irmath/pkg/core/mathfuncs/notimplemented"
	"github.com/gomlx/irmath/pkg/core/primitives"
)

// Float32Prefix is the prefix of the names of the declarations of Float32.
const Float32Prefix = "cuda_f32"

// float32Intrinsics are the fast-math intrinsics: less precise, but single instruction.
var float32Intrinsics = map[mathfuncs.OpType]string{
	mathfuncs.OpTypeSin:   "__sinf",
	mathfuncs.OpTypeCos:   "__cosf",
	mathfuncs.OpTypeTan:   "__tanf",
	mathfuncs.OpTypeExp:   "__expf",
	mathfuncs.OpTypeLog:   "__logf",
	mathfuncs.OpTypeLog2:  "__log2f",
	mathfuncs.OpTypeLog10: "__log10f",
	mathfuncs.OpTypeRsqrt: "rsqrtf",
	mathfuncs.OpTypePow:   "__powf",
	mathfuncs.OpTypeFma:   "__fmaf_rn",
}

// Float32 is the CUDA FunctionSet for single precision.
//
// Operations not listed in its Capabilities return an ErrUnimplementedOperation, use it through
// mathfuncs.Resolve.
type Float32 struct {
	notimplemented.FunctionSet
	intrinsics *mathfuncs.Intrinsics
}

var _ mathfuncs.FunctionSet = (*Float32)(nil)

// NewFloat32 declares the single precision intrinsics in registry and returns the FunctionSet using them.
func NewFloat32(registry *primitives.Registry) (*Float32, error) {
	intrinsics, err := mathfuncs.RegisterIntrinsics(registry, Float32Prefix, dtypes.Float32, float32Intrinsics)
	if err != nil {
		return nil, err
	}
	return &Float32{intrinsics: intrinsics}, nil
}

// Name implements mathfuncs.FunctionSet.
func (f *Float32) Name() string { return "cuda_float32" }

// Capabilities implements mathfuncs.FunctionSet.
func (f *Float32) Capabilities() mathfuncs.Capabilities { return f.intrinsics.Ops() }

func (f *Float32) Sin(x ir.Expr) (ir.Expr, error)   { return f.intrinsics.Call(mathfuncs.OpTypeSin, x) }
func (f *Float32) Cos(x ir.Expr) (ir.Expr, error)   { return f.intrinsics.Call(mathfuncs.OpTypeCos, x) }
func (f *Float32) Tan(x ir.Expr) (ir.Expr, error)   { return f.intrinsics.Call(mathfuncs.OpTypeTan, x) }
func (f *Float32) Exp(x ir.Expr) (ir.Expr, error)   { return f.intrinsics.Call(mathfuncs.OpTypeExp, x) }
func (f *Float32) Log(x ir.Expr) (ir.Expr, error)   { return f.intrinsics.Call(mathfuncs.OpTypeLog, x) }
func (f *Float32) Log2(x ir.Expr) (ir.Expr, error)  { return f.intrinsics.Call(mathfuncs.OpTypeLog2, x) }
func (f *Float32) Log10(x ir.Expr) (ir.Expr, error) { return f.intrinsics.Call(mathfuncs.OpTypeLog10, x) }
func (f *Float32) Rsqrt(x ir.Expr) (ir.Expr, error) { return f.intrinsics.Call(mathfuncs.OpTypeRsqrt, x) }

func (f *Float32) Pow(x, y ir.Expr) (ir.Expr, error) { return f.intrinsics.Call(mathfuncs.OpTypePow, x, y) }

// Fma uses __fmaf_rn, rounding to nearest even.
func (f *Float32) Fma(x, y, z ir.Expr) (ir.Expr, error) {
	return f.intrinsics.Call(mathfuncs.OpTypeFma, x, y, z)
}
