// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package cuda

import (
	"github.com/gomlx/irmath/pkg/core/codegen"
	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/gomlx/irmath/pkg/core/mathfuncs"
	"github.com/gomlx/irmath/pkg/core/mathfuncs/notimplemented"
	"github.com/gomlx/irmath/pkg/core/primitives"
	"github.com/gomlx/irmath/pkg/core/primitives/typeinference"
	"github.com/pkg/errors"
)

// Float16Prefix is the prefix of the names of the declarations of Float16.
const Float16Prefix = "cuda_f16"

// float16Intrinsics maps the operations implemented by Float16 to the cuda_fp16.h functions: the
// symbols codegen uses for generic half calls, plus the half2 constructor.
func float16Intrinsics() map[mathfuncs.OpType]string {
	names := codegen.CUDAHalfSymbols()
	names[mathfuncs.OpTypeMakeVector] = "__halves2half2"
	return names
}

var (
	halfType  = ir.Scalar(dtypes.Float16)
	floatType = ir.Scalar(dtypes.Float32)
	half2Type = ir.Type{DType: dtypes.Float16, Lanes: 2}
)

// Float16 is the CUDA FunctionSet for half precision.
//
// Operations not listed in its Capabilities return an ErrUnimplementedOperation, use it through
// mathfuncs.Resolve.
type Float16 struct {
	notimplemented.FunctionSet

	intrinsics *mathfuncs.Intrinsics

	// Conversions and broadcast, the intrinsics that don't follow the generic type rules.
	float2half, half2float, half2half2 *primitives.Declaration
}

var _ mathfuncs.FunctionSet = (*Float16)(nil)

// NewFloat16 declares the half precision intrinsics in registry and returns the FunctionSet using them.
func NewFloat16(registry *primitives.Registry) (*Float16, error) {
	f := &Float16{}
	var err error
	f.intrinsics, err = mathfuncs.RegisterIntrinsics(registry, Float16Prefix, dtypes.Float16, float16Intrinsics())
	if err != nil {
		return nil, err
	}
	if f.float2half, err = registry.Register(Float16Prefix+"_cast_from_f32", "__float2half", typeinference.Fixed(halfType), false); err != nil {
		return nil, err
	}
	if f.half2float, err = registry.Register(Float16Prefix+"_cast_to_f32", "__half2float", typeinference.Fixed(floatType), false); err != nil {
		return nil, err
	}
	if f.half2half2, err = registry.Register(Float16Prefix+"_make_vector_from_scalar", "__half2half2", typeinference.Fixed(half2Type), false); err != nil {
		return nil, err
	}
	return f, nil
}

// Name implements mathfuncs.FunctionSet.
func (f *Float16) Name() string { return "cuda_float16" }

// Capabilities implements mathfuncs.FunctionSet.
func (f *Float16) Capabilities() mathfuncs.Capabilities {
	c := f.intrinsics.Ops()
	c.Operations[mathfuncs.OpTypeCast] = true
	c.Operations[mathfuncs.OpTypeMakeVectorFromScalar] = true
	return c
}

// Cast implements mathfuncs.FunctionSet: conversions between float32 and half use the CUDA
// intrinsics, all others the native cast.
func (f *Float16) Cast(x ir.Expr, target ir.Type) (mathfuncs.CastResult, error) {
	var decl *primitives.Declaration
	switch {
	case x.Type() == floatType && target == halfType:
		decl = f.float2half
	case x.Type() == halfType && target == floatType:
		decl = f.half2float
	default:
		return mathfuncs.UseNativeCast(), nil
	}
	call, err := decl.Call(x)
	if err != nil {
		return mathfuncs.CastResult{}, err
	}
	return mathfuncs.Specialized(call), nil
}

// MakeVector implements mathfuncs.FunctionSet. Only half2 vectors have an intrinsic, the others
// are built generically.
func (f *Float16) MakeVector(items ...ir.Expr) (ir.Expr, error) {
	if len(items) != 2 {
		return mathfuncs.Generic().MakeVector(items...)
	}
	return f.intrinsics.Call(mathfuncs.OpTypeMakeVector, items...)
}

// MakeVectorFromScalar implements mathfuncs.FunctionSet. Only half2 vectors have an intrinsic.
func (f *Float16) MakeVectorFromScalar(scalar ir.Expr, lanes int) (ir.Expr, error) {
	if lanes != 2 || scalar.Type() != halfType {
		return mathfuncs.Generic().MakeVectorFromScalar(scalar, lanes)
	}
	call, err := f.half2half2.Call(scalar)
	if err != nil {
		return nil, errors.WithMessage(err, "cuda float16 make_vector_from_scalar")
	}
	return call, nil
}

func (f *Float16) Sin(x ir.Expr) (ir.Expr, error)   { return f.intrinsics.Call(mathfuncs.OpTypeSin, x) }
func (f *Float16) Cos(x ir.Expr) (ir.Expr, error)   { return f.intrinsics.Call(mathfuncs.OpTypeCos, x) }
func (f *Float16) Exp(x ir.Expr) (ir.Expr, error)   { return f.intrinsics.Call(mathfuncs.OpTypeExp, x) }
func (f *Float16) Log(x ir.Expr) (ir.Expr, error)   { return f.intrinsics.Call(mathfuncs.OpTypeLog, x) }
func (f *Float16) Log2(x ir.Expr) (ir.Expr, error)  { return f.intrinsics.Call(mathfuncs.OpTypeLog2, x) }
func (f *Float16) Log10(x ir.Expr) (ir.Expr, error) { return f.intrinsics.Call(mathfuncs.OpTypeLog10, x) }
func (f *Float16) Sqrt(x ir.Expr) (ir.Expr, error)  { return f.intrinsics.Call(mathfuncs.OpTypeSqrt, x) }
func (f *Float16) Rsqrt(x ir.Expr) (ir.Expr, error) { return f.intrinsics.Call(mathfuncs.OpTypeRsqrt, x) }
func (f *Float16) Round(x ir.Expr) (ir.Expr, error) { return f.intrinsics.Call(mathfuncs.OpTypeRound, x) }
func (f *Float16) Abs(x ir.Expr) (ir.Expr, error)   { return f.intrinsics.Call(mathfuncs.OpTypeAbs, x) }
func (f *Float16) Trunc(x ir.Expr) (ir.Expr, error) { return f.intrinsics.Call(mathfuncs.OpTypeTrunc, x) }
func (f *Float16) Ceil(x ir.Expr) (ir.Expr, error)  { return f.intrinsics.Call(mathfuncs.OpTypeCeil, x) }
func (f *Float16) Floor(x ir.Expr) (ir.Expr, error) { return f.intrinsics.Call(mathfuncs.OpTypeFloor, x) }
func (f *Float16) IsInf(x ir.Expr) (ir.Expr, error) { return f.intrinsics.Call(mathfuncs.OpTypeIsInf, x) }
func (f *Float16) IsNaN(x ir.Expr) (ir.Expr, error) { return f.intrinsics.Call(mathfuncs.OpTypeIsNaN, x) }

func (f *Float16) Min(x, y ir.Expr) (ir.Expr, error) { return f.intrinsics.Call(mathfuncs.OpTypeMin, x, y) }
func (f *Float16) Max(x, y ir.Expr) (ir.Expr, error) { return f.intrinsics.Call(mathfuncs.OpTypeMax, x, y) }

func (f *Float16) Fma(x, y, z ir.Expr) (ir.Expr, error) {
	return f.intrinsics.Call(mathfuncs.OpTypeFma, x, y, z)
}
