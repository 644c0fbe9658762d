// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package notimplemented implements a mathfuncs.FunctionSet that returns a "not implemented" error
// for all operations.
//
// Specializations embed FunctionSet and override only the operations they implement, listing them in
// their Capabilities: mathfuncs.Route then never invokes the others.
package notimplemented

import (
	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/gomlx/irmath/pkg/core/mathfuncs"
	"github.com/pkg/errors"
)

// ErrUnimplementedOperation is returned by every operation.
//
// It is the same as mathfuncs.ErrUnimplementedOperation.
var ErrUnimplementedOperation = mathfuncs.ErrUnimplementedOperation

// FunctionSet implements mathfuncs.FunctionSet and returns ErrUnimplementedOperation, wrapped with the
// operation name, for every operation except Cast, which defaults to the native cast.
type FunctionSet struct {
	// ErrFn is called to generate the error returned, if not nil.
	// Otherwise ErrUnimplementedOperation wrapped with the operation name is returned.
	ErrFn func(op mathfuncs.OpType) error
}

var _ mathfuncs.FunctionSet = FunctionSet{}

// baseErrFn returns the error corresponding to the op.
// It falls back to FunctionSet.ErrFn if it is defined.
func (f FunctionSet) baseErrFn(op mathfuncs.OpType) error {
	if f.ErrFn == nil {
		return errors.Wrapf(ErrUnimplementedOperation, "%s", op)
	}
	return f.ErrFn(op)
}

// Name returns "notimplemented", it should be overridden.
func (f FunctionSet) Name() string {
	return "notimplemented"
}

// Capabilities returns empty capabilities.
func (f FunctionSet) Capabilities() mathfuncs.Capabilities {
	return mathfuncs.CapabilitiesWith()
}

// Cast returns mathfuncs.UseNativeCast.
func (f FunctionSet) Cast(x ir.Expr, target ir.Type) (mathfuncs.CastResult, error) {
	return mathfuncs.UseNativeCast(), nil
}

func (f FunctionSet) MakeVector(items ...ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeMakeVector)
}

func (f FunctionSet) MakeVectorFromScalar(scalar ir.Expr, lanes int) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeMakeVectorFromScalar)
}

func (f FunctionSet) Sin(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeSin)
}

func (f FunctionSet) Cos(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeCos)
}

func (f FunctionSet) Tan(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeTan)
}

func (f FunctionSet) Sinh(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeSinh)
}

func (f FunctionSet) Cosh(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeCosh)
}

func (f FunctionSet) Tanh(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeTanh)
}

func (f FunctionSet) Asin(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeAsin)
}

func (f FunctionSet) Acos(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeAcos)
}

func (f FunctionSet) Atan(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeAtan)
}

func (f FunctionSet) Asinh(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeAsinh)
}

func (f FunctionSet) Acosh(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeAcosh)
}

func (f FunctionSet) Atanh(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeAtanh)
}

func (f FunctionSet) Exp(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeExp)
}

func (f FunctionSet) Expm1(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeExpm1)
}

func (f FunctionSet) Erf(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeErf)
}

func (f FunctionSet) Sqrt(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeSqrt)
}

func (f FunctionSet) Rsqrt(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeRsqrt)
}

func (f FunctionSet) Log(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeLog)
}

func (f FunctionSet) Log2(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeLog2)
}

func (f FunctionSet) Log10(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeLog10)
}

func (f FunctionSet) Log1p(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeLog1p)
}

func (f FunctionSet) Round(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeRound)
}

func (f FunctionSet) Abs(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeAbs)
}

func (f FunctionSet) Trunc(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeTrunc)
}

func (f FunctionSet) Ceil(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeCeil)
}

func (f FunctionSet) Floor(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeFloor)
}

func (f FunctionSet) IsFinite(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeIsFinite)
}

func (f FunctionSet) IsInf(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeIsInf)
}

func (f FunctionSet) IsNaN(x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeIsNaN)
}

func (f FunctionSet) Min(x, y ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeMin)
}

func (f FunctionSet) Max(x, y ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeMax)
}

func (f FunctionSet) Mod(x, y ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeMod)
}

func (f FunctionSet) Pow(x, y ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypePow)
}

func (f FunctionSet) Atan2(y, x ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeAtan2)
}

func (f FunctionSet) Fma(x, y, z ir.Expr) (ir.Expr, error) {
	return nil, f.baseErrFn(mathfuncs.OpTypeFma)
}
