// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package mathfuncs

import (
	"github.com/gomlx/irmath/pkg/core/ir"
	"k8s.io/klog/v2"
)

// routed sends each operation to the specialized set if its Capabilities list it,
// and to the fallback set otherwise.
type routed struct {
	specialized, fallback FunctionSet
	ops                   Capabilities
}

var _ FunctionSet = (*routed)(nil)

// Route returns a FunctionSet that uses specialized for the operations listed in its Capabilities,
// and fallback (usually Generic()) for all others.
//
// Specializations only need to implement what they list -- e.g. by embedding notimplemented.FunctionSet --
// and an operation they don't list is never invoked on them.
func Route(specialized, fallback FunctionSet) FunctionSet {
	return &routed{specialized: specialized, fallback: fallback, ops: specialized.Capabilities().Clone()}
}

// pick returns the set to use for op.
func (r *routed) pick(op OpType) FunctionSet {
	if r.ops.Has(op) {
		return r.specialized
	}
	if klog.V(3).Enabled() {
		klog.Infof("mathfuncs: %s not implemented by %q, using %q", op, r.specialized.Name(), r.fallback.Name())
	}
	return r.fallback
}

// Name implements FunctionSet.
func (r *routed) Name() string { return r.specialized.Name() + "+" + r.fallback.Name() }

// Capabilities implements FunctionSet: the union of both sets.
func (r *routed) Capabilities() Capabilities {
	c := r.fallback.Capabilities().Clone()
	for _, op := range r.ops.Ops() {
		c.Operations[op] = true
	}
	return c
}

// Cast implements FunctionSet.
func (r *routed) Cast(x ir.Expr, target ir.Type) (CastResult, error) {
	return r.pick(OpTypeCast).Cast(x, target)
}

// MakeVector implements FunctionSet.
func (r *routed) MakeVector(items ...ir.Expr) (ir.Expr, error) {
	return r.pick(OpTypeMakeVector).MakeVector(items...)
}

// MakeVectorFromScalar implements FunctionSet.
func (r *routed) MakeVectorFromScalar(scalar ir.Expr, lanes int) (ir.Expr, error) {
	return r.pick(OpTypeMakeVectorFromScalar).MakeVectorFromScalar(scalar, lanes)
}

func (r *routed) Sin(x ir.Expr) (ir.Expr, error)      { return r.pick(OpTypeSin).Sin(x) }
func (r *routed) Cos(x ir.Expr) (ir.Expr, error)      { return r.pick(OpTypeCos).Cos(x) }
func (r *routed) Tan(x ir.Expr) (ir.Expr, error)      { return r.pick(OpTypeTan).Tan(x) }
func (r *routed) Sinh(x ir.Expr) (ir.Expr, error)     { return r.pick(OpTypeSinh).Sinh(x) }
func (r *routed) Cosh(x ir.Expr) (ir.Expr, error)     { return r.pick(OpTypeCosh).Cosh(x) }
func (r *routed) Tanh(x ir.Expr) (ir.Expr, error)     { return r.pick(OpTypeTanh).Tanh(x) }
func (r *routed) Asin(x ir.Expr) (ir.Expr, error)     { return r.pick(OpTypeAsin).Asin(x) }
func (r *routed) Acos(x ir.Expr) (ir.Expr, error)     { return r.pick(OpTypeAcos).Acos(x) }
func (r *routed) Atan(x ir.Expr) (ir.Expr, error)     { return r.pick(OpTypeAtan).Atan(x) }
func (r *routed) Asinh(x ir.Expr) (ir.Expr, error)    { return r.pick(OpTypeAsinh).Asinh(x) }
func (r *routed) Acosh(x ir.Expr) (ir.Expr, error)    { return r.pick(OpTypeAcosh).Acosh(x) }
func (r *routed) Atanh(x ir.Expr) (ir.Expr, error)    { return r.pick(OpTypeAtanh).Atanh(x) }
func (r *routed) Exp(x ir.Expr) (ir.Expr, error)      { return r.pick(OpTypeExp).Exp(x) }
func (r *routed) Expm1(x ir.Expr) (ir.Expr, error)    { return r.pick(OpTypeExpm1).Expm1(x) }
func (r *routed) Erf(x ir.Expr) (ir.Expr, error)      { return r.pick(OpTypeErf).Erf(x) }
func (r *routed) Sqrt(x ir.Expr) (ir.Expr, error)     { return r.pick(OpTypeSqrt).Sqrt(x) }
func (r *routed) Rsqrt(x ir.Expr) (ir.Expr, error)    { return r.pick(OpTypeRsqrt).Rsqrt(x) }
func (r *routed) Log(x ir.Expr) (ir.Expr, error)      { return r.pick(OpTypeLog).Log(x) }
func (r *routed) Log2(x ir.Expr) (ir.Expr, error)     { return r.pick(OpTypeLog2).Log2(x) }
func (r *routed) Log10(x ir.Expr) (ir.Expr, error)    { return r.pick(OpTypeLog10).Log10(x) }
func (r *routed) Log1p(x ir.Expr) (ir.Expr, error)    { return r.pick(OpTypeLog1p).Log1p(x) }
func (r *routed) Round(x ir.Expr) (ir.Expr, error)    { return r.pick(OpTypeRound).Round(x) }
func (r *routed) Abs(x ir.Expr) (ir.Expr, error)      { return r.pick(OpTypeAbs).Abs(x) }
func (r *routed) Trunc(x ir.Expr) (ir.Expr, error)    { return r.pick(OpTypeTrunc).Trunc(x) }
func (r *routed) Ceil(x ir.Expr) (ir.Expr, error)     { return r.pick(OpTypeCeil).Ceil(x) }
func (r *routed) Floor(x ir.Expr) (ir.Expr, error)    { return r.pick(OpTypeFloor).Floor(x) }
func (r *routed) IsFinite(x ir.Expr) (ir.Expr, error) { return r.pick(OpTypeIsFinite).IsFinite(x) }
func (r *routed) IsInf(x ir.Expr) (ir.Expr, error)    { return r.pick(OpTypeIsInf).IsInf(x) }
func (r *routed) IsNaN(x ir.Expr) (ir.Expr, error)    { return r.pick(OpTypeIsNaN).IsNaN(x) }

func (r *routed) Min(x, y ir.Expr) (ir.Expr, error)   { return r.pick(OpTypeMin).Min(x, y) }
func (r *routed) Max(x, y ir.Expr) (ir.Expr, error)   { return r.pick(OpTypeMax).Max(x, y) }
func (r *routed) Mod(x, y ir.Expr) (ir.Expr, error)   { return r.pick(OpTypeMod).Mod(x, y) }
func (r *routed) Pow(x, y ir.Expr) (ir.Expr, error)   { return r.pick(OpTypePow).Pow(x, y) }
func (r *routed) Atan2(y, x ir.Expr) (ir.Expr, error) { return r.pick(OpTypeAtan2).Atan2(y, x) }

// Fma implements FunctionSet.
func (r *routed) Fma(x, y, z ir.Expr) (ir.Expr, error) { return r.pick(OpTypeFma).Fma(x, y, z) }
