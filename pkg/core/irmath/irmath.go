// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package irmath provides the math operations as free functions over IR expressions, for use by
// compiler passes building expressions.
//
// The functions panic on error, with an error that wraps the mathfuncs, primitives or typeinference
// sentinel error. Use Check to convert the panic back to an error:
//
//	err := irmath.Check(func() {
//		y = irmath.Fma(irmath.Sin(x), a, b)
//	})
//
// The package-level functions resolve through the generic function set. For a specific target use
// For, which routes the operations its specialization implements.
package irmath

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/gomlx/irmath/pkg/core/mathfuncs"
	"github.com/pkg/errors"
)

// Math builds math expressions using one FunctionSet.
type Math struct {
	fs mathfuncs.FunctionSet
}

// New returns a Math that resolves the operations with fs.
func New(fs mathfuncs.FunctionSet) *Math {
	return &Math{fs: fs}
}

// For returns a Math for the (device, dtype) target, see mathfuncs.Resolve.
func For(device mathfuncs.Device, dtype dtypes.DType) *Math {
	return New(mathfuncs.Resolve(device, dtype))
}

// Generic returns a Math using the generic function set.
func Generic() *Math {
	return New(mathfuncs.Generic())
}

// FunctionSet used by m.
func (m *Math) FunctionSet() mathfuncs.FunctionSet {
	return m.fs
}

// Check calls fn and returns the error it panicked with, or nil if it didn't panic.
// Panics with values other than errors are not recovered.
func Check(fn func()) error {
	return exceptions.TryCatch[error](fn)
}

// must panics with err, annotated with the name of the operation, if it's not nil.
func must(op string, e ir.Expr, err error) ir.Expr {
	if err != nil {
		panic(errors.WithMessagef(err, "irmath.%s", op))
	}
	return e
}

// Cast converts x to target.
//
// It returns x itself if it already has the target type, an *ir.Cast if the function set uses the
// native conversion, or the specialized conversion expression.
func (m *Math) Cast(x ir.Expr, target ir.Type) ir.Expr {
	if x.Type() == target {
		return x
	}
	if !target.Ok() {
		panic(errors.Wrapf(ir.ErrInvalidType, "irmath.Cast(%s) to %s", x, target))
	}
	res, err := m.fs.Cast(x, target)
	if err != nil {
		panic(errors.WithMessage(err, "irmath.Cast"))
	}
	if res.IsNative() {
		return &ir.Cast{Operand: x, Target: target}
	}
	return res.Expr
}

// MakeVector packs the items, all of the same scalar type, into a vector.
func (m *Math) MakeVector(items ...ir.Expr) ir.Expr {
	e, err := m.fs.MakeVector(items...)
	return must("MakeVector", e, err)
}

// MakeVectorFromScalar packs lanes copies of scalar into a vector.
func (m *Math) MakeVectorFromScalar(scalar ir.Expr, lanes int) ir.Expr {
	e, err := m.fs.MakeVectorFromScalar(scalar, lanes)
	return must("MakeVectorFromScalar", e, err)
}

func (m *Math) Sin(x ir.Expr) ir.Expr {
	e, err := m.fs.Sin(x)
	return must("Sin", e, err)
}

func (m *Math) Cos(x ir.Expr) ir.Expr {
	e, err := m.fs.Cos(x)
	return must("Cos", e, err)
}

func (m *Math) Tan(x ir.Expr) ir.Expr {
	e, err := m.fs.Tan(x)
	return must("Tan", e, err)
}

func (m *Math) Sinh(x ir.Expr) ir.Expr {
	e, err := m.fs.Sinh(x)
	return must("Sinh", e, err)
}

func (m *Math) Cosh(x ir.Expr) ir.Expr {
	e, err := m.fs.Cosh(x)
	return must("Cosh", e, err)
}

func (m *Math) Tanh(x ir.Expr) ir.Expr {
	e, err := m.fs.Tanh(x)
	return must("Tanh", e, err)
}

func (m *Math) Asin(x ir.Expr) ir.Expr {
	e, err := m.fs.Asin(x)
	return must("Asin", e, err)
}

func (m *Math) Acos(x ir.Expr) ir.Expr {
	e, err := m.fs.Acos(x)
	return must("Acos", e, err)
}

func (m *Math) Atan(x ir.Expr) ir.Expr {
	e, err := m.fs.Atan(x)
	return must("Atan", e, err)
}

func (m *Math) Asinh(x ir.Expr) ir.Expr {
	e, err := m.fs.Asinh(x)
	return must("Asinh", e, err)
}

func (m *Math) Acosh(x ir.Expr) ir.Expr {
	e, err := m.fs.Acosh(x)
	return must("Acosh", e, err)
}

func (m *Math) Atanh(x ir.Expr) ir.Expr {
	e, err := m.fs.Atanh(x)
	return must("Atanh", e, err)
}

func (m *Math) Exp(x ir.Expr) ir.Expr {
	e, err := m.fs.Exp(x)
	return must("Exp", e, err)
}

func (m *Math) Expm1(x ir.Expr) ir.Expr {
	e, err := m.fs.Expm1(x)
	return must("Expm1", e, err)
}

func (m *Math) Erf(x ir.Expr) ir.Expr {
	e, err := m.fs.Erf(x)
	return must("Erf", e, err)
}

func (m *Math) Sqrt(x ir.Expr) ir.Expr {
	e, err := m.fs.Sqrt(x)
	return must("Sqrt", e, err)
}

func (m *Math) Rsqrt(x ir.Expr) ir.Expr {
	e, err := m.fs.Rsqrt(x)
	return must("Rsqrt", e, err)
}

func (m *Math) Log(x ir.Expr) ir.Expr {
	e, err := m.fs.Log(x)
	return must("Log", e, err)
}

func (m *Math) Log2(x ir.Expr) ir.Expr {
	e, err := m.fs.Log2(x)
	return must("Log2", e, err)
}

func (m *Math) Log10(x ir.Expr) ir.Expr {
	e, err := m.fs.Log10(x)
	return must("Log10", e, err)
}

func (m *Math) Log1p(x ir.Expr) ir.Expr {
	e, err := m.fs.Log1p(x)
	return must("Log1p", e, err)
}

func (m *Math) Round(x ir.Expr) ir.Expr {
	e, err := m.fs.Round(x)
	return must("Round", e, err)
}

func (m *Math) Abs(x ir.Expr) ir.Expr {
	e, err := m.fs.Abs(x)
	return must("Abs", e, err)
}

func (m *Math) Trunc(x ir.Expr) ir.Expr {
	e, err := m.fs.Trunc(x)
	return must("Trunc", e, err)
}

func (m *Math) Ceil(x ir.Expr) ir.Expr {
	e, err := m.fs.Ceil(x)
	return must("Ceil", e, err)
}

func (m *Math) Floor(x ir.Expr) ir.Expr {
	e, err := m.fs.Floor(x)
	return must("Floor", e, err)
}

func (m *Math) IsFinite(x ir.Expr) ir.Expr {
	e, err := m.fs.IsFinite(x)
	return must("IsFinite", e, err)
}

func (m *Math) IsInf(x ir.Expr) ir.Expr {
	e, err := m.fs.IsInf(x)
	return must("IsInf", e, err)
}

func (m *Math) IsNaN(x ir.Expr) ir.Expr {
	e, err := m.fs.IsNaN(x)
	return must("IsNaN", e, err)
}

func (m *Math) Min(x, y ir.Expr) ir.Expr {
	e, err := m.fs.Min(x, y)
	return must("Min", e, err)
}

func (m *Math) Max(x, y ir.Expr) ir.Expr {
	e, err := m.fs.Max(x, y)
	return must("Max", e, err)
}

func (m *Math) Mod(x, y ir.Expr) ir.Expr {
	e, err := m.fs.Mod(x, y)
	return must("Mod", e, err)
}

func (m *Math) Pow(x, y ir.Expr) ir.Expr {
	e, err := m.fs.Pow(x, y)
	return must("Pow", e, err)
}

func (m *Math) Atan2(y, x ir.Expr) ir.Expr {
	e, err := m.fs.Atan2(y, x)
	return must("Atan2", e, err)
}

// Fma returns the fused multiply-add x*y+z.
func (m *Math) Fma(x, y, z ir.Expr) ir.Expr {
	e, err := m.fs.Fma(x, y, z)
	return must("Fma", e, err)
}
