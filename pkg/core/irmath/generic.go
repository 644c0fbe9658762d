// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package irmath

import "github.com/gomlx/irmath/pkg/core/ir"

// Free functions over the generic function set.

var generic = Generic()

// Cast converts x to target, see Math.Cast.
func Cast(x ir.Expr, target ir.Type) ir.Expr { return generic.Cast(x, target) }

// MakeVector packs the items, all of the same scalar type, into a vector.
func MakeVector(items ...ir.Expr) ir.Expr { return generic.MakeVector(items...) }

// MakeVectorFromScalar packs lanes copies of scalar into a vector.
func MakeVectorFromScalar(scalar ir.Expr, lanes int) ir.Expr {
	return generic.MakeVectorFromScalar(scalar, lanes)
}

func Sin(x ir.Expr) ir.Expr      { return generic.Sin(x) }
func Cos(x ir.Expr) ir.Expr      { return generic.Cos(x) }
func Tan(x ir.Expr) ir.Expr      { return generic.Tan(x) }
func Sinh(x ir.Expr) ir.Expr     { return generic.Sinh(x) }
func Cosh(x ir.Expr) ir.Expr     { return generic.Cosh(x) }
func Tanh(x ir.Expr) ir.Expr     { return generic.Tanh(x) }
func Asin(x ir.Expr) ir.Expr     { return generic.Asin(x) }
func Acos(x ir.Expr) ir.Expr     { return generic.Acos(x) }
func Atan(x ir.Expr) ir.Expr     { return generic.Atan(x) }
func Asinh(x ir.Expr) ir.Expr    { return generic.Asinh(x) }
func Acosh(x ir.Expr) ir.Expr    { return generic.Acosh(x) }
func Atanh(x ir.Expr) ir.Expr    { return generic.Atanh(x) }
func Exp(x ir.Expr) ir.Expr      { return generic.Exp(x) }
func Expm1(x ir.Expr) ir.Expr    { return generic.Expm1(x) }
func Erf(x ir.Expr) ir.Expr      { return generic.Erf(x) }
func Sqrt(x ir.Expr) ir.Expr     { return generic.Sqrt(x) }
func Rsqrt(x ir.Expr) ir.Expr    { return generic.Rsqrt(x) }
func Log(x ir.Expr) ir.Expr      { return generic.Log(x) }
func Log2(x ir.Expr) ir.Expr     { return generic.Log2(x) }
func Log10(x ir.Expr) ir.Expr    { return generic.Log10(x) }
func Log1p(x ir.Expr) ir.Expr    { return generic.Log1p(x) }
func Round(x ir.Expr) ir.Expr    { return generic.Round(x) }
func Abs(x ir.Expr) ir.Expr      { return generic.Abs(x) }
func Trunc(x ir.Expr) ir.Expr    { return generic.Trunc(x) }
func Ceil(x ir.Expr) ir.Expr     { return generic.Ceil(x) }
func Floor(x ir.Expr) ir.Expr    { return generic.Floor(x) }
func IsFinite(x ir.Expr) ir.Expr { return generic.IsFinite(x) }
func IsInf(x ir.Expr) ir.Expr    { return generic.IsInf(x) }
func IsNaN(x ir.Expr) ir.Expr    { return generic.IsNaN(x) }

func Min(x, y ir.Expr) ir.Expr   { return generic.Min(x, y) }
func Max(x, y ir.Expr) ir.Expr   { return generic.Max(x, y) }
func Mod(x, y ir.Expr) ir.Expr   { return generic.Mod(x, y) }
func Pow(x, y ir.Expr) ir.Expr   { return generic.Pow(x, y) }
func Atan2(y, x ir.Expr) ir.Expr { return generic.Atan2(y, x) }

// Fma returns the fused multiply-add x*y+z.
func Fma(x, y, z ir.Expr) ir.Expr { return generic.Fma(x, y, z) }
