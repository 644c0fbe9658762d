// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ir defines the small expression layer the math primitives build on: the value Type
// (a DType, optionally packed into lanes), the Expr interface and the expression nodes
// (Var, Constant, Cast and Call).
//
// A Call references an ir.Symbol, which is implemented by primitives.Declaration: the call
// carries its operands and the result type inferred by the declaration when it was built.
package ir

import (
	"fmt"

	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/pkg/errors"
)

// ErrInvalidType is returned when an operation is given a Type it can't work with.
var ErrInvalidType = errors.New("invalid type")

// Type of an IR value: a scalar DType, or a fixed-width vector of Lanes values of DType.
//
// Lanes == 0 means a scalar. It is a value type, and can be compared with ==.
type Type struct {
	DType dtypes.DType
	Lanes int
}

// Scalar returns the scalar Type for dtype.
func Scalar(dtype dtypes.DType) Type {
	return Type{DType: dtype}
}

// Invalid returns an invalid type.
//
// Invalid().Ok() == false.
func Invalid() Type {
	return Type{DType: dtypes.InvalidDType}
}

// BoolType is the scalar boolean type, the result of predicates.
var BoolType = Scalar(dtypes.Bool)

// Ok returns whether this is a valid Type. The zero Type{} is invalid.
func (t Type) Ok() bool { return t.DType.IsValid() && t.Lanes >= 0 }

// IsScalar returns whether t is a valid scalar type.
func (t Type) IsScalar() bool { return t.Ok() && t.Lanes == 0 }

// IsVector returns whether t is a valid vector type.
func (t Type) IsVector() bool { return t.Ok() && t.Lanes > 0 }

// ScalarType returns the Type of one lane of t. For scalars it returns t itself.
func (t Type) ScalarType() Type { return Type{DType: t.DType} }

// String implements fmt.Stringer. Vectors are printed as "Float16x2".
func (t Type) String() string {
	if t.Lanes == 0 {
		return t.DType.String()
	}
	return fmt.Sprintf("%sx%d", t.DType, t.Lanes)
}

// Vectorize returns the vector type packing lanes values of the scalar type t.
//
// It returns ErrInvalidType if t is not a valid scalar or lanes < 1.
func Vectorize(t Type, lanes int) (Type, error) {
	if !t.IsScalar() {
		return Invalid(), errors.Wrapf(ErrInvalidType, "Vectorize(%s, %d): only scalar types can be vectorized", t, lanes)
	}
	if lanes < 1 {
		return Invalid(), errors.Wrapf(ErrInvalidType, "Vectorize(%s, %d): number of lanes must be >= 1", t, lanes)
	}
	return Type{DType: t.DType, Lanes: lanes}, nil
}

// PromoteTypes returns the common type of two operands of an elementwise operation.
//
// The DType follows dtypes.Promote. A scalar operand is broadcast to the lanes of a vector
// operand; two vectors must have the same number of lanes. It is commutative.
func PromoteTypes(a, b Type) (Type, error) {
	if !a.Ok() || !b.Ok() {
		return Invalid(), errors.Wrapf(ErrInvalidType, "cannot promote %s and %s", a, b)
	}
	lanes := a.Lanes
	switch {
	case a.Lanes == 0:
		lanes = b.Lanes
	case b.Lanes != 0 && a.Lanes != b.Lanes:
		return Invalid(), errors.Wrapf(ErrInvalidType, "cannot promote vectors with different number of lanes, %s and %s", a, b)
	}
	dtype := dtypes.Promote(a.DType, b.DType)
	if dtype == dtypes.InvalidDType {
		return Invalid(), errors.Wrapf(ErrInvalidType, "no common dtype for %s and %s", a, b)
	}
	return Type{DType: dtype, Lanes: lanes}, nil
}
