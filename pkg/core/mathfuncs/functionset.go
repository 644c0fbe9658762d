// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package mathfuncs resolves IR math operations (sin, exp, fma, make_vector, ...) into typed calls
// of primitive functions.
//
// A FunctionSet implements every math operation for one target, a (Device, DType) pair, or
// generically. The generic set (see Generic) is always available: each of its operations calls the
// primitive declaration "generic_<op>", registered during package initialization.
//
// Specializations for a target are registered with Register, usually in the init() of the package
// implementing them (see subpackages cuda and cpu). They declare in their Capabilities which
// operations they implement, and Resolve routes every other operation to the generic set.
//
// Registration happens during initialization. Seal checks that every generic operation has a
// declaration and freezes both the primitive functions and the specializations tables.
package mathfuncs

import (
	"maps"
	"slices"

	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/pkg/errors"
)

var (
	// ErrUnimplementedOperation is returned when a FunctionSet is invoked for an operation it doesn't
	// implement. It indicates a bug: the Capabilities of the set list an operation it doesn't
	// implement, or a set was used directly instead of through Resolve.
	ErrUnimplementedOperation = errors.New("math operation not implemented")

	// ErrDuplicateSpecialization is returned when registering a FunctionSet for a target that already has one.
	ErrDuplicateSpecialization = errors.New("math function set already registered for target")

	// ErrIncomplete is returned by CheckCompleteness when some operation has no generic declaration.
	ErrIncomplete = errors.New("generic math function declarations incomplete")
)

// FunctionSet implements the math operations for one target.
//
// Every operation returns the expression computing it. Operations either build a call of a
// primitive function (see primitives.Declaration.Call), or return an error.
type FunctionSet interface {
	// Name of the function set, used for logging and reporting.
	Name() string

	// Capabilities lists the operations the set implements.
	Capabilities() Capabilities

	// Cast converts x to the target type. The result is either UseNativeCast() -- the backend
	// should use the target language conversion, e.g. `(half)x` -- or Specialized(expr).
	Cast(x ir.Expr, target ir.Type) (CastResult, error)

	// MakeVector packs the items, all of the same scalar type, into a vector with one lane per item.
	MakeVector(items ...ir.Expr) (ir.Expr, error)

	// MakeVectorFromScalar packs lanes copies of scalar into a vector.
	MakeVectorFromScalar(scalar ir.Expr, lanes int) (ir.Expr, error)

	UnaryOps
	BinaryOps

	// Fma returns the fused multiply-add x*y+z.
	Fma(x, y, z ir.Expr) (ir.Expr, error)
}

// UnaryOps are the elementwise operations over one operand.
type UnaryOps interface {
	Sin(x ir.Expr) (ir.Expr, error)
	Cos(x ir.Expr) (ir.Expr, error)
	Tan(x ir.Expr) (ir.Expr, error)
	Sinh(x ir.Expr) (ir.Expr, error)
	Cosh(x ir.Expr) (ir.Expr, error)
	Tanh(x ir.Expr) (ir.Expr, error)
	Asin(x ir.Expr) (ir.Expr, error)
	Acos(x ir.Expr) (ir.Expr, error)
	Atan(x ir.Expr) (ir.Expr, error)
	Asinh(x ir.Expr) (ir.Expr, error)
	Acosh(x ir.Expr) (ir.Expr, error)
	Atanh(x ir.Expr) (ir.Expr, error)

	// Exp returns e^x.
	Exp(x ir.Expr) (ir.Expr, error)

	// Expm1 returns e^x - 1, precise for x close to 0.
	Expm1(x ir.Expr) (ir.Expr, error)

	// Erf is the Gauss error function.
	Erf(x ir.Expr) (ir.Expr, error)

	Sqrt(x ir.Expr) (ir.Expr, error)

	// Rsqrt returns 1/sqrt(x).
	Rsqrt(x ir.Expr) (ir.Expr, error)

	Log(x ir.Expr) (ir.Expr, error)
	Log2(x ir.Expr) (ir.Expr, error)
	Log10(x ir.Expr) (ir.Expr, error)

	// Log1p returns log(1+x), precise for x close to 0.
	Log1p(x ir.Expr) (ir.Expr, error)

	// Round to the nearest integral value.
	Round(x ir.Expr) (ir.Expr, error)
	Abs(x ir.Expr) (ir.Expr, error)
	Trunc(x ir.Expr) (ir.Expr, error)
	Ceil(x ir.Expr) (ir.Expr, error)
	Floor(x ir.Expr) (ir.Expr, error)

	// IsFinite, IsInf and IsNaN are predicates: their result is always boolean.
	IsFinite(x ir.Expr) (ir.Expr, error)
	IsInf(x ir.Expr) (ir.Expr, error)
	IsNaN(x ir.Expr) (ir.Expr, error)
}

// BinaryOps are the elementwise operations over two operands.
type BinaryOps interface {
	Min(x, y ir.Expr) (ir.Expr, error)
	Max(x, y ir.Expr) (ir.Expr, error)

	// Mod returns the remainder of x/y.
	Mod(x, y ir.Expr) (ir.Expr, error)

	// Pow returns x^y.
	Pow(x, y ir.Expr) (ir.Expr, error)

	// Atan2 returns the arc tangent of y/x, using the signs to determine the quadrant.
	Atan2(y, x ir.Expr) (ir.Expr, error)
}

// Capabilities holds what is implemented by a FunctionSet.
type Capabilities struct {
	// Operations implemented by the set.
	// If not listed, it's assumed to be false, hence not implemented.
	Operations map[OpType]bool
}

// CapabilitiesWith returns the Capabilities with the given operations.
func CapabilitiesWith(ops ...OpType) Capabilities {
	c := Capabilities{Operations: make(map[OpType]bool, len(ops))}
	for _, op := range ops {
		c.Operations[op] = true
	}
	return c
}

// Has returns whether op is implemented.
func (c Capabilities) Has(op OpType) bool {
	return c.Operations[op]
}

// Ops returns the implemented operations, sorted.
func (c Capabilities) Ops() []OpType {
	var ops []OpType
	for op, ok := range c.Operations {
		if ok {
			ops = append(ops, op)
		}
	}
	slices.Sort(ops)
	return ops
}

// Clone makes a deep copy of the Capabilities.
func (c Capabilities) Clone() Capabilities {
	var c2 Capabilities
	c2.Operations = make(map[OpType]bool, len(c.Operations))
	maps.Copy(c2.Operations, c.Operations)
	return c2
}

// CastKind enumerates the variants of CastResult.
type CastKind int

const (
	// CastNative means the backend should use the target language conversion.
	CastNative CastKind = iota

	// CastSpecialized means the cast is done by CastResult.Expr.
	CastSpecialized
)

// CastResult is the result of FunctionSet.Cast.
type CastResult struct {
	Kind CastKind

	// Expr is only set for CastSpecialized.
	Expr ir.Expr
}

// UseNativeCast returns the CastResult asking for the target language conversion.
func UseNativeCast() CastResult {
	return CastResult{Kind: CastNative}
}

// Specialized returns the CastResult for a cast implemented by expr.
func Specialized(expr ir.Expr) CastResult {
	return CastResult{Kind: CastSpecialized, Expr: expr}
}

// IsNative returns whether the backend should use the target language conversion.
func (r CastResult) IsNative() bool {
	return r.Kind == CastNative
}
