// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/irmath/pkg/core/dtypes"
)

// Expr is any typed IR expression.
type Expr interface {
	// Type of the value the expression evaluates to.
	Type() Type

	fmt.Stringer
}

// Var is a named value, e.g. a kernel parameter or a loop variable.
type Var struct {
	Name string
	typ  Type
}

var _ Expr = (*Var)(nil)

// NewVar creates a variable of the given type.
func NewVar(name string, t Type) *Var {
	return &Var{Name: name, typ: t}
}

// Type implements Expr.
func (v *Var) Type() Type { return v.typ }

// String implements Expr.
func (v *Var) String() string { return v.Name }

// Constant is a literal scalar value. Its Type is derived from the Go type of the value.
type Constant struct {
	Value any
	typ   Type
}

var _ Expr = (*Constant)(nil)

// Const creates a scalar constant from a Go value (bool, ints, float16.Float16, bfloat16.BFloat16, float32, ...).
// Unsupported Go types yield a constant with an invalid Type.
func Const(value any) *Constant {
	return &Constant{Value: value, typ: Scalar(dtypes.FromAny(value))}
}

// Type implements Expr.
func (c *Constant) Type() Type { return c.typ }

// String implements Expr.
func (c *Constant) String() string { return fmt.Sprintf("%v", c.Value) }

// Cast converts Operand to Target using the target language's native conversion, e.g. `(float)x` in C.
type Cast struct {
	Operand Expr
	Target  Type
}

var _ Expr = (*Cast)(nil)

// Type implements Expr.
func (c *Cast) Type() Type { return c.Target }

// String implements Expr.
func (c *Cast) String() string { return fmt.Sprintf("(%s)(%s)", c.Target, c.Operand) }

// Symbol is a callable function referenced by a Call. It is implemented by primitives.Declaration.
type Symbol interface {
	// Name uniquely identifies the symbol.
	Name() string

	// CodegenName is the backend symbol the call lowers to. It returns false for generic
	// symbols, for which the backend chooses the concrete symbol.
	CodegenName() (string, bool)

	// IsGeneric returns whether the symbol is target-independent.
	IsGeneric() bool
}

// Call of a Symbol over operands, with the result type inferred when the call was created.
type Call struct {
	Func       Symbol
	Args       []Expr
	ResultType Type
}

var _ Expr = (*Call)(nil)

// NewCall creates a call expression. The args slice is copied.
func NewCall(fn Symbol, resultType Type, args ...Expr) *Call {
	return &Call{Func: fn, Args: slices.Clone(args), ResultType: resultType}
}

// Type implements Expr.
func (c *Call) Type() Type { return c.ResultType }

// String implements Expr.
func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for ii, arg := range c.Args {
		parts[ii] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", c.Func.Name(), strings.Join(parts, ", "))
}

// Types returns the types of the given expressions.
func Types(exprs ...Expr) []Type {
	types := make([]Type, len(exprs))
	for ii, e := range exprs {
		types[ii] = e.Type()
	}
	return types
}
