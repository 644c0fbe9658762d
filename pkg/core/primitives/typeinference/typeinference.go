// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package typeinference calculates the result type of primitive function calls from the types of
// their operands.
//
// Each rule is a Rule: a pure function over the list of operand types. The rules here are the ones
// used by the generic math primitives:
//
//   - Elementwise: the common type of all operands, folding ir.PromoteTypes left-to-right.
//   - Bool: always the scalar boolean type, used by predicates (isfinite, isinf, isnan).
//   - MakeVector: packs n operands of the same scalar type into an n-lanes vector.
package typeinference

import (
	"strings"

	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/pkg/errors"
)

var (
	// ErrArity is returned when a rule is invoked with a number of operands it doesn't accept.
	// It indicates a bug in the caller.
	ErrArity = errors.New("invalid number of operands")

	// ErrHeterogeneousVector is returned when a vector is built from operands of different types.
	ErrHeterogeneousVector = errors.New("vector operands must all have the same type")
)

// Rule maps the operand types of a call to its result type.
type Rule func(argTypes []ir.Type) (ir.Type, error)

// Elementwise returns the promoted common type of all operands.
//
// It requires at least one operand.
func Elementwise(argTypes []ir.Type) (ir.Type, error) {
	if len(argTypes) == 0 {
		return ir.Invalid(), errors.Wrap(ErrArity, "elementwise type inference requires at least one operand")
	}
	result := argTypes[0]
	for ii, t := range argTypes[1:] {
		var err error
		result, err = ir.PromoteTypes(result, t)
		if err != nil {
			return ir.Invalid(), errors.WithMessagef(err, "elementwise type inference, operand #%d", ii+1)
		}
	}
	if !result.Ok() {
		return ir.Invalid(), errors.Wrapf(ir.ErrInvalidType, "elementwise type inference got operand type %s", result)
	}
	return result, nil
}

// Bool ignores the operand types and always returns the scalar boolean type.
func Bool(_ []ir.Type) (ir.Type, error) {
	return ir.BoolType, nil
}

// Fixed returns a Rule that ignores the operand types and always returns t.
// Used by conversion primitives, whose result type is their target type.
func Fixed(t ir.Type) Rule {
	return func(_ []ir.Type) (ir.Type, error) {
		return t, nil
	}
}

// MakeVector returns the vector type with one lane per operand.
//
// All operands must have the same scalar type, otherwise it returns ErrHeterogeneousVector
// listing the operand types.
func MakeVector(argTypes []ir.Type) (ir.Type, error) {
	if len(argTypes) == 0 {
		return ir.Invalid(), errors.Wrap(ErrArity, "make_vector requires at least one operand")
	}
	first := argTypes[0]
	for _, t := range argTypes[1:] {
		if t != first {
			return ir.Invalid(), errors.Wrapf(ErrHeterogeneousVector, "make_vector got operands of types (%s)", joinTypes(argTypes))
		}
	}
	result, err := ir.Vectorize(first, len(argTypes))
	if err != nil {
		return ir.Invalid(), errors.WithMessage(err, "make_vector")
	}
	return result, nil
}

func joinTypes(types []ir.Type) string {
	parts := make([]string, len(types))
	for ii, t := range types {
		parts[ii] = t.String()
	}
	return strings.Join(parts, ", ")
}
