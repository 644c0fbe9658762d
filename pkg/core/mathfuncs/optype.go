// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package mathfuncs

import "strings"

// OpType is an enum of all math operations a FunctionSet implements.
type OpType int

//go:generate go tool enumer -type=OpType -trimprefix=OpType -output=gen_optype_enumer.go optype.go

const (
	OpTypeInvalid OpType = iota

	// Structural operations.
	OpTypeCast
	OpTypeMakeVector
	OpTypeMakeVectorFromScalar

	// Unary operations.
	OpTypeSin
	OpTypeCos
	OpTypeTan
	OpTypeSinh
	OpTypeCosh
	OpTypeTanh
	OpTypeAsin
	OpTypeAcos
	OpTypeAtan
	OpTypeAsinh
	OpTypeAcosh
	OpTypeAtanh
	OpTypeExp
	OpTypeExpm1
	OpTypeErf
	OpTypeSqrt
	OpTypeRsqrt
	OpTypeLog
	OpTypeLog2
	OpTypeLog10
	OpTypeLog1p
	OpTypeRound
	OpTypeAbs
	OpTypeTrunc
	OpTypeCeil
	OpTypeFloor
	OpTypeIsFinite
	OpTypeIsInf
	OpTypeIsNaN

	// Binary operations.
	OpTypeMin
	OpTypeMax
	OpTypeMod
	OpTypePow
	OpTypeAtan2

	// Ternary operations.
	OpTypeFma
)

// PrimitiveName is the lower-case name used to build primitive function names, e.g. "sin", "isfinite"
// or "make_vector".
func (op OpType) PrimitiveName() string {
	switch op {
	case OpTypeMakeVector:
		return "make_vector"
	case OpTypeMakeVectorFromScalar:
		return "make_vector_from_scalar"
	}
	return strings.ToLower(op.String())
}

// Arity returns the number of operands of the op, or -1 for the variadic OpTypeMakeVector.
// Structural ops other than OpTypeMakeVector return 0.
func (op OpType) Arity() int {
	switch {
	case op == OpTypeMakeVector:
		return -1
	case op >= OpTypeSin && op <= OpTypeIsNaN:
		return 1
	case op >= OpTypeMin && op <= OpTypeAtan2:
		return 2
	case op == OpTypeFma:
		return 3
	}
	return 0
}

// IsPredicate returns whether the op returns a boolean regardless of its operand types.
func (op OpType) IsPredicate() bool {
	return op == OpTypeIsFinite || op == OpTypeIsInf || op == OpTypeIsNaN
}

// GenericOps lists the operations resolved through a generic_<op> primitive declaration:
// all except OpTypeCast (the native cast needs no primitive) and OpTypeMakeVectorFromScalar
// (built on generic_make_vector).
func GenericOps() []OpType {
	var ops []OpType
	for _, op := range OpTypeValues() {
		if op == OpTypeInvalid || op == OpTypeCast || op == OpTypeMakeVectorFromScalar {
			continue
		}
		ops = append(ops, op)
	}
	return ops
}
