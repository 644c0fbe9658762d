// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package mathfuncs

import (
	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/gomlx/irmath/pkg/core/primitives"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Intrinsics holds the primitive declarations of a specialized FunctionSet, one per operation it
// implements, each lowering to a backend symbol (its codegen name).
//
// Specializations use it to implement their operations uniformly: RegisterIntrinsics declares
// "<prefix>_<op>" for each op, and Call builds the typed call for an op.
type Intrinsics struct {
	prefix string
	dtype  dtypes.DType
	decls  map[OpType]*primitives.Declaration
}

// RegisterIntrinsics registers in registry one non-generic declaration per entry of codegenNames,
// named "<prefix>_<op>" and using the same type-inference rule as the generic op (see RuleFor).
// The intrinsics take operands of the given dtype.
//
// Structural ops (OpTypeCast, OpTypeMakeVectorFromScalar) can't be registered this way.
func RegisterIntrinsics(registry *primitives.Registry, prefix string, dtype dtypes.DType, codegenNames map[OpType]string) (*Intrinsics, error) {
	in := &Intrinsics{prefix: prefix, dtype: dtype, decls: make(map[OpType]*primitives.Declaration, len(codegenNames))}
	// Register in op order, so failures are deterministic.
	for _, op := range GenericOps() {
		codegenName, found := codegenNames[op]
		if !found {
			continue
		}
		if codegenName == "" {
			return nil, errors.Errorf("intrinsic %s for %q registered without a codegen name", op, prefix)
		}
		decl, err := registry.Register(in.Name(op), codegenName, RuleFor(op), false)
		if err != nil {
			return nil, err
		}
		in.decls[op] = decl
	}
	if len(in.decls) != len(codegenNames) {
		return nil, errors.Errorf("intrinsics for %q include operations that can't be declared as primitives", prefix)
	}
	return in, nil
}

// Name of the declaration of op, "<prefix>_<op>".
func (in *Intrinsics) Name(op OpType) string {
	return in.prefix + "_" + op.PrimitiveName()
}

// DType of the operands the intrinsics take.
func (in *Intrinsics) DType() dtypes.DType {
	return in.dtype
}

// Has returns whether op has a declaration.
func (in *Intrinsics) Has(op OpType) bool {
	_, found := in.decls[op]
	return found
}

// Ops returns the Capabilities covered by the intrinsics.
func (in *Intrinsics) Ops() Capabilities {
	c := Capabilities{Operations: make(map[OpType]bool, len(in.decls))}
	for op := range in.decls {
		c.Operations[op] = true
	}
	return c
}

// Call builds the call of the intrinsic of op over args.
//
// If any operand is not a scalar of the intrinsics dtype, the intrinsic doesn't apply and the generic
// declaration of op is used instead. It returns ErrUnimplementedOperation if op has no intrinsic.
func (in *Intrinsics) Call(op OpType, args ...ir.Expr) (ir.Expr, error) {
	decl, found := in.decls[op]
	if !found {
		return nil, errors.Wrapf(ErrUnimplementedOperation, "%s has no %s intrinsic", in.prefix, op)
	}
	for _, arg := range args {
		if arg.Type() != ir.Scalar(in.dtype) {
			klog.V(2).Infof("mathfuncs: %s operand %s is not %s, using %s", in.Name(op), arg, in.dtype, GenericName(op))
			return Generic().call(op, args...)
		}
	}
	call, err := decl.Call(args...)
	if err != nil {
		return nil, err
	}
	return call, nil
}
