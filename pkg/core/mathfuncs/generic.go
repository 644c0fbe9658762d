// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package mathfuncs

import (
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/gomlx/irmath/pkg/core/primitives"
	"github.com/gomlx/irmath/pkg/core/primitives/typeinference"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// GenericPrefix is prepended to the PrimitiveName of an op to name its generic declaration.
const GenericPrefix = "generic_"

// GenericName returns the name of the generic primitive declaration of op, e.g. "generic_sin".
func GenericName(op OpType) string {
	return GenericPrefix + op.PrimitiveName()
}

// OpFromGenericName is the inverse of GenericName. It returns false if name is not the name of
// a generic declaration.
func OpFromGenericName(name string) (OpType, bool) {
	opName, found := strings.CutPrefix(name, GenericPrefix)
	if !found {
		return OpTypeInvalid, false
	}
	for _, op := range GenericOps() {
		if op.PrimitiveName() == opName {
			return op, true
		}
	}
	return OpTypeInvalid, false
}

// RuleFor returns the type-inference rule of op: typeinference.Bool for predicates,
// typeinference.MakeVector for OpTypeMakeVector and typeinference.Elementwise otherwise.
func RuleFor(op OpType) typeinference.Rule {
	switch {
	case op.IsPredicate():
		return typeinference.Bool
	case op == OpTypeMakeVector:
		return typeinference.MakeVector
	default:
		return typeinference.Elementwise
	}
}

// GenericSet is the FunctionSet that resolves every operation to its target-independent
// "generic_<op>" declaration. The backend chooses the concrete symbol of those calls.
type GenericSet struct {
	registry *primitives.Registry
}

var _ FunctionSet = (*GenericSet)(nil)

// NewGeneric registers the generic declarations of all operations in GenericOps into registry,
// and returns the GenericSet resolving calls to them.
//
// The declarations have no codegen name and are flagged generic. It fails if any of them is
// already registered.
func NewGeneric(registry *primitives.Registry) (*GenericSet, error) {
	for _, op := range GenericOps() {
		if _, err := registry.Register(GenericName(op), "", RuleFor(op), true); err != nil {
			return nil, errors.WithMessagef(err, "registering generic math function %s", op)
		}
	}
	return &GenericSet{registry: registry}, nil
}

var defaultGeneric *GenericSet

func init() {
	var err error
	defaultGeneric, err = NewGeneric(primitives.Default)
	if err != nil {
		exceptions.Panicf("mathfuncs: failed to register the generic math functions: %+v", err)
	}
	klog.V(1).Infof("mathfuncs: registered %d generic math functions", len(GenericOps()))
}

// Generic returns the process-wide generic FunctionSet, whose declarations are registered in
// primitives.Default.
func Generic() *GenericSet {
	return defaultGeneric
}

// Name implements FunctionSet.
func (g *GenericSet) Name() string { return "generic" }

// Capabilities implements FunctionSet: the generic set implements every operation.
func (g *GenericSet) Capabilities() Capabilities {
	var ops []OpType
	for _, op := range OpTypeValues() {
		if op != OpTypeInvalid {
			ops = append(ops, op)
		}
	}
	return CapabilitiesWith(ops...)
}

// call is the single path all generic operations go through: lookup of the op's declaration
// and creation of the typed call over args.
func (g *GenericSet) call(op OpType, args ...ir.Expr) (ir.Expr, error) {
	decl, err := g.registry.Lookup(GenericName(op))
	if err != nil {
		return nil, err
	}
	call, err := decl.Call(args...)
	if err != nil {
		return nil, err
	}
	return call, nil
}

// Cast implements FunctionSet: generically casts use the target language conversion.
func (g *GenericSet) Cast(x ir.Expr, target ir.Type) (CastResult, error) {
	return UseNativeCast(), nil
}

// MakeVector implements FunctionSet.
func (g *GenericSet) MakeVector(items ...ir.Expr) (ir.Expr, error) {
	return g.call(OpTypeMakeVector, items...)
}

// MakeVectorFromScalar implements FunctionSet, with a generic_make_vector over lanes copies of scalar.
func (g *GenericSet) MakeVectorFromScalar(scalar ir.Expr, lanes int) (ir.Expr, error) {
	if lanes < 1 {
		return nil, errors.Wrapf(typeinference.ErrArity, "make_vector_from_scalar(%s, %d) requires at least one lane", scalar, lanes)
	}
	items := make([]ir.Expr, lanes)
	for ii := range items {
		items[ii] = scalar
	}
	return g.call(OpTypeMakeVector, items...)
}

// Unary operations.

func (g *GenericSet) Sin(x ir.Expr) (ir.Expr, error)      { return g.call(OpTypeSin, x) }
func (g *GenericSet) Cos(x ir.Expr) (ir.Expr, error)      { return g.call(OpTypeCos, x) }
func (g *GenericSet) Tan(x ir.Expr) (ir.Expr, error)      { return g.call(OpTypeTan, x) }
func (g *GenericSet) Sinh(x ir.Expr) (ir.Expr, error)     { return g.call(OpTypeSinh, x) }
func (g *GenericSet) Cosh(x ir.Expr) (ir.Expr, error)     { return g.call(OpTypeCosh, x) }
func (g *GenericSet) Tanh(x ir.Expr) (ir.Expr, error)     { return g.call(OpTypeTanh, x) }
func (g *GenericSet) Asin(x ir.Expr) (ir.Expr, error)     { return g.call(OpTypeAsin, x) }
func (g *GenericSet) Acos(x ir.Expr) (ir.Expr, error)     { return g.call(OpTypeAcos, x) }
func (g *GenericSet) Atan(x ir.Expr) (ir.Expr, error)     { return g.call(OpTypeAtan, x) }
func (g *GenericSet) Asinh(x ir.Expr) (ir.Expr, error)    { return g.call(OpTypeAsinh, x) }
func (g *GenericSet) Acosh(x ir.Expr) (ir.Expr, error)    { return g.call(OpTypeAcosh, x) }
func (g *GenericSet) Atanh(x ir.Expr) (ir.Expr, error)    { return g.call(OpTypeAtanh, x) }
func (g *GenericSet) Exp(x ir.Expr) (ir.Expr, error)      { return g.call(OpTypeExp, x) }
func (g *GenericSet) Expm1(x ir.Expr) (ir.Expr, error)    { return g.call(OpTypeExpm1, x) }
func (g *GenericSet) Erf(x ir.Expr) (ir.Expr, error)      { return g.call(OpTypeErf, x) }
func (g *GenericSet) Sqrt(x ir.Expr) (ir.Expr, error)     { return g.call(OpTypeSqrt, x) }
func (g *GenericSet) Rsqrt(x ir.Expr) (ir.Expr, error)    { return g.call(OpTypeRsqrt, x) }
func (g *GenericSet) Log(x ir.Expr) (ir.Expr, error)      { return g.call(OpTypeLog, x) }
func (g *GenericSet) Log2(x ir.Expr) (ir.Expr, error)     { return g.call(OpTypeLog2, x) }
func (g *GenericSet) Log10(x ir.Expr) (ir.Expr, error)    { return g.call(OpTypeLog10, x) }
func (g *GenericSet) Log1p(x ir.Expr) (ir.Expr, error)    { return g.call(OpTypeLog1p, x) }
func (g *GenericSet) Round(x ir.Expr) (ir.Expr, error)    { return g.call(OpTypeRound, x) }
func (g *GenericSet) Abs(x ir.Expr) (ir.Expr, error)      { return g.call(OpTypeAbs, x) }
func (g *GenericSet) Trunc(x ir.Expr) (ir.Expr, error)    { return g.call(OpTypeTrunc, x) }
func (g *GenericSet) Ceil(x ir.Expr) (ir.Expr, error)     { return g.call(OpTypeCeil, x) }
func (g *GenericSet) Floor(x ir.Expr) (ir.Expr, error)    { return g.call(OpTypeFloor, x) }
func (g *GenericSet) IsFinite(x ir.Expr) (ir.Expr, error) { return g.call(OpTypeIsFinite, x) }
func (g *GenericSet) IsInf(x ir.Expr) (ir.Expr, error)    { return g.call(OpTypeIsInf, x) }
func (g *GenericSet) IsNaN(x ir.Expr) (ir.Expr, error)    { return g.call(OpTypeIsNaN, x) }

// Binary operations.

func (g *GenericSet) Min(x, y ir.Expr) (ir.Expr, error)   { return g.call(OpTypeMin, x, y) }
func (g *GenericSet) Max(x, y ir.Expr) (ir.Expr, error)   { return g.call(OpTypeMax, x, y) }
func (g *GenericSet) Mod(x, y ir.Expr) (ir.Expr, error)   { return g.call(OpTypeMod, x, y) }
func (g *GenericSet) Pow(x, y ir.Expr) (ir.Expr, error)   { return g.call(OpTypePow, x, y) }
func (g *GenericSet) Atan2(y, x ir.Expr) (ir.Expr, error) { return g.call(OpTypeAtan2, y, x) }

// Fma implements FunctionSet.
func (g *GenericSet) Fma(x, y, z ir.Expr) (ir.Expr, error) { return g.call(OpTypeFma, x, y, z) }
