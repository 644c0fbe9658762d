// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package mathfuncs_test

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/ir"
	. "github.com/gomlx/irmath/pkg/core/mathfuncs"
	"github.com/gomlx/irmath/pkg/core/mathfuncs/notimplemented"
	"github.com/gomlx/irmath/pkg/core/primitives"
	"github.com/gomlx/irmath/pkg/core/primitives/typeinference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	F16 = ir.Scalar(dtypes.Float16)
	F32 = ir.Scalar(dtypes.Float32)
	F64 = ir.Scalar(dtypes.Float64)
)

func TestOpType(t *testing.T) {
	assert.Equal(t, "Sin", OpTypeSin.String())
	assert.Equal(t, "isfinite", OpTypeIsFinite.PrimitiveName())
	assert.Equal(t, "make_vector_from_scalar", OpTypeMakeVectorFromScalar.PrimitiveName())
	op, err := OpTypeString("Atan2")
	require.NoError(t, err)
	assert.Equal(t, OpTypeAtan2, op)
	_, err = OpTypeString("Sine")
	require.Error(t, err)

	assert.Equal(t, 1, OpTypeErf.Arity())
	assert.Equal(t, 2, OpTypeAtan2.Arity())
	assert.Equal(t, 3, OpTypeFma.Arity())
	assert.Equal(t, -1, OpTypeMakeVector.Arity())
	assert.True(t, OpTypeIsNaN.IsPredicate())
	assert.False(t, OpTypeAbs.IsPredicate())

	ops := GenericOps()
	assert.Contains(t, ops, OpTypeMakeVector)
	assert.NotContains(t, ops, OpTypeCast)
	assert.NotContains(t, ops, OpTypeMakeVectorFromScalar)
	assert.Len(t, ops, len(OpTypeValues())-3)
}

func TestGenericNames(t *testing.T) {
	for _, op := range GenericOps() {
		name := GenericName(op)
		got, ok := OpFromGenericName(name)
		require.Truef(t, ok, "name %q", name)
		require.Equal(t, op, got)
	}
	assert.Equal(t, "generic_make_vector", GenericName(OpTypeMakeVector))
	_, ok := OpFromGenericName("generic_sine")
	assert.False(t, ok)
	_, ok = OpFromGenericName("cuda_f16_sin")
	assert.False(t, ok)
}

func TestGeneric(t *testing.T) {
	g := Generic()
	x := ir.NewVar("x", F32)

	t.Run("Sin", func(t *testing.T) {
		e, err := g.Sin(x)
		require.NoError(t, err)
		call := e.(*ir.Call)
		assert.Equal(t, "generic_sin", call.Func.Name())
		assert.True(t, call.Func.IsGeneric())
		_, hasCodegen := call.Func.CodegenName()
		assert.False(t, hasCodegen)
		assert.Equal(t, F32, e.Type())
		assert.Equal(t, "generic_sin(x)", e.String())
	})

	t.Run("Promotion", func(t *testing.T) {
		e, err := g.Pow(ir.NewVar("h", F16), ir.NewVar("d", F64))
		require.NoError(t, err)
		assert.Equal(t, F64, e.Type())

		e, err = g.Fma(ir.Const(int32(1)), x, ir.Const(int8(2)))
		require.NoError(t, err)
		assert.Equal(t, F32, e.Type())
	})

	t.Run("Predicates", func(t *testing.T) {
		for _, fn := range []func(ir.Expr) (ir.Expr, error){g.IsFinite, g.IsInf, g.IsNaN} {
			e, err := fn(ir.NewVar("h", F16))
			require.NoError(t, err)
			assert.Equal(t, ir.BoolType, e.Type())
		}
	})

	t.Run("MakeVector", func(t *testing.T) {
		a, b := ir.NewVar("a", F16), ir.NewVar("b", F16)
		e, err := g.MakeVector(a, b)
		require.NoError(t, err)
		assert.Equal(t, "generic_make_vector(a, b)", e.String())
		assert.Equal(t, ir.Type{DType: dtypes.Float16, Lanes: 2}, e.Type())
		assert.Equal(t, "Float16x2", e.Type().String())

		_, err = g.MakeVector(a, x)
		require.ErrorIs(t, err, typeinference.ErrHeterogeneousVector)
		require.ErrorContains(t, err, "Float16, Float32")

		_, err = g.MakeVector()
		require.ErrorIs(t, err, typeinference.ErrArity)
	})

	t.Run("MakeVectorFromScalar", func(t *testing.T) {
		e, err := g.MakeVectorFromScalar(x, 4)
		require.NoError(t, err)
		assert.Equal(t, "generic_make_vector(x, x, x, x)", e.String())
		assert.Equal(t, ir.Type{DType: dtypes.Float32, Lanes: 4}, e.Type())

		_, err = g.MakeVectorFromScalar(x, 0)
		require.ErrorIs(t, err, typeinference.ErrArity)
	})

	t.Run("Cast", func(t *testing.T) {
		res, err := g.Cast(x, F16)
		require.NoError(t, err)
		assert.True(t, res.IsNative())
		assert.Nil(t, res.Expr)
	})

	t.Run("Capabilities", func(t *testing.T) {
		c := g.Capabilities()
		for _, op := range OpTypeValues() {
			assert.Equal(t, op != OpTypeInvalid, c.Has(op), "op %s", op)
		}
	})
}

func TestNewGenericDuplicate(t *testing.T) {
	registry := primitives.NewRegistry()
	_, err := NewGeneric(registry)
	require.NoError(t, err)
	require.NoError(t, CheckCompleteness(registry))
	_, err = NewGeneric(registry)
	require.ErrorIs(t, err, primitives.ErrDuplicateDeclaration)
}

func TestCheckCompleteness(t *testing.T) {
	registry := primitives.NewRegistry()
	_, err := registry.Register("generic_sin", "", typeinference.Elementwise, true)
	require.NoError(t, err)
	err = CheckCompleteness(registry)
	require.ErrorIs(t, err, ErrIncomplete)
	require.ErrorContains(t, err, "generic_cos")
	require.NotContains(t, err.Error(), "generic_sin,")

	require.NoError(t, CheckCompleteness(primitives.Default))
}

// sinOnly is a specialization implementing only Sin.
type sinOnly struct {
	notimplemented.FunctionSet
	decl *primitives.Declaration
}

func (s *sinOnly) Name() string               { return "sin_only" }
func (s *sinOnly) Capabilities() Capabilities { return CapabilitiesWith(OpTypeSin) }
func (s *sinOnly) Sin(x ir.Expr) (ir.Expr, error) {
	return s.decl.Call(x)
}

func newSinOnly(t *testing.T) *sinOnly {
	decl, err := primitives.NewRegistry().Register("test_sin", "test_sinf", typeinference.Elementwise, false)
	require.NoError(t, err)
	return &sinOnly{decl: decl}
}

func TestRoute(t *testing.T) {
	fs := Route(newSinOnly(t), Generic())
	x := ir.NewVar("x", F32)

	e, err := fs.Sin(x)
	require.NoError(t, err)
	assert.Equal(t, "test_sin(x)", e.String())

	e, err = fs.Cos(x)
	require.NoError(t, err)
	assert.Equal(t, "generic_cos(x)", e.String())

	e, err = fs.MakeVectorFromScalar(x, 2)
	require.NoError(t, err)
	assert.Equal(t, "generic_make_vector(x, x)", e.String())

	assert.Equal(t, "sin_only+generic", fs.Name())
	assert.True(t, fs.Capabilities().Has(OpTypeFma))

	// Used directly, the specialization fails on what it doesn't implement.
	_, err = newSinOnly(t).Cos(x)
	require.ErrorIs(t, err, ErrUnimplementedOperation)
}

func TestSpecializationRegistry(t *testing.T) {
	r := NewSpecializationRegistry()
	_, found := r.Lookup(DeviceCUDA, dtypes.Float16)
	require.False(t, found)
	assert.Equal(t, Generic(), r.Resolve(DeviceCUDA, dtypes.Float16))

	first := newSinOnly(t)
	require.NoError(t, r.Register(DeviceCUDA, dtypes.Float16, first))
	second := &notimplemented.FunctionSet{}
	err := r.Register(DeviceCUDA, dtypes.Float16, second)
	require.ErrorIs(t, err, ErrDuplicateSpecialization)

	fs, found := r.Lookup(DeviceCUDA, dtypes.Float16)
	require.True(t, found)
	assert.Same(t, first, fs)

	// Other targets are independent.
	_, found = r.Lookup(DeviceCPU, dtypes.Float16)
	assert.False(t, found)
	_, found = r.Lookup(DeviceCUDA, dtypes.Float32)
	assert.False(t, found)

	require.NoError(t, r.Register(DeviceCPU, dtypes.Float64, second))
	assert.Equal(t, []Target{
		{Device: DeviceCPU, DType: dtypes.Float64},
		{Device: DeviceCUDA, DType: dtypes.Float16},
	}, r.Targets())

	e, err := r.Resolve(DeviceCUDA, dtypes.Float16).Sin(ir.NewVar("h", F16))
	require.NoError(t, err)
	assert.Equal(t, "test_sin(h)", e.String())

	require.Error(t, r.Register("", dtypes.Float32, second))
	require.Error(t, r.Register(DeviceCPU, dtypes.InvalidDType, second))
	require.Error(t, r.Register(DeviceCPU, dtypes.Float32, nil))

	r.Seal()
	require.True(t, r.IsSealed())
	err = r.Register(DeviceCPU, dtypes.Float32, second)
	require.ErrorIs(t, err, primitives.ErrSealed)
	_, found = r.Lookup(DeviceCUDA, dtypes.Float16)
	assert.True(t, found)
}

func TestMustRegister(t *testing.T) {
	device := Device("must_register_test")
	first := newSinOnly(t)
	MustRegister(device, dtypes.Float32, first)
	err := exceptions.TryCatch[error](func() {
		MustRegister(device, dtypes.Float32, &notimplemented.FunctionSet{})
	})
	require.Error(t, err)
	require.ErrorContains(t, err, "already has")
	fs, found := Lookup(device, dtypes.Float32)
	require.True(t, found)
	assert.Same(t, first, fs)
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget("cuda:f16")
	require.NoError(t, err)
	assert.Equal(t, Target{Device: DeviceCUDA, DType: dtypes.Float16}, target)
	assert.Equal(t, "cuda:Float16", target.String())

	target, err = ParseTarget("CPU:Float32")
	require.NoError(t, err)
	assert.Equal(t, Target{Device: DeviceCPU, DType: dtypes.Float32}, target)

	for _, config := range []string{"", "cuda", "cuda:", ":f16", "cuda:float33", "cuda:invalid"} {
		_, err = ParseTarget(config)
		require.Errorf(t, err, "config %q", config)
	}
}

func TestResolveDefault(t *testing.T) {
	t.Setenv(IRMATH_TARGET, "")
	fs, err := ResolveDefault()
	require.NoError(t, err)
	assert.Equal(t, Generic(), fs)

	t.Setenv(IRMATH_TARGET, "not a target")
	_, err = ResolveDefault()
	require.Error(t, err)

	// No specialization registered in this package for cpu:float64.
	t.Setenv(IRMATH_TARGET, "cpu:f64")
	fs, err = ResolveDefault()
	require.NoError(t, err)
	assert.Equal(t, Generic(), fs)
}
