// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package notimplemented

import (
	"testing"

	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/gomlx/irmath/pkg/core/mathfuncs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFunctionSet(t *testing.T) {
	var fs FunctionSet
	x := ir.NewVar("x", ir.Scalar(dtypes.Float32))

	_, err := fs.Sin(x)
	require.ErrorIs(t, err, ErrUnimplementedOperation)
	require.ErrorContains(t, err, "Sin")
	_, err = fs.Atan2(x, x)
	require.ErrorIs(t, err, mathfuncs.ErrUnimplementedOperation)
	_, err = fs.Fma(x, x, x)
	require.ErrorIs(t, err, mathfuncs.ErrUnimplementedOperation)
	_, err = fs.MakeVector(x, x)
	require.ErrorIs(t, err, mathfuncs.ErrUnimplementedOperation)
	_, err = fs.MakeVectorFromScalar(x, 4)
	require.ErrorIs(t, err, mathfuncs.ErrUnimplementedOperation)

	res, err := fs.Cast(x, ir.Scalar(dtypes.Float16))
	require.NoError(t, err)
	require.True(t, res.IsNative())
	require.Empty(t, fs.Capabilities().Ops())
}

func TestErrFn(t *testing.T) {
	custom := errors.New("custom")
	var gotOp mathfuncs.OpType
	fs := FunctionSet{ErrFn: func(op mathfuncs.OpType) error {
		gotOp = op
		return custom
	}}
	x := ir.NewVar("x", ir.Scalar(dtypes.Float32))
	_, err := fs.IsNaN(x)
	require.ErrorIs(t, err, custom)
	require.Equal(t, mathfuncs.OpTypeIsNaN, gotOp)
}
