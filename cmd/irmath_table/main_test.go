// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/mathfuncs"
	"github.com/gomlx/irmath/pkg/core/primitives"
	"github.com/gomlx/irmath/pkg/core/primitives/typeinference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplementedBy(t *testing.T) {
	cudaHalf := mathfuncs.Target{Device: mathfuncs.DeviceCUDA, DType: dtypes.Float16}
	assert.Equal(t, "cuda_float16", implementedBy(cudaHalf, mathfuncs.OpTypeSin))
	assert.Equal(t, "generic", implementedBy(cudaHalf, mathfuncs.OpTypeTan))

	cpuDouble := mathfuncs.Target{Device: mathfuncs.DeviceCPU, DType: dtypes.Float64}
	assert.Equal(t, "generic", implementedBy(cpuDouble, mathfuncs.OpTypeSin))
}

func TestReportTable(t *testing.T) {
	registry := primitives.NewRegistry()
	_, err := registry.Register(mathfuncs.GenericName(mathfuncs.OpTypeSin), "", typeinference.Elementwise, true)
	require.NoError(t, err)
	isMissing := missingGeneric(registry)
	assert.False(t, isMissing(mathfuncs.OpTypeSin))
	assert.True(t, isMissing(mathfuncs.OpTypeCos))
	// Cast never has a generic declaration.
	assert.False(t, isMissing(mathfuncs.OpTypeCast))

	table := newReportTable(isMissing)
	table.Headers("Operation")
	table.Add(mathfuncs.OpTypeSin, "sin")
	table.Add(mathfuncs.OpTypeCos, "cos")
	table.Add(mathfuncs.OpTypeCast, "cast")
	assert.Equal(t, 1, table.NumMissing())
	assert.True(t, table.isMissing(1))
	assert.False(t, table.isMissing(3))
	assert.Contains(t, table.Render(), "cos")

	assert.Zero(t, newReportTable(missingGeneric(primitives.Default)).NumMissing())
}

func TestUnlowerable(t *testing.T) {
	registry := primitives.NewRegistry()
	generic, err := registry.Register("generic_x", "", typeinference.Elementwise, true)
	require.NoError(t, err)
	specialized, err := registry.Register("spec_x", "xf", typeinference.Elementwise, false)
	require.NoError(t, err)
	noSymbol, err := registry.Register("nosym_x", "", typeinference.Elementwise, false)
	require.NoError(t, err)
	assert.False(t, unlowerable(generic))
	assert.False(t, unlowerable(specialized))
	assert.True(t, unlowerable(noSymbol))
}

func TestSelectedTargets(t *testing.T) {
	targets, err := selectedTargets("")
	require.NoError(t, err)
	assert.Equal(t, mathfuncs.DefaultSpecializations.Targets(), targets)

	targets, err = selectedTargets("cuda:f16")
	require.NoError(t, err)
	assert.Equal(t, []mathfuncs.Target{{Device: mathfuncs.DeviceCUDA, DType: dtypes.Float16}}, targets)

	_, err = selectedTargets("cuda:float33")
	require.Error(t, err)
}
