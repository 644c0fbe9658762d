// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package bfloat16

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversion(t *testing.T) {
	for _, v := range []float32{0, 1, -2, 0.5, 256} {
		assert.Equal(t, v, FromFloat32(v).Float32())
	}
	// Mantissa bits beyond the 7 kept are truncated.
	assert.Equal(t, float32(1), FromFloat32(1.001).Float32())
	assert.Equal(t, "-2", FromFloat32(-2).String())
}
