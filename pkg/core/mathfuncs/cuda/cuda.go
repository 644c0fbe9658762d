// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package cuda registers the math function sets specialized for CUDA devices:
//
//   - Float16: the half precision intrinsics of cuda_fp16.h (hsin, __hfma, __halves2half2, ...).
//   - Float32: the fast-math single precision intrinsics (__sinf, __expf, __fmaf_rn, ...).
//
// Import it for its side effect of registering the specializations:
//
//	import _ "github.com/gomlx/irmath/pkg/core/mathfuncs/cuda"
package cuda

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/mathfuncs"
	"github.com/gomlx/irmath/pkg/core/primitives"
)

func init() {
	f16, err := NewFloat16(primitives.Default)
	if err != nil {
		exceptions.Panicf("cuda: failed to declare the float16 math functions: %+v", err)
	}
	mathfuncs.MustRegister(mathfuncs.DeviceCUDA, dtypes.Float16, f16)

	f32, err := NewFloat32(primitives.Default)
	if err != nil {
		exceptions.Panicf("cuda: failed to declare the float32 math functions: %+v", err)
	}
	mathfuncs.MustRegister(mathfuncs.DeviceCUDA, dtypes.Float32, f32)
}
