// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package codegen maps primitive function calls to the symbols a backend emits for them.
//
// Specialized declarations carry their own symbol, their codegen name. Generic declarations don't,
// and SymbolName picks the default symbol of the device for the operand type: the C99 libm function
// on CPU (sinf for float32, sin for float64) and the CUDA math API on CUDA (hsin for half, h2sin
// for half2).
package codegen

import (
	"fmt"
	"maps"
	"strings"

	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/gomlx/irmath/pkg/core/mathfuncs"
	"github.com/pkg/errors"
)

// ErrNoSymbol is returned when a call has no symbol for the device and operand type. The backend
// should then expand the operation itself, or cast the operands to a type that has one.
var ErrNoSymbol = errors.New("no symbol for primitive function call")

// libmNames are the C99 math.h names of the double precision functions.
var libmNames = map[mathfuncs.OpType]string{
	mathfuncs.OpTypeSin:      "sin",
	mathfuncs.OpTypeCos:      "cos",
	mathfuncs.OpTypeTan:      "tan",
	mathfuncs.OpTypeSinh:     "sinh",
	mathfuncs.OpTypeCosh:     "cosh",
	mathfuncs.OpTypeTanh:     "tanh",
	mathfuncs.OpTypeAsin:     "asin",
	mathfuncs.OpTypeAcos:     "acos",
	mathfuncs.OpTypeAtan:     "atan",
	mathfuncs.OpTypeAsinh:    "asinh",
	mathfuncs.OpTypeAcosh:    "acosh",
	mathfuncs.OpTypeAtanh:    "atanh",
	mathfuncs.OpTypeExp:      "exp",
	mathfuncs.OpTypeExpm1:    "expm1",
	mathfuncs.OpTypeErf:      "erf",
	mathfuncs.OpTypeSqrt:     "sqrt",
	mathfuncs.OpTypeLog:      "log",
	mathfuncs.OpTypeLog2:     "log2",
	mathfuncs.OpTypeLog10:    "log10",
	mathfuncs.OpTypeLog1p:    "log1p",
	mathfuncs.OpTypeRound:    "round",
	mathfuncs.OpTypeAbs:      "fabs",
	mathfuncs.OpTypeTrunc:    "trunc",
	mathfuncs.OpTypeCeil:     "ceil",
	mathfuncs.OpTypeFloor:    "floor",
	mathfuncs.OpTypeIsFinite: "isfinite",
	mathfuncs.OpTypeIsInf:    "isinf",
	mathfuncs.OpTypeIsNaN:    "isnan",
	mathfuncs.OpTypeMin:      "fmin",
	mathfuncs.OpTypeMax:      "fmax",
	mathfuncs.OpTypeMod:      "fmod",
	mathfuncs.OpTypePow:      "pow",
	mathfuncs.OpTypeAtan2:    "atan2",
	mathfuncs.OpTypeFma:      "fma",
}

// cudaHalfNames are the cuda_fp16.h names of the half precision functions. The half2 version
// is derived by halfToHalf2, except for the predicates, whose half2 versions return a half2 mask.
var cudaHalfNames = map[mathfuncs.OpType]string{
	mathfuncs.OpTypeSin:   "hsin",
	mathfuncs.OpTypeCos:   "hcos",
	mathfuncs.OpTypeExp:   "hexp",
	mathfuncs.OpTypeSqrt:  "hsqrt",
	mathfuncs.OpTypeRsqrt: "hrsqrt",
	mathfuncs.OpTypeLog:   "hlog",
	mathfuncs.OpTypeLog2:  "hlog2",
	mathfuncs.OpTypeLog10: "hlog10",
	mathfuncs.OpTypeRound: "hrint",
	mathfuncs.OpTypeAbs:   "__habs",
	mathfuncs.OpTypeTrunc: "htrunc",
	mathfuncs.OpTypeCeil:  "hceil",
	mathfuncs.OpTypeFloor: "hfloor",
	mathfuncs.OpTypeIsInf: "__hisinf",
	mathfuncs.OpTypeIsNaN: "__hisnan",
	mathfuncs.OpTypeMin:   "__hmin",
	mathfuncs.OpTypeMax:   "__hmax",
	mathfuncs.OpTypeFma:   "__hfma",
}

// CUDAHalfSymbols returns the cuda_fp16.h symbols of the operations over scalar half operands.
// The returned map is a copy.
func CUDAHalfSymbols() map[mathfuncs.OpType]string {
	return maps.Clone(cudaHalfNames)
}

// halfToHalf2 converts "hsin" to "h2sin" and "__hfma" to "__hfma2".
func halfToHalf2(name string) string {
	if strings.HasPrefix(name, "__") {
		return name + "2"
	}
	return "h2" + strings.TrimPrefix(name, "h")
}

// SymbolName returns the symbol the backend for device should emit for call.
//
// Calls of specialized declarations use their codegen name, regardless of the device. Calls of
// generic declarations use the device default symbol for the type of their first operand. It
// returns ErrNoSymbol if there is none.
func SymbolName(call *ir.Call, device mathfuncs.Device) (string, error) {
	if name, found := call.Func.CodegenName(); found {
		return name, nil
	}
	if !call.Func.IsGeneric() {
		return "", errors.Wrapf(ErrNoSymbol, "%s is neither generic nor has a codegen name", call.Func.Name())
	}
	op, found := mathfuncs.OpFromGenericName(call.Func.Name())
	if !found {
		return "", errors.Wrapf(ErrNoSymbol, "%s is not a generic math function", call.Func.Name())
	}
	if len(call.Args) == 0 {
		return "", errors.Wrapf(ErrNoSymbol, "%s called without operands", call.Func.Name())
	}
	operandType := call.Args[0].Type()

	var name string
	switch device {
	case mathfuncs.DeviceCPU:
		name = cpuSymbol(op, operandType, call.ResultType)
	case mathfuncs.DeviceCUDA:
		name = cudaSymbol(op, operandType, call.ResultType)
	default:
		return "", errors.Wrapf(ErrNoSymbol, "unknown device %q", device)
	}
	if name == "" {
		return "", errors.Wrapf(ErrNoSymbol, "%s(%s) on %s", call.Func.Name(), operandType, device)
	}
	return name, nil
}

// libmSymbol returns the libm function name for scalar float32 and float64 operands.
func libmSymbol(op mathfuncs.OpType, operand ir.Type) string {
	name, found := libmNames[op]
	if !found || !operand.IsScalar() {
		return ""
	}
	switch {
	case op.IsPredicate():
		// Type-generic macros.
		return name
	case operand.DType == dtypes.Float64:
		return name
	case operand.DType == dtypes.Float32:
		return name + "f"
	}
	return ""
}

func cpuSymbol(op mathfuncs.OpType, operand, _ ir.Type) string {
	return libmSymbol(op, operand)
}

func cudaSymbol(op mathfuncs.OpType, operand, result ir.Type) string {
	if op == mathfuncs.OpTypeMakeVector {
		return cudaMakeVector(result)
	}
	if operand.DType == dtypes.Float16 {
		name, found := cudaHalfNames[op]
		switch {
		case !found:
			return ""
		case operand.IsScalar():
			return name
		case operand.Lanes == 2 && !op.IsPredicate():
			return halfToHalf2(name)
		}
		return ""
	}
	if op == mathfuncs.OpTypeRsqrt && operand.IsScalar() {
		switch operand.DType {
		case dtypes.Float32:
			return "rsqrtf"
		case dtypes.Float64:
			return "rsqrt"
		}
	}
	return libmSymbol(op, operand)
}

// cudaMakeVector returns the CUDA vector constructor for the result type, e.g. make_float4.
func cudaMakeVector(result ir.Type) string {
	if result.DType == dtypes.Float16 {
		if result.Lanes == 2 {
			return "__halves2half2"
		}
		return ""
	}
	if result.Lanes < 1 || result.Lanes > 4 {
		return ""
	}
	var base string
	switch result.DType {
	case dtypes.Float32:
		base = "float"
	case dtypes.Float64:
		base = "double"
	case dtypes.Int32:
		base = "int"
	case dtypes.Uint32:
		base = "uint"
	case dtypes.Int64:
		base = "longlong"
	default:
		return ""
	}
	return fmt.Sprintf("make_%s%d", base, result.Lanes)
}
