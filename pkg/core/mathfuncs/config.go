// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package mathfuncs

import (
	"os"
	"strings"

	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/pkg/errors"
)

// IRMATH_TARGET is the environment variable with the default target to resolve math operations for.
//
// The format is "<device>:<dtype>", e.g. "cuda:float16". See ParseTarget.
//
//goland:noinspection GoSnakeCaseUsage
const IRMATH_TARGET = "IRMATH_TARGET"

// DefaultTarget is the target used by ResolveDefault if IRMATH_TARGET is not set.
// If empty, ResolveDefault returns the generic set.
var DefaultTarget string

// ParseTarget parses a "<device>:<dtype>" configuration string, e.g. "cuda:f16" or "cpu:Float32".
// The dtype accepts any name or alias in dtypes.MapOfNames.
func ParseTarget(config string) (Target, error) {
	deviceName, dtypeName, found := strings.Cut(config, ":")
	if !found || deviceName == "" || dtypeName == "" {
		return Target{}, errors.Errorf("invalid math target %q, it must be formatted as \"<device>:<dtype>\"", config)
	}
	dtype, err := dtypes.FromName(dtypeName)
	if err != nil || !dtype.IsValid() {
		return Target{}, errors.Errorf("invalid dtype %q in math target %q", dtypeName, config)
	}
	return Target{Device: Device(strings.ToLower(deviceName)), DType: dtype}, nil
}

// ResolveDefault returns the FunctionSet for the configured target:
//
// 1. The environment variable IRMATH_TARGET is used if defined.
// 2. Next the variable DefaultTarget is used if defined.
// 3. Otherwise the generic set is returned.
//
// It returns an error only if the configuration can't be parsed.
func ResolveDefault() (FunctionSet, error) {
	config, found := os.LookupEnv(IRMATH_TARGET)
	if !found || config == "" {
		config = DefaultTarget
	}
	if config == "" {
		return Generic(), nil
	}
	target, err := ParseTarget(config)
	if err != nil {
		return nil, err
	}
	return Resolve(target.Device, target.DType), nil
}
