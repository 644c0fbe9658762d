// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package mathfuncs

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/irmath/pkg/core/dtypes"
	"github.com/gomlx/irmath/pkg/core/primitives"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Device identifies the kind of device a FunctionSet generates code for.
type Device string

const (
	DeviceCPU  Device = "cpu"
	DeviceCUDA Device = "cuda"
)

// Target is the key of a specialization: a device and the scalar type it specializes.
type Target struct {
	Device Device
	DType  dtypes.DType
}

// String implements fmt.Stringer, in the same "<device>:<dtype>" format accepted by ParseTarget.
func (t Target) String() string {
	return fmt.Sprintf("%s:%s", t.Device, t.DType)
}

// SpecializationRegistry maps a Target to the FunctionSet specialized for it.
//
// It is append-only: registration is expected during initialization, and after Seal it
// is read-only. Its methods are safe for concurrent use.
type SpecializationRegistry struct {
	mu     sync.RWMutex
	sets   map[Target]FunctionSet
	sealed bool
}

// NewSpecializationRegistry returns an empty SpecializationRegistry.
func NewSpecializationRegistry() *SpecializationRegistry {
	return &SpecializationRegistry{sets: make(map[Target]FunctionSet)}
}

// DefaultSpecializations is the process-wide registry used by Register, Lookup and Resolve.
var DefaultSpecializations = NewSpecializationRegistry()

// Register fs as the specialization for (device, dtype).
//
// It fails with ErrDuplicateSpecialization if the target already has one (the first one is
// kept), or with primitives.ErrSealed after Seal.
func (r *SpecializationRegistry) Register(device Device, dtype dtypes.DType, fs FunctionSet) error {
	target := Target{Device: device, DType: dtype}
	if device == "" || !dtype.IsValid() {
		return errors.Errorf("invalid target %s for math function set", target)
	}
	if fs == nil {
		return errors.Errorf("nil math function set registered for %s", target)
	}
	for op, ok := range fs.Capabilities().Operations {
		if ok && (op == OpTypeInvalid || !op.IsAOpType()) {
			return errors.Errorf("math function set %q for %s declares invalid operation %s", fs.Name(), target, op)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return errors.Wrapf(primitives.ErrSealed, "cannot register math function set %q for %s", fs.Name(), target)
	}
	if previous, found := r.sets[target]; found {
		return errors.Wrapf(ErrDuplicateSpecialization, "%s already has %q, can't register %q", target, previous.Name(), fs.Name())
	}
	r.sets[target] = fs
	klog.V(1).Infof("mathfuncs: registered %q for %s, implementing %d operations", fs.Name(), target, len(fs.Capabilities().Ops()))
	return nil
}

// Lookup returns the specialization registered for (device, dtype). It returns false if there is none,
// in which case the generic set should be used.
func (r *SpecializationRegistry) Lookup(device Device, dtype dtypes.DType) (FunctionSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fs, found := r.sets[Target{Device: device, DType: dtype}]
	return fs, found
}

// Targets returns the registered targets, sorted by device and dtype.
func (r *SpecializationRegistry) Targets() []Target {
	r.mu.RLock()
	targets := make([]Target, 0, len(r.sets))
	for target := range r.sets {
		targets = append(targets, target)
	}
	r.mu.RUnlock()
	slices.SortFunc(targets, func(a, b Target) int {
		if c := strings.Compare(string(a.Device), string(b.Device)); c != 0 {
			return c
		}
		return cmp.Compare(a.DType, b.DType)
	})
	return targets
}

// Seal ends the registration phase. Calling it more than once is a no-op.
func (r *SpecializationRegistry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.sealed {
		klog.V(1).Infof("mathfuncs: specializations sealed with %d targets", len(r.sets))
	}
	r.sealed = true
}

// IsSealed returns whether Seal was called.
func (r *SpecializationRegistry) IsSealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Resolve returns the FunctionSet to use for (device, dtype): the registered specialization routed
// through Route, so operations outside its Capabilities use the generic set. Or the generic set
// itself if there is no specialization.
func (r *SpecializationRegistry) Resolve(device Device, dtype dtypes.DType) FunctionSet {
	fs, found := r.Lookup(device, dtype)
	if !found {
		klog.V(2).Infof("mathfuncs: no specialization for %s:%s, using generic", device, dtype)
		return Generic()
	}
	return Route(fs, Generic())
}

// Register fs as the specialization for (device, dtype) in DefaultSpecializations.
// See SpecializationRegistry.Register.
func Register(device Device, dtype dtypes.DType, fs FunctionSet) error {
	return DefaultSpecializations.Register(device, dtype, fs)
}

// MustRegister is like Register, but panics on error. It is meant to be used in init() functions,
// where a failed registration is a fatal configuration error.
func MustRegister(device Device, dtype dtypes.DType, fs FunctionSet) {
	if err := Register(device, dtype, fs); err != nil {
		exceptions.Panicf("mathfuncs: %+v", err)
	}
}

// Lookup the specialization for (device, dtype) in DefaultSpecializations.
func Lookup(device Device, dtype dtypes.DType) (FunctionSet, bool) {
	return DefaultSpecializations.Lookup(device, dtype)
}

// Resolve the FunctionSet for (device, dtype) using DefaultSpecializations.
func Resolve(device Device, dtype dtypes.DType) FunctionSet {
	return DefaultSpecializations.Resolve(device, dtype)
}

// CheckCompleteness verifies that every operation in GenericOps has a generic declaration in registry.
// It returns an ErrIncomplete error listing the missing ones.
func CheckCompleteness(registry *primitives.Registry) error {
	var missing []string
	for _, op := range GenericOps() {
		decl, err := registry.Lookup(GenericName(op))
		if err != nil || !decl.IsGeneric() {
			missing = append(missing, GenericName(op))
		}
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrIncomplete, "missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// Seal ends the initialization phase of the process-wide tables: it checks that the generic
// declarations are complete and then seals primitives.Default and DefaultSpecializations.
//
// It should be called once all packages registering specializations were initialized, before
// compilation starts. If the check fails nothing is sealed.
func Seal() error {
	if err := CheckCompleteness(primitives.Default); err != nil {
		klog.Warningf("mathfuncs: %v", err)
		return err
	}
	primitives.Default.Seal()
	DefaultSpecializations.Seal()
	return nil
}
