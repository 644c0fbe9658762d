// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package primitives is the table of primitive functions: named, typed symbols that IR math
// operations resolve to, and that a backend later lowers to target code.
//
// Each Declaration has a unique name, an optional codegen name (the backend symbol it lowers to),
// a type-inference rule and a generic flag. The process-wide table Default is populated during
// package initialization (see mathfuncs), then sealed with Seal: after that it is read-only and
// safe for concurrent use.
//
// Registry errors can be identified with errors.Is:
//
//   - ErrDuplicateDeclaration: registering a name twice. Fatal at startup.
//   - ErrUnknownFunction: looking up a name never registered. A compilation error.
//   - ErrSealed: registering after the table was sealed.
package primitives

import (
	"slices"
	"strings"
	"sync"

	"github.com/gomlx/irmath/pkg/core/ir"
	"github.com/gomlx/irmath/pkg/core/primitives/typeinference"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	// ErrDuplicateDeclaration is returned when registering a name that is already registered.
	ErrDuplicateDeclaration = errors.New("primitive function already declared")

	// ErrUnknownFunction is returned by Lookup for names that were never registered.
	ErrUnknownFunction = errors.New("unknown primitive function")

	// ErrSealed is returned when trying to register into a sealed Registry.
	ErrSealed = errors.New("primitive functions registry is sealed")
)

// Declaration of a primitive function. It is immutable once registered.
type Declaration struct {
	name        string
	codegenName string
	inferType   typeinference.Rule
	generic     bool
}

var _ ir.Symbol = (*Declaration)(nil)

// Name implements ir.Symbol.
func (d *Declaration) Name() string { return d.name }

// CodegenName implements ir.Symbol. It returns false if no codegen name was given,
// which is always the case for generic declarations.
func (d *Declaration) CodegenName() (string, bool) { return d.codegenName, d.codegenName != "" }

// IsGeneric implements ir.Symbol.
func (d *Declaration) IsGeneric() bool { return d.generic }

// InferType applies the declaration's type-inference rule to the given operand types.
func (d *Declaration) InferType(argTypes []ir.Type) (ir.Type, error) {
	t, err := d.inferType(argTypes)
	if err != nil {
		return ir.Invalid(), errors.WithMessagef(err, "primitive %q", d.name)
	}
	return t, nil
}

// Call builds the call expression of the declaration over args, with the result type
// inferred from the operand types.
func (d *Declaration) Call(args ...ir.Expr) (*ir.Call, error) {
	resultType, err := d.InferType(ir.Types(args...))
	if err != nil {
		return nil, err
	}
	return ir.NewCall(d, resultType, args...), nil
}

// String implements fmt.Stringer.
func (d *Declaration) String() string {
	var sb strings.Builder
	sb.WriteString(d.name)
	if d.codegenName != "" {
		sb.WriteString(" -> ")
		sb.WriteString(d.codegenName)
	}
	if d.generic {
		sb.WriteString(" [generic]")
	}
	return sb.String()
}

// Registry is an append-only table of Declaration, indexed by name.
//
// Registration is expected during initialization; once Seal is called the Registry is read-only.
// Its methods are safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	declarations map[string]*Declaration
	sealed       bool
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{declarations: make(map[string]*Declaration)}
}

// Default is the process-wide Registry used by the package-level functions.
var Default = NewRegistry()

// Register a new primitive function in the registry.
//
// codegenName is optional (empty) and inferType is required. It fails with ErrDuplicateDeclaration
// if name is already registered (the first declaration is kept), or with ErrSealed.
func (r *Registry) Register(name, codegenName string, inferType typeinference.Rule, generic bool) (*Declaration, error) {
	if name == "" {
		return nil, errors.New("primitive function name cannot be empty")
	}
	if inferType == nil {
		return nil, errors.Errorf("primitive %q registered without a type-inference rule", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return nil, errors.Wrapf(ErrSealed, "cannot register %q", name)
	}
	if _, found := r.declarations[name]; found {
		return nil, errors.Wrapf(ErrDuplicateDeclaration, "primitive %q", name)
	}
	d := &Declaration{name: name, codegenName: codegenName, inferType: inferType, generic: generic}
	r.declarations[name] = d
	klog.V(1).Infof("primitives: registered %s", d)
	return d, nil
}

// Lookup returns the declaration registered under name, or ErrUnknownFunction.
func (r *Registry) Lookup(name string) (*Declaration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, found := r.declarations[name]
	if !found {
		return nil, errors.Wrapf(ErrUnknownFunction, "primitive %q was not registered", name)
	}
	return d, nil
}

// Has returns whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, found := r.declarations[name]
	return found
}

// Len returns the number of registered declarations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.declarations)
}

// Declarations returns all registered declarations sorted by name.
func (r *Registry) Declarations() []*Declaration {
	r.mu.RLock()
	decls := make([]*Declaration, 0, len(r.declarations))
	for _, d := range r.declarations {
		decls = append(decls, d)
	}
	r.mu.RUnlock()
	slices.SortFunc(decls, func(a, b *Declaration) int { return strings.Compare(a.name, b.name) })
	return decls
}

// Seal ends the registration phase: any further Register fails with ErrSealed.
// Calling it more than once is a no-op.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.sealed {
		klog.V(1).Infof("primitives: sealed with %d declarations", len(r.declarations))
	}
	r.sealed = true
}

// IsSealed returns whether Seal was called.
func (r *Registry) IsSealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Register a primitive function in the Default registry. See Registry.Register.
func Register(name, codegenName string, inferType typeinference.Rule, generic bool) (*Declaration, error) {
	return Default.Register(name, codegenName, inferType, generic)
}

// Lookup a primitive function in the Default registry. See Registry.Lookup.
func Lookup(name string) (*Declaration, error) {
	return Default.Lookup(name)
}
