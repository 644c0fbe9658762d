// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// irmath_table prints the math primitives tables: the declared primitive functions, the registered
// specializations and, for each operation, which function set implements it on each target.
//
// It exits with status 1 if some generic declaration is missing.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/irmath/pkg/core/mathfuncs"
	_ "github.com/gomlx/irmath/pkg/core/mathfuncs/cpu"
	_ "github.com/gomlx/irmath/pkg/core/mathfuncs/cuda"
	"github.com/gomlx/irmath/pkg/core/primitives"
	"github.com/muesli/termenv"
	"k8s.io/klog/v2"
)

var (
	flagSummary = flag.Bool("summary", true, "Display the number of declarations and specializations.")
	flagDecls   = flag.Bool("decls", false, "Lists the declared primitive functions.")
	flagSpecs   = flag.Bool("specs", false, "Lists the registered specializations.")
	flagOps     = flag.Bool("ops", true, "Lists, for each operation, the function set used on each target.")
	flagGeneric = flag.Bool("generic", false, "Include the generic declarations in -decls.")
	flagPlain   = flag.Bool("plain", false, "Disable colors and text styles.")
	flagTarget  = flag.String("target", "", "Restrict -ops to the given target, formatted as \"<device>:<dtype>\", "+
		"e.g. \"cuda:f16\". Defaults to all registered targets.")

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if len(flag.Args()) > 0 {
		klog.Errorf("Unexpected arguments %q. See 'irmath_table -help'.", flag.Args())
		os.Exit(1)
	}

	targets, err := selectedTargets(*flagTarget)
	if err != nil {
		klog.Errorf("Invalid -target: %v. See 'irmath_table -help'.", err)
		os.Exit(1)
	}
	if *flagPlain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	err = mathfuncs.Seal()
	if *flagSummary {
		summary(err)
	}
	if *flagDecls {
		listDeclarations()
	}
	if *flagSpecs {
		listSpecializations()
	}
	if *flagOps {
		listOperations(targets)
	}
	if err != nil {
		klog.Errorf("Incomplete math primitives: %v", err)
		os.Exit(1)
	}
}

// selectedTargets returns the targets listed by -ops: the one given by config, or all registered
// targets if config is empty.
func selectedTargets(config string) ([]mathfuncs.Target, error) {
	if config == "" {
		return mathfuncs.DefaultSpecializations.Targets(), nil
	}
	target, err := mathfuncs.ParseTarget(config)
	if err != nil {
		return nil, err
	}
	return []mathfuncs.Target{target}, nil
}

func summary(sealErr error) {
	var numGeneric int
	decls := primitives.Default.Declarations()
	for _, decl := range decls {
		if decl.IsGeneric() {
			numGeneric++
		}
	}
	table := newPlainTable(lipgloss.Right, lipgloss.Left)
	table.Row("# primitive functions", humanize.Comma(int64(len(decls))))
	table.Row("# generic", humanize.Comma(int64(numGeneric)))
	table.Row("# specialized", humanize.Comma(int64(len(decls)-numGeneric)))
	table.Row("# targets", humanize.Comma(int64(len(mathfuncs.DefaultSpecializations.Targets()))))
	complete := "yes"
	if sealErr != nil {
		complete = "no"
	}
	table.Row("complete", complete)
	fmt.Println(table.Render())
}

// unlowerable reports declarations that are neither generic nor have a codegen name: a backend
// has no symbol to emit for them.
func unlowerable(decl *primitives.Declaration) bool {
	_, hasCodegen := decl.CodegenName()
	return !decl.IsGeneric() && !hasCodegen
}

func listDeclarations() {
	fmt.Println(titleStyle.Render("Primitive functions"))
	table := newReportTable(unlowerable, lipgloss.Left, lipgloss.Left, lipgloss.Center)
	table.Headers("Name", "Codegen", "Generic")
	for _, decl := range primitives.Default.Declarations() {
		if decl.IsGeneric() && !*flagGeneric {
			continue
		}
		codegenName, _ := decl.CodegenName()
		table.Add(decl, decl.Name(), codegenName, checkMark(decl.IsGeneric()))
	}
	fmt.Println(table.Render())
}

func listSpecializations() {
	fmt.Println(titleStyle.Render("Specializations"))
	table := newPlainTable(lipgloss.Left, lipgloss.Left, lipgloss.Right, lipgloss.Left)
	table.Headers("Target", "Function set", "# ops", "Operations")
	for _, target := range mathfuncs.DefaultSpecializations.Targets() {
		fs, _ := mathfuncs.Lookup(target.Device, target.DType)
		ops := fs.Capabilities().Ops()
		names := make([]string, len(ops))
		for ii, op := range ops {
			names[ii] = op.PrimitiveName()
		}
		table.Row(target.String(), fs.Name(), fmt.Sprintf("%d", len(ops)), strings.Join(names, " "))
	}
	fmt.Println(table.Render())
}

// missingGeneric reports the operations that should have a generic declaration in registry but don't.
func missingGeneric(registry *primitives.Registry) func(op mathfuncs.OpType) bool {
	needsGeneric := make(map[mathfuncs.OpType]bool)
	for _, op := range mathfuncs.GenericOps() {
		needsGeneric[op] = true
	}
	return func(op mathfuncs.OpType) bool {
		return needsGeneric[op] && !registry.Has(mathfuncs.GenericName(op))
	}
}

// listOperations prints one row per operation, with the function set resolving it on each target.
// Operations without a generic declaration are highlighted.
func listOperations(targets []mathfuncs.Target) {
	fmt.Println(titleStyle.Render("Operations"))
	isMissing := missingGeneric(primitives.Default)
	table := newReportTable(isMissing, lipgloss.Left, lipgloss.Center)
	header := []string{"Operation", "Generic"}
	for _, target := range targets {
		header = append(header, target.String())
	}
	table.Headers(header...)
	for _, op := range mathfuncs.OpTypeValues() {
		if op == mathfuncs.OpTypeInvalid {
			continue
		}
		row := []string{op.PrimitiveName(), checkMark(!isMissing(op))}
		for _, target := range targets {
			row = append(row, implementedBy(target, op))
		}
		table.Add(op, row...)
	}
	fmt.Println(table.Render())
}

// implementedBy returns the name of the function set resolving op on target.
func implementedBy(target mathfuncs.Target, op mathfuncs.OpType) string {
	fs, found := mathfuncs.Lookup(target.Device, target.DType)
	if found && fs.Capabilities().Has(op) {
		return fs.Name()
	}
	return mathfuncs.Generic().Name()
}

func checkMark(ok bool) string {
	if ok {
		return "✓"
	}
	return ""
}
