// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/shadec/ast"
)

// =============================================================================
// Input/Output Record Declarations
// =============================================================================

// writeInputStruct writes the input record declaration.
// Each program input becomes one field bound to POSITION<i> in
// declaration order.
func (w *Writer) writeInputStruct() {
	w.writeLine(0, "struct %s {", w.options.InputStruct)
	for i, p := range w.program.Inputs {
		semantic := fmt.Sprintf("POSITION%d", i)
		w.writeLine(1, "%s %s : %s;", w.mapType(p.Type), Escape(p.Name), semantic)
		w.inputBindings[p.Name] = semantic
	}
	w.writeLine(0, "};")
}

// writeOutputStruct writes the output record declaration.
// Each program output becomes one field bound to SV_TARGET<i> in
// declaration order.
func (w *Writer) writeOutputStruct() {
	w.writeLine(0, "struct %s {", w.options.OutputStruct)
	for i, p := range w.program.Outputs {
		semantic := fmt.Sprintf("SV_TARGET%d", i)
		w.writeLine(1, "%s %s : %s;", w.mapType(p.Type), Escape(p.Name), semantic)
		w.outputBindings[p.Name] = semantic
	}
	w.writeLine(0, "};")
}

// =============================================================================
// Function Definitions
// =============================================================================

// writeFunction writes a function definition, dispatching the entry
// point to the record calling convention.
func (w *Writer) writeFunction(fn *ast.Function) {
	if fn.Name == w.options.EntryPoint {
		w.writeEntryPoint(fn)
		return
	}
	w.writePlainFunction(fn)
}

// writeEntryPoint writes the entry function with its signature rewritten
// to take the input record and return the output record, irrespective of
// its original parameter list and return type.
//
// The output record local is declared unconditionally at the top of the
// body and returned unconditionally at the end, regardless of explicit
// returns in the original body.
func (w *Writer) writeEntryPoint(fn *ast.Function) {
	w.inEntry = true
	w.localShadows = make(map[string]struct{})
	defer func() {
		w.inEntry = false
		w.localShadows = nil
	}()

	name := Escape(fn.Name)
	w.entryPointName = name

	w.writeLine(0, "%s %s(%s %s) {", w.options.OutputStruct, name, w.options.InputStruct, inputRecordVar)
	w.writeLine(1, "%s %s;", w.options.OutputStruct, outputRecordVar)
	for _, stmt := range fn.Body {
		w.writeStatement(stmt, 1)
	}
	w.writeLine(1, "return %s;", outputRecordVar)
	w.writeLine(0, "}")
}

// writePlainFunction writes a non-entry function with its original
// parameter list and return type translated through the type table.
func (w *Writer) writePlainFunction(fn *ast.Function) {
	params := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		params = append(params, fmt.Sprintf("%s %s", w.mapType(p.Type), Escape(p.Name)))
	}

	w.writeLine(0, "%s %s(%s) {", w.returnType(fn.ReturnType), Escape(fn.Name), strings.Join(params, ", "))
	for _, stmt := range fn.Body {
		w.writeStatement(stmt, 1)
	}
	w.writeLine(0, "}")
}
