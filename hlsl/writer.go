// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/shadec/ast"
)

// Record variable names used by the entry point calling convention.
const (
	inputRecordVar  = "input"
	outputRecordVar = "output"
)

// Writer generates HLSL source code from a program AST.
//
// Indentation depth is threaded explicitly through every statement
// emission call, so each emitter is a pure transformation of
// (node, depth) to text.
type Writer struct {
	program *ast.Program
	options *Options

	// Output buffer
	out strings.Builder

	// Diagnostics collected for fallback paths
	diagnostics []Diagnostic

	// Record field sets, keyed by source parameter name
	inputFields  map[string]struct{}
	outputFields map[string]struct{}

	// Output tracking
	entryPointName string
	inputBindings  map[string]string
	outputBindings map[string]string

	// Entry point context (set while writing the entry function)
	inEntry      bool
	localShadows map[string]struct{}
}

// newWriter creates a new HLSL writer.
func newWriter(program *ast.Program, options *Options) *Writer {
	w := &Writer{
		program:        program,
		options:        options,
		inputFields:    make(map[string]struct{}),
		outputFields:   make(map[string]struct{}),
		inputBindings:  make(map[string]string),
		outputBindings: make(map[string]string),
	}
	for _, p := range program.Inputs {
		w.inputFields[p.Name] = struct{}{}
	}
	for _, p := range program.Outputs {
		w.outputFields[p.Name] = struct{}{}
	}
	return w
}

// String returns the generated HLSL source code.
func (w *Writer) String() string {
	return w.out.String()
}

// writeProgram generates HLSL code for the entire program:
// the input record, the output record, then every function in source
// order, separated by blank lines.
func (w *Writer) writeProgram() {
	w.writeInputStruct()
	w.writeLine(0, "")
	w.writeOutputStruct()
	w.writeLine(0, "")

	for i := range w.program.Functions {
		w.writeFunction(&w.program.Functions[i])
		w.writeLine(0, "")
	}
}

// Output helpers

// write writes text to the output. If args are provided, uses fmt.Fprintf.
//
//nolint:goprintffuncname
func (w *Writer) write(format string, args ...any) {
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
}

// writeLine writes an indented line with optional format args and a newline.
//
//nolint:goprintffuncname
func (w *Writer) writeLine(depth int, format string, args ...any) {
	w.writeIndent(depth)
	w.write(format, args...)
	w.out.WriteByte('\n')
}

// writeIndent writes indentation for the given depth (4 spaces per level).
func (w *Writer) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		w.out.WriteString("    ")
	}
}

// diag records a non-fatal fallback diagnostic.
//
//nolint:goprintffuncname
func (w *Writer) diag(kind DiagnosticKind, format string, args ...any) {
	w.diagnostics = append(w.diagnostics, Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

// captureStatement renders a statement at depth zero into a detached
// buffer and returns it with the trailing terminator and surrounding
// whitespace stripped, for splicing into a loop header.
func (w *Writer) captureStatement(stmt ast.Statement) string {
	oldOut := w.out
	w.out = strings.Builder{}
	w.writeStatement(stmt, 0)
	text := w.out.String()
	w.out = oldOut
	return strings.TrimSuffix(strings.TrimSpace(text), ";")
}
