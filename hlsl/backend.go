// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"github.com/gogpu/shadec/ast"
)

// Options configures HLSL code generation.
type Options struct {
	// EntryPoint names the function rewritten to the record calling
	// convention. Defaults to "main".
	EntryPoint string

	// InputStruct names the generated input record type.
	// Defaults to "VS_INPUT".
	InputStruct string

	// OutputStruct names the generated output record type.
	// Defaults to "PS_OUTPUT".
	OutputStruct string
}

// DefaultOptions returns sensible default options for HLSL generation.
func DefaultOptions() *Options {
	return &Options{
		EntryPoint:   "main",
		InputStruct:  "VS_INPUT",
		OutputStruct: "PS_OUTPUT",
	}
}

// TranslationInfo contains metadata about the HLSL translation.
type TranslationInfo struct {
	// EntryPointName is the emitted name of the entry point function,
	// or empty if the program contained none.
	EntryPointName string

	// InputBindings maps input field names to their HLSL semantics.
	// Format: "position" -> "POSITION0"
	InputBindings map[string]string

	// OutputBindings maps output field names to their HLSL semantics.
	// Format: "color" -> "SV_TARGET0"
	OutputBindings map[string]string

	// Diagnostics lists every fallback taken during generation.
	// Empty means all constructs were recognized.
	Diagnostics []Diagnostic
}

// Compile generates HLSL source code from a program AST.
// Returns the HLSL source, translation info, or an error.
//
// Generation itself cannot fail: unrecognized constructs degrade to
// identity or best-effort output and are reported in the translation
// info. The only error condition is a nil program.
func Compile(program *ast.Program, options *Options) (string, *TranslationInfo, error) {
	if program == nil {
		return "", nil, &Error{
			Kind:    ErrInvalidProgram,
			Message: "program is nil",
		}
	}

	// Apply defaults for nil or partially filled options
	opts := DefaultOptions()
	if options != nil {
		if options.EntryPoint != "" {
			opts.EntryPoint = options.EntryPoint
		}
		if options.InputStruct != "" {
			opts.InputStruct = options.InputStruct
		}
		if options.OutputStruct != "" {
			opts.OutputStruct = options.OutputStruct
		}
	}

	w := newWriter(program, opts)
	w.writeProgram()

	info := &TranslationInfo{
		EntryPointName: w.entryPointName,
		InputBindings:  w.inputBindings,
		OutputBindings: w.outputBindings,
		Diagnostics:    w.diagnostics,
	}

	return w.String(), info, nil
}
