// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hlsl generates HLSL (High-Level Shading Language) source code
// from a parsed shader AST.
//
// The backend performs a single top-down traversal of the tree and emits,
// in order: an input record declaration, an output record declaration,
// and every function definition in source order. The entry point function
// (conventionally "main") is rewritten to the HLSL calling convention: it
// receives the input record as its only parameter, returns the output
// record, and bare references to program inputs and outputs inside its
// body are qualified against the record variables.
//
// # Usage
//
//	program := parseShader(source) // external frontend
//	code, info, err := hlsl.Compile(program, hlsl.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range info.Diagnostics {
//	    log.Printf("warning: %v", d)
//	}
//
// # Permissive translation
//
// Generation never fails on unrecognized input. Unknown type names and
// operator tokens pass through unchanged, and unknown statement or
// expression shapes are rendered best-effort. Every fallback is recorded
// as a Diagnostic in the returned TranslationInfo so callers can detect
// output that may not compile in the target dialect.
package hlsl
