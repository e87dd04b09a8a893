// Package shadec provides a Pure Go shader cross-compiler backend.
//
// shadec consumes an already-parsed, already-typed shader AST and emits
// equivalent source text in a target shading dialect. One target is
// currently provided:
//
//   - HLSL — record-based vertex/pixel I/O with fixed-function semantic
//     binding, for DirectX
//
// The lexer and parser that produce the AST are external collaborators;
// their output is interchanged as Go values (package ast) or as JSON
// (ast.DecodeProgram). The backend trusts the tree to be well formed and
// performs no semantic validation.
//
// Example usage:
//
//	program := &ast.Program{
//	    Inputs:  []ast.Param{{Type: "vec3", Name: "position"}},
//	    Outputs: []ast.Param{{Type: "vec4", Name: "color"}},
//	    Functions: []ast.Function{ /* ... */ },
//	}
//	code, err := shadec.Generate(program)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For translation metadata and fallback diagnostics, use the hlsl
// package directly:
//
//	code, info, err := hlsl.Compile(program, hlsl.DefaultOptions())
package shadec

import (
	"fmt"

	"github.com/gogpu/shadec/ast"
	"github.com/gogpu/shadec/hlsl"
)

// Generate compiles a program AST to HLSL source text using default
// options.
//
// This is the simplest way to generate a shader. For more control, or
// for access to translation metadata, use GenerateWithInfo or the hlsl
// package directly.
func Generate(program *ast.Program) (string, error) {
	code, _, err := GenerateWithInfo(program, nil)
	return code, err
}

// GenerateWithInfo compiles a program AST to HLSL source text with
// custom options, returning translation metadata alongside the code.
//
// A nil options value selects hlsl.DefaultOptions.
func GenerateWithInfo(program *ast.Program, opts *hlsl.Options) (string, *hlsl.TranslationInfo, error) {
	code, info, err := hlsl.Compile(program, opts)
	if err != nil {
		return "", nil, fmt.Errorf("HLSL generation error: %w", err)
	}
	return code, info, nil
}
