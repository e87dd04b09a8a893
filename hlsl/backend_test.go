// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/shadec/ast"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts == nil {
		t.Fatal("DefaultOptions() returned nil")
	}
	if opts.EntryPoint != "main" {
		t.Errorf("EntryPoint = %q, want main", opts.EntryPoint)
	}
	if opts.InputStruct != "VS_INPUT" {
		t.Errorf("InputStruct = %q, want VS_INPUT", opts.InputStruct)
	}
	if opts.OutputStruct != "PS_OUTPUT" {
		t.Errorf("OutputStruct = %q, want PS_OUTPUT", opts.OutputStruct)
	}
}

func TestCompile_NilProgram(t *testing.T) {
	_, _, err := Compile(nil, nil)
	if err == nil {
		t.Fatal("expected error for nil program")
	}

	var hlslErr *Error
	if !errors.As(err, &hlslErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if hlslErr.Kind != ErrInvalidProgram {
		t.Errorf("error kind = %v, want ErrInvalidProgram", hlslErr.Kind)
	}
}

func TestCompile_NilOptionsUsesDefaults(t *testing.T) {
	code, _, err := Compile(&ast.Program{}, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if !strings.Contains(code, "struct VS_INPUT {") || !strings.Contains(code, "struct PS_OUTPUT {") {
		t.Errorf("default record names missing:\n%s", code)
	}
}

func TestCompile_PartialOptionsFilled(t *testing.T) {
	code, _, err := Compile(&ast.Program{}, &Options{InputStruct: "VertexInput"})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if !strings.Contains(code, "struct VertexInput {") {
		t.Errorf("custom input record name missing:\n%s", code)
	}
	if !strings.Contains(code, "struct PS_OUTPUT {") {
		t.Errorf("unset output record name did not default:\n%s", code)
	}
}

func TestCompile_ReferenceShader(t *testing.T) {
	program := &ast.Program{
		Inputs:  []ast.Param{{Type: "vec3", Name: "position"}},
		Outputs: []ast.Param{{Type: "vec4", Name: "color"}},
		Functions: []ast.Function{{
			Name:       "main",
			ReturnType: "void",
			Body: []ast.Statement{
				ast.Assign{
					Target: ast.Variable{Name: "color"},
					Value: ast.Call{Callee: "vec4", Args: []ast.Expression{
						ast.Variable{Name: "position"},
						ast.Literal{Value: "1.0"},
					}},
				},
			},
		}},
	}

	code, info, err := Compile(program, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	want := "struct VS_INPUT {\n" +
		"    float3 position : POSITION0;\n" +
		"};\n" +
		"\n" +
		"struct PS_OUTPUT {\n" +
		"    float4 color : SV_TARGET0;\n" +
		"};\n" +
		"\n" +
		"PS_OUTPUT main(VS_INPUT input) {\n" +
		"    PS_OUTPUT output;\n" +
		"    output.color = vec4(input.position, 1.0);\n" +
		"    return output;\n" +
		"}\n" +
		"\n"
	if code != want {
		t.Errorf("Compile() =\n%s\nwant:\n%s", code, want)
	}

	if info.InputBindings["position"] != "POSITION0" {
		t.Errorf("input binding = %q, want POSITION0", info.InputBindings["position"])
	}
	if info.OutputBindings["color"] != "SV_TARGET0" {
		t.Errorf("output binding = %q, want SV_TARGET0", info.OutputBindings["color"])
	}
	if len(info.Diagnostics) != 0 {
		t.Errorf("expected no diagnostics, got %v", info.Diagnostics)
	}
}

func TestCompile_FunctionOrderPreserved(t *testing.T) {
	program := &ast.Program{
		Outputs: []ast.Param{{Type: "vec4", Name: "color"}},
		Functions: []ast.Function{
			{Name: "first", ReturnType: "float"},
			{Name: "main"},
			{Name: "last", ReturnType: "float"},
		},
	}

	code, _, err := Compile(program, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	firstIdx := strings.Index(code, "float first()")
	mainIdx := strings.Index(code, "PS_OUTPUT main(")
	lastIdx := strings.Index(code, "float last()")
	if firstIdx < 0 || mainIdx < 0 || lastIdx < 0 {
		t.Fatalf("missing function definitions:\n%s", code)
	}
	if !(firstIdx < mainIdx && mainIdx < lastIdx) {
		t.Errorf("functions not emitted in source order:\n%s", code)
	}
}

func TestCompile_BlankLineSeparation(t *testing.T) {
	program := &ast.Program{
		Inputs:  []ast.Param{{Type: "vec2", Name: "uv"}},
		Outputs: []ast.Param{{Type: "vec4", Name: "color"}},
		Functions: []ast.Function{
			{Name: "helper", ReturnType: "float"},
			{Name: "main"},
		},
	}

	code, _, err := Compile(program, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	// Records and functions are separated by exactly one blank line.
	sections := strings.Split(strings.TrimRight(code, "\n"), "\n\n")
	if len(sections) != 4 {
		t.Fatalf("expected 4 blank-line separated sections, got %d:\n%s", len(sections), code)
	}
	if !strings.HasPrefix(sections[0], "struct VS_INPUT {") {
		t.Errorf("section 0 = %q, want input record", sections[0])
	}
	if !strings.HasPrefix(sections[1], "struct PS_OUTPUT {") {
		t.Errorf("section 1 = %q, want output record", sections[1])
	}
	if !strings.HasPrefix(sections[2], "float helper()") {
		t.Errorf("section 2 = %q, want helper function", sections[2])
	}
	if !strings.HasPrefix(sections[3], "PS_OUTPUT main(") {
		t.Errorf("section 3 = %q, want entry point", sections[3])
	}
}

func TestCompile_DiagnosticsSurfaceFallbacks(t *testing.T) {
	program := &ast.Program{
		Inputs: []ast.Param{{Type: "vec7", Name: "weird"}},
		Functions: []ast.Function{{
			Name: "main",
			Body: []ast.Statement{
				ast.Assign{Target: ast.Variable{Name: "x"}, Value: ast.BinaryOp{
					Left:  ast.Literal{Value: "1"},
					Op:    "CONCAT",
					Right: ast.Literal{Value: "2"},
				}},
			},
		}},
	}

	code, info, err := Compile(program, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	// Fallbacks degrade, they never fail
	if !strings.Contains(code, "vec7 weird : POSITION0;") {
		t.Errorf("unknown type did not pass through:\n%s", code)
	}
	if !strings.Contains(code, "(1 CONCAT 2)") {
		t.Errorf("unknown operator did not pass through:\n%s", code)
	}

	kinds := make(map[DiagnosticKind]int)
	for _, d := range info.Diagnostics {
		kinds[d.Kind]++
	}
	if kinds[DiagUnknownType] != 1 {
		t.Errorf("DiagUnknownType count = %d, want 1", kinds[DiagUnknownType])
	}
	if kinds[DiagUnknownOperator] != 1 {
		t.Errorf("DiagUnknownOperator count = %d, want 1", kinds[DiagUnknownOperator])
	}
}

func TestCompile_PureFunctionOfInput(t *testing.T) {
	program := &ast.Program{
		Inputs:  []ast.Param{{Type: "vec3", Name: "position"}},
		Outputs: []ast.Param{{Type: "vec4", Name: "color"}},
		Functions: []ast.Function{{
			Name: "main",
			Body: []ast.Statement{
				ast.Assign{Target: ast.Variable{Name: "color"}, Value: ast.Literal{Value: "0.0"}},
			},
		}},
	}

	first, _, err := Compile(program, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		code, _, err := Compile(program, nil)
		if err != nil {
			t.Fatalf("Compile failed on repeat %d: %v", i, err)
		}
		if code != first {
			t.Fatalf("repeat %d produced different output", i)
		}
	}
}

func TestError_Message(t *testing.T) {
	err := NewError(ErrInvalidProgram, "program is nil")
	want := "hlsl InvalidProgram: program is nil"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Kind: DiagUnknownType, Message: "no mapping"}
	want := "UnknownType: no mapping"
	if d.String() != want {
		t.Errorf("String() = %q, want %q", d.String(), want)
	}
}
