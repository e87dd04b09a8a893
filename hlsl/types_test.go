// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"testing"

	"github.com/gogpu/shadec/ast"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"void", "void", "void"},
		{"vec2", "vec2", "float2"},
		{"vec3", "vec3", "float3"},
		{"vec4", "vec4", "float4"},
		{"mat2", "mat2", "float2x2"},
		{"mat3", "mat3", "float3x3"},
		{"mat4", "mat4", "float4x4"},
		{"sampler2D", "sampler2D", "Texture2D"},
		{"float identity", "float", "float"},
		{"int identity", "int", "int"},
		{"bool identity", "bool", "bool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapType(tt.input)
			if got != tt.want {
				t.Errorf("MapType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapType_UnknownPassesThrough(t *testing.T) {
	for _, name := range []string{"MyStruct", "vec5", "imageCube", ""} {
		if got := MapType(name); got != name {
			t.Errorf("MapType(%q) = %q, want identity", name, got)
		}
	}
}

func TestMapType_Deterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if got := MapType("vec3"); got != "float3" {
			t.Fatalf("call %d: MapType(vec3) = %q, want float3", i, got)
		}
		if got := MapType("custom_t"); got != "custom_t" {
			t.Fatalf("call %d: MapType(custom_t) = %q, want custom_t", i, got)
		}
	}
}

func TestWriter_MapTypeRecordsDiagnostic(t *testing.T) {
	w := newWriter(&ast.Program{}, DefaultOptions())

	if got := w.mapType("vec4"); got != "float4" {
		t.Errorf("mapType(vec4) = %q, want float4", got)
	}
	if len(w.diagnostics) != 0 {
		t.Fatalf("known type produced %d diagnostics, want 0", len(w.diagnostics))
	}

	if got := w.mapType("quaternion"); got != "quaternion" {
		t.Errorf("mapType(quaternion) = %q, want identity", got)
	}
	if len(w.diagnostics) != 1 {
		t.Fatalf("unknown type produced %d diagnostics, want 1", len(w.diagnostics))
	}
	if w.diagnostics[0].Kind != DiagUnknownType {
		t.Errorf("diagnostic kind = %v, want DiagUnknownType", w.diagnostics[0].Kind)
	}
}

func TestWriter_ReturnTypeDefaultsToVoid(t *testing.T) {
	w := newWriter(&ast.Program{}, DefaultOptions())

	if got := w.returnType(""); got != "void" {
		t.Errorf("returnType(\"\") = %q, want void", got)
	}
	if got := w.returnType("vec4"); got != "float4" {
		t.Errorf("returnType(vec4) = %q, want float4", got)
	}
	if len(w.diagnostics) != 0 {
		t.Errorf("expected no diagnostics, got %d", len(w.diagnostics))
	}
}
