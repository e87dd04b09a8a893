// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

// typeNames maps abstract shader type names to HLSL spellings.
// The table is initialized once and never mutated.
//
// Spellings shared between the source language and HLSL (scalars) map
// to themselves so they translate without a fallback diagnostic.
var typeNames = map[string]string{
	"void":      "void",
	"vec2":      "float2",
	"vec3":      "float3",
	"vec4":      "float4",
	"mat2":      "float2x2",
	"mat3":      "float3x3",
	"mat4":      "float4x4",
	"sampler2D": "Texture2D",

	"float":  "float",
	"int":    "int",
	"uint":   "uint",
	"bool":   "bool",
	"half":   "half",
	"double": "double",
}

// MapType translates an abstract type name to its HLSL spelling.
// Unknown names are returned unchanged.
func MapType(name string) string {
	if mapped, ok := typeNames[name]; ok {
		return mapped
	}
	return name
}

// mapType is MapType with fallback tracking: unknown names are passed
// through unchanged and recorded as a diagnostic.
func (w *Writer) mapType(name string) string {
	if mapped, ok := typeNames[name]; ok {
		return mapped
	}
	w.diag(DiagUnknownType, "type %q has no HLSL mapping, passed through", name)
	return name
}

// returnType translates a function return type, defaulting to void
// when the AST carries none.
func (w *Writer) returnType(name string) string {
	if name == "" {
		return "void"
	}
	return w.mapType(name)
}
