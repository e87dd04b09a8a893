// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import "strings"

// UnnamedIdentifier is the default name for empty identifiers.
const UnnamedIdentifier = "_unnamed"

// reservedKeywords contains HLSL reserved keywords, stored lowercase
// because legacy FXC matches keywords case-insensitively.
// Based on Microsoft HLSL documentation.
var reservedKeywords = map[string]struct{}{
	"asm":             {},
	"bool":            {},
	"break":           {},
	"buffer":          {},
	"case":            {},
	"cbuffer":         {},
	"centroid":        {},
	"class":           {},
	"column_major":    {},
	"compile":         {},
	"const":           {},
	"continue":        {},
	"default":         {},
	"discard":         {},
	"do":              {},
	"double":          {},
	"dword":           {},
	"else":            {},
	"export":          {},
	"extern":          {},
	"false":           {},
	"float":           {},
	"for":             {},
	"groupshared":     {},
	"half":            {},
	"if":              {},
	"in":              {},
	"inline":          {},
	"inout":           {},
	"int":             {},
	"interface":       {},
	"line":            {},
	"linear":          {},
	"matrix":          {},
	"namespace":       {},
	"nointerpolation": {},
	"noperspective":   {},
	"out":             {},
	"packoffset":      {},
	"pass":            {},
	"point":           {},
	"precise":         {},
	"register":        {},
	"return":          {},
	"row_major":       {},
	"sample":          {},
	"sampler":         {},
	"shared":          {},
	"snorm":           {},
	"stateblock":      {},
	"static":          {},
	"string":          {},
	"struct":          {},
	"switch":          {},
	"technique":       {},
	"texture":         {},
	"texture1d":       {},
	"texture2d":       {},
	"texture2darray":  {},
	"texture3d":       {},
	"texturecube":     {},
	"true":            {},
	"typedef":         {},
	"uint":            {},
	"uniform":         {},
	"unorm":           {},
	"unsigned":        {},
	"vector":          {},
	"void":            {},
	"volatile":        {},
	"while":           {},
}

// typeShorthands contains HLSL vector/matrix type names like float3 and
// float4x4, generated from the scalar bases.
var typeShorthands = func() map[string]struct{} {
	result := make(map[string]struct{})
	bases := []string{"bool", "int", "uint", "float", "double", "half", "min16float", "min16int", "min16uint"}

	for _, base := range bases {
		for n := 1; n <= 4; n++ {
			result[base+string(rune('0'+n))] = struct{}{}
			for m := 1; m <= 4; m++ {
				result[base+string(rune('0'+n))+"x"+string(rune('0'+m))] = struct{}{}
			}
		}
	}

	return result
}()

// IsReserved checks if a name is an HLSL reserved keyword or type
// shorthand. The check is case-insensitive to match legacy FXC behavior.
func IsReserved(name string) bool {
	lower := strings.ToLower(name)
	if _, ok := reservedKeywords[lower]; ok {
		return true
	}
	if _, ok := typeShorthands[lower]; ok {
		return true
	}
	return false
}

// Escape returns a safe identifier name.
// If the name is reserved or empty, it's prefixed with underscore.
func Escape(name string) string {
	if name == "" {
		return UnnamedIdentifier
	}
	if IsReserved(name) {
		return "_" + name
	}
	return name
}
