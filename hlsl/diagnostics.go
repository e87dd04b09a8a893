// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import "fmt"

// DiagnosticKind categorizes non-fatal translation fallbacks.
type DiagnosticKind uint8

const (
	// DiagUnknownType indicates a type name passed through unmapped.
	DiagUnknownType DiagnosticKind = iota

	// DiagUnknownOperator indicates an operator token passed through unmapped.
	DiagUnknownOperator

	// DiagUnknownStatement indicates a statement rendered by expression fallback.
	DiagUnknownStatement

	// DiagUnknownExpression indicates an expression rendered best-effort.
	DiagUnknownExpression
)

// String returns a human-readable diagnostic kind name.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagUnknownType:
		return "UnknownType"
	case DiagUnknownOperator:
		return "UnknownOperator"
	case DiagUnknownStatement:
		return "UnknownStatement"
	case DiagUnknownExpression:
		return "UnknownExpression"
	default:
		return "Unknown"
	}
}

// Diagnostic records a single fallback taken during generation.
// Diagnostics never abort generation; they exist so callers can detect
// output that may not compile in the target dialect.
type Diagnostic struct {
	// Kind categorizes the fallback.
	Kind DiagnosticKind

	// Message provides details about the construct that triggered it.
	Message string
}

// String returns the diagnostic in "kind: message" form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}
