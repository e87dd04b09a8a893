// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

// operatorSymbols maps abstract operator tokens to HLSL operator
// spellings. The table is initialized once and never mutated.
var operatorSymbols = map[string]string{
	"PLUS":     "+",
	"MINUS":    "-",
	"MULTIPLY": "*",
	"DIVIDE":   "/",

	"LESS_THAN":     "<",
	"GREATER_THAN":  ">",
	"LESS_EQUAL":    "<=",
	"GREATER_EQUAL": ">=",
	"EQUAL":         "==",
	"NOT_EQUAL":     "!=",

	"AND": "&&",
	"OR":  "||",
}

// MapOperator translates an abstract operator token to its HLSL symbol.
// Unknown tokens are returned unchanged.
func MapOperator(op string) string {
	if symbol, ok := operatorSymbols[op]; ok {
		return symbol
	}
	return op
}

// mapOperator is MapOperator with fallback tracking: unknown tokens are
// passed through unchanged and recorded as a diagnostic.
func (w *Writer) mapOperator(op string) string {
	if symbol, ok := operatorSymbols[op]; ok {
		return symbol
	}
	w.diag(DiagUnknownOperator, "operator %q has no HLSL mapping, passed through", op)
	return op
}
