// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/shadec/ast"
)

// writeExpression writes an AST expression to HLSL.
// Unknown expression shapes are rendered best-effort.
func (w *Writer) writeExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case nil:
		// Tolerated: renders as empty text.
	case ast.Literal:
		w.out.WriteString(e.Value)
	case ast.Variable:
		w.out.WriteString(w.variableName(e.Name))
	case ast.BinaryOp:
		w.writeBinaryExpression(e)
	case ast.Call:
		w.writeCallExpression(e)
	case ast.MemberAccess:
		w.writeExpression(e.Object)
		w.out.WriteByte('.')
		w.out.WriteString(e.Member)
	default:
		w.diag(DiagUnknownExpression, "unsupported expression type %T, rendered best-effort", expr)
		fmt.Fprintf(&w.out, "%v", expr)
	}
}

// writeBinaryExpression writes a binary operation, always fully
// parenthesized so target-dialect precedence can never alter the
// intended grouping.
func (w *Writer) writeBinaryExpression(e ast.BinaryOp) {
	w.out.WriteByte('(')
	w.writeExpression(e.Left)
	w.write(" %s ", w.mapOperator(e.Op))
	w.writeExpression(e.Right)
	w.out.WriteByte(')')
}

// writeCallExpression writes a function or constructor call with
// comma-joined arguments.
func (w *Writer) writeCallExpression(e ast.Call) {
	w.out.WriteString(Escape(e.Callee))
	w.out.WriteByte('(')
	for i, arg := range e.Args {
		if i > 0 {
			w.out.WriteString(", ")
		}
		w.writeExpression(arg)
	}
	w.out.WriteByte(')')
}

// variableName resolves a variable reference to its emitted spelling.
//
// Inside the entry function, names matching a program output field are
// qualified against the output record local, and names matching a
// program input field against the input record parameter. A typed local
// declaration of the same name disables qualification for the rest of
// the body. Outside the entry function names pass through unqualified.
func (w *Writer) variableName(name string) string {
	if w.inEntry {
		if _, shadowed := w.localShadows[name]; !shadowed {
			if _, ok := w.outputFields[name]; ok {
				return outputRecordVar + "." + Escape(name)
			}
			if _, ok := w.inputFields[name]; ok {
				return inputRecordVar + "." + Escape(name)
			}
		}
	}
	return Escape(name)
}
