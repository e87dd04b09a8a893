// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/shadec/ast"
)

// writeStatement dispatches to the appropriate statement writer.
// Unknown statement shapes degrade to expression emission.
func (w *Writer) writeStatement(stmt ast.Statement, depth int) {
	switch s := stmt.(type) {
	case ast.Assign:
		w.writeIndent(depth)
		w.writeAssign(s)
		w.out.WriteString(";\n")
	case ast.If:
		w.writeIfStatement(s, depth)
	case ast.For:
		w.writeForStatement(s, depth)
	case ast.Return:
		w.writeReturnStatement(s, depth)
	case ast.ExprStmt:
		w.writeIndent(depth)
		w.writeExpression(s.Expr)
		w.out.WriteString(";\n")
	default:
		w.diag(DiagUnknownStatement, "unsupported statement type %T, rendered as expression", stmt)
		w.writeIndent(depth)
		if expr, ok := stmt.(ast.Expression); ok {
			w.writeExpression(expr)
		} else {
			fmt.Fprintf(&w.out, "%v", stmt)
		}
		w.out.WriteString(";\n")
	}
}

// writeAssign writes an assignment without indentation or terminator,
// so it can also be spliced into a for-loop header.
//
// A target variable carrying a declared type is a first declaration and
// emits an in-place typed declaration; any other target is a plain
// reassignment.
func (w *Writer) writeAssign(s ast.Assign) {
	if v, ok := s.Target.(ast.Variable); ok && v.Type != "" {
		if w.inEntry {
			// A typed declaration shadows any same-named record field
			// for the rest of the entry body.
			w.localShadows[v.Name] = struct{}{}
		}
		w.write("%s %s = ", w.mapType(v.Type), Escape(v.Name))
		w.writeExpression(s.Value)
		return
	}

	w.writeExpression(s.Target)
	w.out.WriteString(" = ")
	w.writeExpression(s.Value)
}

// writeIfStatement writes an if/else statement.
func (w *Writer) writeIfStatement(s ast.If, depth int) {
	w.writeIndent(depth)
	w.out.WriteString("if (")
	w.writeExpression(s.Condition)
	w.out.WriteString(") {\n")

	for _, stmt := range s.Then {
		w.writeStatement(stmt, depth+1)
	}

	if len(s.Else) > 0 {
		w.writeLine(depth, "} else {")
		for _, stmt := range s.Else {
			w.writeStatement(stmt, depth+1)
		}
	}

	w.writeLine(depth, "}")
}

// writeForStatement writes a classic three-clause loop.
//
// A typed-declaration init renders inline without a terminator; any
// other init or update clause is rendered as a generic statement with
// its trailing terminator stripped before splicing into the header.
func (w *Writer) writeForStatement(s ast.For, depth int) {
	w.writeIndent(depth)
	w.out.WriteString("for (")

	if a, ok := s.Init.(ast.Assign); ok {
		w.writeAssign(a)
	} else if s.Init != nil {
		w.out.WriteString(w.captureStatement(s.Init))
	}
	w.out.WriteString("; ")

	w.writeExpression(s.Condition)
	w.out.WriteString("; ")

	if s.Update != nil {
		w.out.WriteString(w.captureStatement(s.Update))
	}
	w.out.WriteString(") {\n")

	for _, stmt := range s.Body {
		w.writeStatement(stmt, depth+1)
	}

	w.writeLine(depth, "}")
}

// writeReturnStatement writes a return statement.
func (w *Writer) writeReturnStatement(s ast.Return, depth int) {
	if s.Value == nil {
		w.writeLine(depth, "return;")
		return
	}
	w.writeIndent(depth)
	w.out.WriteString("return ")
	w.writeExpression(s.Value)
	w.out.WriteString(";\n")
}
