package ast

import (
	"fmt"

	"github.com/goccy/go-json"
)

// JSON interchange format for parser-produced trees.
//
// Statements and expressions are polymorphic, so each node is encoded as
// an object with a "kind" discriminator:
//
//	{"kind": "assign", "target": {...}, "value": {...}}
//	{"kind": "binary", "op": "PLUS", "left": {...}, "right": {...}}
//
// Statement kinds: assign, if, for, return, expr.
// Expression kinds: literal, variable, binary, call, member.

// DecodeProgram decodes a JSON-encoded Program.
func DecodeProgram(data []byte) (*Program, error) {
	var raw struct {
		Inputs    []Param       `json:"inputs"`
		Outputs   []Param       `json:"outputs"`
		Functions []rawFunction `json:"functions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ast: decode program: %w", err)
	}

	prog := &Program{
		Inputs:  raw.Inputs,
		Outputs: raw.Outputs,
	}
	for _, fn := range raw.Functions {
		body, err := decodeBlock(fn.Body)
		if err != nil {
			return nil, fmt.Errorf("ast: function %q: %w", fn.Name, err)
		}
		prog.Functions = append(prog.Functions, Function{
			Name:       fn.Name,
			Params:     fn.Params,
			ReturnType: fn.ReturnType,
			Body:       body,
		})
	}
	return prog, nil
}

type rawFunction struct {
	Name       string            `json:"name"`
	Params     []Param           `json:"params"`
	ReturnType string            `json:"return_type"`
	Body       []json.RawMessage `json:"body"`
}

func decodeBlock(raw []json.RawMessage) ([]Statement, error) {
	if raw == nil {
		return nil, nil
	}
	stmts := make([]Statement, 0, len(raw))
	for i, msg := range raw {
		stmt, err := decodeStatement(msg)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func decodeStatement(data json.RawMessage) (Statement, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch head.Kind {
	case "assign":
		var raw struct {
			Target json.RawMessage `json:"target"`
			Value  json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		target, err := decodeExpression(raw.Target)
		if err != nil {
			return nil, fmt.Errorf("assign target: %w", err)
		}
		value, err := decodeExpression(raw.Value)
		if err != nil {
			return nil, fmt.Errorf("assign value: %w", err)
		}
		return Assign{Target: target, Value: value}, nil

	case "if":
		var raw struct {
			Condition json.RawMessage   `json:"condition"`
			Then      []json.RawMessage `json:"then"`
			Else      []json.RawMessage `json:"else"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		cond, err := decodeExpression(raw.Condition)
		if err != nil {
			return nil, fmt.Errorf("if condition: %w", err)
		}
		then, err := decodeBlock(raw.Then)
		if err != nil {
			return nil, fmt.Errorf("if then: %w", err)
		}
		els, err := decodeBlock(raw.Else)
		if err != nil {
			return nil, fmt.Errorf("if else: %w", err)
		}
		return If{Condition: cond, Then: then, Else: els}, nil

	case "for":
		var raw struct {
			Init      json.RawMessage   `json:"init"`
			Condition json.RawMessage   `json:"condition"`
			Update    json.RawMessage   `json:"update"`
			Body      []json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		init, err := decodeStatement(raw.Init)
		if err != nil {
			return nil, fmt.Errorf("for init: %w", err)
		}
		cond, err := decodeExpression(raw.Condition)
		if err != nil {
			return nil, fmt.Errorf("for condition: %w", err)
		}
		update, err := decodeStatement(raw.Update)
		if err != nil {
			return nil, fmt.Errorf("for update: %w", err)
		}
		body, err := decodeBlock(raw.Body)
		if err != nil {
			return nil, fmt.Errorf("for body: %w", err)
		}
		return For{Init: init, Condition: cond, Update: update, Body: body}, nil

	case "return":
		var raw struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		value, err := decodeExpression(raw.Value)
		if err != nil {
			return nil, fmt.Errorf("return value: %w", err)
		}
		return Return{Value: value}, nil

	case "expr":
		var raw struct {
			Expr json.RawMessage `json:"expr"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		expr, err := decodeExpression(raw.Expr)
		if err != nil {
			return nil, fmt.Errorf("expression statement: %w", err)
		}
		return ExprStmt{Expr: expr}, nil

	default:
		return nil, fmt.Errorf("unknown statement kind %q", head.Kind)
	}
}

func decodeExpression(data json.RawMessage) (Expression, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch head.Kind {
	case "literal":
		var raw struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return Literal{Value: raw.Value}, nil

	case "variable":
		var raw struct {
			Name string `json:"name"`
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return Variable{Name: raw.Name, Type: raw.Type}, nil

	case "binary":
		var raw struct {
			Op    string          `json:"op"`
			Left  json.RawMessage `json:"left"`
			Right json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		left, err := decodeExpression(raw.Left)
		if err != nil {
			return nil, fmt.Errorf("binary left: %w", err)
		}
		right, err := decodeExpression(raw.Right)
		if err != nil {
			return nil, fmt.Errorf("binary right: %w", err)
		}
		return BinaryOp{Left: left, Op: raw.Op, Right: right}, nil

	case "call":
		var raw struct {
			Callee string            `json:"callee"`
			Args   []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		args := make([]Expression, 0, len(raw.Args))
		for i, argMsg := range raw.Args {
			arg, err := decodeExpression(argMsg)
			if err != nil {
				return nil, fmt.Errorf("call arg %d: %w", i, err)
			}
			args = append(args, arg)
		}
		return Call{Callee: raw.Callee, Args: args}, nil

	case "member":
		var raw struct {
			Object json.RawMessage `json:"object"`
			Member string          `json:"member"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		object, err := decodeExpression(raw.Object)
		if err != nil {
			return nil, fmt.Errorf("member object: %w", err)
		}
		return MemberAccess{Object: object, Member: raw.Member}, nil

	default:
		return nil, fmt.Errorf("unknown expression kind %q", head.Kind)
	}
}
