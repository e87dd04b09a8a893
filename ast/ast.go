// Package ast defines the abstract syntax tree consumed by the shadec
// code generators.
//
// The tree is produced by an external parser and is read-only input to
// the backends: no node is mutated during generation, and a Program can
// be compiled concurrently from multiple goroutines. The backends trust
// the tree to be well formed and perform no semantic validation.
package ast

// Program is the root of a parsed shader.
//
// The order of Inputs and Outputs is significant: it determines the
// positional binding index assigned to each field in the generated
// input/output records.
type Program struct {
	// Inputs holds the shader input parameters in declaration order.
	Inputs []Param

	// Outputs holds the shader output parameters in declaration order.
	Outputs []Param

	// Functions holds all function definitions in source order.
	Functions []Function
}

// Param is a typed, named parameter.
type Param struct {
	Type string
	Name string
}

// Function represents a function definition.
//
// A function named "main" is the program's entry point and is subject
// to input/output record adaptation by the backends. Exactly one such
// function is expected per program; this is not enforced here.
type Function struct {
	Name       string
	Params     []Param
	ReturnType string
	Body       []Statement
}
