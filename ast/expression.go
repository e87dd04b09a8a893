package ast

// Expression represents an expression-level AST node.
type Expression interface {
	expression()
}

// Literal is an opaque textual token (numeric or string literal),
// passed through to the output verbatim.
type Literal struct {
	Value string
}

func (Literal) expression() {}

// Variable references a named value. Type is the declared type for a
// first assignment and empty everywhere else.
type Variable struct {
	Name string
	Type string
}

func (Variable) expression() {}

// BinaryOp applies an abstract operator token to two operands.
type BinaryOp struct {
	Left  Expression
	Op    string
	Right Expression
}

func (BinaryOp) expression() {}

// Call invokes a function or type constructor with ordered arguments.
type Call struct {
	Callee string
	Args   []Expression
}

func (Call) expression() {}

// MemberAccess selects a named member of an object expression.
type MemberAccess struct {
	Object Expression
	Member string
}

func (MemberAccess) expression() {}
