package ast

// Statement represents a statement-level AST node.
// Statements have effects and structured control flow but produce no values.
type Statement interface {
	statement()
}

// Assign assigns a value to a target reference.
// When Target is a Variable carrying a declared type, the assignment is
// a first declaration; otherwise it is a plain reassignment.
type Assign struct {
	Target Expression
	Value  Expression
}

func (Assign) statement() {}

// If conditionally executes one of two statement sequences.
// Else may be nil, in which case no else clause exists.
type If struct {
	Condition Expression
	Then      []Statement
	Else      []Statement
}

func (If) statement() {}

// For is a classic three-clause loop: init statement, condition
// expression, update statement, and a body.
type For struct {
	Init      Statement
	Condition Expression
	Update    Statement
	Body      []Statement
}

func (For) statement() {}

// Return returns a value from the enclosing function.
type Return struct {
	Value Expression
}

func (Return) statement() {}

// ExprStmt is an expression evaluated for its effect, such as a bare
// function call or the update clause of a for loop.
type ExprStmt struct {
	Expr Expression
}

func (ExprStmt) statement() {}
