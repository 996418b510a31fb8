package query

// Node is the interface implemented by all AST nodes.
type Node interface {
	node() // marker method
}

// BinaryExpr represents a binary logical expression (AND, OR).
type BinaryExpr struct {
	Op    string // "AND" or "OR"
	Left  Node
	Right Node
}

func (BinaryExpr) node() {}

// MatchExpr represents a string match on a field.
// If Field is empty, it is a full-text search across the name and department fields.
type MatchExpr struct {
	Field string
	Value string
	Op    string // "=", "!=", or "CONTAINS"
}

func (MatchExpr) node() {}

// CompareExpr represents a numeric comparison on an integer field.
type CompareExpr struct {
	Field string
	Value int
	Op    string // "=", "!=", ">", ">=", "<", "<="
}

func (CompareExpr) node() {}

// NotExpr represents a NOT expression that negates its inner expression.
type NotExpr struct {
	Expr Node
}

func (NotExpr) node() {}
