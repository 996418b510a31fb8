package query

import (
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
)

type field struct {
	name    string
	numeric bool
	text    func(domain.Employee) string
	number  func(domain.Employee) int
}

var fields = []field{
	{name: "id", numeric: true, number: func(e domain.Employee) int { return e.ID }},
	{name: "first_name", text: func(e domain.Employee) string { return e.FirstName }},
	{name: "last_name", text: func(e domain.Employee) string { return e.LastName }},
	{name: "name", text: func(e domain.Employee) string { return e.FullName() }},
	{name: "department", text: func(e domain.Employee) string { return e.Department }},
	{name: "years_of_service", numeric: true, number: func(e domain.Employee) int { return e.YearsOfService }},
}

var aliases = map[string]string{
	"first":  "first_name",
	"last":   "last_name",
	"dept":   "department",
	"years":  "years_of_service",
	"tenure": "years_of_service",
}

// Fields lists the canonical field names accepted in queries.
func Fields() []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.name)
	}
	return out
}

func lookupField(key string) (field, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if canonical, ok := aliases[k]; ok {
		k = canonical
	}
	for _, f := range fields {
		if f.name == k {
			return f, true
		}
	}
	return field{}, false
}

// Match evaluates the AST node against an employee and returns true if it matches.
func Match(node Node, e domain.Employee) bool {
	if node == nil {
		return true // No filter means match all
	}

	switch n := node.(type) {
	case BinaryExpr:
		return evalBinary(n, e)
	case MatchExpr:
		return evalMatch(n, e)
	case CompareExpr:
		return evalCompare(n, e)
	case NotExpr:
		return !Match(n.Expr, e)
	default:
		return false
	}
}

func evalBinary(expr BinaryExpr, e domain.Employee) bool {
	switch expr.Op {
	case "AND":
		return Match(expr.Left, e) && Match(expr.Right, e)
	case "OR":
		return Match(expr.Left, e) || Match(expr.Right, e)
	default:
		return false
	}
}

func evalMatch(expr MatchExpr, e domain.Employee) bool {
	if expr.Field == "" {
		return matchFullText(expr.Value, e)
	}

	f, ok := lookupField(expr.Field)
	if !ok || f.numeric {
		return false
	}
	value := f.text(e)

	switch expr.Op {
	case "=":
		return strings.EqualFold(value, expr.Value)
	case "!=":
		return !strings.EqualFold(value, expr.Value)
	case "CONTAINS":
		return containsIgnoreCase(value, expr.Value)
	default:
		return false
	}
}

func evalCompare(expr CompareExpr, e domain.Employee) bool {
	f, ok := lookupField(expr.Field)
	if !ok || !f.numeric {
		return false
	}
	v := f.number(e)

	switch expr.Op {
	case "=":
		return v == expr.Value
	case "!=":
		return v != expr.Value
	case ">":
		return v > expr.Value
	case ">=":
		return v >= expr.Value
	case "<":
		return v < expr.Value
	case "<=":
		return v <= expr.Value
	default:
		return false
	}
}

func matchFullText(needle string, e domain.Employee) bool {
	return containsIgnoreCase(e.FirstName, needle) ||
		containsIgnoreCase(e.LastName, needle) ||
		containsIgnoreCase(e.Department, needle)
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
