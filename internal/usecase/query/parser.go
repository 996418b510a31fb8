package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
)

// Parser parses directory queries into an AST.
type Parser struct {
	lexer   *Lexer
	current Token
}

// Parse parses the input string and returns the AST root node.
// An empty query yields a nil node, which matches every record.
func Parse(input string) (Node, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	p := &Parser{lexer: NewLexer(input)}
	p.advance()

	node, err := p.parseOr()
	if err != nil {
		return nil, wrapParseErr(input, err)
	}
	if p.current.Type != TokenEOF {
		return nil, wrapParseErr(input, fmt.Errorf("unexpected %s", p.current))
	}
	return node, nil
}

func (p *Parser) advance() {
	p.current = p.lexer.NextToken()
}

// parseOr handles OR expressions (lowest precedence).
func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: "OR", Left: left, Right: right}
	}

	return left, nil
}

// parseAnd handles AND expressions. Adjacent terms are an implicit AND.
func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case TokenAnd:
			p.advance()
		case TokenIdent, TokenString, TokenLParen, TokenNot:
		default:
			return left, nil
		}

		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: "AND", Left: left, Right: right}
	}
}

// parseNot handles NOT expressions.
func (p *Parser) parseNot() (Node, error) {
	if p.current.Type == TokenNot {
		p.advance()
		expr, err := p.parseNot() // NOT is right-associative
		if err != nil {
			return nil, err
		}
		return NotExpr{Expr: expr}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles primary expressions: (expr), field:value, field>N, "text".
func (p *Parser) parsePrimary() (Node, error) {
	switch p.current.Type {
	case TokenLParen:
		p.advance()
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, fmt.Errorf("expected ')' but got %s", p.current)
		}
		p.advance()
		return expr, nil

	case TokenString:
		value := p.current.Value
		p.advance()
		return MatchExpr{Field: "", Value: value, Op: "CONTAINS"}, nil

	case TokenIdent:
		key := p.current.Value
		p.advance()

		op, ok := comparisonOp(p.current.Type)
		if !ok {
			// Bare identifier: full-text search
			return MatchExpr{Field: "", Value: key, Op: "CONTAINS"}, nil
		}
		p.advance()
		return p.parseValue(key, op)

	case TokenIllegal:
		return nil, fmt.Errorf("illegal token %s", p.current)

	case TokenEOF:
		return nil, fmt.Errorf("unexpected end of query")

	default:
		return nil, fmt.Errorf("unexpected %s", p.current)
	}
}

// parseValue parses the value part after the field and operator.
func (p *Parser) parseValue(key, op string) (Node, error) {
	f, ok := lookupField(key)
	if !ok {
		return nil, fmt.Errorf("unknown field %q", key)
	}

	var value string
	switch p.current.Type {
	case TokenString, TokenIdent:
		value = p.current.Value
		p.advance()
	default:
		return nil, fmt.Errorf("expected value after '%s%s' but got %s", key, op, p.current)
	}

	if f.numeric {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("field %q expects an integer, got %q", f.name, value)
		}
		return CompareExpr{Field: f.name, Value: n, Op: op}, nil
	}

	switch op {
	case "=", "!=":
		return MatchExpr{Field: f.name, Value: value, Op: op}, nil
	default:
		return nil, fmt.Errorf("operator %s is not supported on text field %q", op, f.name)
	}
}

func comparisonOp(t TokenType) (string, bool) {
	switch t {
	case TokenColon:
		return "=", true
	case TokenNeq:
		return "!=", true
	case TokenGt:
		return ">", true
	case TokenGte:
		return ">=", true
	case TokenLt:
		return "<", true
	case TokenLte:
		return "<=", true
	}
	return "", false
}

func wrapParseErr(input string, err error) error {
	return &domain.OpError{
		Op:   "query.parse",
		Kind: domain.KindInvalidQuery,
		Err:  fmt.Errorf("%q: %v: %w", input, err, domain.ErrInvalidQuery),
	}
}
