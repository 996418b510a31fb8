package query

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal
	TokenIdent
	TokenString
	TokenColon // ':' or '='
	TokenLParen
	TokenRParen
	TokenAnd
	TokenOr
	TokenNot
	TokenNeq // !=
	TokenGt  // >
	TokenGte // >=
	TokenLt  // <
	TokenLte // <=
)

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "end of query"
	case TokenString:
		return fmt.Sprintf("%q at %d", t.Value, t.Pos)
	default:
		return fmt.Sprintf("'%s' at %d", t.Value, t.Pos)
	}
}

// Lexer tokenizes query input.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, pos: 0}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}
	}

	start := l.pos
	ch := l.input[l.pos]

	switch ch {
	case ':', '=':
		l.pos++
		return Token{Type: TokenColon, Value: string(ch), Pos: start}
	case '(':
		l.pos++
		return Token{Type: TokenLParen, Value: "(", Pos: start}
	case ')':
		l.pos++
		return Token{Type: TokenRParen, Value: ")", Pos: start}
	case '!':
		if l.peek(1) == '=' {
			l.pos += 2
			return Token{Type: TokenNeq, Value: "!=", Pos: start}
		}
		l.pos++
		return Token{Type: TokenIllegal, Value: "!", Pos: start}
	case '>':
		if l.peek(1) == '=' {
			l.pos += 2
			return Token{Type: TokenGte, Value: ">=", Pos: start}
		}
		l.pos++
		return Token{Type: TokenGt, Value: ">", Pos: start}
	case '<':
		if l.peek(1) == '=' {
			l.pos += 2
			return Token{Type: TokenLte, Value: "<=", Pos: start}
		}
		l.pos++
		return Token{Type: TokenLt, Value: "<", Pos: start}
	case '"':
		return l.readString()
	}

	r, width := utf8.DecodeRuneInString(l.input[l.pos:])
	if isIdentStart(r) || (ch == '-' && isDigit(l.peek(1))) {
		return l.readIdent()
	}

	l.pos += width
	return Token{Type: TokenIllegal, Value: string(r), Pos: start}
}

func (l *Lexer) peek(offset int) byte {
	if l.pos+offset < len(l.input) {
		return l.input[l.pos+offset]
	}
	return 0
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		r, width := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += width
	}
}

func (l *Lexer) readString() Token {
	start := l.pos
	l.pos++ // skip opening quote

	var b strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '"' {
			l.pos++
			return Token{Type: TokenString, Value: b.String(), Pos: start}
		}
		if ch == '\\' && l.pos+1 < len(l.input) {
			b.WriteByte(l.input[l.pos+1])
			l.pos += 2
			continue
		}
		b.WriteByte(ch)
		l.pos++
	}

	return Token{Type: TokenIllegal, Value: "unterminated string", Pos: start}
}

func (l *Lexer) readIdent() Token {
	start := l.pos
	_, width := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += width
	for l.pos < len(l.input) {
		r, width := utf8.DecodeRuneInString(l.input[l.pos:])
		if !isIdentChar(r) {
			break
		}
		l.pos += width
	}
	value := l.input[start:l.pos]

	switch strings.ToUpper(value) {
	case "AND":
		return Token{Type: TokenAnd, Value: "AND", Pos: start}
	case "OR":
		return Token{Type: TokenOr, Value: "OR", Pos: start}
	case "NOT":
		return Token{Type: TokenNot, Value: "NOT", Pos: start}
	}

	return Token{Type: TokenIdent, Value: value, Pos: start}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || unicode.IsMark(r) || r == '-' || r == '.'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
