// Package yaml is a YAML-flavoured token grammar for the lexer engine.
//
// It works at the token level only: it reports document markers,
// indicators, flow collection boundaries, scalars, properties, comments and
// layout, and flags malformed pieces with the Error kind. Building a node
// tree from the tokens is left to a parser.
package yaml

import (
	"github.com/leapstack-labs/lexkit/pkg/input"
	"github.com/leapstack-labs/lexkit/pkg/lexer"
	"github.com/leapstack-labs/lexkit/pkg/token"
)

// NewLexer creates a lexer running a fresh Grammar over in.
func NewLexer(in input.Input, opts ...lexer.Option) *lexer.Lexer[token.Type] {
	return lexer.New[token.Type](in, &Grammar{}, opts...)
}

// Tokenize lexes in up to and including EOF.
// Tokens of kind Error are marked with ParsingError.
func Tokenize(in input.Input, opts ...lexer.Option) []token.Ast[token.Type] {
	l := NewLexer(in, opts...)

	var tokens []token.Ast[token.Type]
	for l.Advance() {
		d := l.TokenData()
		tokens = append(tokens, token.NewAst(d, l.TokenString(), d.Kind == Error))
		if d.Kind == EOF {
			break
		}
	}
	return tokens
}

// TokenizeString lexes src.
func TokenizeString(src string, opts ...lexer.Option) []token.Ast[token.Type] {
	return Tokenize(input.NewStringInput("", src), opts...)
}

// HasErrors returns true if any token is flagged as a parsing error.
func HasErrors(tokens []token.Ast[token.Type]) bool {
	for _, t := range tokens {
		if t.ParsingError {
			return true
		}
	}
	return false
}
