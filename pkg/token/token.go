// Package token defines source positions, spans, and the token values a lexer emits.
//
// A grammar supplies its own token alphabet through the Kind constraint.
// The Type registry in this package is a ready-made alphabet for grammars
// that do not need their own kind type.
package token

// Kind is the constraint a grammar's token alphabet satisfies.
type Kind interface {
	comparable
	// Name is the full, human-readable name of the kind.
	Name() string
	// Abbreviation is a short code used in compact dumps.
	Abbreviation() string
}

// Data associates one emitted token with the span and offsets it covers.
type Data[T Kind] struct {
	Kind  T
	Span  Span
	Start int // offset of the first code point
	End   int // offset just past the last code point
}

// Len returns the number of code points the token consumed.
func (d Data[T]) Len() int {
	return d.End - d.Start
}

// RangeTo computes the span from the start of d to the end of to.
func (d Data[T]) RangeTo(to Data[T]) Span {
	return BuildSpan(d.Span.LineFrom, d.Span.ColumnFrom, to.Span.LineTo, to.Span.ColumnTo)
}

// Ast is a terminal handed to a parser: a kind, its literal text and span,
// and whether the lexer flagged the text as malformed.
type Ast[T Kind] struct {
	Kind         T
	Text         string
	Span         Span
	ParsingError bool
}

// NewAst builds an Ast from emitted token data and its text.
func NewAst[T Kind](d Data[T], text string, parsingError bool) Ast[T] {
	return Ast[T]{
		Kind:         d.Kind,
		Text:         text,
		Span:         d.Span,
		ParsingError: parsingError,
	}
}
