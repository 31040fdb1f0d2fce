package yaml

import "github.com/leapstack-labs/lexkit/pkg/token"

// Token kinds of the YAML grammar.
var (
	// Document structure
	BeginDocument = token.Register("BeginDocument", "bd") // zero-width, or shares the span of ---
	EndDocument   = token.Register("EndDocument", "ed")   // zero-width, or shares the span of ...
	DirectivesEnd = token.Register("DirectivesEnd", "de") // ---
	DocumentEnd   = token.Register("DocumentEnd", "dn")   // ...
	Directive     = token.Register("Directive", "dr")     // %YAML 1.2

	// Flow collections; the begin markers are zero-width after the indicator,
	// the end markers share the indicator's span.
	BeginSequence = token.Register("BeginSequence", "bs")
	EndSequence   = token.Register("EndSequence", "es")
	BeginMapping  = token.Register("BeginMapping", "bm")
	EndMapping    = token.Register("EndMapping", "em")

	// Content
	Indicator    = token.Register("Indicator", "in") // - ? : , [ ] { } | >
	Anchor       = token.Register("Anchor", "an")    // &name
	Alias        = token.Register("Alias", "al")     // *name
	Tag          = token.Register("Tag", "tg")       // !tag, !!str
	Text         = token.Register("Text", "tx")      // plain scalar
	SingleQuoted = token.Register("SingleQuoted", "sq")
	DoubleQuoted = token.Register("DoubleQuoted", "dq")

	// Layout
	Comment    = token.Register("Comment", "cm")
	Whitespace = token.Register("Whitespace", "ws")
	LineBreak  = token.Register("LineBreak", "lb")

	// Error marks malformed input; EOF ends the stream.
	Error = token.Register("Error", "er")
	EOF   = token.Register("EOF", "eof")
)

// Kinds returns every kind of the grammar in declaration order.
func Kinds() []token.Type {
	return []token.Type{
		BeginDocument, EndDocument, DirectivesEnd, DocumentEnd, Directive,
		BeginSequence, EndSequence, BeginMapping, EndMapping,
		Indicator, Anchor, Alias, Tag, Text, SingleQuoted, DoubleQuoted,
		Comment, Whitespace, LineBreak,
		Error, EOF,
	}
}

// IsLayout returns true for kinds that carry no content.
func IsLayout(t token.Type) bool {
	return t == Whitespace || t == LineBreak || t == Comment
}
