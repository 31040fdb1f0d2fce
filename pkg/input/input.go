// Package input defines the character source a lexer reads from and
// provides an in-memory implementation of it.
package input

import "github.com/leapstack-labs/lexkit/pkg/token"

// Char is a code point read from an input, or the end-of-stream signal.
// The zero Char is EOF.
type Char struct {
	r  rune
	ok bool
}

// EOF is the end-of-stream signal.
var EOF = Char{}

// Some wraps a code point.
func Some(r rune) Char {
	return Char{r: r, ok: true}
}

// Rune returns the code point and true, or 0 and false at end of stream.
func (c Char) Rune() (rune, bool) {
	return c.r, c.ok
}

// IsEOF returns true if c is the end-of-stream signal.
func (c Char) IsEOF() bool {
	return !c.ok
}

// Is returns true if c holds exactly r.
func (c Char) Is(r rune) bool {
	return c.ok && c.r == r
}

// Satisfies returns true if c holds a code point accepted by p.
func (c Char) Satisfies(p func(rune) bool) bool {
	return c.ok && p(c.r)
}

func (c Char) String() string {
	if !c.ok {
		return "EOF"
	}
	return string(c.r)
}

// Mark is an opaque rewind point created by an Input.
// Only the Input that created a Mark knows how to restore it.
type Mark any

// Input is a rewindable cursor over source text with line/column tracking.
//
// Reads are pure. Consume, ConsumeWhile, and Reset are the only mutators.
type Input interface {
	// Current returns the code point at the cursor, or EOF.
	Current() Char
	// Offset returns the absolute code point offset of the cursor.
	Offset() int
	// Line returns the 1-based line of the cursor.
	Line() int
	// Column returns the 0-based column of the cursor.
	Column() int
	// Position bundles Line, Column and Offset.
	Position() token.Position

	// Consume advances n code points, stopping at end of stream.
	// n < 1 consumes a single code point.
	Consume(n int)
	// ConsumeWhile consumes code points while p holds and input remains.
	ConsumeWhile(p func(rune) bool)

	// CreateMark captures the cursor state.
	CreateMark() Mark
	// Reset restores the cursor to exactly the state captured by m.
	Reset(m Mark)

	// LookAhead returns the code point i positions past the cursor, or EOF.
	LookAhead(i int) Char
	// NonEOF returns true while the cursor is not at end of stream.
	NonEOF() bool

	// Slice returns the text between two offsets.
	Slice(start, end int) string
	// SourceName returns the origin of the text (usually a file name), or "".
	SourceName() string
}
