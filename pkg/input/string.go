package input

import (
	"fmt"

	"github.com/leapstack-labs/lexkit/pkg/token"
)

// StringInput is an Input over text held fully in memory.
type StringInput struct {
	name string
	text []rune
	pos  int // current offset in text
	line int // current line number (1-based)
	col  int // current column number (0-based)
}

// stringMark is the Mark type of StringInput.
type stringMark struct {
	owner *StringInput
	pos   int
	line  int
	col   int
}

// NewStringInput creates an Input over text. name may be empty.
func NewStringInput(name, text string) *StringInput {
	return &StringInput{
		name: name,
		text: []rune(text),
		line: token.MinLine,
		col:  token.MinColumn,
	}
}

// Current returns the code point at the cursor.
func (s *StringInput) Current() Char {
	return s.LookAhead(0)
}

// Offset returns the code point offset of the cursor.
func (s *StringInput) Offset() int { return s.pos }

// Line returns the current line.
func (s *StringInput) Line() int { return s.line }

// Column returns the current column.
func (s *StringInput) Column() int { return s.col }

// Position returns the current position.
func (s *StringInput) Position() token.Position {
	return token.Position{Line: s.line, Column: s.col, Offset: s.pos}
}

// Consume advances n code points.
func (s *StringInput) Consume(n int) {
	if n < 1 {
		n = 1
	}
	for ; n > 0 && s.pos < len(s.text); n-- {
		s.advance()
	}
}

// ConsumeWhile consumes code points while p holds.
func (s *StringInput) ConsumeWhile(p func(rune) bool) {
	for s.pos < len(s.text) && p(s.text[s.pos]) {
		s.advance()
	}
}

func (s *StringInput) advance() {
	if s.text[s.pos] == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	s.pos++
}

// CreateMark captures the cursor.
func (s *StringInput) CreateMark() Mark {
	return stringMark{owner: s, pos: s.pos, line: s.line, col: s.col}
}

// Reset restores the cursor to m.
// It panics if m was not created by this input.
func (s *StringInput) Reset(m Mark) {
	sm, ok := m.(stringMark)
	if !ok || sm.owner != s {
		panic(fmt.Sprintf("input: mark %T does not belong to this input", m))
	}
	s.pos, s.line, s.col = sm.pos, sm.line, sm.col
}

// LookAhead returns the code point i positions past the cursor.
func (s *StringInput) LookAhead(i int) Char {
	at := s.pos + i
	if i < 0 || at >= len(s.text) {
		return EOF
	}
	return Some(s.text[at])
}

// NonEOF returns true while input remains.
func (s *StringInput) NonEOF() bool {
	return s.pos < len(s.text)
}

// Slice returns the text between two offsets, clamped to the input.
func (s *StringInput) Slice(start, end int) string {
	start = max(start, 0)
	end = min(end, len(s.text))
	if start >= end {
		return ""
	}
	return string(s.text[start:end])
}

// Len returns the number of code points in the input.
func (s *StringInput) Len() int {
	return len(s.text)
}

// SourceName returns the name given at construction.
func (s *StringInput) SourceName() string {
	return s.name
}

var _ Input = (*StringInput)(nil)
