package token

import (
	"fmt"
	"math"
)

// Coordinate bounds for positions and spans.
const (
	MinLine   = 1           // first line of any input
	MinColumn = 0           // first column of any line
	MaxBound  = math.MaxInt // open-ended line/column
)

// Position represents a location in the source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 0-based column, counted in code points
	Offset int // 0-based code point offset
}

// IsValid returns true if the position lies inside the coordinate bounds.
func (p Position) IsValid() bool {
	return p.Line >= MinLine && p.Column >= MinColumn
}

// Before reports whether p sorts strictly before other in (line, column) order.
func (p Position) Before(other Position) bool {
	return before(p.Line, p.Column, other.Line, other.Column)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a region of source text from one (line, column) point to another.
type Span struct {
	LineFrom   int
	ColumnFrom int
	LineTo     int
	ColumnTo   int
}

// Sentinel spans.
var (
	// ZeroSpan marks "nothing yet": both points at the start of the input.
	ZeroSpan = Span{LineFrom: MinLine, ColumnFrom: MinColumn, LineTo: MinLine, ColumnTo: MinColumn}
	// AllSpan covers the whole input.
	AllSpan = Span{LineFrom: MinLine, ColumnFrom: MinColumn, LineTo: MaxBound, ColumnTo: MaxBound}
)

// BuildSpan creates a span from two (line, column) points.
// The sentinel patterns collapse to ZeroSpan and AllSpan; anything else is
// stored verbatim, including inverted pairs (see Inverted).
func BuildSpan(line1, column1, line2, column2 int) Span {
	if line1 == MinLine && column1 == MinColumn {
		switch {
		case line2 == MinLine && column2 == MinColumn:
			return ZeroSpan
		case line2 == MaxBound && column2 == MaxBound:
			return AllSpan
		}
	}
	return Span{LineFrom: line1, ColumnFrom: column1, LineTo: line2, ColumnTo: column2}
}

// SpanBetween creates the span going from one position to another.
func SpanBetween(from, to Position) Span {
	return BuildSpan(from.Line, from.Column, to.Line, to.Column)
}

// Extent returns the smallest span covering both s and other.
// The "from" and "to" sides are compared independently.
func (s Span) Extent(other Span) Span {
	first := other
	if before(s.LineFrom, s.ColumnFrom, other.LineFrom, other.ColumnFrom) {
		first = s
	}
	last := s
	if before(s.LineTo, s.ColumnTo, other.LineTo, other.ColumnTo) {
		last = other
	}
	return BuildSpan(first.LineFrom, first.ColumnFrom, last.LineTo, last.ColumnTo)
}

// From returns the starting point of the span. The offset is unknown and left at zero.
func (s Span) From() Position {
	return Position{Line: s.LineFrom, Column: s.ColumnFrom}
}

// To returns the ending point of the span. The offset is unknown and left at zero.
func (s Span) To() Position {
	return Position{Line: s.LineTo, Column: s.ColumnTo}
}

// Inverted returns true if the "from" point sorts after the "to" point.
func (s Span) Inverted() bool {
	return before(s.LineTo, s.ColumnTo, s.LineFrom, s.ColumnFrom)
}

// IsEmpty returns true if the span starts and ends at the same point.
func (s Span) IsEmpty() bool {
	return s.LineFrom == s.LineTo && s.ColumnFrom == s.ColumnTo
}

// Contains returns true if the span contains the given position (half-open on the right).
func (s Span) Contains(p Position) bool {
	return !before(p.Line, p.Column, s.LineFrom, s.ColumnFrom) &&
		before(p.Line, p.Column, s.LineTo, s.ColumnTo)
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.LineFrom, s.ColumnFrom, s.LineTo, s.ColumnTo)
}

// before is the lexicographic (line, column) order.
func before(line1, column1, line2, column2 int) bool {
	return line1 < line2 || (line1 == line2 && column1 < column2)
}
