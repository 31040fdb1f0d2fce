package lexer

import (
	"github.com/leapstack-labs/lexkit/pkg/input"
	"github.com/leapstack-labs/lexkit/pkg/token"
)

// Emit1 emits t over the region between the mark and the current position,
// then moves the mark to the current position. It always returns true so it
// can end a combinator predicate.
func (l *Lexer[T]) Emit1(t T) bool {
	from := l.mark
	to := l.input.Position()
	l.queue.Append(token.Data[T]{
		Kind:  t,
		Span:  token.SpanBetween(from, to),
		Start: from.Offset,
		End:   to.Offset,
	})
	l.mark = to
	return true
}

// Emit2 emits t1 then t2. Since the mark moves after t1, t2 is empty.
func (l *Lexer[T]) Emit2(t1, t2 T) bool {
	l.Emit1(t1)
	return l.Emit1(t2)
}

// Emit2ForMark emits t1 and t2 over the same region.
func (l *Lexer[T]) Emit2ForMark(t1, t2 T) bool {
	initial := l.mark
	l.Emit1(t1)
	l.mark = initial
	return l.Emit1(t2)
}

// ConsumeAndEmit consumes n code points and emits t over them.
func (l *Lexer[T]) ConsumeAndEmit(n int, t T) bool {
	l.input.Consume(n)
	return l.Emit1(t)
}

// ConsumeAndEmit2 consumes one code point, emits t1 over it, and emits an
// empty t2 right after.
func (l *Lexer[T]) ConsumeAndEmit2(t1, t2 T) bool {
	l.input.Consume(1)
	l.Emit1(t1)
	return l.Emit1(t2)
}

// CurrentChar returns the character at the cursor.
func (l *Lexer[T]) CurrentChar() input.Char {
	return l.input.Current()
}

// LookAhead returns the character n positions past the cursor.
func (l *Lexer[T]) LookAhead(n int) input.Char {
	return l.input.LookAhead(n)
}

// NonEOF returns true while input remains.
func (l *Lexer[T]) NonEOF() bool {
	return l.input.NonEOF()
}

// Consume advances n code points (n < 1 means one).
func (l *Lexer[T]) Consume(n int) {
	l.input.Consume(n)
}

// ConsumeWhile consumes while p holds.
func (l *Lexer[T]) ConsumeWhile(p func(rune) bool) {
	l.input.ConsumeWhile(p)
}

// ConsumeChar consumes c if it is the current character.
func (l *Lexer[T]) ConsumeChar(c rune) bool {
	if !l.input.Current().Is(c) {
		return false
	}
	l.input.Consume(1)
	return true
}

// ConsumeString consumes s if the input continues with it.
// The empty string never matches.
func (l *Lexer[T]) ConsumeString(s string) bool {
	n := l.Check(s)
	if n == 0 {
		return false
	}
	l.input.Consume(n)
	return true
}

// Check returns the number of code points in s if the input continues with
// s, or 0 otherwise. Nothing is consumed.
func (l *Lexer[T]) Check(s string) int {
	n := 0
	for _, c := range s {
		if !l.input.LookAhead(n).Is(c) {
			return 0
		}
		n++
	}
	return n
}

// BeginOfLine returns true if the cursor is at column 0.
func (l *Lexer[T]) BeginOfLine() bool {
	return l.input.Column() == token.MinColumn
}

// Optional always succeeds. It reads as documentation in combinator chains:
//
//	l.ConsumeChar('-') && l.Optional(l.ConsumeChar(' '))
func (l *Lexer[T]) Optional(bool) bool {
	return true
}
