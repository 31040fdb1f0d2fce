package lexer

import (
	"github.com/leapstack-labs/lexkit/pkg/input"
	"github.com/leapstack-labs/lexkit/pkg/token"
)

// State is a checkpoint of the token queue, the mark, and the input cursor.
// It is only meaningful for the Lexer that produced it.
type State struct {
	queueSize int
	position  token.Position
	mark      input.Mark
}

// SaveState captures a checkpoint.
func (l *Lexer[T]) SaveState() State {
	return State{
		queueSize: l.queue.Size(),
		position:  l.mark,
		mark:      l.input.CreateMark(),
	}
}

// RestoreState rewinds the queue, the mark, and the input to s.
// Tokens emitted since s are discarded.
func (l *Lexer[T]) RestoreState(s State) {
	l.queue.ReduceTo(s.queueSize)
	l.mark = s.position
	l.input.Reset(s.mark)
}

// Matches runs p and undoes everything it did if it returns false.
func (l *Lexer[T]) Matches(p func() bool) bool {
	s := l.SaveState()
	if p() {
		return true
	}
	l.RestoreState(s)
	return false
}

// ZeroOrMore runs p while it succeeds and input remains, then undoes only the
// final, failed attempt. It always returns true. A success that consumed no
// input ends the repetition.
func (l *Lexer[T]) ZeroOrMore(p func() bool) bool {
	s := l.SaveState()
	for l.input.NonEOF() {
		offset := l.input.Offset()
		if !p() {
			break
		}
		s = l.SaveState()
		if l.input.Offset() == offset {
			break
		}
	}
	l.RestoreState(s)
	return true
}

// OneOrMore is ZeroOrMore that requires the first attempt to succeed.
// If it fails, everything is undone and false is returned.
func (l *Lexer[T]) OneOrMore(p func() bool) bool {
	if !l.Matches(p) {
		return false
	}
	return l.ZeroOrMore(p)
}
