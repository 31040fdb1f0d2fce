// Package lexer provides a backtracking, position-tracking lexer engine.
//
// The engine knows nothing about token semantics. A Grammar plugs in through
// two hooks: FindToken classifies input starting at the current character,
// and ProcessPending flushes final tokens once the input is exhausted. Both
// hooks drive the engine through its consume, emit, and combinator methods.
//
// Every emitted token records the span between the lexer's position mark and
// the input position at emission time, after which the mark moves forward.
// The combinators Matches, ZeroOrMore, and OneOrMore snapshot the token queue,
// the mark, and the input cursor together, so a failed attempt leaves no trace.
package lexer

import (
	"log/slog"

	"github.com/leapstack-labs/lexkit/pkg/input"
	"github.com/leapstack-labs/lexkit/pkg/queue"
	"github.com/leapstack-labs/lexkit/pkg/token"
)

// DefaultMaxPending bounds consecutive ProcessPending calls that emit nothing.
const DefaultMaxPending = 64

// Grammar is the extension point a concrete token grammar implements.
type Grammar[T token.Kind] interface {
	// FindToken is called with the character at the cursor. It should consume
	// input and/or emit tokens through l.
	FindToken(l *Lexer[T], c rune)
	// ProcessPending is called at end of input. It must eventually emit a
	// token, typically an end-of-stream kind. It may be called repeatedly.
	ProcessPending(l *Lexer[T])
}

// Lexer drives a Grammar over an Input.
// A Lexer is not safe for concurrent use.
type Lexer[T token.Kind] struct {
	input   input.Input
	grammar Grammar[T]
	queue   *queue.Queue[token.Data[T]]
	mark    token.Position

	current    token.Data[T]
	hasCurrent bool

	logger     *slog.Logger
	maxPending int
}

// Option configures a Lexer.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	maxPending int
}

// WithLogger sets the logger used for diagnostics about misbehaving grammars.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxPending sets how many consecutive ProcessPending calls may emit
// nothing before Advance gives up.
func WithMaxPending(n int) Option {
	return func(o *options) {
		o.maxPending = n
	}
}

// New creates a Lexer reading from in and classifying with g.
func New[T token.Kind](in input.Input, g Grammar[T], opts ...Option) *Lexer[T] {
	o := options{maxPending: DefaultMaxPending}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.maxPending < 1 {
		o.maxPending = 1
	}

	return &Lexer[T]{
		input:      in,
		grammar:    g,
		queue:      queue.New[token.Data[T]](),
		mark:       in.Position(),
		logger:     o.logger,
		maxPending: o.maxPending,
	}
}

// Advance moves to the next token.
//
// It dispatches FindToken until at least one token is queued, or
// ProcessPending once the input is exhausted, and then makes the head of the
// queue the current token. It returns false only when ProcessPending keeps
// emitting nothing; the current token is left unchanged in that case.
func (l *Lexer[T]) Advance() bool {
	idle := 0
	for l.queue.IsEmpty() {
		c, ok := l.input.Current().Rune()
		if !ok {
			l.grammar.ProcessPending(l)
			if l.queue.IsEmpty() {
				idle++
				if idle >= l.maxPending {
					l.logger.Warn("grammar emitted nothing at end of input",
						slog.String("source", l.input.SourceName()),
						slog.Int("calls", idle))
					return false
				}
			}
			continue
		}

		offset := l.input.Offset()
		l.grammar.FindToken(l, c)
		if offset == l.input.Offset() && l.queue.IsEmpty() {
			// The hook neither consumed nor emitted; force progress so the
			// loop cannot stall on the same character. A hook that emitted
			// without consuming is left alone: its tokens are delivered and
			// the next call sees the same character again.
			l.logger.Warn("grammar made no progress, skipping character",
				slog.String("source", l.input.SourceName()),
				slog.String("char", string(c)),
				slog.String("pos", l.input.Position().String()))
			l.input.Consume(1)
		}
	}

	head, _ := l.queue.Dequeue()
	l.current = head
	l.hasCurrent = true
	return true
}

// Tokens advances until a token of kind stop becomes current and returns every
// token seen, stop included. It also returns if the grammar stops emitting.
func (l *Lexer[T]) Tokens(stop T) []token.Data[T] {
	var tokens []token.Data[T]
	for l.Advance() {
		tokens = append(tokens, l.current)
		if l.current.Kind == stop {
			break
		}
	}
	return tokens
}

// Input returns the input the lexer reads from.
func (l *Lexer[T]) Input() input.Input {
	return l.input
}

// Logger returns the lexer's logger, for grammars that want to log through it.
func (l *Lexer[T]) Logger() *slog.Logger {
	return l.logger
}

// HasToken returns true once Advance has produced a current token.
func (l *Lexer[T]) HasToken() bool {
	return l.hasCurrent
}

// Token returns the kind of the current token.
func (l *Lexer[T]) Token() T {
	return l.current.Kind
}

// TokenData returns the current token with its span and offsets.
func (l *Lexer[T]) TokenData() token.Data[T] {
	return l.current
}

// TokenText returns the code points of the current token.
func (l *Lexer[T]) TokenText() []rune {
	return []rune(l.TokenString())
}

// TokenString returns the text of the current token.
func (l *Lexer[T]) TokenString() string {
	return l.input.Slice(l.current.Start, l.current.End)
}

// Pending returns the number of emitted tokens not yet handed out by Advance.
func (l *Lexer[T]) Pending() int {
	return l.queue.Size()
}

// Position returns the current input position.
func (l *Lexer[T]) Position() token.Position {
	return l.input.Position()
}

// Mark returns the position the next emitted token will start at.
func (l *Lexer[T]) Mark() token.Position {
	return l.mark
}

// SetMark moves the start of the next emitted token.
func (l *Lexer[T]) SetMark(p token.Position) {
	l.mark = p
}

// ResetMark moves the mark to the current input position, dropping whatever
// was consumed since the last emission from the next token.
func (l *Lexer[T]) ResetMark() {
	l.mark = l.input.Position()
}
