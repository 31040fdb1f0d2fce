package yaml

import (
	"strings"

	"github.com/leapstack-labs/lexkit/pkg/input"
	"github.com/leapstack-labs/lexkit/pkg/lexer"
	"github.com/leapstack-labs/lexkit/pkg/token"
)

type yamlLexer = lexer.Lexer[token.Type]

// Grammar classifies YAML-flavoured text into the kinds of this package.
// It covers the token level only: block scalar bodies lex as plain text and
// indentation is reported as Whitespace.
//
// A Grammar keeps per-stream state and must not be shared between lexers.
type Grammar struct {
	docOpen   bool
	flowDepth int
}

// FindToken implements lexer.Grammar.
func (g *Grammar) FindToken(l *yamlLexer, c rune) {
	switch {
	case l.BeginOfLine() && (c == '-' || c == '.') && g.documentMarker(l):
		return
	case l.BeginOfLine() && c == '%':
		l.ConsumeWhile(notBreak)
		l.Emit1(Directive)
		return
	case c == '#':
		l.ConsumeWhile(notBreak)
		l.Emit1(Comment)
		return
	case isBlank(c):
		l.ConsumeWhile(isBlank)
		l.Emit1(Whitespace)
		return
	case c == '\n':
		l.ConsumeAndEmit(1, LineBreak)
		return
	case c == '\r':
		l.Consume(1)
		l.Optional(l.ConsumeChar('\n'))
		l.Emit1(LineBreak)
		return
	}

	g.openDocument(l)

	switch {
	case c == '[':
		g.flowDepth++
		l.ConsumeAndEmit2(Indicator, BeginSequence)
	case c == '{':
		g.flowDepth++
		l.ConsumeAndEmit2(Indicator, BeginMapping)
	case c == ']':
		g.closeFlow(l, EndSequence)
	case c == '}':
		g.closeFlow(l, EndMapping)
	case c == ',' && g.flowDepth > 0:
		l.ConsumeAndEmit(1, Indicator)
	case strings.ContainsRune("-?:", c) && g.separated(l.LookAhead(1)):
		l.ConsumeAndEmit(1, Indicator)
	case c == '|' || c == '>':
		l.ConsumeAndEmit(1, Indicator)
	case c == '&':
		g.name(l, Anchor)
	case c == '*':
		g.name(l, Alias)
	case c == '!':
		g.tag(l)
	case c == '\'':
		g.singleQuoted(l)
	case c == '"':
		g.doubleQuoted(l)
	case g.plainStart(c):
		g.plain(l)
	default:
		l.ConsumeAndEmit(1, Error)
	}
}

// ProcessPending implements lexer.Grammar. It flags unclosed flow
// collections, closes an open document, and then emits EOF on every call.
func (g *Grammar) ProcessPending(l *yamlLexer) {
	switch {
	case g.flowDepth > 0:
		g.flowDepth = 0
		l.Emit1(Error)
	case g.docOpen:
		g.docOpen = false
		l.Emit1(EndDocument)
	default:
		l.Emit1(EOF)
	}
}

// documentMarker lexes --- and ... at the start of a line.
func (g *Grammar) documentMarker(l *yamlLexer) bool {
	switch {
	case l.Check("---") > 0 && separator(l.LookAhead(3)):
		if g.docOpen {
			l.Emit1(EndDocument)
		}
		l.Consume(3)
		l.Emit2ForMark(DirectivesEnd, BeginDocument)
		g.docOpen = true
		g.flowDepth = 0
		return true
	case l.Check("...") > 0 && separator(l.LookAhead(3)):
		l.Consume(3)
		if g.docOpen {
			l.Emit2ForMark(DocumentEnd, EndDocument)
			g.docOpen = false
		} else {
			l.Emit1(DocumentEnd)
		}
		return true
	}
	return false
}

// openDocument starts an implicit document before the first content token.
func (g *Grammar) openDocument(l *yamlLexer) {
	if !g.docOpen {
		g.docOpen = true
		l.Emit1(BeginDocument)
	}
}

func (g *Grammar) closeFlow(l *yamlLexer, end token.Type) {
	if g.flowDepth == 0 {
		l.ConsumeAndEmit(1, Error)
		return
	}
	g.flowDepth--
	l.Consume(1)
	l.Emit2ForMark(Indicator, end)
}

// name lexes an anchor or alias: the indicator followed by at least one name character.
func (g *Grammar) name(l *yamlLexer, kind token.Type) {
	l.Consume(1)
	if l.OneOrMore(func() bool { return consumeIf(l, isNameChar) }) {
		l.Emit1(kind)
		return
	}
	l.Emit1(Error)
}

// tag lexes !, !!suffix, and !local tags.
func (g *Grammar) tag(l *yamlLexer) {
	l.Consume(1)
	l.Optional(l.ConsumeChar('!'))
	l.ZeroOrMore(func() bool { return consumeIf(l, isNameChar) })
	l.Emit1(Tag)
}

// singleQuoted lexes '...' where '' stands for a quote.
func (g *Grammar) singleQuoted(l *yamlLexer) {
	l.Consume(1)
	l.ZeroOrMore(func() bool {
		return l.ConsumeString("''") || consumeIf(l, func(r rune) bool { return r != '\'' })
	})
	if l.ConsumeChar('\'') {
		l.Emit1(SingleQuoted)
		return
	}
	l.Emit1(Error)
}

// doubleQuoted lexes "..." with backslash escapes.
func (g *Grammar) doubleQuoted(l *yamlLexer) {
	l.Consume(1)
	l.ZeroOrMore(func() bool {
		return l.Matches(func() bool { return l.ConsumeChar('\\') && consumeIf(l, anyRune) }) ||
			consumeIf(l, func(r rune) bool { return r != '"' && r != '\\' })
	})
	if l.ConsumeChar('"') {
		l.Emit1(DoubleQuoted)
		return
	}
	l.Emit1(Error)
}

// plainStart reports whether c may begin a plain scalar.
// Indicators followed by a separator were handled before this is consulted.
func (g *Grammar) plainStart(c rune) bool {
	if isBlank(c) || isBreak(c) {
		return false
	}
	if g.flowDepth > 0 && isFlowIndicator(c) {
		return false
	}
	return !strings.ContainsRune("#[]{}&*!|>'\"@`", c)
}

// plain lexes a plain scalar. Interior blanks belong to the scalar only when
// more scalar text follows them; trailing blanks are left for Whitespace.
func (g *Grammar) plain(l *yamlLexer) {
	l.Consume(1)
	l.ZeroOrMore(func() bool {
		offset := l.Position().Offset
		l.ConsumeWhile(isBlank)
		return g.plainChar(l, l.Position().Offset > offset)
	})
	l.Emit1(Text)
}

func (g *Grammar) plainChar(l *yamlLexer, afterBlank bool) bool {
	c, ok := l.CurrentChar().Rune()
	switch {
	case !ok, isBreak(c):
		return false
	case c == ':' && g.separated(l.LookAhead(1)):
		return false
	case c == '#' && afterBlank:
		return false
	case g.flowDepth > 0 && isFlowIndicator(c):
		return false
	}
	l.Consume(1)
	return true
}

// separated reports whether ch ends an indicator or plain scalar.
func (g *Grammar) separated(ch input.Char) bool {
	return separator(ch) || (g.flowDepth > 0 && ch.Satisfies(isFlowIndicator))
}

func separator(ch input.Char) bool {
	return ch.IsEOF() || ch.Satisfies(isBlank) || ch.Satisfies(isBreak)
}

func consumeIf(l *yamlLexer, p func(rune) bool) bool {
	if !l.CurrentChar().Satisfies(p) {
		return false
	}
	l.Consume(1)
	return true
}

func anyRune(rune) bool { return true }

func isBlank(r rune) bool { return r == ' ' || r == '\t' }

func isBreak(r rune) bool { return r == '\n' || r == '\r' }

func notBreak(r rune) bool { return !isBreak(r) }

func isFlowIndicator(r rune) bool { return strings.ContainsRune(",[]{}", r) }

func isNameChar(r rune) bool {
	return !isBlank(r) && !isBreak(r) && !isFlowIndicator(r)
}

var _ lexer.Grammar[token.Type] = (*Grammar)(nil)
