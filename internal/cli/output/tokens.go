package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/lexkit/pkg/token"
)

// Token is the rendered form of one lexed token.
type Token struct {
	Kind  string `json:"kind" yaml:"kind"`
	Abbr  string `json:"abbr" yaml:"abbr"`
	Span  string `json:"span" yaml:"span"`
	Text  string `json:"text" yaml:"text"`
	Error bool   `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewToken converts a lexed token for rendering.
func NewToken[T token.Kind](a token.Ast[T]) Token {
	return Token{
		Kind:  a.Kind.Name(),
		Abbr:  a.Kind.Abbreviation(),
		Span:  a.Span.String(),
		Text:  a.Text,
		Error: a.ParsingError,
	}
}

// File groups the tokens lexed from one source.
type File struct {
	Source string  `json:"source" yaml:"source"`
	Tokens []Token `json:"tokens" yaml:"tokens"`
	Errors int     `json:"errors" yaml:"errors"`
}

// KindInfo describes one token kind of a grammar.
type KindInfo struct {
	Name   string `json:"name" yaml:"name"`
	Abbr   string `json:"abbr" yaml:"abbr"`
	Layout bool   `json:"layout" yaml:"layout"`
}

var textEscaper = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// displayText makes control characters visible in a single table cell.
func displayText(s string) string {
	return textEscaper.Replace(s)
}

func markdownCell(s string) string {
	return strings.ReplaceAll(displayText(s), "|", `\|`)
}

// Tokens renders the tokens of each file.
func (r *Renderer) Tokens(files []File) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(files)
	case ModeYAML:
		return r.YAML(files)
	case ModeMarkdown:
		r.tokensMarkdown(files)
	default:
		r.tokensText(files)
	}
	return nil
}

func (r *Renderer) tokensText(files []File) {
	for i, f := range files {
		if i > 0 {
			r.Println("")
		}
		r.Header(2, f.Source)

		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Kind", "Span", "Text"})
		for j, tok := range f.Tokens {
			kind := r.styles.Kind.Render(tok.Kind)
			if tok.Error {
				kind = r.styles.Error.Render(tok.Kind)
			}
			t.AppendRow(table.Row{j + 1, kind, tok.Span, displayText(tok.Text)})
		}
		t.Render()

		summary := fmt.Sprintf("%d tokens, %d errors", len(f.Tokens), f.Errors)
		if f.Errors > 0 {
			r.Println(r.styles.Error.Render(summary))
		} else {
			r.Muted(summary)
		}
	}
}

func (r *Renderer) tokensMarkdown(files []File) {
	for _, f := range files {
		r.Header(2, f.Source)
		r.Println("| # | Kind | Span | Text |")
		r.Println("| --- | --- | --- | --- |")
		for j, tok := range f.Tokens {
			kind := tok.Kind
			if tok.Error {
				kind = "**" + kind + "**"
			}
			r.Printf("| %d | %s | %s | %s |\n", j+1, kind, tok.Span, markdownCell(tok.Text))
		}
		r.Println("")
		r.Printf("%d tokens, %d errors\n", len(f.Tokens), f.Errors)
		r.Println("")
	}
}

// Kinds renders a grammar's token alphabet.
func (r *Renderer) Kinds(kinds []KindInfo) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(kinds)
	case ModeYAML:
		return r.YAML(kinds)
	case ModeMarkdown:
		r.Header(1, "Token kinds")
		r.Println("| Name | Abbreviation | Layout |")
		r.Println("| --- | --- | --- |")
		for _, k := range kinds {
			r.Printf("| %s | `%s` | %t |\n", k.Name, k.Abbr, k.Layout)
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Abbr", "Layout"})
	for _, k := range kinds {
		layout := ""
		if k.Layout {
			layout = "yes"
		}
		t.AppendRow(table.Row{r.styles.Kind.Render(k.Name), k.Abbr, layout})
	}
	t.Render()
	return nil
}
