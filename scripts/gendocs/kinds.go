package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/leapstack-labs/lexkit/pkg/grammars/yaml"
)

// generateKindsDocs generates the token kind reference of the YAML grammar.
func generateKindsDocs(outDir string) error {
	log.Printf("Generating token kind docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()

	w.Frontmatter("Token Kinds", "Token kinds emitted by the YAML grammar")
	w.GeneratedMarker()

	w.Header(1, "Token Kinds")
	w.Paragraph("Every token the YAML grammar emits has one of these kinds. " +
		"Both the name and the abbreviation are accepted by " + InlineCode("--skip") + ". " +
		"Layout kinds are hidden unless " + InlineCode("--whitespace") + " is set.")

	headers := []string{"Kind", "Abbreviation", "Layout"}
	var rows [][]string
	for _, k := range yaml.Kinds() {
		rows = append(rows, []string{k.Name(), InlineCode(k.Abbreviation()), strconv.FormatBool(yaml.IsLayout(k))})
	}
	w.Table(headers, rows)

	w.Header(2, "Errors")
	w.Paragraph("Malformed input produces " + InlineCode(yaml.Error.Name()) +
		" tokens rather than stopping the lexer. The stream always ends with " + InlineCode(yaml.EOF.Name()) + ".")

	filename := filepath.Join(outDir, "kinds.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated kinds.md")
	return nil
}
