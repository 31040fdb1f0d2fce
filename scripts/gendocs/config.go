package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/leapstack-labs/lexkit/internal/cli/config"
	"github.com/spf13/pflag"
)

// ConfigField describes one configuration key.
type ConfigField struct {
	Key         string
	Flag        string
	Short       string
	Env         string
	Type        string
	Default     string
	Description string
}

// configFields derives the keys from the koanf tags of config.Config. Defaults
// come from config.Default and descriptions from the matching flag.
func configFields() []ConfigField {
	fs := pflag.NewFlagSet("lexkit", pflag.ContinueOnError)
	config.RegisterFlags(fs)

	defaults := reflect.ValueOf(config.Default()).Elem()
	typ := defaults.Type()

	var fields []ConfigField
	for i := range typ.NumField() {
		key := typ.Field(i).Tag.Get("koanf")
		if key == "" {
			continue
		}
		name := strings.ReplaceAll(key, "_", "-")

		f := ConfigField{
			Key:     key,
			Flag:    "--" + name,
			Env:     config.EnvPrefix + strings.ToUpper(key),
			Type:    typ.Field(i).Type.String(),
			Default: formatDefault(defaults.Field(i)),
		}
		if fl := fs.Lookup(name); fl != nil {
			f.Short = fl.Shorthand
			f.Description = cleanDescription(fl.Usage)
		}
		fields = append(fields, f)
	}
	return fields
}

func formatDefault(v reflect.Value) string {
	if v.Kind() == reflect.Slice {
		if v.Len() == 0 {
			return "-"
		}
		parts := make([]string, v.Len())
		for i := range v.Len() {
			parts[i] = fmt.Sprint(v.Index(i).Interface())
		}
		return InlineCode(strings.Join(parts, ","))
	}
	return InlineCode(fmt.Sprint(v.Interface()))
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "lexkit configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("lexkit reads %s (or %s) from the working directory, or the file named by %s.",
		InlineCode(config.ConfigFileName), InlineCode(config.ConfigFileNameAlt), InlineCode("--config")))

	w.Header(2, "Precedence")
	w.BulletList([]string{
		"Command-line flags",
		"Environment variables prefixed with " + InlineCode(config.EnvPrefix),
		"The configuration file",
		"Built-in defaults",
	})

	w.Header(2, "Keys")
	headers := []string{"Key", "Type", "Default", "Flag", "Environment", "Description"}
	var rows [][]string
	for _, f := range configFields() {
		rows = append(rows, []string{
			InlineCode(f.Key),
			f.Type,
			f.Default,
			InlineCode(f.Flag),
			InlineCode(f.Env),
			f.Description,
		})
	}
	w.Table(headers, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `output: json
whitespace: true
skip:
  - EOF
  - BeginDocument
jobs: 8`)

	filename := filepath.Join(outDir, "configuration.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}
