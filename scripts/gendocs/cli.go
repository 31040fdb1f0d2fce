package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/leapstack-labs/lexkit/internal/cli"
	"github.com/leapstack-labs/lexkit/internal/cli/commands"
	"github.com/leapstack-labs/lexkit/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalKeys apply to every command and are left out of per-command tables.
var globalKeys = []string{"verbose", "log_level"}

// generateCLIDocs writes docs/cli/index.md and one page per command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	cmds := documentedCommands(root)
	fields := configFields()

	if err := writePage(outDir, "index.md", cliIndex(root, cmds, fields)); err != nil {
		return err
	}
	for _, cmd := range cmds {
		if err := writePage(outDir, cmd.Name()+".md", commandPage(cmd, fields)); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
	}
	return nil
}

func writePage(outDir, name string, w *MarkdownWriter) error {
	if err := os.WriteFile(filepath.Join(outDir, name), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated %s", name)
	return nil
}

func documentedCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.IsAvailableCommand() && cmd.Name() != "help" {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// commandKeys returns the config keys a command declares it reads.
func commandKeys(cmd *cobra.Command) []string {
	v := cmd.Annotations[commands.ConfigKeysAnnotation]
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

func cliIndex(root *cobra.Command, cmds []*cobra.Command, fields []ConfigField) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for lexkit")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)
	w.CodeBlock("bash", "go install github.com/leapstack-labs/lexkit/cmd/lexkit@latest")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range cmds {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name()),
			arguments(cmd),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Arguments", "Description"}, rows)

	w.Header(2, "Global Options")
	w.Paragraph("Every option except " + InlineCode("--config") + " is also a config key and an environment variable. " +
		"Flags win over the environment, which wins over " + InlineCode(config.ConfigFileName) + ".")
	rows = nil
	if f := root.PersistentFlags().Lookup("config"); f != nil {
		rows = append(rows, []string{InlineCode("--config"), "-", "-", cleanDescription(f.Usage)})
	}
	for _, f := range fields {
		rows = append(rows, []string{flagName(f.Flag, f.Short), InlineCode(f.Key), InlineCode(f.Env), f.Description})
	}
	w.Table([]string{"Flag", "Key", "Environment", "Description"}, rows)

	w.Header(2, "Exit Status")
	w.BulletList([]string{
		InlineCode("0") + " when every input was tokenized without error tokens",
		InlineCode("1") + " on invalid configuration, unreadable input, or error tokens",
	})
	return w
}

func commandPage(cmd *cobra.Command, fields []ConfigField) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.CommandPath())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Synopsis")
	w.CodeBlock("bash", cmd.UseLine())

	if local := cmd.LocalNonPersistentFlags(); local.HasAvailableFlags() {
		w.Header(2, "Options")
		w.Table([]string{"Flag", "Type", "Default", "Description"}, flagRows(local))
	}

	if keys := commandKeys(cmd); len(keys) > 0 {
		w.Header(2, "Configuration")
		w.Paragraph("Settings this command reads, in addition to " +
			InlineCode(globalKeys[0]) + " and " + InlineCode(globalKeys[1]) + ":")
		var rows [][]string
		for _, f := range fields {
			if slices.Contains(keys, f.Key) {
				rows = append(rows, []string{InlineCode(f.Key), flagName(f.Flag, f.Short), InlineCode(f.Env), f.Default})
			}
		}
		w.Table([]string{"Key", "Flag", "Environment", "Default"}, rows)
		if slices.Contains(keys, "skip") {
			w.Paragraph("Kind names and abbreviations for " + InlineCode("--skip") + " are listed in [Token Kinds](/reference/kinds).")
		}
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}
	return w
}

// arguments returns the part of the use line after the command name.
func arguments(cmd *cobra.Command) string {
	_, args, _ := strings.Cut(cmd.Use, " ")
	if args == "" {
		return "-"
	}
	return InlineCode(args)
}

func flagName(long, short string) string {
	if short == "" {
		return InlineCode(long)
	}
	return InlineCode("-"+short) + ", " + InlineCode(long)
}

func flagRows(fs *pflag.FlagSet) [][]string {
	var rows [][]string
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		def := "-"
		if f.DefValue != "" {
			def = InlineCode(f.DefValue)
		}
		rows = append(rows, []string{flagName("--"+f.Name, f.Shorthand), f.Value.Type(), def, cleanDescription(f.Usage)})
	})
	return rows
}

// dedent strips the indentation shared by all non-blank lines.
func dedent(s string) string {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	indent = max(indent, 0)
	for i, line := range lines {
		if len(line) >= indent {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimSpace(line)
		}
	}
	return strings.Join(lines, "\n")
}
