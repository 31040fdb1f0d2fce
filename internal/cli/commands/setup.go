package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/lexkit/internal/cli/config"
	"github.com/leapstack-labs/lexkit/internal/cli/output"
	"github.com/leapstack-labs/lexkit/pkg/grammars/yaml"
	"github.com/leapstack-labs/lexkit/pkg/input"
	"github.com/leapstack-labs/lexkit/pkg/lexer"
	"github.com/leapstack-labs/lexkit/pkg/token"
	"github.com/spf13/cobra"
)

// ConfigKeysAnnotation names the cobra annotation listing, comma separated,
// the config keys a command reads besides verbose and log_level.
const ConfigKeysAnnotation = "lexkit/config-keys"

func configKeys(keys ...string) map[string]string {
	return map[string]string{ConfigKeysAnnotation: strings.Join(keys, ",")}
}

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds a CommandContext from the config and logger the
// root command stored in the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
	if cfg.NoColor {
		r.DisableColor()
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// tokenFilter decides which tokens are shown.
type tokenFilter struct {
	whitespace bool
	skip       map[token.Type]bool
}

// newTokenFilter resolves the configured kind names and abbreviations.
func newTokenFilter(cfg *config.Config) (*tokenFilter, error) {
	f := &tokenFilter{whitespace: cfg.Whitespace, skip: make(map[token.Type]bool)}
	for _, name := range cfg.Skip {
		t, ok := token.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown token kind %q", name)
		}
		f.skip[t] = true
	}
	return f, nil
}

func (f *tokenFilter) keep(a token.Ast[token.Type]) bool {
	if f.skip[a.Kind] {
		return false
	}
	return f.whitespace || !yaml.IsLayout(a.Kind)
}

// lexInput tokenizes in with the YAML grammar. Errors are counted before
// filtering so hidden error tokens still fail the command.
func (cc *CommandContext) lexInput(in input.Input, filter *tokenFilter) output.File {
	source := sourceName(in.SourceName())
	logger := cc.Logger.With("source", source)

	tokens := yaml.Tokenize(in, lexer.WithLogger(logger), lexer.WithMaxPending(cc.Cfg.MaxPending))

	file := output.File{Source: source, Tokens: []output.Token{}}
	for _, a := range tokens {
		if a.ParsingError {
			file.Errors++
		}
		if filter.keep(a) {
			file.Tokens = append(file.Tokens, output.NewToken(a))
		}
	}

	logger.Debug("tokenized", "tokens", len(tokens), "shown", len(file.Tokens), "errors", file.Errors)
	return file
}

func sourceName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "<stdin>"
	}
	return name
}
