package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/lexkit/internal/cli/output"
	"github.com/leapstack-labs/lexkit/pkg/input"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ErrLexErrors is returned when any input produced error tokens.
var ErrLexErrors = errors.New("input contains lexical errors")

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [files...]",
		Short: "Tokenize YAML files",
		Long: `Tokenize one or more YAML files and print the token stream.

Reads standard input when no file is given. Files are tokenized in parallel
(see --jobs). Layout tokens are hidden unless --whitespace is set; --skip
hides further kinds by name or abbreviation (see 'lexkit kinds').

Exits with an error when any input produced error tokens.`,
		Example: `  lexkit tokens config.yaml
  cat config.yaml | lexkit tokens -o json
  lexkit tokens -w --skip Comment a.yaml b.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args)
		},
		Annotations: configKeys("output", "no_color", "encoding", "strict_utf8", "whitespace", "skip", "jobs", "max_pending"),
	}
}

func runTokens(cmd *cobra.Command, paths []string) error {
	cc := NewCommandContext(cmd)

	filter, err := newTokenFilter(cc.Cfg)
	if err != nil {
		return err
	}

	var files []output.File
	if len(paths) == 0 {
		in, err := input.ReadAll("", cmd.InOrStdin(), cc.Cfg.ReadOptions()...)
		if err != nil {
			return err
		}
		files = []output.File{cc.lexInput(in, filter)}
	} else {
		files, err = cc.lexFiles(cmd, paths, filter)
		if err != nil {
			return err
		}
	}

	if err := cc.Renderer.Tokens(files); err != nil {
		return err
	}
	return checkErrors(files)
}

// lexFiles tokenizes each path on its own engine, at most Jobs at a time.
// Results keep the order of paths.
func (cc *CommandContext) lexFiles(cmd *cobra.Command, paths []string, filter *tokenFilter) ([]output.File, error) {
	files := make([]output.File, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cc.Cfg.Jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			in, err := input.ReadFile(path, cc.Cfg.ReadOptions()...)
			if err != nil {
				return err
			}
			files[i] = cc.lexInput(in, filter)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func checkErrors(files []output.File) error {
	total := 0
	for _, f := range files {
		total += f.Errors
	}
	if total > 0 {
		return fmt.Errorf("%w: %d error token(s)", ErrLexErrors, total)
	}
	return nil
}
