package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/lexkit/internal/cli/output"
	"github.com/leapstack-labs/lexkit/pkg/input"
	"github.com/spf13/cobra"
)

const (
	replPrompt     = "lexkit> "
	replContPrompt = "   ...> "
	replSource     = "<repl>"
)

// ReplOptions holds options for the repl command.
type ReplOptions struct {
	History string
}

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	opts := &ReplOptions{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Tokenize YAML interactively",
		Long: `Start an interactive session that tokenizes each line you type.

End a line with a backslash to continue the input on the next line.
Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd, opts)
		},
		Annotations: configKeys("output", "no_color", "whitespace", "skip", "max_pending"),
	}

	cmd.Flags().StringVar(&opts.History, "history", "", "History file (no history when empty)")
	return cmd
}

func runRepl(cmd *cobra.Command, opts *ReplOptions) error {
	session, err := newReplSession(NewCommandContext(cmd))
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     opts.History,
		AutoComplete:    newReplCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "lexkit REPL (YAML grammar)")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			session.reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		prompt, quit := session.handleLine(line)
		if quit {
			break
		}
		rl.SetPrompt(prompt)
	}
	return nil
}

// replSession holds the state of one REPL run, independent of readline.
type replSession struct {
	cc     *CommandContext
	filter *tokenFilter
	buf    strings.Builder
}

func newReplSession(cc *CommandContext) (*replSession, error) {
	filter, err := newTokenFilter(cc.Cfg)
	if err != nil {
		return nil, err
	}
	return &replSession{cc: cc, filter: filter}, nil
}

func (s *replSession) reset() {
	s.buf.Reset()
}

// handleLine processes one input line. It returns the prompt for the next
// line and whether the session should end.
func (s *replSession) handleLine(line string) (string, bool) {
	if s.buf.Len() == 0 {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return replPrompt, false
		}
		if strings.HasPrefix(trimmed, ".") {
			return replPrompt, s.handleDotCommand(trimmed)
		}
	}

	if rest, ok := strings.CutSuffix(line, `\`); ok {
		s.buf.WriteString(rest)
		s.buf.WriteString("\n")
		return replContPrompt, false
	}

	s.buf.WriteString(line)
	src := s.buf.String()
	s.buf.Reset()

	r := s.cc.Renderer
	file := s.cc.lexInput(input.NewStringInput(replSource, src), s.filter)
	if err := r.Tokens([]output.File{file}); err != nil {
		r.Error(err.Error())
	}
	return replPrompt, false
}

// handleDotCommand runs a dot-command and reports whether it ends the session.
func (s *replSession) handleDotCommand(line string) bool {
	r := s.cc.Renderer
	parts := strings.Fields(line)

	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return true
	case ".help":
		printReplHelp(r)
	case ".ws", ".whitespace":
		s.filter.whitespace = !s.filter.whitespace
		state := "hidden"
		if s.filter.whitespace {
			state = "shown"
		}
		r.Muted("layout tokens " + state)
	case ".kinds":
		if err := r.Kinds(kindInfos()); err != nil {
			r.Error(err.Error())
		}
	default:
		r.Error(fmt.Sprintf("unknown command %s (try .help)", parts[0]))
	}
	return false
}

func printReplHelp(r *output.Renderer) {
	r.Println("Commands:")
	r.Println("  .help     Show this help")
	r.Println("  .ws       Toggle whitespace, line break and comment tokens")
	r.Println("  .kinds    List token kinds")
	r.Println("  .quit     Exit the REPL")
	r.Println("")
	r.Println(`End a line with \ to continue it on the next line.`)
}

func newReplCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".ws"),
		readline.PcItem(".kinds"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
