package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/lexkit/internal/cli/output"
	"github.com/leapstack-labs/lexkit/pkg/input"
	"github.com/spf13/cobra"
)

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	Debounce time.Duration
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-tokenize a file whenever it changes",
		Long: `Tokenize a file, then tokenize it again after every change until
interrupted. Each run lexes the whole file from the start.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, cmd, args[0], opts)
		},
		Annotations: configKeys("output", "no_color", "encoding", "strict_utf8", "whitespace", "skip", "max_pending"),
	}

	cmd.Flags().DurationVar(&opts.Debounce, "debounce", 100*time.Millisecond, "Quiet period before re-tokenizing")
	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, path string, opts *WatchOptions) error {
	cc := NewCommandContext(cmd)
	filter, err := newTokenFilter(cc.Cfg)
	if err != nil {
		return err
	}

	render := func() {
		in, err := input.ReadFile(path, cc.Cfg.ReadOptions()...)
		if err != nil {
			cc.Renderer.Error(err.Error())
			return
		}
		if err := cc.Renderer.Tokens([]output.File{cc.lexInput(in, filter)}); err != nil {
			cc.Renderer.Error(err.Error())
		}
	}

	render()
	cc.Renderer.Muted(fmt.Sprintf("Watching %s (Ctrl+C to stop)", path))
	return watchFile(ctx, path, opts.Debounce, cc.Logger, render)
}

// watchFile calls onChange once writes to path have settled for debounce,
// until ctx is done. Calls to onChange never overlap.
func watchFile(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file instead of writing to it, which drops a
	// watch on the file itself.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			logger.Debug("change detected", "file", path, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				mu.Lock()
				defer mu.Unlock()
				onChange()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
