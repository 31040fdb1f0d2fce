package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/leapstack-labs/lexkit/pkg/grammars/yaml"
	"github.com/spf13/cobra"
)

// VersionInfo is the build information set by the linker.
type VersionInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info VersionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the lexkit version, build details and the bundled grammar.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "lexkit v%s\n", info.Version)
			_, _ = fmt.Fprintf(out, "  commit:  %s\n", commitOf(info))
			_, _ = fmt.Fprintf(out, "  built:   %s\n", orUnknown(info.BuildDate))
			_, _ = fmt.Fprintf(out, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			_, _ = fmt.Fprintf(out, "  grammar: yaml (%d token kinds)\n", len(yaml.Kinds()))
		},
	}
}

// commitOf prefers the linker-provided commit and falls back to the VCS
// revision stamped by the go command.
func commitOf(info VersionInfo) string {
	if info.Commit != "" && info.Commit != "unknown" {
		return info.Commit
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return "unknown"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
