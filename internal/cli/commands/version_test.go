package commands

import (
	"bytes"
	"fmt"
	"runtime"
	"testing"

	"github.com/leapstack-labs/lexkit/pkg/grammars/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		info    VersionInfo
		wantOut []string
	}{
		{
			name:    "release build",
			info:    VersionInfo{Version: "1.2.3", Commit: "abc123", BuildDate: "2026-01-02"},
			wantOut: []string{"lexkit v1.2.3\n", "commit:  abc123\n", "built:   2026-01-02\n"},
		},
		{
			name:    "dev build",
			info:    VersionInfo{Version: "dev"},
			wantOut: []string{"lexkit vdev\n", "built:   unknown\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.info)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{})

			require.NoError(t, cmd.Execute())

			output := buf.String()
			for _, want := range tt.wantOut {
				assert.Contains(t, output, want)
			}
			assert.Contains(t, output, "go:      "+runtime.Version())
			assert.Contains(t, output, fmt.Sprintf("grammar: yaml (%d token kinds)", len(yaml.Kinds())))
		})
	}
}

func TestVersionCommand_RejectsArgs(t *testing.T) {
	cmd := NewVersionCommand(VersionInfo{Version: "dev"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestCommitOf(t *testing.T) {
	assert.Equal(t, "abc", commitOf(VersionInfo{Commit: "abc"}))
	assert.NotEmpty(t, commitOf(VersionInfo{Commit: "unknown"}))
}
