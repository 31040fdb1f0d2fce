package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/lexkit/internal/cli/commands"
	"github.com/leapstack-labs/lexkit/internal/cli/config"
	"github.com/leapstack-labs/lexkit/internal/cli/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	config.ResetConfig()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(bytes.NewBufferString(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_KindsJSON(t *testing.T) {
	out, _, err := runRoot(t, "", "kinds", "-o", "json")
	require.NoError(t, err)

	var kinds []output.KindInfo
	require.NoError(t, json.Unmarshal([]byte(out), &kinds))
	assert.NotEmpty(t, kinds)
	assert.Equal(t, "BeginDocument", kinds[0].Name)
}

func TestRoot_TokensFromStdin(t *testing.T) {
	out, _, err := runRoot(t, "a: [b]\n", "tokens", "-o", "yaml", "--skip", "BeginDocument,ed,eof")
	require.NoError(t, err)

	assert.Contains(t, out, "<stdin>")
	assert.Contains(t, out, "kind: BeginSequence")
	assert.NotContains(t, out, "kind: BeginDocument")
	assert.NotContains(t, out, "kind: EOF")
}

func TestRoot_ConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\nwhitespace: true\n"), 0o600))
	t.Setenv("LEXKIT_SKIP", "eof")

	out, _, err := runRoot(t, "a\n", "--config", path, "tokens")
	require.NoError(t, err)

	var files []output.File
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	require.Len(t, files, 1)

	var kinds []string
	for _, tok := range files[0].Tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []string{"BeginDocument", "Text", "LineBreak", "EndDocument"}, kinds)
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	_, errOut, err := runRoot(t, "a", "tokens", "-v", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, "tokenized")
	assert.Contains(t, errOut, "stdin")
}

func TestRoot_ErrorTokensFail(t *testing.T) {
	_, _, err := runRoot(t, "'open", "tokens", "-o", "json")
	require.ErrorIs(t, err, commands.ErrLexErrors)
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, _, err := runRoot(t, "", "tokens", "--jobs=0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jobs must be at least 1")
}

func TestRoot_Version(t *testing.T) {
	out, _, err := runRoot(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "lexkit "+Version)

	out, _, err = runRoot(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lexkit v"+Version)
}

func TestRoot_Completion(t *testing.T) {
	out, _, err := runRoot(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "lexkit")

	_, _, err = runRoot(t, "", "completion", "tcsh")
	assert.Error(t, err)
}
