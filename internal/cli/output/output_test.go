package output_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/lexkit/internal/cli/output"
	"github.com/leapstack-labs/lexkit/internal/cli/testutil"
	"github.com/leapstack-labs/lexkit/pkg/grammars/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"
)

func sampleFiles() []output.File {
	var toks []output.Token
	errors := 0
	for _, a := range yaml.TokenizeString("a: 'x|y") {
		tok := output.NewToken(a)
		if tok.Error {
			errors++
		}
		toks = append(toks, tok)
	}
	return []output.File{{Source: "sample.yaml", Tokens: toks, Errors: errors}}
}

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want output.OutputMode
	}{
		{"", output.ModeAuto},
		{"auto", output.ModeAuto},
		{"text", output.ModeText},
		{"json", output.ModeJSON},
		{"yaml", output.ModeYAML},
		{"markdown", output.ModeMarkdown},
		{"md", output.ModeMarkdown},
		{"html", output.ModeAuto},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, output.Mode(tt.in))
		})
	}
}

func TestEffectiveMode(t *testing.T) {
	assert.Equal(t, output.ModeText, testutil.NewTestRenderer(output.ModeAuto, true).EffectiveMode())
	assert.Equal(t, output.ModeMarkdown, testutil.NewTestRenderer(output.ModeAuto, false).EffectiveMode())
	assert.Equal(t, output.ModeJSON, testutil.NewTestRenderer(output.ModeJSON, true).EffectiveMode())
}

func TestNewToken(t *testing.T) {
	files := sampleFiles()
	require.Len(t, files, 1)

	first := files[0].Tokens[1]
	assert.Equal(t, output.Token{Kind: "Text", Abbr: "tx", Span: "1:0-1:1", Text: "a"}, first)
	assert.Equal(t, 1, files[0].Errors)
}

func TestTokens_Text(t *testing.T) {
	r := testutil.NewTestRenderer(output.ModeText, false)
	require.NoError(t, r.Tokens(sampleFiles()))

	out := r.Output()
	testutil.AssertNoANSI(t, out)
	assert.Contains(t, out, "sample.yaml")
	assert.Contains(t, out, "1:0-1:1")
	assert.Contains(t, out, "1 errors")
}

func TestTokens_Markdown(t *testing.T) {
	r := testutil.NewTestRenderer(output.ModeAuto, false)
	require.NoError(t, r.Tokens(sampleFiles()))

	out := r.Output()
	testutil.AssertValidMarkdown(t, out)
	assert.True(t, strings.HasPrefix(out, "## sample.yaml\n"))
	assert.Contains(t, out, "| 2 | Text | 1:0-1:1 | a |")
	assert.Contains(t, out, `| **Error** | 1:3-1:7 | 'x\|y |`)
}

func TestTokens_JSON(t *testing.T) {
	r := testutil.NewTestRenderer(output.ModeJSON, false)
	want := sampleFiles()
	require.NoError(t, r.Tokens(want))

	var got []output.File
	require.NoError(t, json.Unmarshal(r.Out.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestTokens_YAML(t *testing.T) {
	r := testutil.NewTestRenderer(output.ModeYAML, false)
	want := sampleFiles()
	require.NoError(t, r.Tokens(want))

	var got []output.File
	require.NoError(t, yamlv3.Unmarshal(r.Out.Bytes(), &got))
	assert.Equal(t, want, got)
	assert.Contains(t, r.Output(), "source: sample.yaml")
}

func TestKinds(t *testing.T) {
	kinds := []output.KindInfo{
		{Name: "Text", Abbr: "tx"},
		{Name: "Whitespace", Abbr: "ws", Layout: true},
	}

	r := testutil.NewTestRenderer(output.ModeText, false)
	require.NoError(t, r.Kinds(kinds))
	assert.Contains(t, r.Output(), "Whitespace")
	assert.Contains(t, r.Output(), "yes")

	r = testutil.NewTestRenderer(output.ModeMarkdown, false)
	require.NoError(t, r.Kinds(kinds))
	assert.Contains(t, r.Output(), "| Whitespace | `ws` | true |")
}

func TestMessages(t *testing.T) {
	r := testutil.NewTestRenderer(output.ModeText, false)
	r.DisableColor()

	r.Error("boom")
	r.Warning("careful")
	r.Success("done")

	testutil.AssertNoANSI(t, r.ErrorOutput()+r.Output())
	assert.Contains(t, r.ErrorOutput(), "Error: boom")
	assert.Contains(t, r.ErrorOutput(), "Warning: careful")
	assert.Equal(t, "done\n", r.Output())
}
