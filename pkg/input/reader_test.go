package input_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/lexkit/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// utf16 encodes ASCII text with an optional byte order mark.
func utf16(text string, bigEndian, bom bool) []byte {
	var buf bytes.Buffer
	if bom {
		if bigEndian {
			buf.Write([]byte{0xFE, 0xFF})
		} else {
			buf.Write([]byte{0xFF, 0xFE})
		}
	}
	for _, r := range text {
		if bigEndian {
			buf.Write([]byte{0, byte(r)})
		} else {
			buf.Write([]byte{byte(r), 0})
		}
	}
	return buf.Bytes()
}

func TestReadAllEncodings(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		encoding string
		want     string
	}{
		{name: "plain utf-8", data: []byte("key: value"), encoding: "", want: "key: value"},
		{name: "auto strips utf-8 bom", data: append([]byte{0xEF, 0xBB, 0xBF}, "a: 1"...), encoding: "auto", want: "a: 1"},
		{name: "explicit utf-8 strips bom", data: append([]byte{0xEF, 0xBB, 0xBF}, "a: 1"...), encoding: "UTF-8", want: "a: 1"},
		{name: "utf8 alias", data: []byte("x"), encoding: "utf8", want: "x"},
		{name: "auto detects utf-16le bom", data: utf16("a: b", false, true), encoding: "auto", want: "a: b"},
		{name: "auto detects utf-16be bom", data: utf16("a: b", true, true), encoding: "auto", want: "a: b"},
		{name: "explicit utf-16le", data: utf16("- x", false, false), encoding: "utf-16le", want: "- x"},
		{name: "explicit utf-16be", data: utf16("- x", true, false), encoding: "utf-16be", want: "- x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := input.ReadAll("test", bytes.NewReader(tt.data), input.WithEncoding(tt.encoding))
			require.NoError(t, err)
			assert.Equal(t, tt.want, in.Slice(0, in.Len()))
			assert.Equal(t, "test", in.SourceName())
		})
	}
}

func TestReadAllUnknownEncoding(t *testing.T) {
	_, err := input.ReadAll("test", strings.NewReader("x"), input.WithEncoding("ebcdic"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, input.ErrUnknownEncoding))
	assert.Contains(t, err.Error(), "ebcdic")
}

func TestReadAllInvalidUTF8(t *testing.T) {
	data := []byte("ok: \xff\xfe!")

	t.Run("lenient replaces", func(t *testing.T) {
		in, err := input.ReadAll("bad.yaml", bytes.NewReader(data))
		require.NoError(t, err)
		assert.Contains(t, in.Slice(0, in.Len()), "�")
	})

	t.Run("strict rejects", func(t *testing.T) {
		_, err := input.ReadAll("bad.yaml", bytes.NewReader(data), input.WithStrictUTF8(true))
		require.Error(t, err)

		var decodeErr *input.DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, 4, decodeErr.Offset)
		assert.Equal(t, "bad.yaml", decodeErr.Source)
		assert.True(t, errors.Is(err, input.ErrInvalidUTF8))
		assert.Contains(t, err.Error(), "bad.yaml at byte 4")
	})

	t.Run("strict accepts valid text", func(t *testing.T) {
		in, err := input.ReadAll("", strings.NewReader("ünïcode"), input.WithStrictUTF8(true))
		require.NoError(t, err)
		assert.Equal(t, 7, in.Len())
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\nb: 2\n"), 0o644))

	in, err := input.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, in.SourceName())
	assert.Equal(t, 10, in.Len())

	_, err = input.ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
