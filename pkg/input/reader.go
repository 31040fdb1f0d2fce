package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported encodings.
const (
	EncodingAuto    = "auto" // BOM sniffing, UTF-8 otherwise
	EncodingUTF8    = "utf-8"
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encodings lists the accepted encoding names.
func Encodings() []string {
	return []string{EncodingAuto, EncodingUTF8, EncodingUTF16LE, EncodingUTF16BE}
}

type readOptions struct {
	encoding string
	strict   bool
}

// Option configures ReadAll and ReadFile.
type Option func(*readOptions)

// WithEncoding selects the source encoding. Names are case-insensitive;
// "" and "auto" sniff a byte order mark and fall back to UTF-8.
func WithEncoding(name string) Option {
	return func(o *readOptions) {
		o.encoding = strings.ToLower(strings.TrimSpace(name))
		if o.encoding == "utf8" {
			o.encoding = EncodingUTF8
		}
	}
}

// WithStrictUTF8 rejects malformed UTF-8 instead of replacing it with U+FFFD.
// It has no effect on UTF-16 sources.
func WithStrictUTF8(strict bool) Option {
	return func(o *readOptions) {
		o.strict = strict
	}
}

// ReadAll decodes everything from r into a StringInput named name.
func ReadAll(name string, r io.Reader, opts ...Option) (*StringInput, error) {
	o := readOptions{encoding: EncodingAuto}
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", displayName(name), err)
	}

	decoder, utf8Source, err := newDecoder(o)
	if err != nil {
		return nil, err
	}
	if utf8Source && o.encoding == EncodingUTF8 {
		raw = bytes.TrimPrefix(raw, utf8BOM)
	}

	text, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return nil, &DecodeError{Source: name, Err: err}
	}

	if o.strict && utf8Source {
		if off := invalidUTF8Offset(text); off >= 0 {
			return nil, &DecodeError{Source: name, Offset: off, Err: ErrInvalidUTF8}
		}
	}

	return NewStringInput(name, string(text)), nil
}

// ReadFile decodes the file at path into a StringInput named after the path.
func ReadFile(path string, opts ...Option) (*StringInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return ReadAll(path, f, opts...)
}

// newDecoder returns the transformer for the requested encoding and whether
// a UTF-8 source is expected to pass through it.
func newDecoder(o readOptions) (transform.Transformer, bool, error) {
	// Strict mode keeps malformed bytes so they can be located afterwards.
	utf8Decoder := unicode.UTF8.NewDecoder()
	if o.strict {
		utf8Decoder = encoding.Nop.NewDecoder()
	}

	switch o.encoding {
	case "", EncodingAuto:
		return unicode.BOMOverride(utf8Decoder), true, nil
	case EncodingUTF8:
		return utf8Decoder, true, nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), false, nil
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), false, nil
	default:
		return nil, false, fmt.Errorf("%w %q (supported: %s)", ErrUnknownEncoding, o.encoding, strings.Join(Encodings(), ", "))
	}
}

// invalidUTF8Offset returns the byte offset of the first malformed sequence, or -1.
func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

func displayName(name string) string {
	if name == "" {
		return "<input>"
	}
	return name
}
