package config

import "github.com/spf13/pflag"

// RegisterFlags adds the persistent flags backing the config keys to fs.
// Flag names are the kebab-case forms of the keys.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolP("verbose", "v", false, "Verbose output (debug logging)")
	fs.StringP("output", "o", "", "Output format (auto|text|json|yaml|markdown)")
	fs.String("log-level", "", "Log level (debug|info|warn|error)")
	fs.Bool("no-color", false, "Disable colored output")
	fs.String("encoding", "", "Input encoding (auto|utf-8|utf-16le|utf-16be)")
	fs.Bool("strict-utf8", false, "Reject malformed UTF-8 input")
	fs.BoolP("whitespace", "w", false, "Keep whitespace, line break and comment tokens")
	fs.StringSlice("skip", nil, "Token kinds to hide, by name or abbreviation")
	fs.IntP("jobs", "j", 0, "Files tokenized in parallel")
	fs.Int("max-pending", 0, "End-of-input calls without tokens before giving up")
}
