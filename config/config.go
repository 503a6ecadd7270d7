package config

import "errors"

// Format is how the encoded result is printed.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Output struct {
	// Format is either Text or JSON. JSON prints an object with both the sample
	// and its encoded form.
	Format Format
	// Newline terminates every printed result.
	Newline string
}

// Config holds settings of the urlencode example.
//
// Always modify defaults returned via Default() instead of initializing the config
// manually.
type Config struct {
	// Sample is the string to be urlencoded.
	Sample string
	// AlwaysCopy makes the encoder return a distinct buffer even if nothing had to
	// be escaped.
	AlwaysCopy bool `test:"nullable"`
	Output     Output
}

// Default returns default config, encoding a typical URL with spaces and a query.
func Default() *Config {
	return &Config{
		Sample:     "https://acme.com/how to perform fast url decode?yo=rick!",
		AlwaysCopy: false,
		Output: Output{
			Format:  Text,
			Newline: "\n",
		},
	}
}

// Validate reports whether the config can be used.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case Text, JSON:
		return nil
	default:
		return ErrUnknownFormat
	}
}
