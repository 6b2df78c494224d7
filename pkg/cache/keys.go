package cache

import (
	"strconv"
	"time"
)

// Keyer builds cache keys.
type Keyer interface {
	// FormatKey returns the key of a formatted document.
	FormatKey(input []byte, opts FormatKeyOpts) string

	// CallsiteKey returns the key of the call expressions found on one
	// line of a source file. Editing the file changes the key.
	CallsiteKey(file string, line int, modTime time.Time, size int64) string
}

// FormatKeyOpts are the options that change the text of a formatted
// document.
type FormatKeyOpts struct {
	Format string `json:"format"`
	Width  int    `json:"width"`
	Indent int    `json:"indent"`
	Style  string `json:"style"`
	Prefix string `json:"prefix"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// FormatKey hashes the input together with its options.
func (DefaultKeyer) FormatKey(input []byte, opts FormatKeyOpts) string {
	return hashKey(kindFormat, Hash(input), opts)
}

// CallsiteKey keys on the file path, line, modification time and size. The
// size catches edits within the modification time resolution.
func (DefaultKeyer) CallsiteKey(file string, line int, modTime time.Time, size int64) string {
	return kindCallsite + ":" + file + ":" + strconv.Itoa(line) + ":" +
		strconv.FormatInt(modTime.UnixNano(), 10) + ":" + strconv.FormatInt(size, 10)
}

var _ Keyer = DefaultKeyer{}
