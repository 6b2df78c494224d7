// Package callsite recovers the source text of a function call's arguments
// at run time.
//
// Caller finds the file and line of a call from the stack, parses that file
// and locates the call expression on the line, so that
//
//	dbg.Dbg(total / count)
//
// can print "total / count" beside the value. Parsed results are cached per
// file, line and modification time.
package callsite

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Unknown stands in for text that could not be recovered.
const Unknown = "<unknown>"

// Symbols printed between an argument's code and its value.
const (
	Assign = "="
	Spread = "->"
)

// Site is the location and argument text of one call.
type Site struct {
	// File is the absolute path of the source file, or empty if the stack
	// frame was not available.
	File string
	Line int
	// Col is the 1-based byte column of the call, or zero if unknown.
	Col int

	args   []string
	spread bool
	found  bool
}

// Code is the printed form of one argument.
type Code struct {
	Text   string
	Symbol string
}

// Caller returns the site of the call to one of the named functions made by
// the caller of the function invoking Caller. The argument skip is the
// number of stack frames to ascend, with 0 identifying the caller of
// Caller.
//
// When the line holds several matching calls the first one is used.
func Caller(skip int, names ...string) Site {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{}
	}
	return Lookup(file, line, names...)
}

// Position returns the site as [path:line:col], with the path relative to
// the working directory. The column is left out when unknown, and the whole
// position is [<unknown>] without a stack frame.
func (s Site) Position() string {
	if s.File == "" {
		return "[" + Unknown + "]"
	}
	path := s.File
	if cwd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(cwd, s.File); err == nil {
			path = rel
		}
	}
	pos := path + ":" + strconv.Itoa(s.Line)
	if s.Col > 0 {
		pos += ":" + strconv.Itoa(s.Col)
	}
	return "[" + pos + "]"
}

// Codes returns the argument text for a call that received n values. A
// spread argument (xs...) is repeated for every value with the Spread
// symbol. If the call could not be matched to n values every code is
// Unknown.
func (s Site) Codes(n int) []Code {
	codes := make([]Code, n)
	switch {
	case s.found && s.spread && len(s.args) == 1:
		for i := range codes {
			codes[i] = Code{Text: s.args[0], Symbol: Spread}
		}
	case s.found && !s.spread && len(s.args) == n:
		for i := range codes {
			codes[i] = Code{Text: s.args[i], Symbol: Assign}
		}
	default:
		for i := range codes {
			codes[i] = Code{Text: Unknown, Symbol: Assign}
		}
	}
	return codes
}

// String returns the position followed by the argument list, for logging.
func (s Site) String() string {
	if !s.found {
		return s.Position()
	}
	return fmt.Sprintf("%s %v", s.Position(), s.args)
}
