// Package dbg prints values together with the code that produced them.
//
// A call such as
//
//	total := dbg.Dbg(price * qty)
//
// writes
//
//	[cart.go:12:11] price * qty = 42
//
// to standard error and returns its argument unchanged, so it can be wrapped
// around any expression. Values are laid out by the pretty package and fit
// the width of the terminal behind the output.
//
// Settings come from dbg.toml files (see the config package), loaded once on
// first use. Output is colored with the configured style when the output is
// a terminal that supports color.
package dbg

import (
	"io"
	"os"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/George-Ogden/dbg/pkg/callsite"
	"github.com/George-Ogden/dbg/pkg/config"
)

// Names of the entry points, as written at call sites.
var entryPoints = []string{"Dbg", "Values"}

var (
	output   atomic.Value // io.Writer
	logger   atomic.Pointer[log.Logger]
	settings atomic.Pointer[config.Config]
	loadOnce sync.Once

	// locks holds one mutex per writer so that concurrent prints to the
	// same writer never interleave.
	locks    sync.Map
	anyWrite sync.Mutex
)

func init() {
	output.Store(writer{os.Stderr})
}

// writer boxes an io.Writer so atomic.Value always stores one concrete type.
type writer struct{ io.Writer }

// Dbg prints the position of the call, the source of its argument and the
// value of v, then returns v.
func Dbg[T any](v T) T {
	site := callsite.Caller(1, entryPoints...)
	emit(Output(), site, []any{v})
	return v
}

// Values prints one line per value, each with the position of the call and
// the source of the argument, and returns vs. Without arguments only the
// position is printed. A spread call, Values(xs...), labels every value
// with the source of xs.
func Values(vs ...any) []any {
	site := callsite.Caller(1, entryPoints...)
	emit(Output(), site, vs)
	return vs
}

// SetOutput sets the writer used by Dbg and Values. The default is
// os.Stderr.
func SetOutput(w io.Writer) {
	output.Store(writer{w})
}

// Output returns the writer used by Dbg and Values.
func Output() io.Writer {
	return output.Load().(writer).Writer
}

// SetLogger sets the logger used for configuration and formatting warnings.
// A nil logger restores log.Default().
func SetLogger(l *log.Logger) {
	logger.Store(l)
}

func currentLogger() *log.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return log.Default()
}

// SetConfig replaces the settings loaded from configuration files.
func SetConfig(cfg config.Config) {
	loadOnce.Do(func() {})
	settings.Store(&cfg)
}

// Config returns the settings in use, loading them on first call.
func Config() config.Config {
	loadOnce.Do(func() {
		cfg := config.Load(currentLogger())
		settings.Store(&cfg)
	})
	return *settings.Load()
}

// lockFor returns the mutex guarding w.
func lockFor(w io.Writer) *sync.Mutex {
	if w == nil || !reflect.TypeOf(w).Comparable() {
		return &anyWrite
	}
	mu, _ := locks.LoadOrStore(w, new(sync.Mutex))
	return mu.(*sync.Mutex)
}

// emit formats the lines for one call, then writes them under the lock of
// w. Values are formatted unlocked because their String methods may print
// to w themselves.
func emit(w io.Writer, site callsite.Site, vs []any) {
	p := newPrinter(w, Config(), currentLogger())
	position := p.text(site.Position())
	var lines []string
	if len(vs) == 0 {
		lines = append(lines, position)
	}
	for i, code := range site.Codes(len(vs)) {
		text := p.text(code.Text)
		if code.Text != callsite.Unknown {
			text = p.code(code.Text)
		}
		line, err := p.format(vs[i], position+" "+text+" "+code.Symbol+" ")
		if err != nil {
			p.logger.Warn("Unable to print", "code", code.Text, "err", err)
			continue
		}
		lines = append(lines, line)
	}

	mu := lockFor(w)
	mu.Lock()
	defer mu.Unlock()
	for _, line := range lines {
		if err := p.writeLine(line); err != nil {
			p.logger.Warn("Unable to print", "err", err)
			return
		}
	}
}
