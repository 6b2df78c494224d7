// Package observability reports format and cache events through hooks.
//
// The printer and the caches call the registered hooks; nothing is recorded
// until an application registers its own. [LogFormatHooks] and
// [LogCacheHooks] write events to a charmbracelet logger, which is what
// dbg --verbose installs:
//
//	observability.SetFormatHooks(observability.LogFormatHooks{Logger: logger})
//	observability.SetCacheHooks(observability.LogCacheHooks{Logger: logger})
//
// Hooks are read on every event, so they may be replaced at any time.
package observability

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// FormatHooks receives events from the pretty printer.
type FormatHooks interface {
	// OnFormatStart is called before a value is classified. A width of zero
	// or less means unbounded.
	OnFormatStart(ctx context.Context, width int)

	// OnFormatComplete is called with the number of nodes built.
	OnFormatComplete(ctx context.Context, nodes int, duration time.Duration, err error)
}

// CacheHooks receives events from the caches. kind is the key namespace,
// "format" or "callsite".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, kind string)
	OnCacheMiss(ctx context.Context, kind string)
	OnCacheSet(ctx context.Context, kind string, size int)
}

type NoopFormatHooks struct{}

func (NoopFormatHooks) OnFormatStart(context.Context, int)                           {}
func (NoopFormatHooks) OnFormatComplete(context.Context, int, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// LogFormatHooks logs completed format calls at debug level.
type LogFormatHooks struct {
	Logger *log.Logger
}

func (LogFormatHooks) OnFormatStart(context.Context, int) {}

func (h LogFormatHooks) OnFormatComplete(_ context.Context, nodes int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("Format failed", "err", err, "elapsed", d)
		return
	}
	h.Logger.Debug("Formatted value", "nodes", nodes, "elapsed", d)
}

// LogCacheHooks logs cache traffic at debug level.
type LogCacheHooks struct {
	Logger *log.Logger
}

func (h LogCacheHooks) OnCacheHit(_ context.Context, kind string) {
	h.Logger.Debug("Cache hit", "kind", kind)
}

func (h LogCacheHooks) OnCacheMiss(_ context.Context, kind string) {
	h.Logger.Debug("Cache miss", "kind", kind)
}

func (h LogCacheHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.Logger.Debug("Cache set", "kind", kind, "bytes", size)
}

// Boxes give atomic.Pointer one concrete type per registry.
type (
	formatBox struct{ FormatHooks }
	cacheBox  struct{ CacheHooks }
)

var (
	formatHooks atomic.Pointer[formatBox]
	cacheHooks  atomic.Pointer[cacheBox]
)

func init() { Reset() }

// SetFormatHooks replaces the format hooks. nil is ignored.
func SetFormatHooks(h FormatHooks) {
	if h != nil {
		formatHooks.Store(&formatBox{h})
	}
}

// SetCacheHooks replaces the cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cacheHooks.Store(&cacheBox{h})
	}
}

// Format returns the registered format hooks.
func Format() FormatHooks { return formatHooks.Load().FormatHooks }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return cacheHooks.Load().CacheHooks }

// Reset restores the no-op hooks.
func Reset() {
	formatHooks.Store(&formatBox{NoopFormatHooks{}})
	cacheHooks.Store(&cacheBox{NoopCacheHooks{}})
}
