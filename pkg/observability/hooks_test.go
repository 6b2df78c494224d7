package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type testFormatHooks struct{ NoopFormatHooks }
type testCacheHooks struct{ NoopCacheHooks }

func TestRegistry(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	if _, ok := Format().(NoopFormatHooks); !ok {
		t.Errorf("Format() = %T, want NoopFormatHooks", Format())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}

	f, c := &testFormatHooks{}, &testCacheHooks{}
	SetFormatHooks(f)
	SetCacheHooks(c)
	SetFormatHooks(nil)
	SetCacheHooks(nil)
	if Format() != FormatHooks(f) || Cache() != CacheHooks(c) {
		t.Error("registered hooks were not returned, or nil replaced them")
	}

	Reset()
	if _, ok := Format().(NoopFormatHooks); !ok {
		t.Error("Reset() did not restore the format hooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() did not restore the cache hooks")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	ctx := context.Background()

	fh := LogFormatHooks{Logger: logger}
	fh.OnFormatStart(ctx, 80)
	fh.OnFormatComplete(ctx, 7, time.Millisecond, nil)
	fh.OnFormatComplete(ctx, 0, time.Millisecond, errors.New("boom"))

	ch := LogCacheHooks{Logger: logger}
	ch.OnCacheMiss(ctx, "format")
	ch.OnCacheSet(ctx, "format", 42)
	ch.OnCacheHit(ctx, "callsite")

	got := buf.String()
	for _, want := range []string{"nodes=7", "err=boom", "Cache miss kind=format", "bytes=42", "Cache hit kind=callsite"} {
		if !strings.Contains(got, want) {
			t.Errorf("log = %q, want it to contain %q", got, want)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := LogCacheHooks{Logger: log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})}
	h.OnCacheHit(context.Background(), "format")
	if buf.Len() != 0 {
		t.Errorf("debug hooks logged at info level: %q", buf.String())
	}
}
