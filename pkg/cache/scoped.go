package cache

import "time"

// ScopedKeyer prefixes every key of another Keyer. The dbg command scopes
// its keys by build version so a new release never reads old output:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), buildinfo.Version+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer returns a Keyer that prepends prefix to inner's keys. A nil
// inner means DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) FormatKey(input []byte, opts FormatKeyOpts) string {
	return k.prefix + k.inner.FormatKey(input, opts)
}

func (k *ScopedKeyer) CallsiteKey(file string, line int, modTime time.Time, size int64) string {
	return k.prefix + k.inner.CallsiteKey(file, line, modTime, size)
}
