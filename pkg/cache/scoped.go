package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one Redis instance without colliding.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "lehmer:prod:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DecodeKey generates a prefixed decode key.
func (k *ScopedKeyer) DecodeKey(length int, code string) string {
	return k.prefix + k.inner.DecodeKey(length, code)
}

// EncodeKey generates a prefixed encode key.
func (k *ScopedKeyer) EncodeKey(p []int) string {
	return k.prefix + k.inner.EncodeKey(p)
}
