package pkg

import (
	"bytes"
	"encoding/json"
)

// ChangeGuard remembers the last observed serialization of a value and
// reports whether a new value actually differs from it. Recompute-notify
// chains must pass through a guard so that structurally identical updates
// do not re-fire listeners and loop.
type ChangeGuard struct {
	last []byte
}

func NewChangeGuard() *ChangeGuard {
	return &ChangeGuard{}
}

// Changed serializes v and compares it against the last observed
// serialization. It returns true (and records the new serialization) only
// when the value differs. Serialization failures count as a change: losing
// a notification is worse than an extra one.
func (g *ChangeGuard) Changed(v interface{}) bool {
	b, err := json.Marshal(v)
	if err != nil {
		g.last = nil
		return true
	}
	if g.last != nil && bytes.Equal(g.last, b) {
		return false
	}
	g.last = b
	return true
}

// Reset forgets the last observed value so the next call reports a change.
func (g *ChangeGuard) Reset() {
	g.last = nil
}
