package identity

import (
	"sync"

	"github.com/pkg/errors"
)

// Holder is the set-once cell for the process-wide identity. It is written
// at most once during startup and read-only thereafter, so a single RWMutex
// handoff is all the synchronization reads need.
type Holder struct {
	mu       sync.RWMutex
	identity *Identity
	set      bool
}

// NewHolder creates an empty Holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Set stores the identity. A second call is refused: the identity never
// changes within a process run.
func (h *Holder) Set(identity *Identity) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.set {
		return errors.New("identity already set for this process")
	}
	if identity == nil {
		return errors.New("cannot set a nil identity")
	}

	h.identity = identity
	h.set = true
	return nil
}

// Current returns the identity and whether one has been set.
func (h *Holder) Current() (*Identity, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.identity, h.set
}

// MustCurrent returns the identity and panics when none has been set.
// Reading before initialization is a programming error, not a runtime
// condition the caller can recover from, so this aborts loudly instead of
// returning an error value.
func (h *Holder) MustCurrent() *Identity {
	identity, ok := h.Current()
	if !ok {
		panic("identity: read before initialization")
	}
	return identity
}
