package backend

import (
	"cmp"
	"strings"
	"sync"
)

// Thresholds holds per-name minimum levels in a backend's native level
// type. Lookups walk the dotted name towards the root, so a threshold set
// on "app" applies to "app.db" and "app.db.pool" until one of them sets
// its own.
//
// Names holding an import path, such as the type-derived
// "github.com/acme/app/store.Repo", walk the dots after the last slash
// and then the path elements: "github.com/acme/app/store",
// "github.com/acme/app" and so on up to "github.com". Dots inside the
// leading host element are not separators.
//
// Thresholds is safe for concurrent use.
type Thresholds[L cmp.Ordered] struct {
	mu    sync.RWMutex
	root  L
	names map[string]L
}

// NewThresholds creates a table whose root threshold is root.
func NewThresholds[L cmp.Ordered](root L) *Thresholds[L] {
	return &Thresholds[L]{
		root:  root,
		names: make(map[string]L),
	}
}

// SetRoot sets the threshold used by names with no ancestor entry.
func (t *Thresholds[L]) SetRoot(level L) {
	t.mu.Lock()
	t.root = level
	t.mu.Unlock()
}

// Set sets the threshold for name and its descendants. An empty name
// sets the root.
func (t *Thresholds[L]) Set(name string, level L) {
	if name == "" {
		t.SetRoot(level)
		return
	}
	t.mu.Lock()
	t.names[name] = level
	t.mu.Unlock()
}

// Unset removes the entry for name so it inherits again.
func (t *Thresholds[L]) Unset(name string) {
	t.mu.Lock()
	delete(t.names, name)
	t.mu.Unlock()
}

// Effective returns the threshold that applies to name.
func (t *Thresholds[L]) Effective(name string) L {
	t.mu.RLock()
	defer t.mu.RUnlock()

	isPath := strings.Contains(name, "/")
	for n, ok := name, true; ok; n, ok = parent(n, isPath) {
		if l, found := t.names[n]; found {
			return l
		}
	}
	return t.root
}

// parent returns the next ancestor of n, or false at the top of the
// hierarchy.
func parent(n string, isPath bool) (string, bool) {
	slash := strings.LastIndexByte(n, '/')
	if dot := strings.LastIndexByte(n, '.'); dot > slash && (slash >= 0 || !isPath) {
		return n[:dot], true
	}
	if slash >= 0 {
		return n[:slash], true
	}
	return "", false
}

// Enabled reports whether level passes the threshold for name.
func (t *Thresholds[L]) Enabled(name string, level L) bool {
	return level >= t.Effective(name)
}
