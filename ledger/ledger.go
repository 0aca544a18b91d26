// Package ledger records which albums the player has unlocked, persisted across sessions
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/vinyl-slasher/catalog"
)

// StorageKey is the fixed name the unlock set is persisted under
const StorageKey = "unlockedAlbums"

// Ledger is an insertion-ordered set of unlocked album ids
type Ledger struct {
	mu     sync.RWMutex
	store  Store
	logger *log.Logger
	order  []string
	set    map[string]struct{}
}

// Open loads the ledger from store; absent or unparsable data yields an empty ledger
func Open(store Store, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &Ledger{
		store:  store,
		logger: logger,
		set:    make(map[string]struct{}),
	}

	data, err := store.Get(StorageKey)
	switch {
	case errors.Is(err, ErrNotFound):
		return l
	case err != nil:
		logger.Warn("unlock ledger unreadable, starting empty", "err", err)
		return l
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		logger.Warn("unlock ledger corrupt, starting empty", "err", err)
		return l
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := l.set[id]; !dup {
			l.set[id] = struct{}{}
			l.order = append(l.order, id)
		}
	}
	logger.Debug("unlock ledger loaded", "count", len(l.order))
	return l
}

// Unlock adds id and persists the full set; the in-memory set changes even if the write fails
func (l *Ledger) Unlock(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.set[id]; ok {
		return nil
	}
	l.set[id] = struct{}{}
	l.order = append(l.order, id)
	return l.persistLocked()
}

// IsUnlocked is a pure membership test
func (l *Ledger) IsUnlocked(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.set[id]
	return ok
}

// Clear empties the set and persists the empty set
func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.set = make(map[string]struct{})
	l.order = nil
	return l.persistLocked()
}

// Len returns the number of unlocked ids
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}

// IDs returns unlocked ids in unlock order
func (l *Ledger) IDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.order...)
}

// Snapshot returns a copy of the set, used to freeze pre-session state
func (l *Ledger) Snapshot() map[string]struct{} {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]struct{}, len(l.set))
	for id := range l.set {
		out[id] = struct{}{}
	}
	return out
}

// Locked returns the albums not yet unlocked, in the given order
func (l *Ledger) Locked(albums []*catalog.Album) []*catalog.Album {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*catalog.Album
	for _, a := range albums {
		if _, ok := l.set[a.ID()]; !ok {
			out = append(out, a)
		}
	}
	return out
}

func (l *Ledger) persistLocked() error {
	ids := l.order
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	if err := l.store.Put(StorageKey, data); err != nil {
		return fmt.Errorf("failed to persist ledger: %w", err)
	}
	return nil
}
