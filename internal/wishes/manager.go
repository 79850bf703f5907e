// Package wishes manages the user's purchase-wish list: fetched in server
// order, individually toggled or deleted, never created client-side.
package wishes

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/genesi-finance/genesi-client/internal/api"
	"github.com/genesi-finance/genesi-client/internal/model"
)

// Snapshot is a consistent view of the manager state. Rendering precedence
// for consumers: Err over Loading over Wishes.
type Snapshot struct {
	Wishes  []model.Wish
	Loading bool
	Err     string
}

// Manager holds the wish list for one session user.
type Manager struct {
	api    api.WishAPI
	userID string
	log    *zap.Logger

	mu      sync.Mutex
	wishes  []model.Wish
	loading bool
	errMsg  string
}

// New constructs a manager bound to the given user id.
func New(wishAPI api.WishAPI, userID string, log *zap.Logger) *Manager {
	return &Manager{api: wishAPI, userID: userID, log: log}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Wishes:  append([]model.Wish(nil), m.wishes...),
		Loading: m.loading,
		Err:     m.errMsg,
	}
}

// Fetch replaces the list with the server's current view. On failure the
// previous list is kept (stale but available) and the error is surfaced.
func (m *Manager) Fetch(ctx context.Context) bool {
	m.mu.Lock()
	m.loading = true
	m.errMsg = ""
	m.mu.Unlock()

	list, err := m.api.ListWishes(ctx, m.userID)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.log.Warn("fetch wishes", zap.Error(err))
		m.errMsg = "Não foi possível carregar seus desejos."
		return false
	}
	m.wishes = list
	return true
}

// ToggleNotified sends the inverted flag for the wish and, on success, flips
// the matching local record. current is only used to compute the new value;
// there is no guard against a concurrent server-side change.
func (m *Manager) ToggleNotified(ctx context.Context, id string, current bool) bool {
	next := !current
	if err := m.api.SetWishNotified(ctx, id, next); err != nil {
		m.log.Warn("toggle wish", zap.String("wish_id", id), zap.Error(err))
		m.setErr("Não foi possível atualizar o desejo.")
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMsg = ""
	for i := range m.wishes {
		if m.wishes[i].ID == id {
			m.wishes[i].Notified = next
			break
		}
	}
	return true
}

// Delete removes the wish remotely and, on success, drops exactly the
// matching local record. On failure the list is untouched.
func (m *Manager) Delete(ctx context.Context, id string) bool {
	if err := m.api.DeleteWish(ctx, id); err != nil {
		m.log.Warn("delete wish", zap.String("wish_id", id), zap.Error(err))
		m.setErr("Não foi possível excluir o desejo.")
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMsg = ""
	kept := m.wishes[:0]
	for _, w := range m.wishes {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	m.wishes = kept
	return true
}

func (m *Manager) setErr(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMsg = msg
}
