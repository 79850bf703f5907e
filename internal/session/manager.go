// Package session owns the client's authentication state: who is logged in,
// kept consistent with the persistent session store across restarts.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/genesi-finance/genesi-client/internal/api"
	"github.com/genesi-finance/genesi-client/internal/model"
	"github.com/genesi-finance/genesi-client/internal/notify"
	"github.com/genesi-finance/genesi-client/internal/sessionstore"
)

// Manager mediates all reads and writes of the session. Construct one per
// process and pass it by reference; consumers must not cache the user.
type Manager struct {
	auth     api.AuthAPI
	store    sessionstore.Store
	notifier notify.Notifier
	log      *zap.Logger

	mu    sync.Mutex
	user  *model.User
	epoch uint64
}

// New restores session state from the store. A missing or malformed record
// yields an anonymous session; construction never fails.
func New(store sessionstore.Store, auth api.AuthAPI, notifier notify.Notifier, log *zap.Logger) *Manager {
	m := &Manager{auth: auth, store: store, notifier: notifier, log: log}
	u, err := store.Load()
	if err != nil {
		log.Warn("session restore failed, starting anonymous", zap.Error(err))
		return m
	}
	if u != nil {
		m.user = u
		log.Info("session restored", zap.String("user_id", u.ID))
	}
	return m
}

// User returns a copy of the session user, or nil when anonymous.
func (m *Manager) User() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

// Login checks credentials against the backend. On success the session
// becomes authenticated and the user is persisted. setBusy (optional) is
// toggled at entry and reset on every exit path so callers can block
// duplicate submissions. All failures collapse into a single user-facing
// message; the session is left as it was.
func (m *Manager) Login(ctx context.Context, email, password string, setBusy func(bool)) bool {
	if email == "" || password == "" {
		m.notifier.Error("Erro de Validação", "Email e senha são obrigatórios.")
		return false
	}

	busy(setBusy, true)
	defer busy(setBusy, false)

	epoch := m.currentEpoch()

	u, err := m.auth.Login(ctx, email, password)
	if err != nil {
		m.log.Warn("login failed", zap.Error(err))
		m.notifier.Error("Erro", "Email ou senha incorretos.")
		return false
	}

	m.mu.Lock()
	if m.epoch != epoch {
		// a logout (or later login) happened while this request was in
		// flight; do not resurrect the session
		m.mu.Unlock()
		m.log.Warn("stale login response discarded", zap.String("user_id", u.ID))
		return false
	}
	m.user = u
	m.epoch++
	// persist under the same lock so the store can never disagree with the
	// in-memory state when a logout races a slow login
	if err := m.store.Save(u); err != nil {
		m.log.Error("persist session", zap.Error(err))
	}
	m.mu.Unlock()

	m.notifier.Success("Sucesso!", "Login realizado com sucesso.")
	return true
}

// Register creates an account. It deliberately does not log the user in;
// the caller routes to the login flow afterwards. Busy discipline matches
// Login.
func (m *Manager) Register(ctx context.Context, name, email, password, whatsapp string, setBusy func(bool)) bool {
	if name == "" || email == "" || password == "" || whatsapp == "" {
		m.notifier.Error("Erro de Validação", "Todos os campos são obrigatórios.")
		return false
	}

	busy(setBusy, true)
	defer busy(setBusy, false)

	if err := m.auth.Register(ctx, name, email, password, whatsapp); err != nil {
		m.log.Warn("register failed", zap.Error(err))
		m.notifier.Error("Erro no Cadastro", "Não foi possível criar a conta. Verifique os dados ou tente um email diferente.")
		return false
	}
	m.notifier.Success("Sucesso!", "Sua conta foi criada com sucesso.")
	return true
}

// Logout drops the session and clears the store. It never fails: a store
// error is logged, the in-memory state is cleared regardless. Bumping the
// epoch invalidates any login still in flight.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.user = nil
	m.epoch++
	if err := m.store.Clear(); err != nil {
		m.log.Error("clear session store", zap.Error(err))
	}
	m.mu.Unlock()
}

func (m *Manager) currentEpoch() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch
}

func busy(set func(bool), v bool) {
	if set != nil {
		set(v)
	}
}
