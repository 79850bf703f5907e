// Package finance fetches the dashboard summary for the session user,
// mirroring the async/error shape of the wish list manager.
package finance

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/genesi-finance/genesi-client/internal/api"
	"github.com/genesi-finance/genesi-client/internal/model"
)

// Snapshot is a consistent view of the manager state; Err takes precedence
// over Loading, Loading over Summary.
type Snapshot struct {
	Summary *model.FinanceSummary
	Loading bool
	Err     string
}

type Manager struct {
	api    api.FinanceAPI
	userID string
	log    *zap.Logger

	mu      sync.Mutex
	summary *model.FinanceSummary
	loading bool
	errMsg  string
}

func New(financeAPI api.FinanceAPI, userID string, log *zap.Logger) *Manager {
	return &Manager{api: financeAPI, userID: userID, log: log}
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	var s *model.FinanceSummary
	if m.summary != nil {
		c := *m.summary
		s = &c
	}
	return Snapshot{Summary: s, Loading: m.loading, Err: m.errMsg}
}

// Fetch refreshes the summary. Failure keeps the previous summary and
// surfaces an error message.
func (m *Manager) Fetch(ctx context.Context) bool {
	m.mu.Lock()
	m.loading = true
	m.errMsg = ""
	m.mu.Unlock()

	s, err := m.api.Summary(ctx, m.userID)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.log.Warn("fetch summary", zap.Error(err))
		m.errMsg = "Erro ao carregar dados financeiros."
		return false
	}
	m.summary = s
	return true
}
