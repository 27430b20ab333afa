package memory

import (
	"context"
	"sort"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

// HistoryRepo implements ports.HistoryRepository on the shared Store.
type HistoryRepo struct {
	s *Store
}

func NewHistoryRepo(s *Store) *HistoryRepo { return &HistoryRepo{s: s} }

func (r *HistoryRepo) ListByClient(_ context.Context, clientID string) ([]domain.HistoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []domain.HistoryItem{}
	for _, h := range r.s.history {
		if h.ClientID == clientID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *HistoryRepo) Insert(_ context.Context, item domain.HistoryItem) (domain.HistoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item.ID = newID("h")
	r.s.history = append(r.s.history, item)
	return item, nil
}

func (r *HistoryRepo) DeleteByClient(_ context.Context, clientID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deleteHistoryLocked(clientID)
	return nil
}
