package memory

import (
	"context"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

// ClientRepo implements ports.ClientRepository on the shared Store.
type ClientRepo struct {
	s *Store
}

func NewClientRepo(s *Store) *ClientRepo { return &ClientRepo{s: s} }

func (r *ClientRepo) List(_ context.Context) ([]domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Client, len(r.s.clients))
	for i, c := range r.s.clients {
		out[i] = cloneClient(c)
	}
	return out, nil
}

func (r *ClientRepo) Insert(_ context.Context, c domain.Client) (domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = newID("c")
	c.LatestMemo = nil
	r.s.clients = append(r.s.clients, cloneClient(c))
	return cloneClient(c), nil
}

// Update replaces the stored client's editable fields wholesale. Optional
// contact fields left empty in c end up absent in the stored record — the
// same explicit-deletion semantics the document store applies.
func (r *ClientRepo) Update(_ context.Context, c domain.Client) (domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.clients {
		if r.s.clients[i].ID == c.ID {
			c.LatestMemo = nil
			r.s.clients[i] = cloneClient(c)
			return cloneClient(c), nil
		}
	}
	return domain.Client{}, domain.ErrClientNotFound
}

func (r *ClientRepo) InsertMany(_ context.Context, cs []domain.Client) ([]domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Client, 0, len(cs))
	for _, c := range cs {
		c.ID = newID("c")
		c.LatestMemo = nil
		r.s.clients = append(r.s.clients, cloneClient(c))
		out = append(out, cloneClient(c))
	}
	return out, nil
}

func (r *ClientRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.clients[:0]
	for _, c := range r.s.clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.s.clients = kept
	return nil
}
