package memory

import (
	"context"
	"sort"
	"time"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

// MemoRepo implements ports.MemoRepository on the shared Store.
type MemoRepo struct {
	s *Store
}

func NewMemoRepo(s *Store) *MemoRepo { return &MemoRepo{s: s} }

func (r *MemoRepo) ListByClient(_ context.Context, clientID string) ([]domain.Memo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []domain.Memo{}
	for _, m := range r.s.memos {
		if m.ClientID == clientID {
			out = append(out, m)
		}
	}
	sortMemosNewestFirst(out)
	return out, nil
}

func (r *MemoRepo) ListAll(_ context.Context) ([]domain.Memo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Memo, len(r.s.memos))
	copy(out, r.s.memos)
	sortMemosNewestFirst(out)
	return out, nil
}

// Insert assigns the id and the immutable CreatedAt timestamp at write time,
// the local clock standing in for the real backend's server timestamp.
func (r *MemoRepo) Insert(_ context.Context, m domain.Memo) (domain.Memo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m.ID = newID("m")
	m.CreatedAt = time.Now().UTC()
	r.s.memos = append(r.s.memos, m)
	return m, nil
}

func (r *MemoRepo) Update(_ context.Context, clientID, memoID, text string, memoDate time.Time) (domain.Memo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.memos {
		if r.s.memos[i].ID == memoID && r.s.memos[i].ClientID == clientID {
			r.s.memos[i].Text = text
			r.s.memos[i].MemoDate = memoDate
			return r.s.memos[i], nil
		}
	}
	return domain.Memo{}, domain.ErrMemoNotFound
}

// Delete filters the memo out; an absent memo is a silent no-op.
func (r *MemoRepo) Delete(_ context.Context, clientID, memoID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.memos[:0]
	for _, m := range r.s.memos {
		if !(m.ID == memoID && m.ClientID == clientID) {
			kept = append(kept, m)
		}
	}
	r.s.memos = kept
	return nil
}

func (r *MemoRepo) DeleteByClient(_ context.Context, clientID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deleteMemosLocked(clientID)
	return nil
}

func sortMemosNewestFirst(memos []domain.Memo) {
	sort.SliceStable(memos, func(i, j int) bool { return memos[i].CreatedAt.After(memos[j].CreatedAt) })
}
