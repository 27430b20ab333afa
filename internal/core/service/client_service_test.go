package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/omotenashi/partner-crm/internal/core/domain"
	"github.com/omotenashi/partner-crm/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubClientRepo struct {
	clients   []domain.Client
	nextID    int
	listErr   error
	deleteErr error
	deleted   []string
}

func (r *stubClientRepo) List(_ context.Context) ([]domain.Client, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}

func (r *stubClientRepo) Insert(_ context.Context, c domain.Client) (domain.Client, error) {
	r.nextID++
	c.ID = string(rune('a' + r.nextID - 1))
	r.clients = append(r.clients, c)
	return c, nil
}

func (r *stubClientRepo) Update(_ context.Context, c domain.Client) (domain.Client, error) {
	for i := range r.clients {
		if r.clients[i].ID == c.ID {
			r.clients[i] = c
			return c, nil
		}
	}
	return domain.Client{}, domain.ErrClientNotFound
}

func (r *stubClientRepo) InsertMany(_ context.Context, cs []domain.Client) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(cs))
	for _, c := range cs {
		created, _ := r.Insert(context.Background(), c)
		out = append(out, created)
	}
	return out, nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	kept := r.clients[:0]
	for _, c := range r.clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.clients = kept
	return nil
}

type stubHistoryRepo struct {
	items          []domain.HistoryItem
	deleteErr      error
	deletedClients []string
}

func (r *stubHistoryRepo) ListByClient(_ context.Context, clientID string) ([]domain.HistoryItem, error) {
	var out []domain.HistoryItem
	for _, h := range r.items {
		if h.ClientID == clientID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *stubHistoryRepo) Insert(_ context.Context, item domain.HistoryItem) (domain.HistoryItem, error) {
	item.ID = "h_new"
	r.items = append(r.items, item)
	return item, nil
}

func (r *stubHistoryRepo) DeleteByClient(_ context.Context, clientID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedClients = append(r.deletedClients, clientID)
	return nil
}

type stubMemoRepo struct {
	memos          []domain.Memo
	deleteErr      error
	deletedClients []string
}

func (r *stubMemoRepo) ListByClient(_ context.Context, clientID string) ([]domain.Memo, error) {
	var out []domain.Memo
	for _, m := range r.memos {
		if m.ClientID == clientID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMemoRepo) ListAll(_ context.Context) ([]domain.Memo, error) {
	out := make([]domain.Memo, len(r.memos))
	copy(out, r.memos)
	return out, nil
}

func (r *stubMemoRepo) Insert(_ context.Context, m domain.Memo) (domain.Memo, error) {
	m.ID = "m_new"
	m.CreatedAt = time.Now().UTC()
	r.memos = append(r.memos, m)
	return m, nil
}

func (r *stubMemoRepo) Update(_ context.Context, clientID, memoID, text string, memoDate time.Time) (domain.Memo, error) {
	for i := range r.memos {
		if r.memos[i].ID == memoID && r.memos[i].ClientID == clientID {
			r.memos[i].Text = text
			r.memos[i].MemoDate = memoDate
			return r.memos[i], nil
		}
	}
	return domain.Memo{}, domain.ErrMemoNotFound
}

func (r *stubMemoRepo) Delete(_ context.Context, clientID, memoID string) error {
	kept := r.memos[:0]
	for _, m := range r.memos {
		if !(m.ID == memoID && m.ClientID == clientID) {
			kept = append(kept, m)
		}
	}
	r.memos = kept
	return nil
}

func (r *stubMemoRepo) DeleteByClient(_ context.Context, clientID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedClients = append(r.deletedClients, clientID)
	return nil
}

func newClientService(clients *stubClientRepo, history *stubHistoryRepo, memos *stubMemoRepo) *ClientService {
	return NewClientService(clients, history, memos, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func validInput() ports.ClientInput {
	return ports.ClientInput{
		NameEN: "Grand Hotel",
		NameJA: "グランドホテル",
		Types:  []string{"hotel"},
	}
}

func TestClientService_SaveInsertsWhenIDEmpty(t *testing.T) {
	clients := &stubClientRepo{}
	svc := newClientService(clients, &stubHistoryRepo{}, &stubMemoRepo{})

	created, err := svc.Save(context.Background(), validInput())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if len(clients.clients) != 1 {
		t.Fatalf("expected one stored client")
	}
}

func TestClientService_SaveUpdatesWhenIDSet(t *testing.T) {
	clients := &stubClientRepo{clients: []domain.Client{{
		ID:           "a",
		Name:         domain.BilingualString{EN: "Old", JA: "旧"},
		Type:         []domain.Mode{domain.ModeHotel},
		ContactEmail: "old@example.com",
	}}}
	svc := newClientService(clients, &stubHistoryRepo{}, &stubMemoRepo{})

	in := validInput()
	in.ID = "a"
	updated, err := svc.Save(context.Background(), in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if updated.Name.EN != "Grand Hotel" {
		t.Fatalf("update did not apply: %+v", updated)
	}
	// Replace semantics: the input carried no email, so none survives.
	if clients.clients[0].ContactEmail != "" {
		t.Fatalf("cleared contact field survived: %+v", clients.clients[0])
	}
}

func TestClientService_SaveValidation(t *testing.T) {
	svc := newClientService(&stubClientRepo{}, &stubHistoryRepo{}, &stubMemoRepo{})
	ctx := context.Background()

	cases := []struct {
		name string
		mod  func(*ports.ClientInput)
	}{
		{"missing english name", func(in *ports.ClientInput) { in.NameEN = "  " }},
		{"missing japanese name", func(in *ports.ClientInput) { in.NameJA = "" }},
		{"no types", func(in *ports.ClientInput) { in.Types = nil }},
		{"unknown type", func(in *ports.ClientInput) { in.Types = []string{"restaurant"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mod(&in)
			if _, err := svc.Save(ctx, in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestClientService_ListWithLatestMemo(t *testing.T) {
	t0 := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	clients := &stubClientRepo{clients: []domain.Client{
		{ID: "a", Name: domain.BilingualString{EN: "A", JA: "あ"}},
		{ID: "b", Name: domain.BilingualString{EN: "B", JA: "い"}},
		{ID: "c", Name: domain.BilingualString{EN: "C", JA: "う"}},
	}}
	memos := &stubMemoRepo{memos: []domain.Memo{
		{ID: "m1", ClientID: "a", Text: "old", CreatedAt: t0},
		{ID: "m2", ClientID: "a", Text: "new", CreatedAt: t0.Add(time.Hour)},
		{ID: "m3", ClientID: "b", Text: "first at tie", CreatedAt: t0},
		{ID: "m4", ClientID: "b", Text: "second at tie", CreatedAt: t0},
	}}
	svc := newClientService(clients, &stubHistoryRepo{}, memos)

	got, err := svc.ListWithLatestMemo(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	byID := make(map[string]domain.Client, len(got))
	for _, c := range got {
		byID[c.ID] = c
	}

	if byID["a"].LatestMemo == nil || byID["a"].LatestMemo.ID != "m2" {
		t.Fatalf("client a should carry the newest memo, got %+v", byID["a"].LatestMemo)
	}
	// Equal CreatedAt keeps the first-seen memo.
	if byID["b"].LatestMemo == nil || byID["b"].LatestMemo.ID != "m3" {
		t.Fatalf("tie should keep the first-seen memo, got %+v", byID["b"].LatestMemo)
	}
	if byID["c"].LatestMemo != nil {
		t.Fatalf("memo-less client should have no latest memo")
	}
}

func TestClientService_ListWithLatestMemoPropagatesErrors(t *testing.T) {
	boom := errors.New("backend down")
	clients := &stubClientRepo{listErr: boom}
	svc := newClientService(clients, &stubHistoryRepo{}, &stubMemoRepo{})

	if _, err := svc.ListWithLatestMemo(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected propagated error, got %v", err)
	}
}

func TestClientService_BulkAddRejectsWholeBatchOnInvalidInput(t *testing.T) {
	clients := &stubClientRepo{}
	svc := newClientService(clients, &stubHistoryRepo{}, &stubMemoRepo{})

	bad := validInput()
	bad.NameJA = ""
	_, err := svc.BulkAdd(context.Background(), []ports.ClientInput{validInput(), bad})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(clients.clients) != 0 {
		t.Fatalf("invalid batch must not reach the repository")
	}
}

func TestClientService_DeleteCascades(t *testing.T) {
	clients := &stubClientRepo{clients: []domain.Client{{ID: "a"}}}
	history := &stubHistoryRepo{}
	memos := &stubMemoRepo{}
	svc := newClientService(clients, history, memos)

	if err := svc.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(history.deletedClients) != 1 || history.deletedClients[0] != "a" {
		t.Fatalf("history cascade missing: %v", history.deletedClients)
	}
	if len(memos.deletedClients) != 1 || memos.deletedClients[0] != "a" {
		t.Fatalf("memo cascade missing: %v", memos.deletedClients)
	}
	if len(clients.deleted) != 1 || clients.deleted[0] != "a" {
		t.Fatalf("client record not deleted: %v", clients.deleted)
	}
}

func TestClientService_DeleteKeepsClientWhenCascadeFails(t *testing.T) {
	clients := &stubClientRepo{clients: []domain.Client{{ID: "a"}}}
	history := &stubHistoryRepo{deleteErr: errors.New("history backend down")}
	svc := newClientService(clients, history, &stubMemoRepo{})

	if err := svc.Delete(context.Background(), "a"); err == nil {
		t.Fatalf("expected cascade error")
	}
	if len(clients.deleted) != 0 {
		t.Fatalf("client must not be deleted after a cascade failure")
	}
}
