package memory

import (
	"context"
	"testing"
	"time"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

func newTestStore() *Store {
	// Seeded exactly like production demo mode; tests rely on the known ids.
	return NewStore()
}

func TestClientRepo_InsertRoundTrip(t *testing.T) {
	repo := NewClientRepo(newTestStore())
	ctx := context.Background()

	in := domain.Client{
		Name:             domain.BilingualString{EN: "Sakura Inn", JA: "さくら旅館"},
		Type:             []domain.Mode{domain.ModeHotel},
		CountryStrengths: []string{"France"},
		ContactEmail:     "info@sakura.example",
	}
	created, err := repo.Insert(ctx, in)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got *domain.Client
	for i := range all {
		if all[i].ID == created.ID {
			got = &all[i]
		}
	}
	if got == nil {
		t.Fatalf("inserted client not listed")
	}
	if got.Name.JA != "さくら旅館" || got.ContactEmail != "info@sakura.example" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestClientRepo_UpdateErasesEmptyOptionalFields(t *testing.T) {
	repo := NewClientRepo(newTestStore())
	ctx := context.Background()

	created, err := repo.Insert(ctx, domain.Client{
		Name:         domain.BilingualString{EN: "Harbor Tours", JA: "ハーバーツアーズ"},
		Type:         []domain.Mode{domain.ModeTourGuide},
		ContactName:  "Sato",
		ContactEmail: "sato@harbor.example",
		ContactPhone: "03-0000-0000",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	created.ContactEmail = ""
	created.ContactPhone = ""
	updated, err := repo.Update(ctx, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ContactEmail != "" || updated.ContactPhone != "" {
		t.Fatalf("cleared fields survived the update: %+v", updated)
	}
	if updated.ContactName != "Sato" {
		t.Fatalf("kept field lost: %+v", updated)
	}

	all, _ := repo.List(ctx)
	for _, c := range all {
		if c.ID == created.ID && (c.ContactEmail != "" || c.ContactPhone != "") {
			t.Fatalf("stored record still carries cleared fields: %+v", c)
		}
	}
}

func TestClientRepo_UpdateUnknownID(t *testing.T) {
	repo := NewClientRepo(newTestStore())
	_, err := repo.Update(context.Background(), domain.Client{ID: "nope", Name: domain.BilingualString{EN: "x", JA: "x"}})
	if err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientRepo_InsertManyAssignsUniqueIDs(t *testing.T) {
	repo := NewClientRepo(newTestStore())

	batch := make([]domain.Client, 20)
	for i := range batch {
		batch[i] = domain.Client{
			Name: domain.BilingualString{EN: "Bulk", JA: "一括"},
			Type: []domain.Mode{domain.ModeHotel},
		}
	}
	created, err := repo.InsertMany(context.Background(), batch)
	if err != nil {
		t.Fatalf("insert many: %v", err)
	}
	if len(created) != len(batch) {
		t.Fatalf("expected %d created, got %d", len(batch), len(created))
	}
	seen := make(map[string]bool)
	for _, c := range created {
		if seen[c.ID] {
			t.Fatalf("duplicate id %q in same-batch insert", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestClientRepo_ListReturnsCopies(t *testing.T) {
	repo := NewClientRepo(newTestStore())
	ctx := context.Background()

	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	first[0].Name.EN = "mutated"
	first[0].Type[0] = "mutated"
	first[0].CountryStrengths = append(first[0].CountryStrengths, "mutated")

	second, _ := repo.List(ctx)
	if second[0].Name.EN == "mutated" || second[0].Type[0] == "mutated" {
		t.Fatalf("caller mutation leaked into the store: %+v", second[0])
	}
	for _, cs := range second[0].CountryStrengths {
		if cs == "mutated" {
			t.Fatalf("slice aliasing leaked into the store")
		}
	}
}

func TestMemoRepo_InsertAssignsCreatedAtAndSortsNewestFirst(t *testing.T) {
	store := newTestStore()
	repo := NewMemoRepo(store)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	created, err := repo.Insert(ctx, domain.Memo{
		ClientID: "1",
		Text:     "Follow up on banquet quote",
		MemoDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created.CreatedAt.Before(before) {
		t.Fatalf("CreatedAt not assigned at write time: %v", created.CreatedAt)
	}

	memos, err := repo.ListByClient(ctx, "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(memos) < 2 {
		t.Fatalf("expected seeded memo plus the new one, got %d", len(memos))
	}
	if memos[0].ID != created.ID {
		t.Fatalf("newest memo not first: got %q", memos[0].ID)
	}
	for i := 1; i < len(memos); i++ {
		if memos[i].CreatedAt.After(memos[i-1].CreatedAt) {
			t.Fatalf("memos not sorted newest first at index %d", i)
		}
	}
}

func TestMemoRepo_UpdatePreservesCreatedAtAndAuthor(t *testing.T) {
	repo := NewMemoRepo(newTestStore())
	ctx := context.Background()

	created, err := repo.Insert(ctx, domain.Memo{
		ClientID: "1",
		Text:     "initial",
		Author:   "tanaka",
		MemoDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	newDate := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)
	updated, err := repo.Update(ctx, "1", created.ID, "revised", newDate)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Text != "revised" || !updated.MemoDate.Equal(newDate) {
		t.Fatalf("update did not apply: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("CreatedAt changed on update")
	}
	if updated.Author != "tanaka" {
		t.Fatalf("author changed on update")
	}
}

func TestMemoRepo_UpdateUnknownMemo(t *testing.T) {
	repo := NewMemoRepo(newTestStore())
	_, err := repo.Update(context.Background(), "1", "missing", "text", time.Now())
	if err != domain.ErrMemoNotFound {
		t.Fatalf("expected ErrMemoNotFound, got %v", err)
	}
}

func TestMemoRepo_DeleteAbsentMemoIsSilent(t *testing.T) {
	repo := NewMemoRepo(newTestStore())
	if err := repo.Delete(context.Background(), "1", "missing"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}

func TestHistoryRepo_ListSortedByDateDescending(t *testing.T) {
	repo := NewHistoryRepo(newTestStore())
	ctx := context.Background()

	_, err := repo.Insert(ctx, domain.HistoryItem{
		ClientID:  "1",
		Plan:      domain.PlanRef{PlanID: "p1"},
		Date:      time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		GroupSize: 8,
		Country:   "Australia",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	items, err := repo.ListByClient(ctx, "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 history items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Date.After(items[i-1].Date) {
			t.Fatalf("history not sorted newest date first at index %d", i)
		}
	}
	if items[0].Country != "Australia" {
		t.Fatalf("2024 entry should sort first, got %+v", items[0])
	}
}

func TestCountryRepo_AddIsIdempotent(t *testing.T) {
	repo := NewCountryRepo(newTestStore())
	ctx := context.Background()

	initial, _ := repo.List(ctx)

	if err := repo.Add(ctx, "Brazil"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Add(ctx, "Brazil"); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	got, _ := repo.List(ctx)
	if len(got) != len(initial)+1 {
		t.Fatalf("expected %d countries, got %d", len(initial)+1, len(got))
	}
	count := 0
	for _, c := range got {
		if c == "Brazil" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected Brazil exactly once, found %d", count)
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("countries not sorted: %v", got)
		}
	}
}

func TestStore_CascadeHelpers(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	if err := NewHistoryRepo(store).DeleteByClient(ctx, "1"); err != nil {
		t.Fatalf("delete history: %v", err)
	}
	if err := NewMemoRepo(store).DeleteByClient(ctx, "1"); err != nil {
		t.Fatalf("delete memos: %v", err)
	}
	if err := NewClientRepo(store).Delete(ctx, "1"); err != nil {
		t.Fatalf("delete client: %v", err)
	}

	history, _ := NewHistoryRepo(store).ListByClient(ctx, "1")
	if len(history) != 0 {
		t.Fatalf("history survived the cascade: %v", history)
	}
	memos, _ := NewMemoRepo(store).ListByClient(ctx, "1")
	if len(memos) != 0 {
		t.Fatalf("memos survived the cascade: %v", memos)
	}
	clients, _ := NewClientRepo(store).List(ctx)
	for _, c := range clients {
		if c.ID == "1" {
			t.Fatalf("client record survived delete")
		}
	}
	// Unrelated client untouched.
	other, _ := NewHistoryRepo(store).ListByClient(ctx, "2")
	if len(other) == 0 {
		t.Fatalf("cascade deleted another client's history")
	}
}

func TestStore_RepositoriesFlagDemoMode(t *testing.T) {
	s := NewStore().Repositories([]string{"MONGO_URI"})
	if !s.Demo {
		t.Fatalf("expected demo flag set")
	}
	if len(s.MissingConfig) != 1 || s.MissingConfig[0] != "MONGO_URI" {
		t.Fatalf("missing config not carried: %v", s.MissingConfig)
	}
}
