package ports

import (
	"context"
	"time"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

// ClientInput carries the editable fields of a client for save and bulk-add
// operations. An empty ID means insert; a non-empty ID means update with
// replace semantics (empty optional fields are erased from the stored
// record).
type ClientInput struct {
	ID               string
	NameEN           string
	NameJA           string
	Types            []string
	CountryStrengths []string
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	Website          string
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	// ListWithLatestMemo returns all clients with each one's most recently
	// created memo attached as LatestMemo (absent when the client has none).
	ListWithLatestMemo(ctx context.Context) ([]domain.Client, error)
	Save(ctx context.Context, in ClientInput) (domain.Client, error)
	// BulkAdd inserts all inputs as one atomic batch.
	BulkAdd(ctx context.Context, ins []ClientInput) ([]domain.Client, error)
	// Delete removes the client and cascades to its history and memos.
	// The client record is only deleted once the cascade has succeeded.
	Delete(ctx context.Context, id string) error
}

// PlanInput carries the editable fields of a plan. Empty ID means insert.
type PlanInput struct {
	ID            string
	NameEN        string
	NameJA        string
	DescriptionEN string
	DescriptionJA string
	Type          string
	Price         int
	Season        string
}

// PlanService defines use-case operations for the plan catalog.
type PlanService interface {
	List(ctx context.Context) ([]domain.Plan, error)
	Save(ctx context.Context, in PlanInput) (domain.Plan, error)
}

// MemoInput carries a memo's caller-supplied fields. Author is ignored on
// update — only text and memoDate are replaceable.
type MemoInput struct {
	Text     string
	Author   string
	MemoDate time.Time
}

// MemoService defines use-case operations for sales memos.
type MemoService interface {
	ListByClient(ctx context.Context, clientID string) ([]domain.Memo, error)
	ListAll(ctx context.Context) ([]domain.Memo, error)
	Add(ctx context.Context, clientID string, in MemoInput) (domain.Memo, error)
	Update(ctx context.Context, clientID, memoID string, in MemoInput) (domain.Memo, error)
	Delete(ctx context.Context, clientID, memoID string) error
}

// HistoryInput carries a new history entry's caller-supplied fields.
// PlanID may be a catalog plan id or the literal "other", in which case
// OtherDescription is required.
type HistoryInput struct {
	PlanID           string
	OtherDescription string
	Date             time.Time
	GroupSize        int
	Country          string
}

// HistoryService defines use-case operations for booking history.
type HistoryService interface {
	ListByClient(ctx context.Context, clientID string) ([]domain.HistoryItem, error)
	Add(ctx context.Context, clientID string, in HistoryInput) (domain.HistoryItem, error)
}

// CountryService defines use-case operations for the country vocabulary.
type CountryService interface {
	List(ctx context.Context) ([]string, error)
	// Add returns the trimmed name that was stored. Blank input is a no-op.
	Add(ctx context.Context, name string) (string, error)
}
