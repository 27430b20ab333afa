package ports

import (
	"context"
	"time"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
// Both backends (document store and in-memory demo store) implement the same
// guarantees: returned records are defensive copies owned by the caller, and
// Update applies replace semantics — optional contact fields left empty in
// the given record are erased from the stored document, not preserved.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	// Insert stores a new client and returns it with its assigned id.
	Insert(ctx context.Context, c domain.Client) (domain.Client, error)
	// Update replaces the editable fields of the client matching c.ID.
	// Returns domain.ErrClientNotFound when no such client exists.
	Update(ctx context.Context, c domain.Client) (domain.Client, error)
	// InsertMany stores all given clients as one atomic batch and returns
	// them with assigned ids in input order. A failure leaves no new
	// records persisted.
	InsertMany(ctx context.Context, cs []domain.Client) ([]domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// PlanRepository defines persistence operations for the plan catalog.
// Plans are never deleted.
type PlanRepository interface {
	List(ctx context.Context) ([]domain.Plan, error)
	Insert(ctx context.Context, p domain.Plan) (domain.Plan, error)
	// Update performs a full-document replace of the plan matching p.ID.
	// Returns domain.ErrPlanNotFound when no such plan exists.
	Update(ctx context.Context, p domain.Plan) (domain.Plan, error)
}

// HistoryRepository defines persistence operations for booking history.
// History is append-only apart from the client cascade.
type HistoryRepository interface {
	// ListByClient returns the client's history sorted newest date first.
	ListByClient(ctx context.Context, clientID string) ([]domain.HistoryItem, error)
	Insert(ctx context.Context, item domain.HistoryItem) (domain.HistoryItem, error)
	// DeleteByClient removes every history record owned by the client.
	DeleteByClient(ctx context.Context, clientID string) error
}

// MemoRepository defines persistence operations for sales memos.
type MemoRepository interface {
	// ListByClient returns the client's memos sorted newest CreatedAt first.
	ListByClient(ctx context.Context, clientID string) ([]domain.Memo, error)
	// ListAll returns every memo across all clients, newest CreatedAt first.
	ListAll(ctx context.Context) ([]domain.Memo, error)
	// Insert stores a new memo, assigning its id and CreatedAt at write time.
	Insert(ctx context.Context, m domain.Memo) (domain.Memo, error)
	// Update replaces text and memoDate of the memo matching (clientID,
	// memoID). Returns domain.ErrMemoNotFound when absent.
	Update(ctx context.Context, clientID, memoID, text string, memoDate time.Time) (domain.Memo, error)
	// Delete removes the memo. Deleting an absent memo succeeds silently —
	// the asymmetry with Update's strict not-found is intentional.
	Delete(ctx context.Context, clientID, memoID string) error
	// DeleteByClient removes every memo owned by the client.
	DeleteByClient(ctx context.Context, clientID string) error
}

// CountryRepository defines persistence operations for the global
// country-tag vocabulary. The vocabulary is append-only.
type CountryRepository interface {
	// List returns the vocabulary alphabetically sorted.
	List(ctx context.Context) ([]string, error)
	// Add unions the trimmed name into the vocabulary. Blank input is a
	// no-op; adding an already-present name is idempotent, not an error.
	Add(ctx context.Context, name string) error
}

// Store groups one backend's repositories plus the demo-mode flag decided
// once at startup from configuration validity.
type Store struct {
	Clients   ClientRepository
	Plans     PlanRepository
	History   HistoryRepository
	Memos     MemoRepository
	Countries CountryRepository

	// Demo is true when required backend configuration was absent and the
	// in-memory store is in use. Informational, not an error.
	Demo bool
	// MissingConfig lists the configuration keys whose absence forced demo
	// mode. Empty when Demo is false.
	MissingConfig []string
}
