// Package memory implements the persistence contract on process-local state.
// It stands in for the document store when backend configuration is absent
// (local development, demos) and mirrors its external behaviour: assigned
// ids, write-time timestamps, replace-semantics updates, sort orders, and
// the no-aliasing guarantee — every read returns a deep copy, so callers own
// the returned records outright.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/omotenashi/partner-crm/internal/core/domain"
	"github.com/omotenashi/partner-crm/internal/core/ports"
)

// Store holds the five demo collections behind one mutex. Construct one per
// process (or per test) with NewStore; there is no package-level instance.
type Store struct {
	mu        sync.Mutex
	clients   []domain.Client
	plans     []domain.Plan
	history   []domain.HistoryItem
	memos     []domain.Memo
	countries []string
}

// NewStore returns a Store seeded with the demo data set.
func NewStore() *Store {
	return &Store{
		clients:   seedClients(),
		plans:     seedPlans(),
		history:   seedHistory(),
		memos:     seedMemos(),
		countries: seedCountries(),
	}
}

// Repositories bundles the store's per-entity repositories behind the ports
// contract, flagged as the demo backend.
func (s *Store) Repositories(missing []string) ports.Store {
	return ports.Store{
		Clients:       &ClientRepo{s: s},
		Plans:         &PlanRepo{s: s},
		History:       &HistoryRepo{s: s},
		Memos:         &MemoRepo{s: s},
		Countries:     &CountryRepo{s: s},
		Demo:          true,
		MissingConfig: missing,
	}
}

// newID builds a unique record id from the current time plus a random
// disambiguator, so bulk inserts within the same millisecond cannot collide.
func newID(prefix string) string {
	return fmt.Sprintf("%s%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

func (s *Store) deleteHistoryLocked(clientID string) {
	kept := s.history[:0]
	for _, h := range s.history {
		if h.ClientID != clientID {
			kept = append(kept, h)
		}
	}
	s.history = kept
}

func (s *Store) deleteMemosLocked(clientID string) {
	kept := s.memos[:0]
	for _, m := range s.memos {
		if m.ClientID != clientID {
			kept = append(kept, m)
		}
	}
	s.memos = kept
}

// cloneClient deep-copies the slice-valued fields; everything else,
// time.Time included, copies cleanly by value.
func cloneClient(c domain.Client) domain.Client {
	out := c
	out.Type = append([]domain.Mode(nil), c.Type...)
	out.CountryStrengths = append([]string(nil), c.CountryStrengths...)
	if c.LatestMemo != nil {
		memo := *c.LatestMemo
		out.LatestMemo = &memo
	}
	return out
}
