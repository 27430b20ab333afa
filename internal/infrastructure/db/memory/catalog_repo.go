package memory

import (
	"context"
	"sort"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

// PlanRepo implements ports.PlanRepository on the shared Store.
type PlanRepo struct {
	s *Store
}

func NewPlanRepo(s *Store) *PlanRepo { return &PlanRepo{s: s} }

func (r *PlanRepo) List(_ context.Context) ([]domain.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Plan, len(r.s.plans))
	copy(out, r.s.plans)
	return out, nil
}

func (r *PlanRepo) Insert(_ context.Context, p domain.Plan) (domain.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = newID("p")
	r.s.plans = append(r.s.plans, p)
	return p, nil
}

func (r *PlanRepo) Update(_ context.Context, p domain.Plan) (domain.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.plans {
		if r.s.plans[i].ID == p.ID {
			r.s.plans[i] = p
			return p, nil
		}
	}
	return domain.Plan{}, domain.ErrPlanNotFound
}

// CountryRepo implements ports.CountryRepository on the shared Store.
type CountryRepo struct {
	s *Store
}

func NewCountryRepo(s *Store) *CountryRepo { return &CountryRepo{s: s} }

func (r *CountryRepo) List(_ context.Context) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]string, len(r.s.countries))
	copy(out, r.s.countries)
	sort.Strings(out)
	return out, nil
}

// Add unions the name into the vocabulary; re-adding an existing name is a
// no-op, not an error.
func (r *CountryRepo) Add(_ context.Context, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.countries {
		if c == name {
			return nil
		}
	}
	r.s.countries = append(r.s.countries, name)
	return nil
}
