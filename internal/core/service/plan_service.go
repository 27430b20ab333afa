package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/omotenashi/partner-crm/internal/core/domain"
	"github.com/omotenashi/partner-crm/internal/core/ports"
)

type PlanService struct {
	plans  ports.PlanRepository
	logger zerolog.Logger
}

func NewPlanService(plans ports.PlanRepository, logger zerolog.Logger) *PlanService {
	return &PlanService{plans: plans, logger: logger}
}

func (s *PlanService) List(ctx context.Context) ([]domain.Plan, error) {
	return s.plans.List(ctx)
}

// Save inserts a new plan when in.ID is empty, otherwise performs a
// full-document replace of the existing one.
func (s *PlanService) Save(ctx context.Context, in ports.PlanInput) (domain.Plan, error) {
	p, err := planFromInput(in)
	if err != nil {
		return domain.Plan{}, err
	}

	if in.ID != "" {
		updated, err := s.plans.Update(ctx, p)
		if err != nil {
			s.logger.Error().Err(err).Str("plan_id", in.ID).Msg("failed to update plan")
			return domain.Plan{}, err
		}
		s.logger.Info().Str("plan_id", updated.ID).Msg("plan updated")
		return updated, nil
	}

	created, err := s.plans.Insert(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create plan")
		return domain.Plan{}, err
	}
	s.logger.Info().Str("plan_id", created.ID).Msg("plan created")
	return created, nil
}

func planFromInput(in ports.PlanInput) (domain.Plan, error) {
	nameEN := strings.TrimSpace(in.NameEN)
	nameJA := strings.TrimSpace(in.NameJA)
	if nameEN == "" || nameJA == "" {
		return domain.Plan{}, fmt.Errorf("%w: name is required in both locales", domain.ErrValidation)
	}
	if !domain.ValidPlanType(in.Type) {
		return domain.Plan{}, fmt.Errorf("%w: unknown plan type %q", domain.ErrValidation, in.Type)
	}
	if in.Price < 0 {
		return domain.Plan{}, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	return domain.Plan{
		ID:          in.ID,
		Name:        domain.BilingualString{EN: nameEN, JA: nameJA},
		Description: domain.BilingualString{EN: strings.TrimSpace(in.DescriptionEN), JA: strings.TrimSpace(in.DescriptionJA)},
		Type:        domain.PlanType(in.Type),
		Price:       in.Price,
		Season:      strings.TrimSpace(in.Season),
	}, nil
}
