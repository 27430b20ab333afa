package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/omotenashi/partner-crm/internal/core/domain"
	"github.com/omotenashi/partner-crm/internal/core/ports"
)

type HistoryService struct {
	history ports.HistoryRepository
	logger  zerolog.Logger
}

func NewHistoryService(history ports.HistoryRepository, logger zerolog.Logger) *HistoryService {
	return &HistoryService{history: history, logger: logger}
}

func (s *HistoryService) ListByClient(ctx context.Context, clientID string) ([]domain.HistoryItem, error) {
	return s.history.ListByClient(ctx, clientID)
}

// Add appends a booking record to the client's history. All required fields
// are checked before any backend call; no partial submission occurs.
func (s *HistoryService) Add(ctx context.Context, clientID string, in ports.HistoryInput) (domain.HistoryItem, error) {
	if clientID == "" {
		return domain.HistoryItem{}, fmt.Errorf("%w: client id is required", domain.ErrValidation)
	}

	ref := domain.PlanRef{
		PlanID:           strings.TrimSpace(in.PlanID),
		OtherDescription: strings.TrimSpace(in.OtherDescription),
	}
	if err := ref.Validate(); err != nil {
		return domain.HistoryItem{}, err
	}
	if in.GroupSize <= 0 {
		return domain.HistoryItem{}, fmt.Errorf("%w: group size must be positive", domain.ErrValidation)
	}
	country := strings.TrimSpace(in.Country)
	if country == "" {
		return domain.HistoryItem{}, fmt.Errorf("%w: country is required", domain.ErrValidation)
	}
	if in.Date.IsZero() {
		return domain.HistoryItem{}, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}

	created, err := s.history.Insert(ctx, domain.HistoryItem{
		ClientID:  clientID,
		Plan:      ref,
		Date:      in.Date,
		GroupSize: in.GroupSize,
		Country:   country,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", clientID).Msg("failed to add history entry")
		return domain.HistoryItem{}, err
	}
	s.logger.Info().Str("client_id", clientID).Str("history_id", created.ID).Msg("history entry added")
	return created, nil
}
