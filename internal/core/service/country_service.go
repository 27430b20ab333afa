package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/omotenashi/partner-crm/internal/core/ports"
)

type CountryService struct {
	countries ports.CountryRepository
	logger    zerolog.Logger
}

func NewCountryService(countries ports.CountryRepository, logger zerolog.Logger) *CountryService {
	return &CountryService{countries: countries, logger: logger}
}

func (s *CountryService) List(ctx context.Context) ([]string, error) {
	return s.countries.List(ctx)
}

// Add unions the trimmed name into the vocabulary and returns it. Blank
// input is a no-op; re-adding an existing name is idempotent.
func (s *CountryService) Add(ctx context.Context, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", nil
	}
	if err := s.countries.Add(ctx, trimmed); err != nil {
		s.logger.Error().Err(err).Str("country", trimmed).Msg("failed to add country")
		return "", err
	}
	return trimmed, nil
}
