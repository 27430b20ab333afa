package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/omotenashi/partner-crm/internal/core/domain"
	"github.com/omotenashi/partner-crm/internal/core/ports"
)

type MemoService struct {
	memos  ports.MemoRepository
	logger zerolog.Logger
}

func NewMemoService(memos ports.MemoRepository, logger zerolog.Logger) *MemoService {
	return &MemoService{memos: memos, logger: logger}
}

func (s *MemoService) ListByClient(ctx context.Context, clientID string) ([]domain.Memo, error) {
	return s.memos.ListByClient(ctx, clientID)
}

func (s *MemoService) ListAll(ctx context.Context) ([]domain.Memo, error) {
	return s.memos.ListAll(ctx)
}

// Add stores a new memo for the client. CreatedAt is assigned by the backend
// at write time and determines the memo's position in listings.
func (s *MemoService) Add(ctx context.Context, clientID string, in ports.MemoInput) (domain.Memo, error) {
	text := strings.TrimSpace(in.Text)
	if clientID == "" {
		return domain.Memo{}, fmt.Errorf("%w: client id is required", domain.ErrValidation)
	}
	if text == "" {
		return domain.Memo{}, fmt.Errorf("%w: memo text is required", domain.ErrValidation)
	}
	if in.MemoDate.IsZero() {
		return domain.Memo{}, fmt.Errorf("%w: memo date is required", domain.ErrValidation)
	}

	created, err := s.memos.Insert(ctx, domain.Memo{
		ClientID: clientID,
		Text:     text,
		Author:   strings.TrimSpace(in.Author),
		MemoDate: in.MemoDate,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", clientID).Msg("failed to add memo")
		return domain.Memo{}, err
	}
	s.logger.Info().Str("client_id", clientID).Str("memo_id", created.ID).Msg("memo added")
	return created, nil
}

// Update replaces the memo's text and memoDate. Author and CreatedAt are
// untouched. Fails with domain.ErrMemoNotFound when no memo with that id
// exists under that client.
func (s *MemoService) Update(ctx context.Context, clientID, memoID string, in ports.MemoInput) (domain.Memo, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return domain.Memo{}, fmt.Errorf("%w: memo text is required", domain.ErrValidation)
	}
	if in.MemoDate.IsZero() {
		return domain.Memo{}, fmt.Errorf("%w: memo date is required", domain.ErrValidation)
	}

	updated, err := s.memos.Update(ctx, clientID, memoID, text, in.MemoDate)
	if err != nil {
		return domain.Memo{}, err
	}
	s.logger.Info().Str("client_id", clientID).Str("memo_id", memoID).Msg("memo updated")
	return updated, nil
}

// Delete removes the memo. An absent memo is not an error.
func (s *MemoService) Delete(ctx context.Context, clientID, memoID string) error {
	if err := s.memos.Delete(ctx, clientID, memoID); err != nil {
		s.logger.Error().Err(err).Str("memo_id", memoID).Msg("failed to delete memo")
		return err
	}
	s.logger.Info().Str("client_id", clientID).Str("memo_id", memoID).Msg("memo deleted")
	return nil
}
