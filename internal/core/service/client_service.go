package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/omotenashi/partner-crm/internal/core/domain"
	"github.com/omotenashi/partner-crm/internal/core/ports"
)

type ClientService struct {
	clients ports.ClientRepository
	history ports.HistoryRepository
	memos   ports.MemoRepository
	logger  zerolog.Logger
}

func NewClientService(
	clients ports.ClientRepository,
	history ports.HistoryRepository,
	memos ports.MemoRepository,
	logger zerolog.Logger,
) *ClientService {
	return &ClientService{clients: clients, history: history, memos: memos, logger: logger}
}

// List returns all clients without aggregation.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

// ListWithLatestMemo returns all clients with each one's most recently
// created memo attached. Clients without memos are returned with LatestMemo
// unset. CreatedAt ties are broken by first-seen order in the memo listing.
func (s *ClientService) ListWithLatestMemo(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	var memos []domain.Memo

	// The two reads are independent; no consistency snapshot is promised
	// across them.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = s.clients.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		memos, err = s.memos.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	latest := make(map[string]domain.Memo, len(clients))
	for _, m := range memos {
		cur, ok := latest[m.ClientID]
		if !ok || m.CreatedAt.After(cur.CreatedAt) {
			latest[m.ClientID] = m
		}
	}

	for i := range clients {
		if m, ok := latest[clients[i].ID]; ok {
			memo := m
			clients[i].LatestMemo = &memo
		}
	}
	return clients, nil
}

// Save inserts a new client when in.ID is empty, otherwise updates the
// existing one with replace semantics: optional contact fields left blank in
// the input are erased from the stored record.
func (s *ClientService) Save(ctx context.Context, in ports.ClientInput) (domain.Client, error) {
	c, err := clientFromInput(in)
	if err != nil {
		return domain.Client{}, err
	}

	if in.ID != "" {
		updated, err := s.clients.Update(ctx, c)
		if err != nil {
			s.logger.Error().Err(err).Str("client_id", in.ID).Msg("failed to update client")
			return domain.Client{}, err
		}
		s.logger.Info().Str("client_id", updated.ID).Msg("client updated")
		return updated, nil
	}

	created, err := s.clients.Insert(ctx, c)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return domain.Client{}, err
	}
	s.logger.Info().Str("client_id", created.ID).Msg("client created")
	return created, nil
}

// BulkAdd inserts all inputs as one atomic batch. Any invalid input rejects
// the whole batch before a backend call is made.
func (s *ClientService) BulkAdd(ctx context.Context, ins []ports.ClientInput) ([]domain.Client, error) {
	if len(ins) == 0 {
		return nil, fmt.Errorf("%w: no clients to add", domain.ErrValidation)
	}

	batch := make([]domain.Client, 0, len(ins))
	for i, in := range ins {
		c, err := clientFromInput(in)
		if err != nil {
			return nil, fmt.Errorf("client %d: %w", i, err)
		}
		batch = append(batch, c)
	}

	created, err := s.clients.InsertMany(ctx, batch)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(batch)).Msg("bulk add failed")
		return nil, err
	}
	s.logger.Info().Int("count", len(created)).Msg("clients bulk added")
	return created, nil
}

// Delete removes the client and all of its history and memo records. The
// sub-record deletions run concurrently (the collections are disjoint); the
// client record itself is only deleted once both have succeeded, so a
// cascade failure leaves the client listable rather than half-deleted.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: client id is required", domain.ErrValidation)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.history.DeleteByClient(gctx, id) })
	g.Go(func() error { return s.memos.DeleteByClient(gctx, id) })
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("client_id", id).Msg("cascade delete failed, client kept")
		return fmt.Errorf("delete client %s: cascade: %w", id, err)
	}

	if err := s.clients.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("client_id", id).Msg("failed to delete client")
		return err
	}
	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

// clientFromInput trims, validates, and assembles a domain.Client. The
// transient LatestMemo never makes it into the write path.
func clientFromInput(in ports.ClientInput) (domain.Client, error) {
	nameEN := strings.TrimSpace(in.NameEN)
	nameJA := strings.TrimSpace(in.NameJA)
	if nameEN == "" || nameJA == "" {
		return domain.Client{}, fmt.Errorf("%w: name is required in both locales", domain.ErrValidation)
	}

	modes := make([]domain.Mode, 0, len(in.Types))
	for _, t := range in.Types {
		t = strings.TrimSpace(t)
		if !domain.ValidMode(t) {
			return domain.Client{}, fmt.Errorf("%w: unknown client type %q", domain.ErrValidation, t)
		}
		modes = append(modes, domain.Mode(t))
	}
	if len(modes) == 0 {
		return domain.Client{}, fmt.Errorf("%w: at least one client type is required", domain.ErrValidation)
	}

	countries := make([]string, 0, len(in.CountryStrengths))
	for _, c := range in.CountryStrengths {
		if c = strings.TrimSpace(c); c != "" {
			countries = append(countries, c)
		}
	}

	return domain.Client{
		ID:               in.ID,
		Name:             domain.BilingualString{EN: nameEN, JA: nameJA},
		Type:             modes,
		CountryStrengths: countries,
		ContactName:      strings.TrimSpace(in.ContactName),
		ContactEmail:     strings.TrimSpace(in.ContactEmail),
		ContactPhone:     strings.TrimSpace(in.ContactPhone),
		Website:          strings.TrimSpace(in.Website),
	}, nil
}
