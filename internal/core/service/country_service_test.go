package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

type stubCountryRepo struct {
	names []string
}

func (r *stubCountryRepo) List(_ context.Context) ([]string, error) {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out, nil
}

func (r *stubCountryRepo) Add(_ context.Context, name string) error {
	for _, n := range r.names {
		if n == name {
			return nil
		}
	}
	r.names = append(r.names, name)
	return nil
}

func TestCountryService_AddTrims(t *testing.T) {
	repo := &stubCountryRepo{}
	svc := NewCountryService(repo, zerolog.Nop())

	stored, err := svc.Add(context.Background(), "  New Zealand  ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if stored != "New Zealand" {
		t.Fatalf("expected trimmed name, got %q", stored)
	}
	if len(repo.names) != 1 || repo.names[0] != "New Zealand" {
		t.Fatalf("stored name wrong: %v", repo.names)
	}
}

func TestCountryService_AddBlankIsNoOp(t *testing.T) {
	repo := &stubCountryRepo{}
	svc := NewCountryService(repo, zerolog.Nop())

	stored, err := svc.Add(context.Background(), "   ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if stored != "" {
		t.Fatalf("blank input should return empty, got %q", stored)
	}
	if len(repo.names) != 0 {
		t.Fatalf("blank input must not be stored")
	}
}
