package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"finboard/internal/dto"
	"finboard/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeLookupStore struct {
	rows     []*models.Lookup
	err      error
	created  *models.Lookup
	lastKind models.LookupKind
}

func (f *fakeLookupStore) Create(ctx context.Context, kind models.LookupKind, l *models.Lookup) error {
	f.lastKind = kind
	f.created = l
	return f.err
}

func (f *fakeLookupStore) ListByOwner(ctx context.Context, kind models.LookupKind, userID uuid.UUID) ([]*models.Lookup, error) {
	f.lastKind = kind
	return f.rows, f.err
}

func TestLookupListRejectsUnknownKind(t *testing.T) {
	svc := NewLookupService(&fakeLookupStore{}, zap.NewNop())

	_, err := svc.List(context.Background(), models.LookupKind("vendors"), uuid.New(), "")
	if !errors.Is(err, ErrInvalidLookup) {
		t.Errorf("List error = %v, want ErrInvalidLookup", err)
	}
}

func TestLookupListHighlightsNames(t *testing.T) {
	store := &fakeLookupStore{rows: []*models.Lookup{
		{ID: uuid.New(), Name: "São Paulo Energia", CreatedAt: time.Now()},
		{ID: uuid.New(), Name: "Mercado Central", CreatedAt: time.Now()},
	}}
	svc := NewLookupService(store, zap.NewNop())

	got, err := svc.List(context.Background(), models.LookupPayee, uuid.New(), "sao")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}

	first := got[0].Spans
	if len(first) != 2 || !first[0].Matched || first[0].Text != "São" {
		t.Errorf("spans for matching name = %+v", first)
	}
	second := got[1].Spans
	if len(second) != 1 || second[0].Matched {
		t.Errorf("spans for non-matching name = %+v, want single unmatched span", second)
	}
}

func TestLookupListWithoutNeedleOmitsSpans(t *testing.T) {
	store := &fakeLookupStore{rows: []*models.Lookup{
		{ID: uuid.New(), Name: "Aluguel", CreatedAt: time.Now()},
	}}
	svc := NewLookupService(store, zap.NewNop())

	got, err := svc.List(context.Background(), models.LookupCategory, uuid.New(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got[0].Spans != nil {
		t.Errorf("Spans = %+v, want nil without a search term", got[0].Spans)
	}
}

func TestLookupCreateScopesToOwner(t *testing.T) {
	store := &fakeLookupStore{}
	svc := NewLookupService(store, zap.NewNop())
	userID := uuid.New()

	resp, err := svc.Create(context.Background(), models.LookupPaymentMethod, userID, &dto.CreateLookupRequest{Name: "Pix"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if store.created == nil || store.created.UserID != userID {
		t.Errorf("persisted lookup = %+v, want owner %v", store.created, userID)
	}
	if resp.Name != "Pix" {
		t.Errorf("Name = %q, want Pix", resp.Name)
	}
}

func TestLookupCreateCategoryIDOnlyForSubcategories(t *testing.T) {
	store := &fakeLookupStore{}
	svc := NewLookupService(store, zap.NewNop())
	catID := uuid.New().String()

	_, err := svc.Create(context.Background(), models.LookupPayee, uuid.New(), &dto.CreateLookupRequest{
		Name:       "Padaria",
		CategoryID: &catID,
	})
	if !errors.Is(err, ErrInvalidLookup) {
		t.Errorf("Create error = %v, want ErrInvalidLookup", err)
	}

	resp, err := svc.Create(context.Background(), models.LookupSubcategory, uuid.New(), &dto.CreateLookupRequest{
		Name:       "Padaria",
		CategoryID: &catID,
	})
	if err != nil {
		t.Fatalf("Create subcategory: %v", err)
	}
	if resp.CategoryID == nil || *resp.CategoryID != catID {
		t.Errorf("CategoryID = %v, want %s", resp.CategoryID, catID)
	}
}
