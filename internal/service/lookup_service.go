package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finboard/internal/dto"
	"finboard/internal/highlight"
	"finboard/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidLookup = errors.New("invalid lookup input")

type lookupStore interface {
	Create(ctx context.Context, kind models.LookupKind, l *models.Lookup) error
	ListByOwner(ctx context.Context, kind models.LookupKind, userID uuid.UUID) ([]*models.Lookup, error)
}

type LookupService struct {
	store  lookupStore
	logger *zap.Logger
}

func NewLookupService(store lookupStore, logger *zap.Logger) *LookupService {
	return &LookupService{
		store:  store,
		logger: logger,
	}
}

// List returns the caller's rows of one lookup kind, name ascending.
// A non-empty needle attaches highlight spans segmenting each name
// against it, diacritic- and case-insensitively.
func (s *LookupService) List(ctx context.Context, kind models.LookupKind, userID uuid.UUID, needle string) ([]dto.LookupResponse, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidLookup, kind)
	}

	lookups, err := s.store.ListByOwner(ctx, kind, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.LookupResponse, 0, len(lookups))
	for _, l := range lookups {
		resp := *toLookupResponse(l)
		if needle != "" {
			resp.Spans = highlight.Highlight(l.Name, needle)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *LookupService) Create(ctx context.Context, kind models.LookupKind, userID uuid.UUID, req *dto.CreateLookupRequest) (*dto.LookupResponse, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidLookup, kind)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidLookup)
	}

	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad category id", ErrInvalidLookup)
	}
	if categoryID != nil && kind != models.LookupSubcategory {
		return nil, fmt.Errorf("%w: category id only applies to subcategories", ErrInvalidLookup)
	}

	l := &models.Lookup{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       req.Name,
		CategoryID: categoryID,
		CreatedAt:  time.Now(),
	}

	if err := s.store.Create(ctx, kind, l); err != nil {
		return nil, err
	}

	return toLookupResponse(l), nil
}
