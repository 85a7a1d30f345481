package repository

import (
	"context"

	"finboard/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// LookupRepository serves all four lookup tables (payees, payment
// methods, categories, subcategories); they share one shape apart from
// category_id on subcategories.
type LookupRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLookupRepository(db *pgxpool.Pool, logger *zap.Logger) *LookupRepository {
	return &LookupRepository{
		db:     db,
		logger: logger,
	}
}

func (r *LookupRepository) Create(ctx context.Context, kind models.LookupKind, l *models.Lookup) error {
	builder := squirrel.Insert(string(kind)).PlaceholderFormat(squirrel.Dollar)
	if kind == models.LookupSubcategory {
		builder = builder.
			Columns("id", "user_id", "category_id", "name", "created_at").
			Values(l.ID, l.UserID, l.CategoryID, l.Name, l.CreatedAt)
	} else {
		builder = builder.
			Columns("id", "user_id", "name", "created_at").
			Values(l.ID, l.UserID, l.Name, l.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *LookupRepository) ListByOwner(ctx context.Context, kind models.LookupKind, userID uuid.UUID) ([]*models.Lookup, error) {
	columns := []string{"id", "user_id", "name", "created_at"}
	if kind == models.LookupSubcategory {
		columns = append(columns, "category_id")
	}

	query := squirrel.Select(columns...).
		From(string(kind)).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []*models.Lookup
	for rows.Next() {
		var l models.Lookup
		dest := []any{&l.ID, &l.UserID, &l.Name, &l.CreatedAt}
		if kind == models.LookupSubcategory {
			dest = append(dest, &l.CategoryID)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		lookups = append(lookups, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lookups, nil
}
