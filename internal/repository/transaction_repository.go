package repository

import (
	"context"
	"time"

	"finboard/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns("id", "user_id", "name", "amount", "type", "classification",
			"due_date", "payment_date", "is_installment",
			"payee_id", "payment_method_id", "category_id", "subcategory_id",
			"created_at", "updated_at").
		Values(tx.ID, tx.UserID, tx.Name, tx.Amount, tx.Type, tx.Classification,
			tx.DueDate, tx.PaymentDate, tx.IsInstallment,
			tx.PayeeID, tx.PaymentMethodID, tx.CategoryID, tx.SubcategoryID,
			tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// listByOwnerQuery builds the single filtered-sorted-joined read the
// dashboard issues: rows owned by userID whose due date falls inside
// [startDate, endDate] (calendar dates, YYYY-MM-DD), each eagerly joined
// one level with its lookup rows, most recent first.
func listByOwnerQuery(userID uuid.UUID, startDate, endDate string) squirrel.SelectBuilder {
	return squirrel.Select(
		"t.id", "t.user_id", "t.name", "t.amount", "t.type", "t.classification",
		"t.due_date", "t.payment_date", "t.is_installment",
		"t.payee_id", "t.payment_method_id", "t.category_id", "t.subcategory_id",
		"t.created_at", "t.updated_at",
		"p.name", "p.created_at",
		"pm.name", "pm.created_at",
		"c.name", "c.created_at",
		"s.name", "s.created_at", "s.category_id",
	).
		From("transactions t").
		LeftJoin("payees p ON p.id = t.payee_id").
		LeftJoin("payment_methods pm ON pm.id = t.payment_method_id").
		LeftJoin("categories c ON c.id = t.category_id").
		LeftJoin("subcategories s ON s.id = t.subcategory_id").
		Where(squirrel.Eq{"t.user_id": userID}).
		Where(squirrel.GtOrEq{"t.due_date": startDate}).
		Where(squirrel.LtOrEq{"t.due_date": endDate}).
		OrderBy("t.due_date DESC", "t.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *TransactionRepository) ListByOwnerAndDueDate(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]*models.Transaction, error) {
	sql, args, err := listByOwnerQuery(userID, startDate, endDate).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var payeeName, pmName, catName, subName *string
		var payeeCreated, pmCreated, catCreated, subCreated *time.Time
		var subCategoryID *uuid.UUID

		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Name, &tx.Amount, &tx.Type, &tx.Classification,
			&tx.DueDate, &tx.PaymentDate, &tx.IsInstallment,
			&tx.PayeeID, &tx.PaymentMethodID, &tx.CategoryID, &tx.SubcategoryID,
			&tx.CreatedAt, &tx.UpdatedAt,
			&payeeName, &payeeCreated,
			&pmName, &pmCreated,
			&catName, &catCreated,
			&subName, &subCreated, &subCategoryID,
		); err != nil {
			return nil, err
		}

		tx.Payee = joinedLookup(tx.PayeeID, tx.UserID, payeeName, payeeCreated, nil)
		tx.PaymentMethod = joinedLookup(tx.PaymentMethodID, tx.UserID, pmName, pmCreated, nil)
		tx.Category = joinedLookup(tx.CategoryID, tx.UserID, catName, catCreated, nil)
		tx.Subcategory = joinedLookup(tx.SubcategoryID, tx.UserID, subName, subCreated, subCategoryID)

		transactions = append(transactions, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

// TypeTotal is one row of the per-type aggregation over a window.
type TypeTotal struct {
	Type  models.TransactionType
	Total decimal.Decimal
	Count int
}

func (r *TransactionRepository) SummarizeByType(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]TypeTotal, error) {
	query := squirrel.Select("type", "COALESCE(SUM(amount), 0)", "COUNT(*)").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"due_date": startDate}).
		Where(squirrel.LtOrEq{"due_date": endDate}).
		GroupBy("type").
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

	var totals []TypeTotal
	for rows.Next() {
		var t TypeTotal
		if err := rows.Scan(&t.Type, &t.Total, &t.Count); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}

func joinedLookup(id *uuid.UUID, userID uuid.UUID, name *string, createdAt *time.Time, categoryID *uuid.UUID) *models.Lookup {
	if id == nil || name == nil {
		return nil
	}
	l := &models.Lookup{
		ID:         *id,
		UserID:     userID,
		Name:       *name,
		CategoryID: categoryID,
	}
	if createdAt != nil {
		l.CreatedAt = *createdAt
	}
	return l
}
