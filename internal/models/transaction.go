package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeRevenue    TransactionType = "revenue"
	TypeExpense    TransactionType = "expense"
	TypeInvestment TransactionType = "investment"
)

type TransactionClassification string

const (
	ClassificationEssential   TransactionClassification = "essential"
	ClassificationNecessary   TransactionClassification = "necessary"
	ClassificationSuperfluous TransactionClassification = "superfluous"
)

// Transaction is owned by exactly one user. Identity is immutable;
// business fields change only through update operations.
type Transaction struct {
	ID              uuid.UUID                 `db:"id"`
	UserID          uuid.UUID                 `db:"user_id"`
	Name            string                    `db:"name"`
	Amount          decimal.Decimal           `db:"amount"`
	Type            TransactionType           `db:"type"`
	Classification  TransactionClassification `db:"classification"`
	DueDate         time.Time                 `db:"due_date"`
	PaymentDate     *time.Time                `db:"payment_date"`
	IsInstallment   bool                      `db:"is_installment"`
	PayeeID         *uuid.UUID                `db:"payee_id"`
	PaymentMethodID *uuid.UUID                `db:"payment_method_id"`
	CategoryID      *uuid.UUID                `db:"category_id"`
	SubcategoryID   *uuid.UUID                `db:"subcategory_id"`
	CreatedAt       time.Time                 `db:"created_at"`
	UpdatedAt       time.Time                 `db:"updated_at"`

	// Eagerly joined lookup rows, nil when the reference is unset.
	Payee         *Lookup `db:"-"`
	PaymentMethod *Lookup `db:"-"`
	Category      *Lookup `db:"-"`
	Subcategory   *Lookup `db:"-"`
}

func (t TransactionType) Valid() bool {
	switch t {
	case TypeRevenue, TypeExpense, TypeInvestment:
		return true
	}
	return false
}

func (c TransactionClassification) Valid() bool {
	switch c {
	case ClassificationEssential, ClassificationNecessary, ClassificationSuperfluous:
		return true
	}
	return false
}
