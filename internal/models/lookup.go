package models

import (
	"time"

	"github.com/google/uuid"
)

// LookupKind names one of the four user-scoped lookup tables that
// transactions reference.
type LookupKind string

const (
	LookupPayee         LookupKind = "payees"
	LookupPaymentMethod LookupKind = "payment_methods"
	LookupCategory      LookupKind = "categories"
	LookupSubcategory   LookupKind = "subcategories"
)

// Lookup is a row of any lookup table: payee, payment method, category
// or subcategory. CategoryID is set only for subcategories.
type Lookup struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	Name       string     `db:"name"`
	CategoryID *uuid.UUID `db:"category_id"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (k LookupKind) Valid() bool {
	switch k {
	case LookupPayee, LookupPaymentMethod, LookupCategory, LookupSubcategory:
		return true
	}
	return false
}
