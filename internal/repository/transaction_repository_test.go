package repository

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestListByOwnerQuerySQL(t *testing.T) {
	userID := uuid.New()
	sql, args, err := listByOwnerQuery(userID, "2024-03-01", "2024-03-31").ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}

	for _, fragment := range []string{
		"FROM transactions t",
		"LEFT JOIN payees p ON p.id = t.payee_id",
		"LEFT JOIN payment_methods pm ON pm.id = t.payment_method_id",
		"LEFT JOIN categories c ON c.id = t.category_id",
		"LEFT JOIN subcategories s ON s.id = t.subcategory_id",
		"t.user_id = $",
		"t.due_date >= $",
		"t.due_date <= $",
		"ORDER BY t.due_date DESC, t.created_at DESC",
	} {
		if !strings.Contains(sql, fragment) {
			t.Errorf("query missing %q:\n%s", fragment, sql)
		}
	}

	if len(args) != 3 {
		t.Fatalf("args = %v, want 3 values", args)
	}
	// squirrel runs args through driver.Valuer, so the UUID arrives in
	// its string form.
	if args[0] != userID.String() {
		t.Errorf("first arg = %v, want owner id %s", args[0], userID)
	}
	if args[1] != "2024-03-01" || args[2] != "2024-03-31" {
		t.Errorf("date args = %v %v, want calendar-date strings", args[1], args[2])
	}
}

func TestListByOwnerQueryFiltersInStore(t *testing.T) {
	// Ownership must be enforced by the WHERE clause, never by
	// post-filtering rows after the store returns them.
	sql, _, err := listByOwnerQuery(uuid.New(), "2024-01-01", "2024-12-31").ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if !strings.Contains(sql, "WHERE") || !strings.Contains(sql, "t.user_id") {
		t.Errorf("owner filter not part of WHERE clause:\n%s", sql)
	}
}
