package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"finboard/internal/daterange"
	"finboard/internal/dto"
	"finboard/internal/models"
	"finboard/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type fakeStore struct {
	rows    []*models.Transaction
	totals  []repository.TypeTotal
	err     error
	lastUID uuid.UUID
	lastStart,
	lastEnd string
	created *models.Transaction
}

func (f *fakeStore) Create(ctx context.Context, tx *models.Transaction) error {
	f.created = tx
	return f.err
}

func (f *fakeStore) ListByOwnerAndDueDate(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]*models.Transaction, error) {
	f.lastUID, f.lastStart, f.lastEnd = userID, startDate, endDate
	return f.rows, f.err
}

func (f *fakeStore) SummarizeByType(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]repository.TypeTotal, error) {
	f.lastUID, f.lastStart, f.lastEnd = userID, startDate, endDate
	return f.totals, f.err
}

func newTestService(store *fakeStore) *TransactionService {
	return NewTransactionService(store, zap.NewNop())
}

func TestFetchWithoutIdentityReturnsEmpty(t *testing.T) {
	store := &fakeStore{err: errors.New("store must not be reached")}
	svc := newTestService(store)

	got := svc.Fetch(context.Background(), uuid.Nil, daterange.RangeMonth, nil, nil)

	if got == nil {
		t.Fatal("Fetch returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Fetch returned %d rows, want 0", len(got))
	}
	if store.lastUID != uuid.Nil {
		t.Error("store was queried despite missing identity")
	}
}

func TestFetchStoreErrorReturnsEmpty(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	svc := newTestService(store)

	got := svc.Fetch(context.Background(), uuid.New(), daterange.RangeMonth, nil, nil)

	if got == nil || len(got) != 0 {
		t.Errorf("Fetch = %v, want empty slice on store failure", got)
	}
}

func TestFetchPassesCalendarDateBounds(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	userID := uuid.New()
	ref := time.Date(2024, time.February, 15, 13, 45, 0, 0, time.UTC)

	svc.Fetch(context.Background(), userID, daterange.RangeMonth, &ref, nil)

	if store.lastUID != userID {
		t.Errorf("store queried with user %v, want %v", store.lastUID, userID)
	}
	if store.lastStart != "2024-02-01" {
		t.Errorf("start bound = %q, want 2024-02-01", store.lastStart)
	}
	if store.lastEnd != "2024-02-29" {
		t.Errorf("end bound = %q, want 2024-02-29", store.lastEnd)
	}
}

func TestFetchMapsJoinedRows(t *testing.T) {
	payeeID := uuid.New()
	due := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{rows: []*models.Transaction{
		{
			ID:             uuid.New(),
			Name:           "Aluguel",
			Amount:         decimal.RequireFromString("1500.00"),
			Type:           models.TypeExpense,
			Classification: models.ClassificationEssential,
			DueDate:        due,
			PayeeID:        &payeeID,
			Payee:          &models.Lookup{ID: payeeID, Name: "Imobiliária"},
			CreatedAt:      due,
		},
	}}
	svc := newTestService(store)

	got := svc.Fetch(context.Background(), uuid.New(), daterange.RangeMonth, &due, nil)

	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if got[0].DueDate != "2024-03-01" {
		t.Errorf("DueDate = %q, want 2024-03-01", got[0].DueDate)
	}
	if got[0].Amount != "1500" {
		t.Errorf("Amount = %q, want 1500", got[0].Amount)
	}
	if got[0].Payee == nil || got[0].Payee.Name != "Imobiliária" {
		t.Errorf("Payee = %+v, want joined payee row", got[0].Payee)
	}
	if got[0].Category != nil {
		t.Errorf("Category = %+v, want nil for unset reference", got[0].Category)
	}
}

func TestSummarize(t *testing.T) {
	store := &fakeStore{totals: []repository.TypeTotal{
		{Type: models.TypeRevenue, Total: decimal.RequireFromString("5000"), Count: 2},
		{Type: models.TypeExpense, Total: decimal.RequireFromString("3200.50"), Count: 7},
		{Type: models.TypeInvestment, Total: decimal.RequireFromString("800"), Count: 1},
	}}
	svc := newTestService(store)
	ref := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	got := svc.Summarize(context.Background(), uuid.New(), daterange.RangeMonth, &ref, nil)

	if got.Revenue != "5000" || got.Expense != "3200.5" || got.Investment != "800" {
		t.Errorf("totals = %s/%s/%s", got.Revenue, got.Expense, got.Investment)
	}
	if got.Balance != "999.5" {
		t.Errorf("Balance = %q, want 999.5", got.Balance)
	}
	if got.Count != 10 {
		t.Errorf("Count = %d, want 10", got.Count)
	}
	if got.Start != "2024-06-01" || got.End != "2024-06-30" {
		t.Errorf("window = [%s, %s], want June 2024", got.Start, got.End)
	}
}

func TestSummarizeStoreErrorReturnsZeroes(t *testing.T) {
	store := &fakeStore{err: errors.New("timeout")}
	svc := newTestService(store)

	got := svc.Summarize(context.Background(), uuid.New(), daterange.RangeMonth, nil, nil)

	if got.Revenue != "0" || got.Expense != "0" || got.Balance != "0" || got.Count != 0 {
		t.Errorf("summary on failure = %+v, want zero values", got)
	}
}

func TestCreateValidation(t *testing.T) {
	valid := dto.CreateTransactionRequest{
		Name:           "Mercado",
		Amount:         "250.75",
		Type:           "expense",
		Classification: "essential",
		DueDate:        "2024-04-10",
	}

	tests := []struct {
		name   string
		mutate func(r *dto.CreateTransactionRequest)
	}{
		{"empty name", func(r *dto.CreateTransactionRequest) { r.Name = "" }},
		{"bad type", func(r *dto.CreateTransactionRequest) { r.Type = "transfer" }},
		{"bad classification", func(r *dto.CreateTransactionRequest) { r.Classification = "optional" }},
		{"bad amount", func(r *dto.CreateTransactionRequest) { r.Amount = "abc" }},
		{"bad due date", func(r *dto.CreateTransactionRequest) { r.DueDate = "10/04/2024" }},
		{"bad payee id", func(r *dto.CreateTransactionRequest) { s := "nope"; r.PayeeID = &s }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			svc := newTestService(store)
			req := valid
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), uuid.New(), &req)
			if !errors.Is(err, ErrInvalidTransaction) {
				t.Errorf("Create error = %v, want ErrInvalidTransaction", err)
			}
			if store.created != nil {
				t.Error("invalid transaction reached the store")
			}
		})
	}
}

func TestCreatePersistsOwnedTransaction(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	userID := uuid.New()

	resp, err := svc.Create(context.Background(), userID, &dto.CreateTransactionRequest{
		Name:           "Salário",
		Amount:         "7000",
		Type:           "revenue",
		Classification: "essential",
		DueDate:        "2024-04-05",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if store.created == nil {
		t.Fatal("nothing persisted")
	}
	if store.created.UserID != userID {
		t.Errorf("persisted owner = %v, want %v", store.created.UserID, userID)
	}
	if resp.Type != "revenue" || resp.DueDate != "2024-04-05" {
		t.Errorf("response = %+v", resp)
	}
}

func TestCreateStoreErrorPropagates(t *testing.T) {
	// Write failures must surface, unlike the read paths.
	store := &fakeStore{err: errors.New("constraint violation")}
	svc := newTestService(store)

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateTransactionRequest{
		Name:           "Luz",
		Amount:         "120",
		Type:           "expense",
		Classification: "essential",
		DueDate:        "2024-04-10",
	})
	if err == nil {
		t.Fatal("Create swallowed the store error")
	}
}
