package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finboard/internal/daterange"
	"finboard/internal/dto"
	"finboard/internal/models"
	"finboard/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidTransaction = errors.New("invalid transaction input")

const dateLayout = "2006-01-02"

// transactionStore is the slice of the repository the service depends on.
type transactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	ListByOwnerAndDueDate(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]*models.Transaction, error)
	SummarizeByType(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]repository.TypeTotal, error)
}

type TransactionService struct {
	store  transactionStore
	logger *zap.Logger
}

func NewTransactionService(store transactionStore, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		logger: logger,
	}
}

// Fetch returns the caller's transactions whose due date falls inside
// the window resolved from the range token. It never fails: a missing
// identity or a store error is logged and yields an empty slice, so the
// caller cannot distinguish "no data" from "no access" or a failed read.
func (s *TransactionService) Fetch(ctx context.Context, userID uuid.UUID, r daterange.Range, start, end *time.Time) []dto.TransactionResponse {
	if userID == uuid.Nil {
		s.logger.Warn("Transaction fetch without authenticated user")
		return []dto.TransactionResponse{}
	}

	window := daterange.Resolve(r, start, end)
	startDate, endDate := window.FilterDates()

	transactions, err := s.store.ListByOwnerAndDueDate(ctx, userID, startDate, endDate)
	if err != nil {
		s.logger.Error("Transaction fetch failed",
			zap.String("user_id", userID.String()),
			zap.String("start", startDate),
			zap.String("end", endDate),
			zap.Error(err),
		)
		return []dto.TransactionResponse{}
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, toTransactionResponse(tx))
	}
	return responses
}

// Summarize aggregates amounts per transaction type over the resolved
// window. Same degrade-to-empty contract as Fetch.
func (s *TransactionService) Summarize(ctx context.Context, userID uuid.UUID, r daterange.Range, start, end *time.Time) dto.TransactionSummaryResponse {
	window := daterange.Resolve(r, start, end)
	startDate, endDate := window.FilterDates()

	summary := dto.TransactionSummaryResponse{
		Start:      startDate,
		End:        endDate,
		Revenue:    "0",
		Expense:    "0",
		Investment: "0",
		Balance:    "0",
	}

	if userID == uuid.Nil {
		s.logger.Warn("Summary requested without authenticated user")
		return summary
	}

	totals, err := s.store.SummarizeByType(ctx, userID, startDate, endDate)
	if err != nil {
		s.logger.Error("Summary query failed",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return summary
	}

	var revenue, expense, investment decimal.Decimal
	for _, t := range totals {
		switch t.Type {
		case models.TypeRevenue:
			revenue = t.Total
		case models.TypeExpense:
			expense = t.Total
		case models.TypeInvestment:
			investment = t.Total
		}
		summary.Count += t.Count
	}

	summary.Revenue = revenue.String()
	summary.Expense = expense.String()
	summary.Investment = investment.String()
	summary.Balance = revenue.Sub(expense).Sub(investment).String()
	return summary
}

// Create validates and persists a new transaction owned by userID.
// Unlike the read paths, failures surface as errors.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidTransaction
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidTransaction)
	}

	txType := models.TransactionType(req.Type)
	if !txType.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, req.Type)
	}
	classification := models.TransactionClassification(req.Classification)
	if !classification.Valid() {
		return nil, fmt.Errorf("%w: unknown classification %q", ErrInvalidTransaction, req.Classification)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: bad amount %q", ErrInvalidTransaction, req.Amount)
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad due date %q", ErrInvalidTransaction, req.DueDate)
	}

	var paymentDate *time.Time
	if req.PaymentDate != nil {
		pd, err := time.Parse(dateLayout, *req.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad payment date %q", ErrInvalidTransaction, *req.PaymentDate)
		}
		paymentDate = &pd
	}

	payeeID, err := parseOptionalID(req.PayeeID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad payee id", ErrInvalidTransaction)
	}
	paymentMethodID, err := parseOptionalID(req.PaymentMethodID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad payment method id", ErrInvalidTransaction)
	}
	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad category id", ErrInvalidTransaction)
	}
	subcategoryID, err := parseOptionalID(req.SubcategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subcategory id", ErrInvalidTransaction)
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            req.Name,
		Amount:          amount,
		Type:            txType,
		Classification:  classification,
		DueDate:         dueDate,
		PaymentDate:     paymentDate,
		IsInstallment:   req.IsInstallment,
		PayeeID:         payeeID,
		PaymentMethodID: paymentMethodID,
		CategoryID:      categoryID,
		SubcategoryID:   subcategoryID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.Create(ctx, tx); err != nil {
		return nil, err
	}

	resp := toTransactionResponse(tx)
	return &resp, nil
}

func parseOptionalID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toTransactionResponse(tx *models.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:             tx.ID.String(),
		Name:           tx.Name,
		Amount:         tx.Amount.String(),
		Type:           string(tx.Type),
		Classification: string(tx.Classification),
		DueDate:        tx.DueDate.Format(dateLayout),
		IsInstallment:  tx.IsInstallment,
		CreatedAt:      tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.PaymentDate != nil {
		pd := tx.PaymentDate.Format(dateLayout)
		resp.PaymentDate = &pd
	}
	resp.Payee = toLookupResponse(tx.Payee)
	resp.PaymentMethod = toLookupResponse(tx.PaymentMethod)
	resp.Category = toLookupResponse(tx.Category)
	resp.Subcategory = toLookupResponse(tx.Subcategory)
	return resp
}

func toLookupResponse(l *models.Lookup) *dto.LookupResponse {
	if l == nil {
		return nil
	}
	resp := &dto.LookupResponse{
		ID:        l.ID.String(),
		Name:      l.Name,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
	if l.CategoryID != nil {
		id := l.CategoryID.String()
		resp.CategoryID = &id
	}
	return resp
}
