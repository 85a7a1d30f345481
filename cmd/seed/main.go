// Command seed populates the database with a demo user, lookup tables
// and a few months of fake transactions.
package main

import (
	"context"
	"log"
	"time"

	"finboard/internal/models"
	"finboard/internal/repository"
	"finboard/pkg/auth"
	"finboard/pkg/config"
	"finboard/pkg/logger"
	"finboard/pkg/postgres"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@finboard.dev"
	demoPassword = "demo-password"
	months       = 6
	perMonth     = 40
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	lookupRepo := repository.NewLookupRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	appLogger.Info("Starting database seeding")

	user, err := userRepo.GetByEmail(ctx, demoEmail)
	if err != nil {
		user = newDemoUser(appLogger)
		if err := userRepo.Create(ctx, user); err != nil {
			appLogger.Fatal("Failed to create demo user", zap.Error(err))
		}
		appLogger.Info("Created demo user", zap.String("email", demoEmail))
	} else {
		appLogger.Info("Demo user already present, reusing", zap.String("email", demoEmail))
	}

	payees := seedLookups(ctx, lookupRepo, models.LookupPayee, user.ID, appLogger,
		gofakeit.Company, 12)
	methods := seedLookups(ctx, lookupRepo, models.LookupPaymentMethod, user.ID, appLogger,
		func() string { return gofakeit.RandomString([]string{"Credit card", "Debit card", "Bank transfer", "Cash", "Pix"}) }, 5)
	categories := seedLookups(ctx, lookupRepo, models.LookupCategory, user.ID, appLogger,
		func() string {
			return gofakeit.RandomString([]string{"Housing", "Food", "Transport", "Health", "Leisure", "Education", "Utilities", "Savings"})
		}, 8)

	var subcategories []*models.Lookup
	for i := 0; i < 16; i++ {
		parent := categories[gofakeit.Number(0, len(categories)-1)]
		sub := &models.Lookup{
			ID:         uuid.New(),
			UserID:     user.ID,
			Name:       gofakeit.ProductName(),
			CategoryID: &parent.ID,
			CreatedAt:  time.Now(),
		}
		if err := lookupRepo.Create(ctx, models.LookupSubcategory, sub); err != nil {
			appLogger.Fatal("Failed to seed subcategory", zap.Error(err))
		}
		subcategories = append(subcategories, sub)
	}

	now := time.Now()
	count := 0
	for m := 0; m < months; m++ {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -m, 0)
		for i := 0; i < perMonth; i++ {
			tx := fakeTransaction(user.ID, monthStart, payees, methods, categories, subcategories)
			if err := txRepo.Create(ctx, tx); err != nil {
				appLogger.Fatal("Failed to seed transaction", zap.Error(err))
			}
			count++
		}
	}

	appLogger.Info("Seeding complete",
		zap.Int("transactions", count),
		zap.Int("payees", len(payees)),
		zap.Int("categories", len(categories)),
	)
}

func newDemoUser(appLogger *zap.Logger) *models.User {
	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		appLogger.Fatal("Failed to hash demo password", zap.Error(err))
	}
	now := time.Now()
	return &models.User{
		ID:        uuid.New(),
		Username:  "demo",
		Email:     demoEmail,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func seedLookups(ctx context.Context, repo *repository.LookupRepository, kind models.LookupKind, userID uuid.UUID, appLogger *zap.Logger, name func() string, n int) []*models.Lookup {
	seen := map[string]bool{}
	var lookups []*models.Lookup
	for len(lookups) < n {
		candidate := name()
		if seen[candidate] {
			continue
		}
		seen[candidate] = true

		l := &models.Lookup{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      candidate,
			CreatedAt: time.Now(),
		}
		if err := repo.Create(ctx, kind, l); err != nil {
			appLogger.Fatal("Failed to seed lookup", zap.String("kind", string(kind)), zap.Error(err))
		}
		lookups = append(lookups, l)
	}
	return lookups
}

func fakeTransaction(userID uuid.UUID, monthStart time.Time, payees, methods, categories, subcategories []*models.Lookup) *models.Transaction {
	txType := models.TypeExpense
	classification := models.ClassificationNecessary
	amount := decimal.NewFromFloat(gofakeit.Price(10, 900))

	switch gofakeit.Number(0, 9) {
	case 0, 1:
		txType = models.TypeRevenue
		classification = models.ClassificationEssential
		amount = decimal.NewFromFloat(gofakeit.Price(1000, 9000))
	case 2:
		txType = models.TypeInvestment
		classification = models.ClassificationNecessary
		amount = decimal.NewFromFloat(gofakeit.Price(100, 2000))
	default:
		classification = models.TransactionClassification(gofakeit.RandomString([]string{
			string(models.ClassificationEssential),
			string(models.ClassificationNecessary),
			string(models.ClassificationSuperfluous),
		}))
	}

	dueDate := monthStart.AddDate(0, 0, gofakeit.Number(0, 27))
	var paymentDate *time.Time
	if gofakeit.Bool() {
		pd := dueDate.AddDate(0, 0, gofakeit.Number(-2, 5))
		paymentDate = &pd
	}

	now := time.Now()
	return &models.Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            gofakeit.ProductName(),
		Amount:          amount.Round(2),
		Type:            txType,
		Classification:  classification,
		DueDate:         dueDate,
		PaymentDate:     paymentDate,
		IsInstallment:   gofakeit.Number(0, 4) == 0,
		PayeeID:         maybeID(payees),
		PaymentMethodID: maybeID(methods),
		CategoryID:      maybeID(categories),
		SubcategoryID:   maybeID(subcategories),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func maybeID(lookups []*models.Lookup) *uuid.UUID {
	if len(lookups) == 0 || gofakeit.Number(0, 5) == 0 {
		return nil
	}
	return &lookups[gofakeit.Number(0, len(lookups)-1)].ID
}
