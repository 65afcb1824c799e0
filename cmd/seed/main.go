// Package main provides a CLI tool for seeding the database with
// initial data: the admin user, default company settings, and an
// optional demo ledger for trying out invoice generation.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"tradebill/internal/core/id"
	"tradebill/internal/infrastructure/storage/postgres"
	"tradebill/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if err := seedCompanySettings(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed company settings", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoLedger(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@tradebill.local"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1`,
		adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	now := time.Now().UTC()

	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO users (
			id, email, password_hash, full_name, roles,
			is_active, failed_login_attempts, created_at, updated_at, version
		)
		VALUES ($1, $2, $3, 'Administrator', $4, true, 0, $5, $5, 1)
	`, userID, adminEmail, string(passwordHash), []string{"admin"}, now)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", userID)
	return nil
}

func seedCompanySettings(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	companyName := os.Getenv("COMPANY_NAME")
	if companyName == "" {
		companyName = "My Company"
	}

	tag, err := pool.Pool.Exec(ctx, `
		INSERT INTO sys_company_settings (
			id, company_name, invoice_prefix, next_invoice_number, version, updated_at
		)
		VALUES ($1, $2, 'INV', 1, 1, NOW())
		ON CONFLICT DO NOTHING
	`, id.New(), companyName)
	if err != nil {
		return fmt.Errorf("insert company settings: %w", err)
	}

	if tag.RowsAffected() == 0 {
		log.Info("company settings already present")
	} else {
		log.Infow("company settings created", "company_name", companyName)
	}
	return nil
}

// seedDemoLedger creates one client, one material, and a small ledger
// of orders and payments spanning two months.
func seedDemoLedger(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	log.Info("seeding demo data...")

	clientID := id.New()
	tag, err := pool.Pool.Exec(ctx, `
		INSERT INTO cat_clients (
			id, code, name, address, city, state, gst_number,
			opening_balance, deletion_mark, version
		)
		VALUES ($1, 'CL-1', 'Sharma Traders', '14 Market Road', 'Jaipur', 'Rajasthan',
			'08AAACS1234A1Z5', 5000, false, 1)
		ON CONFLICT DO NOTHING
	`, clientID)
	if err != nil {
		return fmt.Errorf("insert demo client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Info("demo data already present, skipping")
		return nil
	}

	materialID := id.New()
	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO cat_materials (id, code, name, unit, rate, deletion_mark, version)
		VALUES ($1, 'MAT-1', 'River Sand', 'MT', 850, false, 1)
	`, materialID)
	if err != nil {
		return fmt.Errorf("insert demo material: %w", err)
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonth := monthStart.AddDate(0, -1, 0)

	type orderSeed struct {
		number string
		date   time.Time
		weight decimal.Decimal
		rate   decimal.Decimal
	}
	orders := []orderSeed{
		{"ORD-1", prevMonth.AddDate(0, 0, 4), decimal.NewFromFloat(12.500), decimal.NewFromInt(850)},
		{"ORD-2", prevMonth.AddDate(0, 0, 17), decimal.NewFromFloat(8.250), decimal.NewFromInt(850)},
		{"ORD-3", monthStart.AddDate(0, 0, 2), decimal.NewFromFloat(15.000), decimal.NewFromInt(900)},
		{"ORD-4", monthStart.AddDate(0, 0, 9), decimal.NewFromFloat(10.750), decimal.NewFromInt(900)},
	}
	for _, o := range orders {
		total := o.weight.Mul(o.rate)
		_, err = pool.Pool.Exec(ctx, `
			INSERT INTO doc_orders (
				id, number, date, client_id, material_id, material,
				weight, rate, total, deletion_mark, version, created_at, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, 'River Sand', $6, $7, $8, false, 1, NOW(), NOW())
		`, id.New(), o.number, o.date, clientID, materialID, o.weight, o.rate, total)
		if err != nil {
			return fmt.Errorf("insert demo order %s: %w", o.number, err)
		}
	}

	type paymentSeed struct {
		number string
		date   time.Time
		amount decimal.Decimal
		mode   string
	}
	payments := []paymentSeed{
		{"PAY-1", prevMonth.AddDate(0, 0, 20), decimal.NewFromInt(10000), "bank"},
		{"PAY-2", monthStart.AddDate(0, 0, 12), decimal.NewFromInt(8000), "upi"},
	}
	for _, p := range payments {
		_, err = pool.Pool.Exec(ctx, `
			INSERT INTO doc_payments (
				id, number, date, client_id, amount, mode,
				deletion_mark, version, created_at, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, false, 1, NOW(), NOW())
		`, id.New(), p.number, p.date, clientID, p.amount, p.mode)
		if err != nil {
			return fmt.Errorf("insert demo payment %s: %w", p.number, err)
		}
	}

	log.Infow("demo data created",
		"client_id", clientID,
		"orders", len(orders),
		"payments", len(payments),
	)
	return nil
}
