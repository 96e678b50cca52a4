package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appdomain "mikopo-backoffice/internal/domain/application"
	"mikopo-backoffice/internal/domain/audit"
	"mikopo-backoffice/internal/domain/cashflow"
	"mikopo-backoffice/internal/domain/document"
	"mikopo-backoffice/internal/domain/installment"
)

// newTestDB opens an isolated in-memory database with the full schema.
// Connections are pinned to one so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&appdomain.Application{},
		&installment.Installment{},
		&cashflow.Entry{},
		&document.Document{},
		&audit.Entry{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustDec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedApplication(t *testing.T, db *gorm.DB, nationalID string, status appdomain.Status) *appdomain.Application {
	t.Helper()
	a := &appdomain.Application{
		ApplicantName:    "Asha Mwinyi",
		NationalID:       nationalID,
		Principal:        mustDec("1200000"),
		TermMonths:       12,
		InterestRate:     12,
		EmploymentStatus: appdomain.EmploymentEntrepreneur,
		RepaymentMode:    appdomain.RepayMonthly,
		Sponsor1Name:     "Juma Kassim",
		Sponsor1ID:       "SP-1",
		Sponsor2Name:     "Neema Said",
		Sponsor2ID:       "SP-2",
		Status:           status,
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return a
}
