package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM / DECIMAL types) ---

type memberSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	MemberID  string         `gorm:"size:32;column:member_id"`
	Name      string         `gorm:"column:name"`
	Phone     string         `gorm:"column:phone"`
	Email     string         `gorm:"column:email"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (memberSQLite) TableName() string { return "members" }

type contributionSQLite struct {
	ID             uint64          `gorm:"primaryKey;column:id"`
	ContributionID string          `gorm:"size:32;column:contribution_id"`
	MemberID       string          `gorm:"size:32;column:member_id"`
	Amount         decimal.Decimal `gorm:"type:numeric;column:amount"`
	Method         string          `gorm:"column:method"`
	Status         string          `gorm:"type:text;column:status"` // ← no enum
	VerifiedAt     *time.Time      `gorm:"column:verified_at"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"column:deleted_at"`
}

func (contributionSQLite) TableName() string { return "contributions" }

type loanSQLite struct {
	ID              uint64              `gorm:"primaryKey;column:id"`
	LoanID          string              `gorm:"size:32;column:loan_id"`
	MemberID        string              `gorm:"size:32;column:member_id"`
	Principal       decimal.Decimal     `gorm:"type:numeric;column:principal"`
	TermMonths      int                 `gorm:"column:term_months"`
	Purpose         string              `gorm:"column:purpose"`
	Status          string              `gorm:"type:text;column:status"` // ← no enum
	Rate            decimal.Decimal     `gorm:"type:numeric;column:rate"`
	MonthlyPayment  decimal.NullDecimal `gorm:"type:numeric;column:monthly_payment"`
	Balance         decimal.NullDecimal `gorm:"type:numeric;column:balance"`
	Disbursed       decimal.NullDecimal `gorm:"type:numeric;column:disbursed"`
	NextDueAt       *time.Time          `gorm:"column:next_due_at"`
	CompletedAt     *time.Time          `gorm:"column:completed_at"`
	RejectedAt      *time.Time          `gorm:"column:rejected_at"`
	RejectReason    string              `gorm:"column:reject_reason"`
	StatusUpdatedAt time.Time           `gorm:"column:status_updated_at"`
	CreatedAt       time.Time           `gorm:"column:created_at"`
	UpdatedAt       time.Time           `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt      `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type paymentSQLite struct {
	ID              uint64          `gorm:"primaryKey;column:id"`
	PaymentID       string          `gorm:"size:36;column:payment_id"`
	LoanID          string          `gorm:"size:32;column:loan_id"`
	MemberID        string          `gorm:"size:32;column:member_id"`
	Amount          decimal.Decimal `gorm:"type:numeric;column:amount"`
	Method          string          `gorm:"column:method"`
	ResultingStatus string          `gorm:"column:resulting_status"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

type activitySQLite struct {
	ID        uint64              `gorm:"primaryKey;column:id"`
	ActorName string              `gorm:"column:actor_name"`
	Action    string              `gorm:"column:action"`
	Amount    decimal.NullDecimal `gorm:"type:numeric;column:amount"`
	Type      string              `gorm:"column:type"`
	CreatedAt time.Time           `gorm:"column:created_at"`
}

func (activitySQLite) TableName() string { return "activities" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schema, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&memberSQLite{},
		&contributionSQLite{},
		&loanSQLite{},
		&paymentSQLite{},
		&activitySQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
