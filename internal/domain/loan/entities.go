package loan

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusActive, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Outstanding reports whether the loan counts against the member's limit.
// Approved and active loans are treated the same for limit purposes.
func (s Status) Outstanding() bool { return s == StatusApproved || s == StatusActive }

func (s Status) Terminal() bool { return s == StatusCompleted || s == StatusRejected }

type Loan struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID   string `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	MemberID string `gorm:"size:32;index:idx_loans_member_active" json:"member_id"`

	Principal  decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	TermMonths int             `json:"term_months"`
	Purpose    string          `gorm:"type:text" json:"purpose"`
	Status     Status          `gorm:"type:enum('pending','approved','active','completed','rejected');default:'pending'" json:"status"`

	// Derived fields, populated only once the loan is approved.
	Rate           decimal.Decimal     `gorm:"type:decimal(6,4)" json:"rate"`
	MonthlyPayment decimal.NullDecimal `gorm:"type:decimal(18,2)" json:"monthly_payment"`
	Balance        decimal.NullDecimal `gorm:"type:decimal(18,2)" json:"balance"`
	Disbursed      decimal.NullDecimal `gorm:"type:decimal(18,2)" json:"disbursed"`
	NextDueAt      *time.Time          `json:"next_due_at,omitempty"`

	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	RejectedAt   *time.Time `json:"rejected_at,omitempty"`
	RejectReason string     `gorm:"type:text" json:"reject_reason,omitempty"`

	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// OutstandingAmount is the amount still owed. Rows written before balances
// were tracked carry no balance; fall back to the principal for those.
func (l *Loan) OutstandingAmount() decimal.Decimal {
	if l.Balance.Valid {
		return l.Balance.Decimal
	}
	return l.Principal
}
