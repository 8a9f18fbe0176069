package payment

import (
	"errors"
	"time"

	"sacco-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("payment not found")

// Payment is an immutable ledger entry: one row per repayment event.
type Payment struct {
	ID        uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string          `gorm:"size:36;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID    string          `gorm:"size:32;index:idx_payments_loan" json:"loan_id"`
	MemberID  string          `gorm:"size:32;index:idx_payments_member" json:"member_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Method    string          `gorm:"size:40" json:"method"`
	// Loan status after this payment was applied.
	ResultingStatus loan.Status `gorm:"size:20" json:"resulting_status"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
