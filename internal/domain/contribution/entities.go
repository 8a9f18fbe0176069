package contribution

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

var (
	ErrNotFound          = errors.New("contribution not found")
	ErrInvalidTransition = errors.New("contribution is not pending")
	ErrInvalidAmount     = errors.New("contribution amount must be positive")

	// ErrDataUnavailable wraps store failures on reads that feed financial
	// decisions. Callers must never treat it as a zero total.
	ErrDataUnavailable = errors.New("contribution store unavailable")
)

type Contribution struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"-"`
	ContributionID string          `gorm:"size:32;uniqueIndex:ux_contributions_contribution_id_active" json:"contribution_id"`
	MemberID       string          `gorm:"size:32;index:idx_contributions_member" json:"member_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Method         string          `gorm:"size:40" json:"method"`
	Status         Status          `gorm:"type:enum('pending','verified','rejected');default:'pending'" json:"status"`
	VerifiedAt     *time.Time      `json:"verified_at,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Contribution) TableName() string { return "contributions" }
