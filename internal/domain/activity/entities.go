package activity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Activity is an append-only audit entry. Entries are never updated.
type Activity struct {
	ID        uint64              `gorm:"primaryKey;column:id" json:"-"`
	ActorName string              `gorm:"size:120" json:"actor_name"`
	Action    string              `gorm:"size:120" json:"action"`
	Amount    decimal.NullDecimal `gorm:"type:decimal(18,2)" json:"amount"`
	Type      string              `gorm:"size:40" json:"type"`
	CreatedAt time.Time           `gorm:"autoCreateTime" json:"created_at"`
}

func (Activity) TableName() string { return "activities" }
