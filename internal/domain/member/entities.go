package member

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("member not found")

type Member struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	MemberID  string         `gorm:"size:32;uniqueIndex:ux_members_member_id_active" json:"member_id"`
	Name      string         `gorm:"size:120" json:"name"`
	Phone     string         `gorm:"size:20" json:"phone"`
	Email     string         `gorm:"size:120" json:"email"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "members" }
