package mysql

import (
	"context"

	contribDomain "sacco-backend/internal/domain/contribution"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContributionRepository struct{ db *gorm.DB }

func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

func (r *ContributionRepository) Create(ctx context.Context, c *contribDomain.Contribution) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContributionRepository) Save(ctx context.Context, c *contribDomain.Contribution) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContributionRepository) GetByContributionID(ctx context.Context, contributionID string) (*contribDomain.Contribution, error) {
	var out contribDomain.Contribution
	res := r.db.WithContext(ctx).Where("contribution_id = ?", contributionID).First(&out)
	return &out, res.Error
}

func (r *ContributionRepository) GetByContributionIDForUpdate(ctx context.Context, contributionID string) (*contribDomain.Contribution, error) {
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out contribDomain.Contribution
	res := q.Where("contribution_id = ?", contributionID).First(&out)
	return &out, res.Error
}

func (r *ContributionRepository) ListByMemberID(ctx context.Context, memberID string) ([]contribDomain.Contribution, error) {
	var out []contribDomain.Contribution
	res := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ContributionRepository) VerifiedTotal(ctx context.Context, memberID string) (decimal.Decimal, error) {
	var row struct{ Total decimal.NullDecimal }
	res := r.db.WithContext(ctx).
		Model(&contribDomain.Contribution{}).
		Select("SUM(amount) AS total").
		Where("member_id = ? AND status = ?", memberID, contribDomain.StatusVerified).
		Scan(&row)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if !row.Total.Valid {
		// no verified contributions yet
		return decimal.Zero, nil
	}
	return row.Total.Decimal, nil
}
