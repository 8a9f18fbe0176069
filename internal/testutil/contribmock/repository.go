package contribmock

import (
	"context"

	domain "sacco-backend/internal/domain/contribution"

	"github.com/shopspring/decimal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                       func(ctx context.Context, c *domain.Contribution) error
	GetByContributionIDFn          func(ctx context.Context, contributionID string) (*domain.Contribution, error)
	GetByContributionIDForUpdateFn func(ctx context.Context, contributionID string) (*domain.Contribution, error)
	SaveFn                         func(ctx context.Context, c *domain.Contribution) error
	ListByMemberIDFn               func(ctx context.Context, memberID string) ([]domain.Contribution, error)
	VerifiedTotalFn                func(ctx context.Context, memberID string) (decimal.Decimal, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Contribution) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByContributionID(ctx context.Context, contributionID string) (*domain.Contribution, error) {
	if m.GetByContributionIDFn != nil {
		return m.GetByContributionIDFn(ctx, contributionID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByContributionIDForUpdate(ctx context.Context, contributionID string) (*domain.Contribution, error) {
	if m.GetByContributionIDForUpdateFn != nil {
		return m.GetByContributionIDForUpdateFn(ctx, contributionID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, c *domain.Contribution) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListByMemberID(ctx context.Context, memberID string) ([]domain.Contribution, error) {
	if m.ListByMemberIDFn != nil {
		return m.ListByMemberIDFn(ctx, memberID)
	}
	return nil, nil
}

func (m *Repo) VerifiedTotal(ctx context.Context, memberID string) (decimal.Decimal, error) {
	if m.VerifiedTotalFn != nil {
		return m.VerifiedTotalFn(ctx, memberID)
	}
	return decimal.Zero, nil
}
