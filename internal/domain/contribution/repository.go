package contribution

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, c *Contribution) error
	GetByContributionID(ctx context.Context, contributionID string) (*Contribution, error)
	GetByContributionIDForUpdate(ctx context.Context, contributionID string) (*Contribution, error)
	Save(ctx context.Context, c *Contribution) error
	ListByMemberID(ctx context.Context, memberID string) ([]Contribution, error)
	// VerifiedTotal sums the amounts of the member's verified contributions.
	VerifiedTotal(ctx context.Context, memberID string) (decimal.Decimal, error)
}
