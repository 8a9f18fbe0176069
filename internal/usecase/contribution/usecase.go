package contribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sacco-backend/internal/audit"
	domain "sacco-backend/internal/domain/contribution"
	memberDomain "sacco-backend/internal/domain/member"
	"sacco-backend/internal/domain/uow"
	"sacco-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	repo    domain.Repository
	members memberDomain.Repository
	uow     uow.UnitOfWork
	audit   *audit.Recorder
}

func NewUsecase(repo domain.Repository, members memberDomain.Repository, tx uow.UnitOfWork, rec *audit.Recorder) *Usecase {
	return &Usecase{repo: repo, members: members, uow: tx, audit: rec}
}

type CreateInput struct {
	MemberID string
	Amount   decimal.Decimal
	Method   string
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Contribution, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	m, err := u.members.GetByMemberID(ctx, in.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, memberDomain.ErrNotFound
		}
		return nil, err
	}

	c := &domain.Contribution{
		ContributionID: id.NewID32(),
		MemberID:       m.MemberID,
		Amount:         in.Amount,
		Method:         in.Method,
		Status:         domain.StatusPending,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	u.audit.Record(ctx, m.Name, "made contribution", "contribution", decimal.NewNullDecimal(in.Amount))
	return c, nil
}

// Verify transitions a pending contribution to verified; the amount then
// counts toward the member's loan limit. Any other source status fails.
func (u *Usecase) Verify(ctx context.Context, contributionID string) (*domain.Contribution, error) {
	return u.transition(ctx, contributionID, domain.StatusVerified)
}

func (u *Usecase) Reject(ctx context.Context, contributionID string) (*domain.Contribution, error) {
	return u.transition(ctx, contributionID, domain.StatusRejected)
}

func (u *Usecase) transition(ctx context.Context, contributionID string, to domain.Status) (*domain.Contribution, error) {
	var out *domain.Contribution
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contributions.GetByContributionIDForUpdate(ctx, contributionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if c.Status != domain.StatusPending {
			return domain.ErrInvalidTransition
		}
		c.Status = to
		if to == domain.StatusVerified {
			now := time.Now().UTC()
			c.VerifiedAt = &now
		}
		if err := r.Contributions.Save(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.audit.Record(ctx, out.MemberID, "contribution "+string(to), "contribution", decimal.NewNullDecimal(out.Amount))
	return out, nil
}

func (u *Usecase) ListForMember(ctx context.Context, memberID string) ([]domain.Contribution, error) {
	return u.repo.ListByMemberID(ctx, memberID)
}

// VerifiedTotal is the member-ledger read interface consumed by the limit
// calculator. Store failures surface as ErrDataUnavailable so callers can
// retry instead of silently understating the total.
func (u *Usecase) VerifiedTotal(ctx context.Context, memberID string) (decimal.Decimal, error) {
	total, err := u.repo.VerifiedTotal(ctx, memberID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}
	return total, nil
}
