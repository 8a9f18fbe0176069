package loan

import (
	"context"
	"errors"
	"strings"
	"time"

	"sacco-backend/internal/audit"
	domain "sacco-backend/internal/domain/loan"
	memberDomain "sacco-backend/internal/domain/member"
	"sacco-backend/internal/domain/uow"
	"sacco-backend/internal/usecase/limit"
	"sacco-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Policy holds the fixed lending constants applied at approval time.
type Policy struct {
	AnnualRate  decimal.Decimal
	DueInterval time.Duration
}

// LimitCalculator derives the member's current borrowing ceiling.
type LimitCalculator interface {
	Compute(ctx context.Context, memberID string) (*limit.Limit, error)
}

type Usecase struct {
	repo    domain.Repository
	members memberDomain.Repository
	limits  LimitCalculator
	uow     uow.UnitOfWork
	audit   *audit.Recorder
	policy  Policy
}

func NewUsecase(repo domain.Repository, members memberDomain.Repository, limits LimitCalculator, tx uow.UnitOfWork, rec *audit.Recorder, policy Policy) *Usecase {
	return &Usecase{repo: repo, members: members, limits: limits, uow: tx, audit: rec, policy: policy}
}

// Request opens a pending loan application. The available-limit check is
// enforced here rather than left to the caller, so every transport hitting
// this engine gets the same gate.
func (u *Usecase) Request(ctx context.Context, in RequestInput) (*LoanDTO, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if in.TermMonths <= 0 {
		return nil, domain.ErrInvalidTerm
	}

	m, err := u.members.GetByMemberID(ctx, in.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, memberDomain.ErrNotFound
		}
		return nil, err
	}

	lim, err := u.limits.Compute(ctx, in.MemberID)
	if err != nil {
		return nil, err
	}
	if in.Amount.GreaterThan(lim.Available) {
		return nil, domain.ErrLimitExceeded
	}

	l := &domain.Loan{
		LoanID:          id.NewID32(),
		MemberID:        m.MemberID,
		Principal:       in.Amount,
		TermMonths:      in.TermMonths,
		Purpose:         in.Purpose,
		Status:          domain.StatusPending,
		StatusUpdatedAt: time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	u.audit.Record(ctx, m.Name, "applied for loan", "loan", decimal.NewNullDecimal(in.Amount))
	return ToDTO(l), nil
}

// Approve moves a pending loan to approved: fixes the rate, computes the
// amortized monthly payment, opens the balance at the principal and stamps
// the first due date. Runs with the loan row locked; a concurrent approve
// sees the updated status and fails the transition guard.
func (u *Usecase) Approve(ctx context.Context, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusPending {
			return domain.ErrInvalidTransition
		}
		if l.TermMonths <= 0 {
			// Loan stays pending; the term must be corrected first.
			return domain.ErrInvalidTerm
		}

		now := time.Now().UTC()
		due := now.Add(u.policy.DueInterval)

		l.Status = domain.StatusApproved
		l.Rate = u.policy.AnnualRate
		l.MonthlyPayment = decimal.NewNullDecimal(MonthlyPayment(l.Principal, u.policy.AnnualRate, l.TermMonths))
		l.Balance = decimal.NewNullDecimal(l.Principal)
		l.Disbursed = decimal.NewNullDecimal(l.Principal)
		l.NextDueAt = &due
		l.StatusUpdatedAt = now

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = ToDTO(l)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	u.audit.Record(ctx, dto.MemberID, "loan approved", "loan", decimal.NewNullDecimal(dto.Principal))
	return dto, nil
}

// Reject is terminal: only a pending loan can be rejected, and a reason is
// required.
func (u *Usecase) Reject(ctx context.Context, loanID, reason string) (*LoanDTO, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.ErrMissingReason
	}

	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusPending {
			return domain.ErrInvalidTransition
		}
		now := time.Now().UTC()
		l.Status = domain.StatusRejected
		l.RejectedAt = &now
		l.RejectReason = reason
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = ToDTO(l)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	u.audit.Record(ctx, dto.MemberID, "loan rejected", "loan", decimal.NewNullDecimal(dto.Principal))
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return ToDTO(l), nil
}

func (u *Usecase) ListForMember(ctx context.Context, memberID string) ([]LoanDTO, error) {
	loans, err := u.repo.ListByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return toDTOList(loans), nil
}

func (u *Usecase) ListAll(ctx context.Context, f domain.Filter) ([]LoanDTO, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	loans, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return toDTOList(loans), nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
