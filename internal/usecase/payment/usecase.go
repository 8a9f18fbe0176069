package payment

import (
	"context"
	"errors"
	"time"

	"sacco-backend/internal/audit"
	loanDomain "sacco-backend/internal/domain/loan"
	domain "sacco-backend/internal/domain/payment"
	"sacco-backend/internal/domain/uow"
	loanUC "sacco-backend/internal/usecase/loan"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	repo  domain.Repository
	uow   uow.UnitOfWork
	audit *audit.Recorder
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, rec *audit.Recorder) *Usecase {
	return &Usecase{repo: repo, uow: tx, audit: rec}
}

type RecordInput struct {
	LoanID   string
	MemberID string
	Amount   decimal.Decimal
	Method   string
}

// Receipt pairs the updated loan with the ledger entry the payment produced.
type Receipt struct {
	Loan    *loanUC.LoanDTO `json:"loan"`
	Payment *domain.Payment `json:"payment"`
}

// Record applies a repayment to an outstanding loan. The balance never goes
// below zero: paying at or past the balance completes the loan and the
// overpaid remainder stays visible on the payment record only. The loan row
// is locked for the duration, so two concurrent payments serialize and each
// sees the balance the previous one left.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*Receipt, error) {
	if !in.Amount.IsPositive() {
		return nil, loanDomain.ErrInvalidAmount
	}

	var receipt *Receipt
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.MemberID != in.MemberID {
			return loanDomain.ErrNotFound
		}
		if !l.Status.Outstanding() {
			return loanDomain.ErrInvalidTransition
		}

		now := time.Now().UTC()
		balance := l.OutstandingAmount().Sub(in.Amount)
		if balance.Sign() <= 0 {
			balance = decimal.Zero
			l.Status = loanDomain.StatusCompleted
			l.CompletedAt = &now
			l.NextDueAt = nil
			l.StatusUpdatedAt = now
		}
		l.Balance = decimal.NewNullDecimal(balance)

		p := &domain.Payment{
			PaymentID:       uuid.NewString(),
			LoanID:          l.LoanID,
			MemberID:        l.MemberID,
			Amount:          in.Amount,
			Method:          in.Method,
			ResultingStatus: l.Status,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		receipt = &Receipt{Loan: loanUC.ToDTO(l), Payment: p}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}

	action := "made loan repayment"
	if receipt.Loan.Status == string(loanDomain.StatusCompleted) {
		action = "completed loan repayment"
	}
	u.audit.Record(ctx, in.MemberID, action, "payment", decimal.NewNullDecimal(in.Amount))
	return receipt, nil
}

func (u *Usecase) ListForMember(ctx context.Context, memberID string) ([]domain.Payment, error) {
	return u.repo.ListByMemberID(ctx, memberID)
}

func (u *Usecase) ListForLoan(ctx context.Context, loanID string) ([]domain.Payment, error) {
	return u.repo.ListByLoanID(ctx, loanID)
}
