package uow

import (
	"context"

	"sacco-backend/internal/domain/activity"
	"sacco-backend/internal/domain/contribution"
	"sacco-backend/internal/domain/loan"
	"sacco-backend/internal/domain/member"
	"sacco-backend/internal/domain/payment"
)

type Repos struct {
	Members       member.Repository
	Contributions contribution.Repository
	Loans         loan.Repository
	Payments      payment.Repository
	Activities    activity.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in; concurrent
	// approvals and payments against the same loan serialize here
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
