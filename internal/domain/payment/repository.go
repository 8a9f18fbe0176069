package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// ListByMemberID returns the member's payments, newest first.
	ListByMemberID(ctx context.Context, memberID string) ([]Payment, error)
	ListByLoanID(ctx context.Context, loanID string) ([]Payment, error)
}
