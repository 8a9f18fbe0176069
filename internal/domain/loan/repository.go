package loan

import "context"

// Filter narrows List results. Zero values mean "no constraint"; Limit <= 0
// falls back to the repository default page size.
type Filter struct {
	Status Status
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	ListByMemberID(ctx context.Context, memberID string) ([]Loan, error)
	List(ctx context.Context, f Filter) ([]Loan, error)
	// OutstandingByMemberID returns the member's approved and active loans.
	OutstandingByMemberID(ctx context.Context, memberID string) ([]Loan, error)
}
