package limit

import (
	"context"
	"fmt"

	"sacco-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

// ContributionLedger is the read interface over verified contributions.
type ContributionLedger interface {
	VerifiedTotal(ctx context.Context, memberID string) (decimal.Decimal, error)
}

// LoanBook supplies the member's currently outstanding loans.
type LoanBook interface {
	OutstandingByMemberID(ctx context.Context, memberID string) ([]loan.Loan, error)
}

// Limit is a computed view, never persisted: Available = max(0, Maximum-Used).
type Limit struct {
	MemberID  string          `json:"member_id"`
	Maximum   decimal.Decimal `json:"maximum"`
	Used      decimal.Decimal `json:"used"`
	Available decimal.Decimal `json:"available"`
}

type Usecase struct {
	ledger     ContributionLedger
	loans      LoanBook
	multiplier decimal.Decimal
}

func NewUsecase(ledger ContributionLedger, loans LoanBook, multiplier decimal.Decimal) *Usecase {
	return &Usecase{ledger: ledger, loans: loans, multiplier: multiplier}
}

// Compute derives the member's borrowing ceiling from current ledger state.
// Always recomputed on demand; contributions and balances change
// independently, so a cached value would go stale at decision time.
func (u *Usecase) Compute(ctx context.Context, memberID string) (*Limit, error) {
	total, err := u.ledger.VerifiedTotal(ctx, memberID)
	if err != nil {
		// Propagate as-is: an unreachable ledger must not read as zero.
		return nil, err
	}

	outstanding, err := u.loans.OutstandingByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("load outstanding loans for %s: %w", memberID, err)
	}

	used := decimal.Zero
	for i := range outstanding {
		used = used.Add(outstanding[i].OutstandingAmount())
	}

	maximum := total.Mul(u.multiplier)
	available := maximum.Sub(used)
	if available.IsNegative() {
		available = decimal.Zero
	}

	return &Limit{
		MemberID:  memberID,
		Maximum:   maximum,
		Used:      used,
		Available: available,
	}, nil
}
