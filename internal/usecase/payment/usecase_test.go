package payment

import (
	"context"
	"errors"
	"strings"
	"testing"

	loanDomain "sacco-backend/internal/domain/loan"
	domain "sacco-backend/internal/domain/payment"
	"sacco-backend/internal/domain/uow"
	"sacco-backend/internal/testutil/loanmock"
	"sacco-backend/internal/testutil/paymentmock"
	"sacco-backend/internal/testutil/uowmock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	loanID   = "abababababababababababababababab"
	memberID = "cdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcd"
)

func outstandingLoan(balance int64) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:    loanID,
		MemberID:  memberID,
		Principal: decimal.NewFromInt(balance),
		Status:    loanDomain.StatusApproved,
		Balance:   decimal.NewNullDecimal(decimal.NewFromInt(balance)),
	}
}

// loanTxUoW serves the loan to WithinLoanTx closures with the given repos.
func loanTxUoW(l *loanDomain.Loan, repos uow.Repos) *uowmock.UoW {
	return &uowmock.UoW{
		WithinLoanTxFn: func(ctx context.Context, id string, fn func(r uow.Repos, got *loanDomain.Loan) error) error {
			if l == nil || l.LoanID != id {
				return gorm.ErrRecordNotFound
			}
			return fn(repos, l)
		},
	}
}

func record(t *testing.T, l *loanDomain.Loan, amount int64) (*Receipt, error) {
	t.Helper()
	var stored *domain.Payment
	repos := uow.Repos{
		Loans: &loanmock.Repo{},
		Payments: &paymentmock.Repo{
			CreateFn: func(ctx context.Context, p *domain.Payment) error {
				stored = p
				return nil
			},
		},
	}
	uc := NewUsecase(&paymentmock.Repo{}, loanTxUoW(l, repos), nil)
	receipt, err := uc.Record(context.Background(), RecordInput{
		LoanID:   loanID,
		MemberID: memberID,
		Amount:   decimal.NewFromInt(amount),
		Method:   "mpesa",
	})
	if err == nil {
		require.NotNil(t, stored, "payment row must be written")
	}
	return receipt, err
}

func TestRecord_PartialPayment(t *testing.T) {
	l := outstandingLoan(100_000)

	receipt, err := record(t, l, 40_000)
	require.NoError(t, err)

	assert.Equal(t, string(loanDomain.StatusApproved), receipt.Loan.Status)
	require.NotNil(t, receipt.Loan.Balance)
	assert.True(t, receipt.Loan.Balance.Equal(decimal.NewFromInt(60_000)), "balance=%s", receipt.Loan.Balance)
	assert.True(t, receipt.Payment.Amount.Equal(decimal.NewFromInt(40_000)))
	assert.Equal(t, loanDomain.StatusApproved, receipt.Payment.ResultingStatus)
	assert.Len(t, receipt.Payment.PaymentID, 36)
	assert.Nil(t, receipt.Loan.CompletedAt)
}

func TestRecord_ExactPayoffCompletes(t *testing.T) {
	l := outstandingLoan(100_000)

	receipt, err := record(t, l, 100_000)
	require.NoError(t, err)

	assert.Equal(t, string(loanDomain.StatusCompleted), receipt.Loan.Status)
	require.NotNil(t, receipt.Loan.Balance)
	assert.True(t, receipt.Loan.Balance.IsZero(), "balance=%s", receipt.Loan.Balance)
	require.NotNil(t, receipt.Loan.CompletedAt)
	assert.Nil(t, receipt.Loan.NextDueAt)
}

func TestRecord_OverpaymentClampsAtZero(t *testing.T) {
	l := outstandingLoan(5_000)

	receipt, err := record(t, l, 7_500)
	require.NoError(t, err)

	assert.Equal(t, string(loanDomain.StatusCompleted), receipt.Loan.Status)
	require.NotNil(t, receipt.Loan.Balance)
	assert.True(t, receipt.Loan.Balance.IsZero(), "balance must clamp at zero, got %s", receipt.Loan.Balance)
	// The full paid amount stays on the immutable ledger entry.
	assert.True(t, receipt.Payment.Amount.Equal(decimal.NewFromInt(7_500)))
	assert.Equal(t, loanDomain.StatusCompleted, receipt.Payment.ResultingStatus)
}

func TestRecord_BalanceFallsBackToPrincipal(t *testing.T) {
	// Legacy row: approved before balances were tracked.
	l := outstandingLoan(30_000)
	l.Balance = decimal.NullDecimal{}

	receipt, err := record(t, l, 10_000)
	require.NoError(t, err)

	require.NotNil(t, receipt.Loan.Balance)
	assert.True(t, receipt.Loan.Balance.Equal(decimal.NewFromInt(20_000)), "balance=%s", receipt.Loan.Balance)
}

func TestRecord_InvalidAmount(t *testing.T) {
	uc := NewUsecase(&paymentmock.Repo{}, uowmock.New(), nil)
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := uc.Record(context.Background(), RecordInput{
			LoanID: loanID, MemberID: memberID, Amount: amount, Method: "mpesa",
		})
		assert.True(t, errors.Is(err, loanDomain.ErrInvalidAmount), "amount %s: got %v", amount, err)
	}
}

func TestRecord_NotOutstanding(t *testing.T) {
	for _, status := range []loanDomain.Status{loanDomain.StatusPending, loanDomain.StatusCompleted, loanDomain.StatusRejected} {
		l := outstandingLoan(10_000)
		l.Status = status
		repos := uow.Repos{
			Loans: &loanmock.Repo{},
			Payments: &paymentmock.Repo{
				CreateFn: func(ctx context.Context, p *domain.Payment) error {
					t.Fatalf("no payment may be written against a %s loan", status)
					return nil
				},
			},
		}
		uc := NewUsecase(&paymentmock.Repo{}, loanTxUoW(l, repos), nil)
		_, err := uc.Record(context.Background(), RecordInput{
			LoanID: loanID, MemberID: memberID, Amount: decimal.NewFromInt(100), Method: "mpesa",
		})
		assert.True(t, errors.Is(err, loanDomain.ErrInvalidTransition), "status %s: got %v", status, err)
	}
}

func TestRecord_WrongMemberReadsAsNotFound(t *testing.T) {
	l := outstandingLoan(10_000)
	repos := uow.Repos{Loans: &loanmock.Repo{}, Payments: &paymentmock.Repo{}}
	uc := NewUsecase(&paymentmock.Repo{}, loanTxUoW(l, repos), nil)

	_, err := uc.Record(context.Background(), RecordInput{
		LoanID:   loanID,
		MemberID: strings.Repeat("9", 32),
		Amount:   decimal.NewFromInt(100),
		Method:   "mpesa",
	})
	assert.True(t, errors.Is(err, loanDomain.ErrNotFound), "got %v", err)
}

func TestRecord_UnknownLoan(t *testing.T) {
	uc := NewUsecase(&paymentmock.Repo{}, loanTxUoW(nil, uow.Repos{}), nil)
	_, err := uc.Record(context.Background(), RecordInput{
		LoanID: loanID, MemberID: memberID, Amount: decimal.NewFromInt(100), Method: "mpesa",
	})
	assert.True(t, errors.Is(err, loanDomain.ErrNotFound), "got %v", err)
}

func TestListForMember_Delegates(t *testing.T) {
	want := []domain.Payment{{PaymentID: "p1", MemberID: memberID}}
	repo := &paymentmock.Repo{
		ListByMemberIDFn: func(ctx context.Context, id string) ([]domain.Payment, error) {
			require.Equal(t, memberID, id)
			return want, nil
		},
	}
	uc := NewUsecase(repo, uowmock.New(), nil)
	got, err := uc.ListForMember(context.Background(), memberID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
