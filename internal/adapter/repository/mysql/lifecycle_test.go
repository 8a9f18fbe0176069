package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"sacco-backend/internal/audit"
	loanDomain "sacco-backend/internal/domain/loan"
	contribUC "sacco-backend/internal/usecase/contribution"
	limitUC "sacco-backend/internal/usecase/limit"
	loanUC "sacco-backend/internal/usecase/loan"
	memberUC "sacco-backend/internal/usecase/member"
	paymentUC "sacco-backend/internal/usecase/payment"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type stack struct {
	members       *memberUC.Usecase
	contributions *contribUC.Usecase
	limits        *limitUC.Usecase
	loans         *loanUC.Usecase
	payments      *paymentUC.Usecase
	activities    *ActivityRepository
}

func newStack(t *testing.T, db *gorm.DB) *stack {
	t.Helper()

	memberRepo := NewMemberRepository(db)
	contribRepo := NewContributionRepository(db)
	loanRepo := NewLoanRepository(db)
	paymentRepo := NewPaymentRepository(db)
	activityRepo := NewActivityRepository(db)
	u := NewGormUoW(db)

	log := logrus.New()
	rec := audit.NewRecorder(activityRepo, log)

	contributions := contribUC.NewUsecase(contribRepo, memberRepo, u, rec)
	limits := limitUC.NewUsecase(contributions, loanRepo, decimal.NewFromInt(3))
	loans := loanUC.NewUsecase(loanRepo, memberRepo, limits, u, rec, loanUC.Policy{
		AnnualRate:  decimal.RequireFromString("0.12"),
		DueInterval: 30 * 24 * time.Hour,
	})
	payments := paymentUC.NewUsecase(paymentRepo, u, rec)

	return &stack{
		members:       memberUC.NewUsecase(memberRepo),
		contributions: contributions,
		limits:        limits,
		loans:         loans,
		payments:      payments,
		activities:    activityRepo,
	}
}

// Full happy path: register, contribute and verify, check the limit, borrow
// against it, approve, repay in full.
func TestLoanLifecycle_EndToEnd(t *testing.T) {
	db := openTestDB(t)
	s := newStack(t, db)
	ctx := context.Background()

	m, err := s.members.Register(ctx, memberUC.RegisterInput{Name: "Wanjiku Kamau", Phone: "+254700000001"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	c, err := s.contributions.Create(ctx, contribUC.CreateInput{
		MemberID: m.MemberID,
		Amount:   decimal.NewFromInt(50_000),
		Method:   "mpesa",
	})
	if err != nil {
		t.Fatalf("Create contribution: %v", err)
	}
	if _, err := s.contributions.Verify(ctx, c.ContributionID); err != nil {
		t.Fatalf("Verify contribution: %v", err)
	}

	lim, err := s.limits.Compute(ctx, m.MemberID)
	if err != nil {
		t.Fatalf("Compute limit: %v", err)
	}
	if !lim.Maximum.Equal(decimal.NewFromInt(150_000)) {
		t.Fatalf("maximum = %s, want 150000", lim.Maximum)
	}
	if !lim.Available.Equal(decimal.NewFromInt(150_000)) {
		t.Fatalf("available = %s, want 150000", lim.Available)
	}

	loan, err := s.loans.Request(ctx, loanUC.RequestInput{
		MemberID:   m.MemberID,
		Amount:     decimal.NewFromInt(100_000),
		TermMonths: 12,
		Purpose:    "shop stock",
	})
	if err != nil {
		t.Fatalf("Request loan: %v", err)
	}

	loan, err = s.loans.Approve(ctx, loan.LoanID)
	if err != nil {
		t.Fatalf("Approve loan: %v", err)
	}
	if loan.MonthlyPayment == nil || !loan.MonthlyPayment.Equal(decimal.NewFromInt(8_885)) {
		t.Fatalf("monthly payment = %v, want 8885", loan.MonthlyPayment)
	}
	if loan.Balance == nil || !loan.Balance.Equal(decimal.NewFromInt(100_000)) {
		t.Fatalf("balance = %v, want 100000", loan.Balance)
	}

	lim, err = s.limits.Compute(ctx, m.MemberID)
	if err != nil {
		t.Fatalf("Compute limit after approval: %v", err)
	}
	if !lim.Used.Equal(decimal.NewFromInt(100_000)) {
		t.Fatalf("used = %s, want 100000", lim.Used)
	}
	if !lim.Available.Equal(decimal.NewFromInt(50_000)) {
		t.Fatalf("available = %s, want 50000", lim.Available)
	}

	receipt, err := s.payments.Record(ctx, paymentUC.RecordInput{
		LoanID:   loan.LoanID,
		MemberID: m.MemberID,
		Amount:   decimal.NewFromInt(100_000),
		Method:   "mpesa",
	})
	if err != nil {
		t.Fatalf("Record payment: %v", err)
	}
	if receipt.Loan.Status != string(loanDomain.StatusCompleted) {
		t.Fatalf("status = %s, want completed", receipt.Loan.Status)
	}
	if receipt.Loan.Balance == nil || !receipt.Loan.Balance.IsZero() {
		t.Fatalf("balance = %v, want 0", receipt.Loan.Balance)
	}

	// completed loan no longer counts against the limit
	lim, err = s.limits.Compute(ctx, m.MemberID)
	if err != nil {
		t.Fatalf("Compute limit after payoff: %v", err)
	}
	if !lim.Available.Equal(decimal.NewFromInt(150_000)) {
		t.Fatalf("available = %s, want 150000", lim.Available)
	}

	// the whole journey left an audit trail
	entries, err := s.activities.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(entries) < 4 {
		t.Fatalf("audit entries = %d, want at least 4", len(entries))
	}
}

func TestLoanLifecycle_LimitBlocksOverBorrowing(t *testing.T) {
	db := openTestDB(t)
	s := newStack(t, db)
	ctx := context.Background()

	m, err := s.members.Register(ctx, memberUC.RegisterInput{Name: "Otieno Oduya"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	c, err := s.contributions.Create(ctx, contribUC.CreateInput{
		MemberID: m.MemberID,
		Amount:   decimal.NewFromInt(10_000),
		Method:   "bank",
	})
	if err != nil {
		t.Fatalf("Create contribution: %v", err)
	}
	if _, err := s.contributions.Verify(ctx, c.ContributionID); err != nil {
		t.Fatalf("Verify contribution: %v", err)
	}

	// ceiling is 30000; asking for more must be refused
	_, err = s.loans.Request(ctx, loanUC.RequestInput{
		MemberID:   m.MemberID,
		Amount:     decimal.NewFromInt(30_001),
		TermMonths: 6,
	})
	if !errors.Is(err, loanDomain.ErrLimitExceeded) {
		t.Fatalf("want ErrLimitExceeded, got %v", err)
	}

	// exactly at the ceiling passes
	if _, err = s.loans.Request(ctx, loanUC.RequestInput{
		MemberID:   m.MemberID,
		Amount:     decimal.NewFromInt(30_000),
		TermMonths: 6,
	}); err != nil {
		t.Fatalf("Request at ceiling: %v", err)
	}
}

func TestLoanLifecycle_PendingContributionDoesNotCount(t *testing.T) {
	db := openTestDB(t)
	s := newStack(t, db)
	ctx := context.Background()

	m, err := s.members.Register(ctx, memberUC.RegisterInput{Name: "Halima Noor"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := s.contributions.Create(ctx, contribUC.CreateInput{
		MemberID: m.MemberID,
		Amount:   decimal.NewFromInt(50_000),
		Method:   "mpesa",
	}); err != nil {
		t.Fatalf("Create contribution: %v", err)
	}

	lim, err := s.limits.Compute(ctx, m.MemberID)
	if err != nil {
		t.Fatalf("Compute limit: %v", err)
	}
	if !lim.Maximum.IsZero() {
		t.Fatalf("maximum = %s, want 0 for unverified contributions", lim.Maximum)
	}

	_, err = s.loans.Request(ctx, loanUC.RequestInput{
		MemberID:   m.MemberID,
		Amount:     decimal.NewFromInt(1),
		TermMonths: 1,
	})
	if !errors.Is(err, loanDomain.ErrLimitExceeded) {
		t.Fatalf("want ErrLimitExceeded, got %v", err)
	}
}

func TestLoanLifecycle_PartialPaymentsKeepLoanOutstanding(t *testing.T) {
	db := openTestDB(t)
	s := newStack(t, db)
	ctx := context.Background()

	m, err := s.members.Register(ctx, memberUC.RegisterInput{Name: "Baraka Juma"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	c, err := s.contributions.Create(ctx, contribUC.CreateInput{
		MemberID: m.MemberID,
		Amount:   decimal.NewFromInt(20_000),
		Method:   "cash",
	})
	if err != nil {
		t.Fatalf("Create contribution: %v", err)
	}
	if _, err := s.contributions.Verify(ctx, c.ContributionID); err != nil {
		t.Fatalf("Verify contribution: %v", err)
	}

	loan, err := s.loans.Request(ctx, loanUC.RequestInput{
		MemberID:   m.MemberID,
		Amount:     decimal.NewFromInt(30_000),
		TermMonths: 6,
	})
	if err != nil {
		t.Fatalf("Request loan: %v", err)
	}
	if _, err := s.loans.Approve(ctx, loan.LoanID); err != nil {
		t.Fatalf("Approve loan: %v", err)
	}

	for i := 0; i < 2; i++ {
		receipt, err := s.payments.Record(ctx, paymentUC.RecordInput{
			LoanID:   loan.LoanID,
			MemberID: m.MemberID,
			Amount:   decimal.NewFromInt(10_000),
			Method:   "mpesa",
		})
		if err != nil {
			t.Fatalf("payment %d: %v", i+1, err)
		}
		if receipt.Loan.Status == string(loanDomain.StatusCompleted) {
			t.Fatalf("payment %d completed the loan early", i+1)
		}
	}

	got, err := s.loans.Get(ctx, loan.LoanID)
	if err != nil {
		t.Fatalf("Get loan: %v", err)
	}
	if got.Balance == nil || !got.Balance.Equal(decimal.NewFromInt(10_000)) {
		t.Fatalf("balance = %v, want 10000", got.Balance)
	}

	history, err := s.payments.ListForLoan(ctx, loan.LoanID)
	if err != nil {
		t.Fatalf("ListForLoan: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("payments = %d, want 2", len(history))
	}
}
