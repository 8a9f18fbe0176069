package loan

import (
	"time"

	domain "sacco-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

type RequestInput struct {
	MemberID   string          `json:"member_id"`
	Amount     decimal.Decimal `json:"amount"`
	Purpose    string          `json:"purpose"`
	TermMonths int             `json:"term_months"`
}

type LoanDTO struct {
	LoanID         string           `json:"loan_id"`
	MemberID       string           `json:"member_id"`
	Principal      decimal.Decimal  `json:"principal"`
	TermMonths     int              `json:"term_months"`
	Purpose        string           `json:"purpose"`
	Status         string           `json:"status"`
	Rate           decimal.Decimal  `json:"rate"`
	MonthlyPayment *decimal.Decimal `json:"monthly_payment,omitempty"`
	Balance        *decimal.Decimal `json:"balance,omitempty"`
	Disbursed      *decimal.Decimal `json:"disbursed,omitempty"`
	NextDueAt      *time.Time       `json:"next_due_at,omitempty"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
	RejectedAt     *time.Time       `json:"rejected_at,omitempty"`
	RejectReason   string           `json:"reject_reason,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

func ToDTO(l *domain.Loan) *LoanDTO {
	dto := &LoanDTO{
		LoanID:       l.LoanID,
		MemberID:     l.MemberID,
		Principal:    l.Principal,
		TermMonths:   l.TermMonths,
		Purpose:      l.Purpose,
		Status:       string(l.Status),
		Rate:         l.Rate,
		NextDueAt:    l.NextDueAt,
		CompletedAt:  l.CompletedAt,
		RejectedAt:   l.RejectedAt,
		RejectReason: l.RejectReason,
		CreatedAt:    l.CreatedAt,
	}
	if l.MonthlyPayment.Valid {
		v := l.MonthlyPayment.Decimal
		dto.MonthlyPayment = &v
	}
	if l.Balance.Valid {
		v := l.Balance.Decimal
		dto.Balance = &v
	}
	if l.Disbursed.Valid {
		v := l.Disbursed.Decimal
		dto.Disbursed = &v
	}
	return dto
}

func toDTOList(loans []domain.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *ToDTO(&loans[i]))
	}
	return out
}
