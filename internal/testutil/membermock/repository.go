package membermock

import (
	"context"

	domain "sacco-backend/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, m *domain.Member) error
	GetByMemberIDFn func(ctx context.Context, memberID string) (*domain.Member, error)
}

func (m *Repo) Create(ctx context.Context, mm *domain.Member) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mm)
	}
	return nil
}

func (m *Repo) GetByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	if m.GetByMemberIDFn != nil {
		return m.GetByMemberIDFn(ctx, memberID)
	}
	return nil, domain.ErrNotFound
}

// Known returns a mock that resolves exactly one member.
func Known(m *domain.Member) *Repo {
	return &Repo{
		GetByMemberIDFn: func(ctx context.Context, memberID string) (*domain.Member, error) {
			if memberID == m.MemberID {
				return m, nil
			}
			return nil, domain.ErrNotFound
		},
	}
}
