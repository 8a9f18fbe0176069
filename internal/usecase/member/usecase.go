package member

import (
	"context"
	"errors"
	"strings"

	domain "sacco-backend/internal/domain/member"
	"sacco-backend/pkg/id"

	"gorm.io/gorm"
)

var ErrMissingName = errors.New("member name is required")

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	Name  string
	Phone string
	Email string
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*domain.Member, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrMissingName
	}
	m := &domain.Member{
		MemberID: id.NewID32(),
		Name:     name,
		Phone:    strings.TrimSpace(in.Phone),
		Email:    strings.TrimSpace(in.Email),
	}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (u *Usecase) Get(ctx context.Context, memberID string) (*domain.Member, error) {
	m, err := u.repo.GetByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
