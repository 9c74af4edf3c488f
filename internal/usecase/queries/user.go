package queries

import (
	"context"

	"classreserve/internal/domain/user"
	"classreserve/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type CurrentUserView struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type UserReader interface {
	Get(id string) (*user.User, bool)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID string) (*CurrentUserView, error)
}

type userQueriesImpl struct {
	users UserReader
}

func NewUserQueries(users UserReader) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetCurrentUser(_ context.Context, userID string) (*CurrentUserView, error) {
	u, ok := q.users.Get(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	return &CurrentUserView{
		ID:   u.ID().Value(),
		Role: u.Role().String(),
	}, nil
}
