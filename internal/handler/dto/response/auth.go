package response

import (
	"classreserve/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                   `json:"accessToken"`
	User        *queries.CurrentUserView `json:"user"`
}

type RegisterResponse struct {
	UserID string `json:"userId"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
