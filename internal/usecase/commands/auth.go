package commands

import (
	"context"
	"errors"

	"classreserve/internal/domain/user"
	"classreserve/internal/pkg/errs"
	"classreserve/internal/pkg/jwt"
	"classreserve/internal/pkg/password"
)

var (
	ErrUserExists         = errs.New("user id already taken")
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type UserRepository interface {
	Register(u *user.User) error
	Get(id string) (*user.User, bool)
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    string
	Role      user.Role
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, userID, rawPassword, role string) error
	Login(ctx context.Context, userID, rawPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	repo       UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(repo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		repo:       repo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(_ context.Context, userID, rawPassword, role string) error {
	credentials, err := user.NewCredentials(userID, rawPassword)
	if err != nil {
		return err
	}
	parsedRole, err := user.NewRole(role)
	if err != nil {
		return err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}

	if err := a.repo.Register(user.NewUser(credentials.UserID(), hash, parsedRole)); err != nil {
		if errors.Is(err, user.ErrAlreadyExists) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

func (a *authCommandsImpl) Login(_ context.Context, userID, rawPassword string) (*LoginResult, error) {
	account, ok := a.repo.Get(userID)
	if !ok {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(account.PasswordHash(), rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := a.generateTokenPair(account.ID().Value(), account.Role())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID:    account.ID().Value(),
		Role:      account.Role(),
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(_ context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Validate the account still exists before re-issuing tokens
	account, ok := a.repo.Get(claims.UserID)
	if !ok {
		return nil, ErrUserNotFound
	}

	return a.generateTokenPair(account.ID().Value(), account.Role())
}

func (a *authCommandsImpl) generateTokenPair(userID string, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
