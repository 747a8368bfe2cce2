package services

import (
	"context"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
	"github.com/adiwira-dev/stockledger/internal/dto"
)

// UserSvcFacade defines user management operations.
type UserSvcFacade interface {
	// CreateUser registers a new user with a hashed credential.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID retrieves a user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// Authenticate verifies a username/password pair and returns the user.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// AuthSvcFacade issues access tokens for authenticated users.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed access token response.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
