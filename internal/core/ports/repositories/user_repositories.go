package repositories

import (
	"context"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user plus their credential hash, for
	// login verification. The hash never crosses the service boundary.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, string, error)

	// ListUsers retrieves all users, name-ascending.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user with their credential hash.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
