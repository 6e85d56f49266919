package repositories

import (
	"context"

	"github.com/SscSPs/lifedash/internal/models"
)

// UserReader defines read operations for user data
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	// FindUserByEmail matches case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByProviderDetails(ctx context.Context, provider, providerUserID string) (*models.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser fails with apperrors.ErrDuplicate when the email is taken.
	SaveUser(ctx context.Context, user models.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
