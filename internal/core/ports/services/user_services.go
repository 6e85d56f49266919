package services

import (
	"context"

	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/SscSPs/lifedash/internal/dto"
)

// UserSvcFacade manages users and their credentials.
type UserSvcFacade interface {
	// Register creates a local user; apperrors.ErrDuplicate when the email is taken.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate returns apperrors.ErrUnauthorized for unknown emails and wrong passwords alike.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// CreateOAuthUser returns the existing user for the provider identity or email, creating one otherwise.
	CreateOAuthUser(ctx context.Context, name, email, provider, providerUserID string, emailVerified bool) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
