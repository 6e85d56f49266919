package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	portsrepo "github.com/SscSPs/lifedash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lifedash/internal/core/ports/services"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/models"
	"github.com/SscSPs/lifedash/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the backend user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func toDomainUser(u *models.User) *domain.User {
	return &domain.User{ID: u.UserID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       uuid.NewString(),
		Email:        strings.TrimSpace(req.Email),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		AuthProvider: models.ProviderLocal,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}
	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return toDomainUser(&user), nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get user by email in service: %w", err)
	}
	// OAuth-only users have no password hash and cannot sign in this way.
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return toDomainUser(user), nil
}

func (s *userService) CreateOAuthUser(ctx context.Context, name, email, provider, providerUserID string, emailVerified bool) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByProviderDetails(ctx, provider, providerUserID)
	if err == nil {
		return toDomainUser(existing), nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up oauth user: %w", err)
	}

	// link to a local account registered with the same email
	if byEmail, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		byEmail.AuthProvider = models.AuthProvider(provider)
		byEmail.ProviderUserID = providerUserID
		byEmail.EmailVerified = byEmail.EmailVerified || emailVerified
		if err := s.userRepo.SaveUser(ctx, *byEmail); err != nil {
			return nil, fmt.Errorf("failed to link oauth identity: %w", err)
		}
		return toDomainUser(byEmail), nil
	}

	user := models.User{
		UserID:         uuid.NewString(),
		Email:          email,
		Name:           name,
		AuthProvider:   models.AuthProvider(provider),
		ProviderUserID: providerUserID,
		EmailVerified:  emailVerified,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}
	s.LogInfo(ctx, "OAuth user created", slog.String("user_id", user.UserID), slog.String("provider", provider))
	return toDomainUser(&user), nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDomainUser(user), nil
}
