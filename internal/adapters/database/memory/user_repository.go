package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/SscSPs/lifedash/internal/apperrors"
	portsrepo "github.com/SscSPs/lifedash/internal/core/ports/repositories"
	"github.com/SscSPs/lifedash/internal/models"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]models.User)}
}

func (r *UserRepository) SaveUser(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) && u.UserID != user.UserID {
			return apperrors.ErrDuplicate
		}
	}
	r.users[user.UserID] = user
	return nil
}

func (r *UserRepository) FindUserByID(_ context.Context, userID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *UserRepository) FindUserByProviderDetails(_ context.Context, provider, providerUserID string) (*models.User, error) {
	return r.find(func(u models.User) bool {
		return string(u.AuthProvider) == provider && u.ProviderUserID == providerUserID
	})
}

func (r *UserRepository) find(match func(models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
