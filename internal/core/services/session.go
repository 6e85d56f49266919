package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/SscSPs/lifedash/internal/core/ports"
	"github.com/SscSPs/lifedash/internal/utils"
	"github.com/SscSPs/lifedash/internal/utils/mapping"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Session holds the credential and cached profile of the signed-in user,
// mirrored to durable storage so a restart keeps the user signed in.
type Session struct {
	BaseService
	store ports.KeyValueStore

	mu    sync.RWMutex
	token string
	user  *domain.User
}

var _ ports.CredentialSource = (*Session)(nil)

func NewSession(store ports.KeyValueStore) *Session {
	return &Session{store: store}
}

// Restore loads the persisted credential. A corrupt profile is ignored.
func (s *Session) Restore(ctx context.Context) error {
	token, _, err := s.store.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("restore session token: %w", err)
	}
	rawUser, ok, err := s.store.Get(ctx, userKey)
	if err != nil {
		return fmt.Errorf("restore session user: %w", err)
	}

	var user *domain.User
	if ok {
		if u := mapping.NormalizeUser(json.RawMessage(rawUser)); u != (domain.User{}) {
			user = &u
		}
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached profile, if any.
func (s *Session) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// SetSession stores a freshly issued credential and profile.
func (s *Session) SetSession(ctx context.Context, token string, user domain.User) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("empty session token")
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()

	if err := s.store.Set(ctx, tokenKey, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	if err := s.store.Set(ctx, userKey, string(raw)); err != nil {
		return fmt.Errorf("persist session user: %w", err)
	}
	return nil
}

// HandleAuthCallback accepts a token delivered by the OAuth redirect. The
// profile is read from the token's claims without verifying its signature.
func (s *Session) HandleAuthCallback(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty session token")
	}
	claims, err := utils.ParseUnverifiedClaims(token)
	if err != nil {
		s.LogInfo(ctx, "Auth callback token carries no readable claims", slog.String("error", err.Error()))
		s.mu.Lock()
		s.token = token
		s.user = nil
		s.mu.Unlock()
		if err := s.store.Delete(ctx, userKey); err != nil {
			return fmt.Errorf("clear session user: %w", err)
		}
		if err := s.store.Set(ctx, tokenKey, token); err != nil {
			return fmt.Errorf("persist session token: %w", err)
		}
		return nil
	}
	return s.SetSession(ctx, token, domain.User{ID: claims.Subject, Email: claims.Email, Name: claims.Name})
}

// Logout forgets the credential and profile.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	return errors.Join(s.store.Delete(ctx, tokenKey), s.store.Delete(ctx, userKey))
}

// Invalidate is called when the server rejects the credential.
func (s *Session) Invalidate(ctx context.Context) error {
	s.LogInfo(ctx, "Session invalidated by server")
	return s.Logout(ctx)
}
