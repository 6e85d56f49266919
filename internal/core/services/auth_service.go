package services

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/ports"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/utils/mapping"
	"github.com/go-playground/validator/v10"
)

const (
	loginPath    = "auth/login"
	registerPath = "auth/register"

	loginFailed        = "Login failed"
	registrationFailed = "Registration failed"
)

var errMissingToken = errors.New("auth response carried no token")

// AuthService signs users in and up and keeps the outcome on the Session.
type AuthService struct {
	BaseService
	gw        ports.Gateway
	session   *Session
	validator *validator.Validate

	mu      sync.RWMutex
	loading bool
	err     string
}

func NewAuthService(gw ports.Gateway, session *Session) *AuthService {
	return &AuthService{gw: gw, session: session, validator: newRequestValidator()}
}

// Login exchanges credentials for a session.
func (a *AuthService) Login(ctx context.Context, email, password string) error {
	return a.authenticate(ctx, loginPath, dto.LoginRequest{Email: email, Password: password}, loginFailed)
}

// Register creates an account and signs it in.
func (a *AuthService) Register(ctx context.Context, email, password, name string) error {
	return a.authenticate(ctx, registerPath, dto.RegisterRequest{Email: email, Password: password, Name: name}, registrationFailed)
}

func (a *AuthService) Logout(ctx context.Context) error {
	a.setErr("")
	return a.session.Logout(ctx)
}

func (a *AuthService) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

// Err is the message of the last failed attempt.
func (a *AuthService) Err() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.err
}

func (a *AuthService) authenticate(ctx context.Context, path string, req any, fallback string) error {
	a.mu.Lock()
	a.loading = true
	a.err = ""
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.loading = false
		a.mu.Unlock()
	}()

	if err := validateRequest(a.validator, req); err != nil {
		a.setErr(fallback)
		return err
	}

	data, err := a.gw.Do(ctx, http.MethodPost, path, req)
	if err != nil {
		a.LogError(ctx, err, "Authentication request failed")
		a.setErr(authMessage(err, fallback))
		return err
	}

	token, user := mapping.NormalizeAuth(data)
	if token == "" {
		a.setErr(fallback)
		return errMissingToken
	}
	if err := a.session.SetSession(ctx, token, user); err != nil {
		a.setErr(fallback)
		return err
	}
	return nil
}

func (a *AuthService) setErr(msg string) {
	a.mu.Lock()
	a.err = msg
	a.mu.Unlock()
}

// authMessage prefers the server's own message.
func authMessage(err error, fallback string) string {
	var gwErr *apperrors.GatewayError
	if errors.As(err, &gwErr) && gwErr.Message != "" {
		return gwErr.Message
	}
	return fallback
}
