package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	portssvc "github.com/SscSPs/lifedash/internal/core/ports/services"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/middleware"
	"github.com/SscSPs/lifedash/internal/models"
	"github.com/SscSPs/lifedash/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const (
	oauthStateCookie = "oauth_state"
	authCallbackPath = "/auth-callback"
	authRateLimit    = "5-M"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	googleOAuth  portssvc.GoogleOAuthSvcFacade
	frontendURL  string
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  services.User,
		tokenService: services.TokenService,
		googleOAuth:  services.GoogleOAuth,
		frontendURL:  strings.TrimRight(cfg.FrontendBaseURL, "/"),
		secureCookie: cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) error {
	h := NewAuthHandler(services, cfg)

	ipLimiter, err := middleware.NewMemoryLimiter(authRateLimit)
	if err != nil {
		return err
	}
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register", limitMiddleware, h.Register)
		auth.GET("/google/login", h.GoogleLogin)
		auth.GET("/google/callback", h.GoogleCallback)
	}
	return nil
}

// issueToken answers a successful login or registration with {token, user}.
func (h *AuthHandler) issueToken(c *gin.Context, status int, user *domain.User) {
	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate token", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	respondData(c, status, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

// Login authenticates with email and password and returns a JWT with the user profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondServiceError(c, err, "Login failed")
		return
	}
	h.issueToken(c, http.StatusOK, user)
}

// Register creates a local user and signs them in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			respondError(c, http.StatusConflict, "Email is already registered")
			return
		}
		respondServiceError(c, err, "Registration failed")
		return
	}
	h.issueToken(c, http.StatusCreated, user)
}

// GoogleLogin starts the authorization-code flow. The state is kept in a
// short-lived cookie and checked on the callback.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if !h.googleOAuth.Enabled() {
		respondError(c, http.StatusNotFound, "Google login is not configured")
		return
	}
	state, err := h.googleOAuth.GenerateStateString(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to start Google login")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 300, "/", "", h.secureCookie, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuth.GetGoogleLoginURL(c.Request.Context(), state))
}

// GoogleCallback finishes the flow and hands the issued token to the
// frontend through its auth-callback route.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	if !h.googleOAuth.Enabled() {
		respondError(c, http.StatusNotFound, "Google login is not configured")
		return
	}
	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || expected == "" || expected != c.Query("state") {
		logger.Warn("OAuth state mismatch")
		respondError(c, http.StatusBadRequest, "Invalid OAuth state")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookie, true)

	code := c.Query("code")
	if code == "" {
		respondError(c, http.StatusBadRequest, "Authorization code is required")
		return
	}

	oauth2Token, err := h.googleOAuth.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		respondError(c, http.StatusBadGateway, "Failed to communicate with Google")
		return
	}
	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		respondError(c, http.StatusBadGateway, "Failed to retrieve ID token from Google")
		return
	}
	payload, err := h.googleOAuth.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		respondError(c, http.StatusUnauthorized, "Invalid Google ID token")
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || payload.Subject == "" {
		logger.Error("Essential claims missing from Google ID token")
		respondError(c, http.StatusBadGateway, "Essential user information missing from Google token")
		return
	}

	user, err := h.userService.CreateOAuthUser(ctx, name, email, string(models.ProviderGoogle), payload.Subject, emailVerified)
	if err != nil {
		respondServiceError(c, err, "Failed to process user authentication")
		return
	}
	token, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate application access token", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to generate access token")
		return
	}

	logger.Info("User signed in with Google", slog.String("user_id", user.ID))
	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+authCallbackPath+"?token="+url.QueryEscape(token))
}
