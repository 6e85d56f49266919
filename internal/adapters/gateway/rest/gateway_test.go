package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/lifedash/internal/adapters/gateway/rest"
	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCredentials struct {
	token       string
	invalidated int
}

func (f *fakeCredentials) Token() string { return f.token }

func (f *fakeCredentials) Invalidate(context.Context) error {
	f.invalidated++
	f.token = ""
	return nil
}

type fakeNavigator struct {
	current   string
	redirects []string
}

func (f *fakeNavigator) CurrentPath() string { return f.current }

func (f *fakeNavigator) Redirect(path string) string {
	f.redirects = append(f.redirects, path)
	f.current = path
	return path
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestDo_Success(t *testing.T) {
	srv, captured := newServer(t, http.StatusOK, `{"success":true,"data":[{"id":1}]}`)
	creds := &fakeCredentials{token: "tok"}
	gw := rest.NewGateway(srv.URL+"/api/", creds)

	data, err := gw.Do(context.Background(), http.MethodGet, "/finance/accounts", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(data))
	assert.Equal(t, "/api/finance/accounts", captured.URL.Path)
	assert.Equal(t, "Bearer tok", captured.Header.Get("Authorization"))
	assert.NotEmpty(t, captured.Header.Get("X-Request-ID"))
}

func TestDo_AnonymousOmitsAuthorization(t *testing.T) {
	srv, captured := newServer(t, http.StatusOK, `{"success":true,"data":{}}`)
	gw := rest.NewGateway(srv.URL, &fakeCredentials{})

	_, err := gw.Do(context.Background(), http.MethodPost, "auth/login", map[string]string{"email": "a@b.c"})
	require.NoError(t, err)
	assert.Empty(t, captured.Header.Get("Authorization"))
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
}

func TestDo_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		kind     apperrors.Kind
		sentinel error
		message  string
	}{
		{"validation", http.StatusBadRequest, `{"success":false,"message":"amount must be positive"}`, apperrors.ValidationRejected, apperrors.ErrValidation, "amount must be positive"},
		{"not found", http.StatusNotFound, `{"success":false,"error":"no such account"}`, apperrors.ValidationRejected, apperrors.ErrNotFound, "no such account"},
		{"server", http.StatusInternalServerError, `oops`, apperrors.ServerFailure, apperrors.ErrServer, ""},
		{"success false", http.StatusOK, `{"success":false,"message":"nope"}`, apperrors.ValidationRejected, apperrors.ErrValidation, "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			gw := rest.NewGateway(srv.URL, nil)

			_, err := gw.Do(context.Background(), http.MethodGet, "/x", nil)
			require.Error(t, err)
			var gwErr *apperrors.GatewayError
			require.True(t, errors.As(err, &gwErr))
			assert.Equal(t, tt.kind, gwErr.Kind)
			assert.Equal(t, tt.status, gwErr.Status)
			assert.Equal(t, tt.message, gwErr.Message)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.NotEmpty(t, apperrors.HumanMessage(err))
		})
	}
}

func TestDo_MalformedSuccessBody(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `<html>`)
	gw := rest.NewGateway(srv.URL, nil)
	_, err := gw.Do(context.Background(), http.MethodGet, "/x", nil)
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}

func TestDo_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gw := rest.NewGateway(url, nil)
	_, err := gw.Do(context.Background(), http.MethodGet, "/x", nil)
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
	assert.Equal(t, "Could not reach the server", apperrors.HumanMessage(err))
}

func TestDo_UnauthorizedRedirectsToLogin(t *testing.T) {
	srv, _ := newServer(t, http.StatusUnauthorized, `{"success":false,"message":"Token has expired"}`)
	creds := &fakeCredentials{token: "stale"}
	nav := &fakeNavigator{current: "/wallet"}
	gw := rest.NewGateway(srv.URL, creds, rest.WithNavigator(nav))

	_, err := gw.Do(context.Background(), http.MethodGet, "/finance/accounts", nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, 1, creds.invalidated)
	assert.Empty(t, creds.token)
	assert.Equal(t, []string{"/login"}, nav.redirects)
}

func TestDo_UnauthorizedOnLoginPageDoesNotRedirect(t *testing.T) {
	srv, _ := newServer(t, http.StatusUnauthorized, `{"success":false,"message":"Invalid credentials"}`)
	creds := &fakeCredentials{}
	nav := &fakeNavigator{current: "/login"}
	gw := rest.NewGateway(srv.URL, creds, rest.WithNavigator(nav))

	_, err := gw.Do(context.Background(), http.MethodPost, "/auth/login", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, 1, creds.invalidated)
	assert.Empty(t, nav.redirects)
}
