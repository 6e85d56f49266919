package middleware

import "strings"

// RouteMeta describes how a client route treats the session.
type RouteMeta struct {
	RequiresAuth bool
	Guest        bool
}

const (
	LoginPath        = "/login"
	HomePath         = "/"
	AuthCallbackPath = "/auth-callback"
)

// RouteGuard decides where a navigation ends up given the session state.
type RouteGuard struct {
	routes map[string]RouteMeta
}

// DefaultRoutes is the route table of the client.
func DefaultRoutes() map[string]RouteMeta {
	return map[string]RouteMeta{
		"/":              {RequiresAuth: true},
		"/dashboard":     {RequiresAuth: true},
		"/calendar":      {RequiresAuth: true},
		"/wallet":        {RequiresAuth: true},
		"/garage":        {RequiresAuth: true},
		"/login":         {Guest: true},
		"/register":      {Guest: true},
		AuthCallbackPath: {},
	}
}

// NewRouteGuard creates a guard over routes; nil selects DefaultRoutes.
func NewRouteGuard(routes map[string]RouteMeta) *RouteGuard {
	if routes == nil {
		routes = DefaultRoutes()
	}
	return &RouteGuard{routes: routes}
}

// Resolve returns the path navigation to `to` actually lands on.
// Protected routes send anonymous users to the login page and guest-only
// routes send signed-in users home. Unknown paths pass through.
func (g *RouteGuard) Resolve(to string, authenticated bool) string {
	meta := g.routes[normalizePath(to)]
	switch {
	case meta.RequiresAuth && !authenticated:
		return LoginPath
	case meta.Guest && authenticated:
		return HomePath
	default:
		return to
	}
}

func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		return HomePath
	}
	return p
}
