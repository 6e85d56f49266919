package ports

// Navigator is the routing collaborator of the client.
type Navigator interface {
	CurrentPath() string
	// Redirect moves to path, subject to the route guard.
	Redirect(path string) string
}
