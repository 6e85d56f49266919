package mapping

import (
	"encoding/json"

	"github.com/SscSPs/lifedash/internal/core/domain"
)

var userSchema = struct {
	ID, Email, Name, CreatedAt aliases
}{
	ID:        aliases{"id", "user_id", "userId", "userID"},
	Email:     aliases{"email"},
	Name:      aliases{"name", "display_name", "displayName"},
	CreatedAt: aliases{"createdAt", "created_at"},
}

// NormalizeUser converts the user object returned next to a token. A payload
// that is not an object yields the zero User.
func NormalizeUser(raw json.RawMessage) domain.User {
	o := decodeObject(raw)
	if o == nil {
		return domain.User{}
	}
	return domain.User{
		ID:        o.str(userSchema.ID),
		Email:     o.str(userSchema.Email),
		Name:      o.str(userSchema.Name),
		CreatedAt: o.time(userSchema.CreatedAt),
	}
}

// authSchema describes the data of POST /auth/login and /auth/register.
var authSchema = struct {
	Token, User aliases
}{
	Token: aliases{"token", "access_token", "accessToken"},
	User:  aliases{"user"},
}

// NormalizeAuth extracts the token and user profile of an auth response.
func NormalizeAuth(raw json.RawMessage) (string, domain.User) {
	o := decodeObject(raw)
	if o == nil {
		return "", domain.User{}
	}
	var user domain.User
	if v, ok := o.lookup(authSchema.User); ok {
		user = NormalizeUser(v)
	}
	return o.str(authSchema.Token), user
}
