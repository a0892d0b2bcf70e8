package domain

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// User represents an application user identity as shown to other users.
type User struct {
	ID       string
	Username string
	Avatar   string
}

// RegisteredUser is a User plus its stored credential.
//
// The credential is kept in plain text on purpose: the account registry is
// mock-grade demo state that lives only for the lifetime of the process.
type RegisteredUser struct {
	User
	Password string
}

// NewRegisteredUser builds a registry entry for the given username.
// The ID is derived deterministically from the username: lowercased,
// with whitespace replaced by underscores.
func NewRegisteredUser(username, password string) RegisteredUser {
	return RegisteredUser{
		User: User{
			ID:       UserIDFromUsername(username),
			Username: username,
			Avatar:   fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(username)),
		},
		Password: password,
	}
}

// UserIDFromUsername derives the stable user ID for a username:
// lowercased, each whitespace character replaced by an underscore.
func UserIDFromUsername(username string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, strings.ToLower(username))
}
