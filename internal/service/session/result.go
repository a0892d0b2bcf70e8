package session

import "github.com/artfox/nanogallery-backend/internal/domain"

// AuthResult is returned by Register and Login operations.
type AuthResult struct {
	Token        string
	User         domain.User
	Notification domain.Notification
}
