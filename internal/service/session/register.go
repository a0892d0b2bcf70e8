package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// Register creates a new account and logs it in immediately.
// Returns ErrAlreadyExists if the username is already taken.
func (s *Service) Register(ctx context.Context, input CredentialsInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user := domain.NewRegisteredUser(input.Username, input.Password)
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("session.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("session.Register: %w", err)
	}

	result, err := s.openSession(ctx, user.User)
	if err != nil {
		return nil, fmt.Errorf("session.Register: %w", err)
	}
	result.Notification = domain.SuccessNotification(
		fmt.Sprintf("Welcome to NanoGallery, %s!", user.Username))

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID))

	return result, nil
}
