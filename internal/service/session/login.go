package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// Login authenticates an existing account. Both the username and the
// password must match exactly; any mismatch, including an unknown
// username, returns ErrUnauthorized without telling the caller which
// half was wrong.
func (s *Service) Login(ctx context.Context, input CredentialsInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("session.Login: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("session.Login: %w", err)
	}
	if user.Password != input.Password {
		return nil, fmt.Errorf("session.Login: %w", domain.ErrUnauthorized)
	}

	result, err := s.openSession(ctx, user.User)
	if err != nil {
		return nil, fmt.Errorf("session.Login: %w", err)
	}
	result.Notification = domain.SuccessNotification(
		fmt.Sprintf("Welcome back, %s!", user.Username))

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID))

	return result, nil
}

// openSession issues a fresh opaque token and stores the session.
func (s *Service) openSession(ctx context.Context, user domain.User) (*AuthResult, error) {
	sess := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &AuthResult{Token: sess.Token, User: user}, nil
}
