package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hrithikcode/TO-DO-LIST/internal/models"
	"github.com/hrithikcode/TO-DO-LIST/internal/repository"
	"github.com/hrithikcode/TO-DO-LIST/internal/security"
)

const minPasswordLength = 6

var (
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	ErrPasswordTooShort  = fmt.Errorf("password must be at least %d characters long", minPasswordLength)
)

// WrongProviderError is returned when a password operation targets an
// account that authenticates through an external provider.
type WrongProviderError struct {
	Provider models.AuthProvider
}

func (e *WrongProviderError) Error() string {
	return fmt.Sprintf("this account uses %s authentication", e.Provider)
}

type ResetService struct {
	users    UserStore
	tokens   *security.TokenService
	notifier Notifier
	log      zerolog.Logger
}

func NewResetService(users UserStore, tokens *security.TokenService, notifier Notifier, log zerolog.Logger) *ResetService {
	return &ResetService{
		users:    users,
		tokens:   tokens,
		notifier: notifier,
		log:      log,
	}
}

// RequestReset issues a reset token and hands it to the notifier. An unknown
// email is not an error: the caller gets sent=false and must still answer
// with a generic success so addresses cannot be enumerated.
func (s *ResetService) RequestReset(ctx context.Context, email string) (sent bool, err error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	if user.AuthProvider != models.AuthProviderLocal {
		return false, &WrongProviderError{Provider: user.AuthProvider}
	}

	token, err := s.tokens.IssueReset(user.Email)
	if err != nil {
		return false, err
	}

	sent = s.notifier.SendPasswordReset(user.Email, user.Username, token)
	if !sent {
		s.log.Warn().Str("email", user.Email).Msg("reset email not delivered")
	}
	return sent, nil
}

// ResetPassword redeems a reset token and overwrites the password hash.
func (s *ResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	email, err := s.tokens.ParseReset(token)
	if err != nil {
		return ErrInvalidResetToken
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.AuthProvider != models.AuthProviderLocal {
		return &WrongProviderError{Provider: user.AuthProvider}
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return err
	}

	s.log.Info().Str("username", user.Username).Msg("password reset completed")
	return nil
}

// CheckToken is a read-only probe: it validates the token and returns who it
// belongs to without mutating anything.
func (s *ResetService) CheckToken(ctx context.Context, token string) (email, username string, err error) {
	email, err = s.tokens.ParseReset(token)
	if err != nil {
		return "", "", ErrInvalidResetToken
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}

	return user.Email, user.Username, nil
}
