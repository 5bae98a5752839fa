package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hrithikcode/TO-DO-LIST/internal/identity"
	"github.com/hrithikcode/TO-DO-LIST/internal/models"
	"github.com/hrithikcode/TO-DO-LIST/internal/repository"
	"github.com/hrithikcode/TO-DO-LIST/internal/revocation"
	"github.com/hrithikcode/TO-DO-LIST/internal/security"
)

var (
	ErrMissingFields          = errors.New("username, email, and password are required")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrTokenRevoked           = errors.New("token revoked")
	ErrEmailRegisteredLocally = errors.New("an account with this email already exists, please login with your password")
)

type AuthService struct {
	users    UserStore
	tokens   *security.TokenService
	revoked  revocation.Registry
	verifier identity.Verifier
	log      zerolog.Logger
}

func NewAuthService(
	users UserStore,
	tokens *security.TokenService,
	revoked revocation.Registry,
	verifier identity.Verifier,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		revoked:  revoked,
		verifier: verifier,
		log:      log,
	}
}

type AuthResult struct {
	User  models.User
	Token string
}

// Register creates a password-backed user. Uniqueness is decided by the
// storage constraint, so a concurrent duplicate loses with ErrDuplicate*.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (AuthResult, error) {
	if username == "" || email == "" || password == "" {
		return AuthResult{}, ErrMissingFields
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return AuthResult{}, err
	}

	user, err := s.users.CreateLocal(ctx, username, email, passwordHash)
	if err != nil {
		return AuthResult{}, err
	}

	return s.issue(user)
}

// Login authenticates by username or email. Absent user and wrong password
// produce the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (AuthResult, error) {
	if identifier == "" || password == "" {
		return AuthResult{}, ErrMissingFields
	}

	user, err := s.users.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return AuthResult{}, ErrInvalidCredentials
	}

	return s.issue(user)
}

// GoogleAuth verifies the assertion, then logs in or creates the federated
// user. created reports whether a new account was made.
func (s *AuthService) GoogleAuth(ctx context.Context, assertion string) (result AuthResult, created bool, err error) {
	profile, err := s.verifier.Verify(ctx, assertion)
	if err != nil {
		return AuthResult{}, false, err
	}

	if user, err := s.users.FindByGoogleID(ctx, profile.Subject); err == nil {
		result, err := s.issue(user)
		return result, false, err
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, false, err
	}

	// Never silently merge a Google identity into a password account.
	if existing, err := s.users.FindByEmail(ctx, profile.Email); err == nil {
		if existing.AuthProvider == models.AuthProviderLocal {
			return AuthResult{}, false, ErrEmailRegisteredLocally
		}
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, false, err
	}

	username := Disambiguate(profile.Name, func(candidate string) bool {
		exists, err := s.users.UsernameExists(ctx, candidate)
		return err == nil && exists
	})

	user, err := s.users.CreateGoogle(ctx, username, profile.Email, profile.Subject, profile.Picture)
	if err != nil {
		return AuthResult{}, false, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("google user created")

	result, err = s.issue(user)
	return result, true, err
}

// Authenticate validates a bearer session credential: signature and expiry
// first (stateless, cheap), then the revocation registry, then the user row.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.User, security.Session, error) {
	session, err := s.tokens.ParseSession(token)
	if err != nil {
		return models.User{}, security.Session{}, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, session.JTI)
	if err != nil {
		return models.User{}, security.Session{}, fmt.Errorf("revocation check: %w", err)
	}
	if revoked {
		return models.User{}, security.Session{}, ErrTokenRevoked
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return models.User{}, security.Session{}, err
	}

	return user, session, nil
}

// Logout revokes the credential for the rest of its natural lifetime. It
// deliberately skips the revocation check so logging out twice with the
// same token succeeds both times.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	session, err := s.tokens.ParseSession(token)
	if err != nil {
		return err
	}
	return s.revoked.Revoke(ctx, session.JTI, time.Until(session.ExpiresAt))
}

func (s *AuthService) issue(user models.User) (AuthResult, error) {
	token, err := s.tokens.IssueSession(user.ID)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}
