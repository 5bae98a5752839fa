package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hrithikcode/TO-DO-LIST/internal/security"
)

func newResetFixture(t *testing.T, resetTTL time.Duration) (*ResetService, *AuthService, *fakeUserStore, *fakeNotifier) {
	t.Helper()

	users := newFakeUserStore()
	notifier := newFakeNotifier(true)
	tokens := security.NewTokenService("test-secret", 7*24*time.Hour, resetTTL)
	reset := NewResetService(users, tokens, notifier, zerolog.Nop())
	auth := NewAuthService(users, tokens, revocationStub{}, fakeVerifier{}, zerolog.Nop())
	return reset, auth, users, notifier
}

func TestRequestResetUnknownEmail(t *testing.T) {
	t.Parallel()

	reset, _, _, notifier := newResetFixture(t, time.Hour)

	// No enumeration leak: unknown address is not an error, just not sent.
	sent, err := reset.RequestReset(context.Background(), "ghost@nowhere.com")
	require.NoError(t, err)
	require.False(t, sent)
	require.Empty(t, notifier.resets)
}

func TestRequestResetGoogleAccount(t *testing.T) {
	t.Parallel()

	reset, _, users, _ := newResetFixture(t, time.Hour)

	ctx := context.Background()
	_, err := users.CreateGoogle(ctx, "bob", "bob@x.com", "google-123", "")
	require.NoError(t, err)

	_, err = reset.RequestReset(ctx, "bob@x.com")
	var wrongProvider *WrongProviderError
	require.ErrorAs(t, err, &wrongProvider)
	require.Contains(t, wrongProvider.Error(), "google")
}

func TestResetPasswordFlow(t *testing.T) {
	t.Parallel()

	reset, auth, _, notifier := newResetFixture(t, time.Hour)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	sent, err := reset.RequestReset(ctx, "a@x.com")
	require.NoError(t, err)
	require.True(t, sent)

	token := notifier.lastResetToken()
	require.NotEmpty(t, token)

	require.NoError(t, reset.ResetPassword(ctx, token, "newsecret"))

	_, err = auth.Login(ctx, "alice", "newsecret")
	require.NoError(t, err)
	_, err = auth.Login(ctx, "alice", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetPasswordTooShort(t *testing.T) {
	t.Parallel()

	reset, auth, _, notifier := newResetFixture(t, time.Hour)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)
	_, err = reset.RequestReset(ctx, "a@x.com")
	require.NoError(t, err)

	err = reset.ResetPassword(ctx, notifier.lastResetToken(), "short")
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	t.Parallel()

	reset, auth, _, notifier := newResetFixture(t, -time.Second)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)
	_, err = reset.RequestReset(ctx, "a@x.com")
	require.NoError(t, err)

	err = reset.ResetPassword(ctx, notifier.lastResetToken(), "newsecret")
	require.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPasswordGarbageToken(t *testing.T) {
	t.Parallel()

	reset, _, _, _ := newResetFixture(t, time.Hour)

	err := reset.ResetPassword(context.Background(), "garbage", "newsecret")
	require.ErrorIs(t, err, ErrInvalidResetToken)
}

// A session credential must not redeem as a reset token.
func TestResetPasswordRejectsSessionToken(t *testing.T) {
	t.Parallel()

	reset, auth, _, _ := newResetFixture(t, time.Hour)
	ctx := context.Background()

	result, err := auth.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	err = reset.ResetPassword(ctx, result.Token, "newsecret")
	require.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestCheckToken(t *testing.T) {
	t.Parallel()

	reset, auth, _, notifier := newResetFixture(t, time.Hour)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)
	_, err = reset.RequestReset(ctx, "a@x.com")
	require.NoError(t, err)

	email, username, err := reset.CheckToken(ctx, notifier.lastResetToken())
	require.NoError(t, err)
	require.Equal(t, "a@x.com", email)
	require.Equal(t, "alice", username)

	// The probe does not consume the token.
	require.NoError(t, reset.ResetPassword(ctx, notifier.lastResetToken(), "newsecret"))
}

func TestCheckTokenInvalid(t *testing.T) {
	t.Parallel()

	reset, _, _, _ := newResetFixture(t, time.Hour)

	_, _, err := reset.CheckToken(context.Background(), "garbage")
	require.ErrorIs(t, err, ErrInvalidResetToken)
}

// revocationStub satisfies revocation.Registry where logout is not under test.
type revocationStub struct{}

func (revocationStub) Revoke(context.Context, string, time.Duration) error { return nil }
func (revocationStub) IsRevoked(context.Context, string) (bool, error)    { return false, nil }
