package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/segmentio/ksuid"
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)

// Signing keys are derived per purpose so a reset token can never be replayed
// as a session token or vice versa: the signature itself fails, not just the
// claim shape.
const (
	purposeSession = "session-token"
	purposeReset   = "password-reset"
)

type TokenService struct {
	sessionKey []byte
	resetKey   []byte
	sessionTTL time.Duration
	resetTTL   time.Duration
}

func NewTokenService(secret string, sessionTTL, resetTTL time.Duration) *TokenService {
	return &TokenService{
		sessionKey: deriveKey(secret, purposeSession),
		resetKey:   deriveKey(secret, purposeReset),
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
	}
}

func deriveKey(secret, purpose string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(purpose))
	return mac.Sum(nil)
}

// Session is the validated content of a session credential.
type Session struct {
	UserID    int64
	JTI       string
	ExpiresAt time.Time
}

func (s *TokenService) IssueSession(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        ksuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(s.sessionKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) ParseSession(tokenStr string) (Session, error) {
	claims := &jwt.RegisteredClaims{}
	if err := s.parse(tokenStr, claims, s.sessionKey); err != nil {
		return Session{}, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return Session{}, ErrTokenMalformed
	}

	return Session{
		UserID:    userID,
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *TokenService) IssueReset(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.resetTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(s.resetKey)
	if err != nil {
		return "", fmt.Errorf("sign reset token: %w", err)
	}
	return signed, nil
}

// ParseReset validates a password-reset token and returns the email it was
// issued for.
func (s *TokenService) ParseReset(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	if err := s.parse(tokenStr, claims, s.resetKey); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}

func (s *TokenService) parse(tokenStr string, claims jwt.Claims, key []byte) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenMalformed
	}
	if !token.Valid {
		return ErrTokenMalformed
	}
	return nil
}
