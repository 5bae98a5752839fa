// Package identity verifies externally issued identity assertions and
// normalizes them into a single profile shape. Call sites never see
// provider-specific responses.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/idtoken"
)

var ErrInvalidAssertion = errors.New("invalid identity assertion")

// Profile is the normalized result both verification paths must produce.
type Profile struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

type Verifier interface {
	Verify(ctx context.Context, assertion string) (Profile, error)
}

const (
	tokenInfoURL = "https://www.googleapis.com/oauth2/v1/tokeninfo"
	userInfoURL  = "https://www.googleapis.com/oauth2/v1/userinfo"
)

// GoogleVerifier tries ID-token signature validation first and falls back to
// Google's introspection endpoints when the assertion is an access token
// rather than an ID token.
type GoogleVerifier struct {
	clientID string
	client   *http.Client
	log      zerolog.Logger
}

func NewGoogleVerifier(clientID string, log zerolog.Logger) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, assertion string) (Profile, error) {
	profile, err := v.verifyIDToken(ctx, assertion)
	if err == nil {
		return profile, nil
	}
	v.log.Debug().Err(err).Msg("id token validation failed, trying introspection")

	profile, err = v.verifyAccessToken(ctx, assertion)
	if err != nil {
		return Profile{}, ErrInvalidAssertion
	}
	return profile, nil
}

func (v *GoogleVerifier) verifyIDToken(ctx context.Context, assertion string) (Profile, error) {
	payload, err := idtoken.Validate(ctx, assertion, v.clientID)
	if err != nil {
		return Profile{}, fmt.Errorf("validate id token: %w", err)
	}

	return normalize(
		stringClaim(payload.Claims, "sub"),
		stringClaim(payload.Claims, "email"),
		stringClaim(payload.Claims, "name"),
		stringClaim(payload.Claims, "picture"),
	)
}

func (v *GoogleVerifier) verifyAccessToken(ctx context.Context, assertion string) (Profile, error) {
	var info struct {
		Audience string `json:"audience"`
	}
	if err := v.getJSON(ctx, tokenInfoURL, assertion, &info); err != nil {
		return Profile{}, err
	}

	var userInfo struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := v.getJSON(ctx, userInfoURL, assertion, &userInfo); err != nil {
		return Profile{}, err
	}

	return normalize(userInfo.ID, userInfo.Email, userInfo.Name, userInfo.Picture)
}

func (v *GoogleVerifier) getJSON(ctx context.Context, endpoint, accessToken string, out any) error {
	u := endpoint + "?access_token=" + url.QueryEscape(accessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("google api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("google api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func normalize(subject, email, name, picture string) (Profile, error) {
	if subject == "" || email == "" {
		return Profile{}, errors.New("assertion missing subject or email")
	}
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	return Profile{
		Subject: subject,
		Email:   email,
		Name:    name,
		Picture: picture,
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}
