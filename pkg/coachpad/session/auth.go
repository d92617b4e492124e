package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrRejected indicates the backend refused the supplied credentials.
// This is a normal flow outcome, not an infrastructure failure; callers
// surface it as an alert and leave navigation state untouched.
var ErrRejected = errors.New("session: credentials rejected")

// Authenticator is the injected login boundary. The app never implements
// authentication itself; it hands credentials to a collaborator and receives
// a fully-formed user back.
type Authenticator interface {
	Login(ctx context.Context, email, password string, role Role) (*User, error)
}

// profileClaims is the shape of the access token issued by the coaching
// backend. The token is received over an authenticated TLS channel and is
// decoded for display fields only; the app performs no signature checks
// because it holds no verification key.
type profileClaims struct {
	FirstName string `json:"given_name"`
	LastName  string `json:"family_name"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Verified  bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// HTTPAuthenticator logs in against the platform's auth endpoint.
type HTTPAuthenticator struct {
	baseURL string
	client  *http.Client
}

// NewHTTPAuthenticator creates an authenticator for the given base URL,
// e.g. "https://api.example.com". A zero timeout defaults to 15s.
func NewHTTPAuthenticator(baseURL string, timeout time.Duration) *HTTPAuthenticator {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &HTTPAuthenticator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login posts credentials and decodes the returned access token into a User.
// A 401/403 maps to ErrRejected; anything else unexpected is reported as a
// plain error.
func (a *HTTPAuthenticator) Login(ctx context.Context, email, password string, role Role) (*User, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password, Role: role.String()})
	if err != nil {
		return nil, fmt.Errorf("session: encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("session: build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session: login request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, ErrRejected
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("session: login failed with status %d", resp.StatusCode)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("session: decode login response: %w", err)
	}

	return userFromToken(lr.AccessToken)
}

func userFromToken(token string) (*User, error) {
	claims := &profileClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("session: parse access token: %w", err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("session: token subject is not a user id: %w", err)
	}

	role, err := ParseRole(claims.Role)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:        id,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Email:     claims.Email,
		Role:      role,
		Verified:  claims.Verified,
	}, nil
}

// CannedAuthenticator accepts any non-empty credentials and returns a fresh
// demo user for the requested role after a fixed artificial delay. It backs
// demo mode, where no backend is reachable.
type CannedAuthenticator struct {
	Delay time.Duration
}

// Login returns a demo user, or ErrRejected when either credential is empty.
// The delay is context-aware so a dismissed login screen does not leave a
// timer running.
func (a *CannedAuthenticator) Login(ctx context.Context, email, password string, role Role) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrRejected
	}
	if !role.Valid() {
		role = RoleStudent
	}

	if a.Delay > 0 {
		select {
		case <-time.After(a.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return &User{
		ID:        uuid.New(),
		FirstName: "Demo",
		LastName:  role.DisplayName(),
		Email:     email,
		Role:      role,
		Verified:  true,
	}, nil
}
