package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Role
		wantErr bool
	}{
		{name: "lowercase", in: "teacher", want: RoleTeacher},
		{name: "mixed case", in: "Parent", want: RoleParent},
		{name: "padded", in: "  admin ", want: RoleAdmin},
		{name: "unknown", in: "principal", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleDisplayName(t *testing.T) {
	assert.Equal(t, "Student", RoleStudent.DisplayName())
	assert.Equal(t, "Admin", RoleAdmin.DisplayName())
	assert.Equal(t, "", Role("").DisplayName())
}

func TestSessionAuthenticatedDerivedFromUser(t *testing.T) {
	s := Session{}
	assert.False(t, s.Authenticated())

	s.User = &User{ID: uuid.New(), Role: RoleStudent}
	assert.True(t, s.Authenticated())

	s.User = nil
	assert.False(t, s.Authenticated())
}

func TestCannedAuthenticator(t *testing.T) {
	auth := &CannedAuthenticator{}

	u, err := auth.Login(context.Background(), "demo@example.com", "pw", RoleTeacher)
	require.NoError(t, err)
	assert.Equal(t, RoleTeacher, u.Role)
	assert.Equal(t, "demo@example.com", u.Email)
	assert.True(t, u.Verified)

	_, err = auth.Login(context.Background(), "", "pw", RoleTeacher)
	assert.ErrorIs(t, err, ErrRejected)

	_, err = auth.Login(context.Background(), "demo@example.com", "", RoleTeacher)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestCannedAuthenticatorDelayCancellation(t *testing.T) {
	auth := &CannedAuthenticator{Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := auth.Login(ctx, "demo@example.com", "pw", RoleStudent)
	assert.ErrorIs(t, err, context.Canceled)
}

func signedToken(t *testing.T, claims profileClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestHTTPAuthenticatorLogin(t *testing.T) {
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/auth/login", r.URL.Path)

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Password != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		token := signedToken(t, profileClaims{
			FirstName: "Maria",
			LastName:  "Okafor",
			Role:      req.Role,
			Email:     req.Email,
			Verified:  true,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject: userID.String(),
			},
		})
		json.NewEncoder(w).Encode(loginResponse{AccessToken: token})
	}))
	defer srv.Close()

	auth := NewHTTPAuthenticator(srv.URL, time.Second)

	u, err := auth.Login(context.Background(), "maria@example.com", "correct", RoleTeacher)
	require.NoError(t, err)
	assert.Equal(t, userID, u.ID)
	assert.Equal(t, "Maria", u.FirstName)
	assert.Equal(t, "Okafor", u.LastName)
	assert.Equal(t, RoleTeacher, u.Role)
	assert.True(t, u.Verified)

	_, err = auth.Login(context.Background(), "maria@example.com", "wrong", RoleTeacher)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestUserFromTokenRejectsBadSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &profileClaims{
		Role:             RoleStudent.String(),
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-uuid"},
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	_, err = userFromToken(token)
	assert.Error(t, err)
}
