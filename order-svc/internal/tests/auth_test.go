package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fastfoodz/order-svc/internal/auth"
	"fastfoodz/order-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAuthenticator_IssueAndValidate(t *testing.T) {
	a := auth.NewAuthenticator(testSecret)

	token, err := a.Issue(*alice, time.Hour)
	require.NoError(t, err)

	user, err := a.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, alice, user)
}

func TestAuthenticator_Rejects(t *testing.T) {
	expired, err := auth.NewAuthenticator(testSecret).Issue(*alice, -time.Minute)
	require.NoError(t, err)

	otherKey, err := auth.NewAuthenticator("another-secret").Issue(*alice, time.Hour)
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "x@example.com"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"userID": "user-1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired},
		{name: "wrong key", token: otherKey},
		{name: "missing user id", token: noUser},
		{name: "unsigned", token: none},
		{name: "garbage", token: "not-a-token"},
	}

	a := auth.NewAuthenticator(testSecret)
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			user, err := a.Validate(testCase.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
			assert.Nil(t, user)
		})
	}
}

func TestAuthenticator_Middleware(t *testing.T) {
	a := auth.NewAuthenticator(testSecret)
	token, err := a.Issue(*alice, time.Hour)
	require.NoError(t, err)

	var seen *domain.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.UserFromContext(r.Context())
	})

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantUser bool
	}{
		{name: "valid bearer", header: "Bearer " + token, wantCode: http.StatusOK, wantUser: true},
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, wantCode: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", wantCode: http.StatusUnauthorized},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest("GET", "/api/cart", nil)
			if testCase.header != "" {
				req.Header.Set("Authorization", testCase.header)
			}
			w := httptest.NewRecorder()

			a.Middleware(next).ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			assert.Equal(t, testCase.wantUser, seen != nil)
		})
	}
}
