package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
	"github.com/moath17/taskdashbord-sub001/internal/pkg/jwt"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(t *testing.T, handler http.Handler, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_AcceptsIssuedAccessToken(t *testing.T) {
	t.Parallel()
	svc := jwt.NewJWTService("test-secret")
	token, _, err := svc.GenerateAccessToken("u1", "org-1", user.RoleManager, time.Hour)
	require.NoError(t, err)

	h := jwtauth.Verifier(svc.JWTAuth())(AuthRequired(svc.JWTAuth())(okHandler()))

	rec := serve(t, h, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_RejectsMissingToken(t *testing.T) {
	t.Parallel()
	svc := jwt.NewJWTService("test-secret")
	h := jwtauth.Verifier(svc.JWTAuth())(AuthRequired(svc.JWTAuth())(okHandler()))

	rec := serve(t, h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsNonAccessToken(t *testing.T) {
	t.Parallel()
	svc := jwt.NewJWTService("test-secret")
	_, token, err := svc.JWTAuth().Encode(map[string]interface{}{
		"user_id":         "u1",
		"organization_id": "org-1",
		"role":            string(user.RoleManager),
		"type":            "refresh",
		"exp":             time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	h := jwtauth.Verifier(svc.JWTAuth())(AuthRequired(svc.JWTAuth())(okHandler()))

	rec := serve(t, h, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireManager_RoleGate(t *testing.T) {
	t.Parallel()
	svc := jwt.NewJWTService("test-secret")

	tests := []struct {
		role     user.Role
		wantCode int
	}{
		{user.RoleOwner, http.StatusOK},
		{user.RoleManager, http.StatusOK},
		{user.RoleEmployee, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(string(tc.role), func(t *testing.T) {
			token, _, err := svc.GenerateAccessToken("u1", "org-1", tc.role, time.Hour)
			require.NoError(t, err)

			h := jwtauth.Verifier(svc.JWTAuth())(
				AuthRequired(svc.JWTAuth())(RequireManager(okHandler())))

			rec := serve(t, h, token)
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
