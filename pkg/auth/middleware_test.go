package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	userToken, _ := jwtService.GenerateJWT("user-1", RoleUser, time.Now().Add(time.Hour))
	adminToken, _ := jwtService.GenerateJWT("admin-1", RoleAdmin, time.Now().Add(time.Hour))

	var gotUser, gotRole string
	protected := AuthMiddleware(jwtService)(RequireRole(RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = r.Context().Value(UserIDKey).(string)
		gotRole, _ = r.Context().Value(RoleKey).(string)
		w.WriteHeader(http.StatusOK)
	})))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "No header", header: "", status: http.StatusUnauthorized},
		{name: "Not a bearer token", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "Garbage token", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "User on admin route", header: "Bearer " + userToken, status: http.StatusForbidden},
		{name: "Admin", header: "Bearer " + adminToken, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/admin/withdrawals/pending", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			protected.ServeHTTP(w, r)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	assert.Equal(t, "admin-1", gotUser)
	assert.Equal(t, RoleAdmin, gotRole)
}
