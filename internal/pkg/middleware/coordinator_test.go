package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/boleias/internal/pkg/jwt"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinatorAuthMiddleware(t *testing.T) {
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "secret", Expiration: 10, Issuer: "test"}}
	token, _, err := jwtpkg.GenerateToken("Marta", cfg)
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "Missing header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Invalid token", header: "Bearer nope", expectedCode: http.StatusUnauthorized},
		{name: "Valid token", header: "Bearer " + token, expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			var seen models.AuthContext
			handler := CoordinatorAuthMiddleware(cfg.JWT)(func(c echo.Context) error {
				seen = AuthFromContext(c)
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/coordinator/matches", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			require.NoError(t, handler(e.NewContext(req, rec)))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.True(t, seen.IsCoordinator())
				assert.Equal(t, "Marta", seen.CoordinatorName)
			}
		})
	}
}

func TestAuthFromContext_DefaultsToPublic(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, models.PublicAuth(), AuthFromContext(c))

	SetAuthContext(c, models.AuthContext{Role: models.RoleCoordinator, CoordinatorName: "Rui"})
	assert.True(t, AuthFromContext(c).IsCoordinator())
}
