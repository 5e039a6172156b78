package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-secret"

func sign(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthMiddleware(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":   c.Locals(LocalUserID),
			"role": c.Locals(LocalUserRole),
			"name": c.Locals(LocalUserName),
		})
	})
	app.Get("/staff", AuthMiddleware(secret), OnlyStaff(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func do(t *testing.T, app *fiber.App, path, tok string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthMiddleware(t *testing.T) {
	app := newApp()
	exp := time.Now().Add(time.Hour).Unix()

	valid := sign(t, jwt.MapClaims{"sub": "u-1", "role": "Instructor", "exp": exp}, jwt.SigningMethodHS256, []byte(secret))
	assert.Equal(t, fiber.StatusOK, do(t, app, "/me", valid))
	assert.Equal(t, fiber.StatusNoContent, do(t, app, "/staff", valid))

	student := sign(t, jwt.MapClaims{"id": "u-2", "exp": exp}, jwt.SigningMethodHS256, []byte(secret))
	assert.Equal(t, fiber.StatusOK, do(t, app, "/me", student))
	assert.Equal(t, fiber.StatusForbidden, do(t, app, "/staff", student))

	expired := sign(t, jwt.MapClaims{"id": "u-3", "exp": time.Now().Add(-time.Hour).Unix()}, jwt.SigningMethodHS256, []byte(secret))
	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "/me", expired))

	noExp := sign(t, jwt.MapClaims{"id": "u-4"}, jwt.SigningMethodHS256, []byte(secret))
	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "/me", noExp))

	wrongKey := sign(t, jwt.MapClaims{"id": "u-5", "exp": exp}, jwt.SigningMethodHS256, []byte("other"))
	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "/me", wrongKey))

	noUser := sign(t, jwt.MapClaims{"exp": exp}, jwt.SigningMethodHS256, []byte(secret))
	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "/me", noUser))

	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "/me", ""))
}

func TestExtractBearerTokenFromCookie(t *testing.T) {
	app := newApp()
	tok := sign(t, jwt.MapClaims{"id": "u-1", "exp": time.Now().Add(time.Hour).Unix()}, jwt.SigningMethodHS256, []byte(secret))

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Cookie", "access_token="+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
