package middleware

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "6b9f3c2e-8a41-4a6e-9c7d-2f0b1d5e8a11",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func guardedApp(t *testing.T, roles ...string) *fiber.App {
	t.Helper()
	os.Setenv("JWT_SECRET", testSecret)

	app := fiber.New()
	app.Get("/guarded", Protected(), RoleRequired(roles...), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestRoleRequiredAllowsMatchingRole(t *testing.T) {
	app := guardedApp(t, "admin")

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "admin"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleRequiredRejectsOtherRoles(t *testing.T) {
	app := guardedApp(t, "admin")

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "student"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRoleRequiredAcceptsAnyListedRole(t *testing.T) {
	app := guardedApp(t, "institute", "admin")

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "institute"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	app := guardedApp(t, "admin")

	req := httptest.NewRequest("GET", "/guarded", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRejectsForgedToken(t *testing.T) {
	app := guardedApp(t, "admin")

	claims := jwt.MapClaims{
		"user_id": "6b9f3c2e-8a41-4a6e-9c7d-2f0b1d5e8a11",
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+forged)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
