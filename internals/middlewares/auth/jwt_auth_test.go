package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "hostelku_backend/internals/helpers"
	helperAuth "hostelku_backend/internals/helpers/auth"
)

const testSecret = "test-secret"

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Use(AuthJWT(AuthJWTOpts{Secret: testSecret}))
	app.Get("/me", func(c *fiber.Ctx) error {
		id, err := helperAuth.GetUserID(c)
		if err != nil {
			return err
		}
		return c.SendString(id + "|" + helperAuth.Actor(c))
	})
	return app
}

func TestAuthJWT(t *testing.T) {
	app := newApp()
	exp := time.Now().Add(time.Hour).Unix()

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", fiber.StatusUnauthorized, ""},
		{"wrong secret", "Bearer " + sign(t, "other", jwt.MapClaims{"sub": "u1", "exp": exp}), fiber.StatusUnauthorized, ""},
		{"expired", "Bearer " + sign(t, testSecret, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Hour).Unix()}), fiber.StatusUnauthorized, ""},
		{"no subject", "Bearer " + sign(t, testSecret, jwt.MapClaims{"exp": exp}), fiber.StatusUnauthorized, ""},
		{"sub claim", "Bearer " + sign(t, testSecret, jwt.MapClaims{"sub": "user_2abc", "exp": exp}), fiber.StatusOK, "user_2abc|user_2abc"},
		{"id wins over sub", "bearer " + sign(t, testSecret, jwt.MapClaims{"id": "a", "sub": "b", "name": "Ravi", "exp": exp}), fiber.StatusOK, "a|Ravi"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.body != "" {
				buf := make([]byte, 64)
				n, _ := resp.Body.Read(buf)
				assert.Equal(t, tc.body, string(buf[:n]))
			}
		})
	}
}

func TestAuthJWTRejectsNoneAlg(t *testing.T) {
	app := newApp()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
