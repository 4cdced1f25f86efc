package commands

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	middlewares "hostelku_backend/internals/middlewares"
)

func TestNewAppIgnoresForwardedForWithoutTrustedProxies(t *testing.T) {
	app := NewApp(nil)
	app.Get("/ip", func(c *fiber.Ctx) error { return c.SendString(c.IP()) })

	req := httptest.NewRequest(fiber.MethodGet, "/ip", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.9")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEqual(t, "203.0.113.9", string(body))
}

func TestLookupLimiterNotBypassedBySpoofedForwardedFor(t *testing.T) {
	app := NewApp(nil)
	app.Get("/lookup", middlewares.PublicLookupRateLimiter(2, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	codes := make([]int, 0, 3)
	for _, ip := range []string{"198.51.100.1", "198.51.100.2", "198.51.100.3"} {
		req := httptest.NewRequest(fiber.MethodGet, "/lookup", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, ip)
		resp, err := app.Test(req)
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{fiber.StatusOK, fiber.StatusOK, fiber.StatusTooManyRequests}, codes)
}
