package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floxenta/floxenta_backend/config"
	"github.com/floxenta/floxenta_backend/pkg/reqctx"
)

func TestRequestID_Generates(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c fiber.Ctx) error {
		local, ok := RequestIDFromFiber(c)
		require.True(t, ok)
		meta, ok := reqctx.RequestMetaFromContext(c.Context())
		require.True(t, ok)
		assert.Equal(t, local, meta.RequestID)
		return c.SendString(meta.RequestID)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	rid := resp.Header.Get(HeaderRequestID)
	_, err = uuid.Parse(rid)
	assert.NoError(t, err)
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString(reqctx.RequestIDFromContext(c.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, strings.Repeat("x", maxRequestIDLen+1))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, strings.Repeat("x", maxRequestIDLen+1), resp.Header.Get(HeaderRequestID))
}

func TestContactLimiter_InMemory(t *testing.T) {
	app := fiber.New()
	app.Post("/contact",
		NewContactLimiter(config.RateLimitConfig{Max: 2, ExpirationSeconds: 60}, nil, func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("slow down")
		}),
		func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	var codes []int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/contact", nil))
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
}
