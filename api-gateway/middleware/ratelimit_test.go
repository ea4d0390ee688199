package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func newLimitedApp(client *redis.Client, maxRequests int) *fiber.App {
	app := fiber.New()
	limiter := NewRateLimiter(client, maxRequests, time.Minute)
	group := app.Group("/api/inventory", AuthMiddleware(), limiter.Middleware())
	group.Get("/items", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRateLimitKeyedPerOwner(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := newLimitedApp(client, 2)

	tokenOne := mintToken(t, 1, "one@example.com")
	tokenTwo := mintToken(t, 2, "two@example.com")

	for i := 0; i < 2; i++ {
		if status, _, _ := getItems(t, app, tokenOne); status != fiber.StatusOK {
			t.Fatalf("request %d = %d, want 200", i+1, status)
		}
	}

	if status, _, _ := getItems(t, app, tokenOne); status != fiber.StatusTooManyRequests {
		t.Fatalf("over-budget request = %d, want 429", status)
	}

	// Both test requests come from the same client address; tenant 2 must
	// still have their own budget.
	if status, _, _ := getItems(t, app, tokenTwo); status != fiber.StatusOK {
		t.Errorf("tenant 2 request = %d, want 200 despite tenant 1's exhaustion", status)
	}
}

func TestRateLimitHeaders(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := newLimitedApp(client, 5)

	req := httptest.NewRequest(fiber.MethodGet, "/api/inventory/items", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, 1, "one@example.com"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.Header.Get("X-RateLimit-Limit") != "5" {
		t.Errorf("limit header = %q, want 5", resp.Header.Get("X-RateLimit-Limit"))
	}
	if resp.Header.Get("X-RateLimit-Remaining") != "4" {
		t.Errorf("remaining header = %q, want 4", resp.Header.Get("X-RateLimit-Remaining"))
	}
}
