package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/vbms/inventory-service/pkg/auth"
)

// newCachedApp mirrors the gateway wiring for a protected service prefix:
// auth first, then the response cache, then a handler whose body depends on
// the owner stamped by auth.
func newCachedApp(client *redis.Client) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/inventory",
		AuthMiddleware(),
		CacheMiddleware(client, DefaultCacheConfig()),
	)
	group.Get("/items", func(c *fiber.Ctx) error {
		return c.SendString("items-for-owner-" + c.Get("X-Owner-ID"))
	})
	return app
}

func getItems(t *testing.T, app *fiber.App, token string) (int, string, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/api/inventory/items", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), resp.Header.Get("X-Cache")
}

func mintToken(t *testing.T, customerID uint, email string) string {
	t.Helper()
	token, err := auth.GenerateToken(customerID, email, "owner")
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}
	return token
}

func TestCacheHitsAreOwnerScoped(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := newCachedApp(client)

	tokenOne := mintToken(t, 1, "one@example.com")
	tokenTwo := mintToken(t, 2, "two@example.com")

	status, body, cache := getItems(t, app, tokenOne)
	if status != fiber.StatusOK || body != "items-for-owner-1" || cache != "MISS" {
		t.Fatalf("first request = %d %q %s, want 200 owner-1 MISS", status, body, cache)
	}

	status, body, cache = getItems(t, app, tokenOne)
	if status != fiber.StatusOK || body != "items-for-owner-1" || cache != "HIT" {
		t.Fatalf("repeat request = %d %q %s, want cached owner-1 HIT", status, body, cache)
	}

	// A different tenant on the same path must get their own payload.
	status, body, cache = getItems(t, app, tokenTwo)
	if status != fiber.StatusOK || body != "items-for-owner-2" {
		t.Fatalf("tenant 2 request = %d %q, want 200 owner-2", status, body)
	}
	if cache == "HIT" {
		t.Error("tenant 2's first request hit tenant 1's cache entry")
	}
}

func TestCacheNeverServesUnauthenticated(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := newCachedApp(client)

	// Warm the cache as tenant 1, then knock without a token.
	getItems(t, app, mintToken(t, 1, "one@example.com"))

	status, body, _ := getItems(t, app, "")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("anonymous request = %d, want 401", status)
	}
	if body == "items-for-owner-1" {
		t.Error("anonymous request received a tenant's cached payload")
	}
}

func TestCacheSkipsRequestsWithoutOwner(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	// Cache wired without auth in front: no owner local, nothing cached.
	app := fiber.New()
	app.Get("/open", CacheMiddleware(client, DefaultCacheConfig()), func(c *fiber.Ctx) error {
		return c.SendString("open")
	})

	req := httptest.NewRequest(fiber.MethodGet, "/open", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if keys := mr.Keys(); len(keys) != 0 {
		t.Errorf("redis keys = %v, want none for an ownerless request", keys)
	}
}
