package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	config "github.com/nurbekov/paylinks/configs"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{SessionLifetime: 30 * time.Minute}
	InitSession(cfg)

	app := fiber.New()
	app.Get("/admin/login", func(c *fiber.Ctx) error { return c.SendString("login") })
	app.Get("/admin/secret", AdminRequired(cfg), func(c *fiber.Ctx) error {
		return c.SendString("secret")
	})
	return app
}

func TestAdminRequiredRedirectsAnonymous(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/admin/secret", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}

	location := resp.Header.Get("Location")
	if !strings.HasPrefix(location, "/admin/login") {
		t.Errorf("Location = %q, want /admin/login redirect", location)
	}
	if !strings.Contains(location, "next=") {
		t.Errorf("Location %q does not preserve the intended destination", location)
	}
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	cfg := config.Config{SessionLifetime: 30 * time.Minute}
	InitSession(cfg)

	hit := false
	app := fiber.New()
	app.Use(CSRF(cfg))
	app.Post("/admin/payment-methods/new", func(c *fiber.Ctx) error {
		hit = true
		return c.SendString("created")
	})

	req := httptest.NewRequest("POST", "/admin/payment-methods/new", strings.NewReader("name=BTC"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	if hit {
		t.Error("handler ran despite missing CSRF token")
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Errorf("status = %d, want redirect %d", resp.StatusCode, fiber.StatusFound)
	}
}
