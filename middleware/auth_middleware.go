package middleware

import (
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/fiber/v2/utils"

	config "github.com/nurbekov/paylinks/configs"
	"github.com/nurbekov/paylinks/flash"
	"github.com/nurbekov/paylinks/store"
)

var Store *session.Store

// InitSession builds the shared session store. Sessions live in memory unless
// a Redis address is configured.
func InitSession(cfg config.Config) {
	sessConfig := session.Config{
		Expiration:     cfg.SessionLifetime,
		KeyLookup:      "cookie:paylinks_session",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: "Lax",
	}
	if cfg.RedisAddr != "" {
		sessConfig.Storage = store.NewRedisStorage(cfg.RedisAddr)
		log.Println("Using Redis session storage at", cfg.RedisAddr)
	}
	Store = session.New(sessConfig)
}

// AdminRequired gates the admin panel. A request without a logged-in admin, or
// with a session idle past the configured lifetime, is redirected to the login
// page with the intended destination preserved.
func AdminRequired(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := Store.Get(c)
		if err != nil {
			log.Printf("Session error: %v", err)
			return c.Redirect("/admin/login")
		}

		adminID, ok := sess.Get("admin_id").(string)
		if !ok || adminID == "" {
			return redirectToLogin(c)
		}

		lastActivity, _ := sess.Get("last_activity").(int64)
		if lastActivity > 0 && time.Since(time.Unix(lastActivity, 0)) > cfg.SessionLifetime {
			if err := sess.Destroy(); err != nil {
				log.Printf("Failed to destroy stale session: %v", err)
			}
			return redirectToLogin(c)
		}

		sess.Set("last_activity", time.Now().Unix())
		if err := sess.Save(); err != nil {
			log.Printf("Failed to save session: %v", err)
		}

		c.Locals("admin_id", adminID)
		c.Locals("admin_username", sess.Get("admin_username"))
		c.Locals("admin_email", sess.Get("admin_email"))
		return c.Next()
	}
}

func redirectToLogin(c *fiber.Ctx) error {
	next := c.OriginalURL()
	if next == "" || next == "/admin/login" {
		return c.Redirect("/admin/login")
	}
	return c.Redirect("/admin/login?next=" + url.QueryEscape(next))
}

// CSRF protects state-changing admin posts. The token is bound to the session
// and compared in constant time against the hidden csrf_token form field; a
// mismatch flashes an error and performs no action.
func CSRF(cfg config.Config) fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "paylinks_csrf",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: "Lax",
		Expiration:     cfg.SessionLifetime,
		KeyGenerator:   utils.UUIDv4,
		ContextKey:     "csrf_token",
		Session:        Store,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("CSRF validation failed: %v | Path: %s", err, c.Path())
			if sess, serr := Store.Get(c); serr == nil {
				flash.Error(sess, "Invalid security token. Please try again.")
				if serr := sess.Save(); serr != nil {
					log.Printf("Failed to save session: %v", serr)
				}
			}
			referer := c.Get("Referer")
			if referer == "" {
				referer = "/admin"
			}
			return c.Redirect(referer)
		},
	})
}
