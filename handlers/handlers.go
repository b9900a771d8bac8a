package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	config "github.com/nurbekov/paylinks/configs"
	"github.com/nurbekov/paylinks/flash"
	"github.com/nurbekov/paylinks/middleware"
	"github.com/nurbekov/paylinks/uploads"
	"github.com/nurbekov/paylinks/utils"
)

var validate = validator.New()

var cfg config.Config
var files *uploads.Manager

func Init(c config.Config, m *uploads.Manager) {
	cfg = c
	files = m
	utils.RegisterCustomValidators(validate)
}

func getSession(c *fiber.Ctx) *session.Session {
	sess, err := middleware.Store.Get(c)
	if err != nil {
		log.Printf("Session error: %v", err)
		return nil
	}
	return sess
}

// render wraps c.Render with the locals every page needs: site identity, the
// drained flash queue, the CSRF token and the logged-in admin, if any.
func render(c *fiber.Ctx, view string, layout string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["SiteName"] = cfg.SiteName
	data["SiteURL"] = cfg.SiteURL

	if sess := getSession(c); sess != nil {
		msgs := flash.Take(sess)
		if len(msgs) > 0 {
			if err := sess.Save(); err != nil {
				log.Printf("Failed to save session: %v", err)
			}
		}
		data["Flashes"] = msgs
	}
	if token, ok := c.Locals("csrf_token").(string); ok {
		data["CSRFToken"] = token
	}
	if username, ok := c.Locals("admin_username").(string); ok {
		data["AdminUsername"] = username
	}

	return c.Render(view, data, layout)
}

func renderAdmin(c *fiber.Ctx, view string, data fiber.Map) error {
	return render(c, view, "layouts/admin", data)
}

func renderPublic(c *fiber.Ctx, view string, data fiber.Map) error {
	return render(c, view, "layouts/public", data)
}

func flashAndRedirect(c *fiber.Ctx, level, text, to string) error {
	if sess := getSession(c); sess != nil {
		flash.Add(sess, level, text)
		if err := sess.Save(); err != nil {
			log.Printf("Failed to save session: %v", err)
		}
	}
	return c.Redirect(to)
}

// validationErrors flattens validator output into user-facing messages that
// the form templates list above the fields.
func validationErrors(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid form submission."}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("%s is required.", fe.Field()))
		case "email":
			out = append(out, fmt.Sprintf("%s must be a valid email address.", fe.Field()))
		case "swiftbic":
			out = append(out, "SWIFT/BIC must be 8 or 11 characters (e.g. HBUKGB4B).")
		case "iban_format":
			out = append(out, "IBAN format is invalid.")
		case "routing_number":
			out = append(out, "Routing number must be 6 to 11 digits.")
		case "routing_number_strict":
			out = append(out, "Routing number must be exactly 9 digits.")
		case "crypto_ticker":
			out = append(out, "Symbol may only contain uppercase letters and digits.")
		case "oneof":
			out = append(out, fmt.Sprintf("%s has an invalid value.", fe.Field()))
		case "gt", "gte", "lte", "min", "max", "url":
			out = append(out, fmt.Sprintf("%s is out of range or malformed.", fe.Field()))
		default:
			out = append(out, fmt.Sprintf("%s is invalid.", fe.Field()))
		}
	}
	return out
}
