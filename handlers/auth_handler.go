package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nurbekov/paylinks/database"
	"github.com/nurbekov/paylinks/flash"
	"github.com/nurbekov/paylinks/models"
)

type LoginRequest struct {
	Identity string `form:"identity" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func ShowLogin(c *fiber.Ctx) error {
	if sess := getSession(c); sess != nil {
		if id, _ := sess.Get("admin_id").(string); id != "" {
			return c.Redirect("/admin")
		}
	}
	return renderAdmin(c, "admin/login", fiber.Map{
		"Title": "Admin Login",
		"Next":  c.Query("next"),
	})
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid form submission.", "/admin/login")
	}
	if err := validate.Struct(req); err != nil {
		return renderAdmin(c, "admin/login", fiber.Map{
			"Title":  "Admin Login",
			"Errors": validationErrors(err),
			"Form":   req,
		})
	}

	identity := strings.TrimSpace(req.Identity)

	var admin models.Admin
	err := database.DB.Where("username = ? OR email = ?", identity, identity).First(&admin).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("Database error on login: %v", err)
		}
		return renderAdmin(c, "admin/login", fiber.Map{
			"Title":  "Admin Login",
			"Errors": []string{"Invalid username or password."},
			"Form":   req,
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return renderAdmin(c, "admin/login", fiber.Map{
			"Title":  "Admin Login",
			"Errors": []string{"Invalid username or password."},
			"Form":   req,
		})
	}

	sess := getSession(c)
	if sess == nil {
		return flashAndRedirect(c, flash.LevelError, "Could not start a session.", "/admin/login")
	}
	if err := sess.Regenerate(); err != nil {
		log.Printf("Failed to regenerate session: %v", err)
	}
	sess.Set("admin_id", admin.ID.String())
	sess.Set("admin_username", admin.Username)
	sess.Set("admin_email", admin.Email)
	sess.Set("last_activity", time.Now().Unix())
	flash.Success(sess, "Welcome back, "+admin.Username+".")
	if err := sess.Save(); err != nil {
		log.Printf("Failed to save session: %v", err)
	}

	next := c.FormValue("next")
	if next == "" || !strings.HasPrefix(next, "/admin") {
		next = "/admin"
	}
	return c.Redirect(next)
}

func Logout(c *fiber.Ctx) error {
	if sess := getSession(c); sess != nil {
		if err := sess.Destroy(); err != nil {
			log.Printf("Failed to destroy session: %v", err)
		}
	}
	return c.Redirect("/admin/login")
}
