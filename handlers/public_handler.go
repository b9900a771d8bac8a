package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nurbekov/paylinks/database"
	"github.com/nurbekov/paylinks/models"
)

func Home(c *fiber.Ctx) error {
	var methods []models.PaymentMethod
	var platforms []models.Platform
	database.DB.Where("is_active = ?", true).Order("display_order asc").Find(&methods)
	database.DB.Where("is_active = ?", true).Order("display_order asc").Limit(3).Find(&platforms)

	return renderPublic(c, "public/home", fiber.Map{
		"Title":     cfg.SiteName,
		"Methods":   methods,
		"Platforms": platforms,
	})
}

func PaymentMethodsPage(c *fiber.Ctx) error {
	var cryptoMethods []models.PaymentMethod
	var bankMethods []models.BankPaymentMethod
	database.DB.Where("is_active = ?", true).Order("display_order asc").Find(&cryptoMethods)
	database.DB.Where("is_active = ?", true).Order("display_order asc").Find(&bankMethods)

	return renderPublic(c, "public/payment_methods", fiber.Map{
		"Title":         "Payment Methods",
		"CryptoMethods": cryptoMethods,
		"BankMethods":   bankMethods,
	})
}

func TutorialsPage(c *fiber.Ctx) error {
	query := database.DB.Where("is_published = ?", true).Order("display_order asc, created_at desc")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var tutorials []models.Tutorial
	query.Find(&tutorials)

	return renderPublic(c, "public/tutorials", fiber.Map{
		"Title":     "Tutorials",
		"Tutorials": tutorials,
		"Category":  c.Query("category"),
		"Categories": []string{
			models.TutorialCategoryBeginner,
			models.TutorialCategoryIntermediate,
			models.TutorialCategoryAdvanced,
			models.TutorialCategoryGeneral,
		},
	})
}

func TutorialBySlug(c *fiber.Ctx) error {
	var tutorial models.Tutorial
	err := database.DB.Where("slug = ? AND is_published = ?", c.Params("slug"), true).First(&tutorial).Error
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Tutorial not found")
	}

	return renderPublic(c, "public/tutorial", fiber.Map{
		"Title":    tutorial.Title,
		"Tutorial": tutorial,
	})
}

func PlatformsPage(c *fiber.Ctx) error {
	var platforms []models.Platform
	database.DB.Where("is_active = ?", true).Order("display_order asc").Find(&platforms)

	return renderPublic(c, "public/platforms", fiber.Map{
		"Title":     "Platforms",
		"Platforms": platforms,
	})
}

// Pay renders the public payment page. A pending link past its expiry is moved
// to expired right here, on view; this check is the only automatic transition
// in the lifecycle and recomputes on every load.
func Pay(c *fiber.Ctx) error {
	var link models.PaymentLink
	err := database.DB.Preload("PaymentMethod").Preload("BankPaymentMethod").
		First(&link, "unique_id = ?", c.Params("id")).Error
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Payment link not found")
	}

	if resolved := link.ResolveStatus(time.Now()); resolved != link.Status {
		link.Status = resolved
		if err := database.DB.Model(&link).Update("status", resolved).Error; err != nil {
			log.Printf("Failed to expire payment link %s: %v", link.UniqueID, err)
		}
	}

	return renderPublic(c, "public/pay", fiber.Map{
		"Title": "Payment " + link.UniqueID,
		"Link":  link,
	})
}
