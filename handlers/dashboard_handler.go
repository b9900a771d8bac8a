package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nurbekov/paylinks/database"
	"github.com/nurbekov/paylinks/models"
)

func Dashboard(c *fiber.Ctx) error {
	var paymentMethods, bankMethods, platforms, tutorials, links, pendingLinks int64

	database.DB.Model(&models.PaymentMethod{}).Count(&paymentMethods)
	database.DB.Model(&models.BankPaymentMethod{}).Count(&bankMethods)
	database.DB.Model(&models.Platform{}).Count(&platforms)
	database.DB.Model(&models.Tutorial{}).Count(&tutorials)
	database.DB.Model(&models.PaymentLink{}).Count(&links)
	database.DB.Model(&models.PaymentLink{}).Where("status = ?", models.PaymentStatusPending).Count(&pendingLinks)

	var recentLinks []models.PaymentLink
	database.DB.Order("created_at desc").Limit(5).
		Preload("PaymentMethod").Preload("BankPaymentMethod").
		Find(&recentLinks)

	return renderAdmin(c, "admin/dashboard", fiber.Map{
		"Title":              "Dashboard",
		"PaymentMethodCount": paymentMethods,
		"BankMethodCount":    bankMethods,
		"PlatformCount":      platforms,
		"TutorialCount":      tutorials,
		"PaymentLinkCount":   links,
		"PendingLinkCount":   pendingLinks,
		"RecentLinks":        recentLinks,
	})
}
