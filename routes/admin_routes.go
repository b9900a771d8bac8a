package routes

import (
	"github.com/gofiber/fiber/v2"

	config "github.com/nurbekov/paylinks/configs"
	"github.com/nurbekov/paylinks/handlers"
	"github.com/nurbekov/paylinks/middleware"
)

func AdminRoutes(app *fiber.App, cfg config.Config) {
	admin := app.Group("/admin", middleware.CSRF(cfg))

	admin.Get("/login", handlers.ShowLogin)
	admin.Post("/login", handlers.Login)

	protected := admin.Group("", middleware.AdminRequired(cfg))

	protected.Post("/logout", handlers.Logout)
	protected.Get("", handlers.Dashboard)

	paymentMethods := protected.Group("/payment-methods")
	paymentMethods.Get("", handlers.ListPaymentMethods)
	paymentMethods.Get("/new", handlers.NewPaymentMethod)
	paymentMethods.Post("/new", handlers.CreatePaymentMethod)
	paymentMethods.Get("/:id/edit", handlers.EditPaymentMethod)
	paymentMethods.Post("/:id/edit", handlers.UpdatePaymentMethod)
	paymentMethods.Post("/:id/delete", handlers.DeletePaymentMethod)

	bankMethods := protected.Group("/bank-methods")
	bankMethods.Get("", handlers.ListBankMethods)
	bankMethods.Get("/new", handlers.NewBankMethod)
	bankMethods.Post("/new", handlers.CreateBankMethod)
	bankMethods.Get("/:id/edit", handlers.EditBankMethod)
	bankMethods.Post("/:id/edit", handlers.UpdateBankMethod)
	bankMethods.Post("/:id/delete", handlers.DeleteBankMethod)

	platforms := protected.Group("/platforms")
	platforms.Get("", handlers.ListPlatforms)
	platforms.Get("/new", handlers.NewPlatform)
	platforms.Post("/new", handlers.CreatePlatform)
	platforms.Get("/:id/edit", handlers.EditPlatform)
	platforms.Post("/:id/edit", handlers.UpdatePlatform)
	platforms.Post("/:id/delete", handlers.DeletePlatform)

	tutorials := protected.Group("/tutorials")
	tutorials.Get("", handlers.ListTutorials)
	tutorials.Get("/new", handlers.NewTutorial)
	tutorials.Post("/new", handlers.CreateTutorial)
	tutorials.Get("/:id/edit", handlers.EditTutorial)
	tutorials.Post("/:id/edit", handlers.UpdateTutorial)
	tutorials.Post("/:id/delete", handlers.DeleteTutorial)

	links := protected.Group("/payment-links")
	links.Get("", handlers.ListPaymentLinks)
	links.Get("/new", handlers.NewPaymentLink)
	links.Post("/new", handlers.CreatePaymentLink)
	links.Get("/:id/edit", handlers.EditPaymentLink)
	links.Post("/:id/edit", handlers.UpdatePaymentLink)
	links.Post("/:id/status", handlers.UpdatePaymentLinkStatus)
	links.Post("/:id/delete", handlers.DeletePaymentLink)
}
