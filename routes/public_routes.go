package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	config "github.com/nurbekov/paylinks/configs"
	"github.com/nurbekov/paylinks/handlers"
)

func PublicRoutes(app *fiber.App, cfg config.Config) {
	app.Get("/", handlers.Home)
	app.Get("/payment-methods", handlers.PaymentMethodsPage)
	app.Get("/tutorials", handlers.TutorialsPage)
	app.Get("/tutorials/:slug", handlers.TutorialBySlug)
	app.Get("/platforms", handlers.PlatformsPage)
	app.Get("/pay/:id", handlers.Pay)

	app.Use("/ws/pay/:id", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	app.Get("/ws/pay/:id", websocket.New(handlers.ServePayStatusWs))

	app.Static("/uploads", cfg.UploadDir)
	app.Static("/static", "./static")
}
