package main

import (
	"html/template"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/robfig/cron/v3"

	config "github.com/nurbekov/paylinks/configs"
	"github.com/nurbekov/paylinks/database"
	"github.com/nurbekov/paylinks/handlers"
	"github.com/nurbekov/paylinks/jobs"
	"github.com/nurbekov/paylinks/middleware"
	"github.com/nurbekov/paylinks/routes"
	"github.com/nurbekov/paylinks/uploads"
	"github.com/nurbekov/paylinks/websocket"
)

func main() {
	cfg := config.Load()

	database.ConnectDB(cfg)
	database.Migrate()
	database.SeedAdmin(cfg)

	files, err := uploads.NewManager(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	middleware.InitSession(cfg)
	handlers.Init(cfg, files)

	c := cron.New()
	c.AddFunc("@hourly", func() { jobs.CleanupOrphanedUploads(cfg.UploadDir) })
	go c.Start()

	engine := html.New("./views", ".html")
	engine.AddFunc("safeHTML", func(s string) template.HTML { return template.HTML(s) })

	app := fiber.New(fiber.Config{
		AppName:       cfg.SiteName,
		Views:         engine,
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		BodyLimit:     int(cfg.MaxUploadBytes) + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			if code == fiber.StatusNotFound {
				return c.Status(code).Render("public/not_found", fiber.Map{
					"SiteName": cfg.SiteName,
					"Title":    "Not Found",
				}, "layouts/public")
			}
			return c.Status(code).Render("public/error", fiber.Map{
				"SiteName": cfg.SiteName,
				"Title":    "Something went wrong",
			}, "layouts/public")
		},
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.PublicRoutes(app, cfg)
	routes.AdminRoutes(app, cfg)

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Printf("Server is running on %s", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
