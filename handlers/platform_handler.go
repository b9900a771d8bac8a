package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/nurbekov/paylinks/database"
	"github.com/nurbekov/paylinks/flash"
	"github.com/nurbekov/paylinks/models"
)

type PlatformRequest struct {
	Name         string  `form:"name" validate:"required,min=2,max=150"`
	Description  string  `form:"description" validate:"required"`
	WebsiteURL   string  `form:"website_url" validate:"omitempty,url,max=255"`
	Rating       float64 `form:"rating" validate:"gte=0,lte=5"`
	Pros         string  `form:"pros"`
	Cons         string  `form:"cons"`
	DisplayOrder int     `form:"display_order" validate:"gte=0"`
	IsActive     bool    `form:"is_active"`
}

func ListPlatforms(c *fiber.Ctx) error {
	var platforms []models.Platform
	if err := database.DB.Order("display_order asc, created_at asc").Find(&platforms).Error; err != nil {
		log.Printf("Failed to list platforms: %v", err)
		return flashAndRedirect(c, flash.LevelError, "Could not load platforms.", "/admin")
	}
	return renderAdmin(c, "admin/platforms/index", fiber.Map{
		"Title":     "Platforms",
		"Platforms": platforms,
	})
}

func NewPlatform(c *fiber.Ctx) error {
	return renderAdmin(c, "admin/platforms/form", fiber.Map{
		"Title":  "New Platform",
		"Action": "/admin/platforms/new",
	})
}

func CreatePlatform(c *fiber.Ctx) error {
	var req PlatformRequest
	if err := c.BodyParser(&req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid form submission.", "/admin/platforms")
	}

	if err := validate.Struct(req); err != nil {
		return renderAdmin(c, "admin/platforms/form", fiber.Map{
			"Title":  "New Platform",
			"Action": "/admin/platforms/new",
			"Errors": validationErrors(err),
			"Form":   req,
		})
	}

	logoPath, err := saveUpload(c, "logo")
	if err != nil {
		return renderAdmin(c, "admin/platforms/form", fiber.Map{
			"Title":  "New Platform",
			"Action": "/admin/platforms/new",
			"Errors": []string{uploadErrorMessage(err)},
			"Form":   req,
		})
	}

	platform := models.Platform{
		Name:         req.Name,
		Description:  req.Description,
		WebsiteURL:   optional(req.WebsiteURL),
		Rating:       req.Rating,
		Pros:         req.Pros,
		Cons:         req.Cons,
		LogoPath:     logoPath,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}
	if err := database.DB.Create(&platform).Error; err != nil {
		log.Printf("Failed to create platform: %v", err)
		files.DeleteIfSet(logoPath)
		return flashAndRedirect(c, flash.LevelError, "Could not create the platform.", "/admin/platforms")
	}

	return flashAndRedirect(c, flash.LevelSuccess, "Platform created.", "/admin/platforms")
}

func EditPlatform(c *fiber.Ctx) error {
	var platform models.Platform
	if err := database.DB.First(&platform, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Platform not found.", "/admin/platforms")
	}
	return renderAdmin(c, "admin/platforms/form", fiber.Map{
		"Title":    "Edit Platform",
		"Action":   "/admin/platforms/" + platform.ID.String() + "/edit",
		"Platform": platform,
	})
}

func UpdatePlatform(c *fiber.Ctx) error {
	var platform models.Platform
	if err := database.DB.First(&platform, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Platform not found.", "/admin/platforms")
	}

	var req PlatformRequest
	if err := c.BodyParser(&req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid form submission.", "/admin/platforms")
	}

	action := "/admin/platforms/" + platform.ID.String() + "/edit"
	if err := validate.Struct(req); err != nil {
		return renderAdmin(c, "admin/platforms/form", fiber.Map{
			"Title":    "Edit Platform",
			"Action":   action,
			"Errors":   validationErrors(err),
			"Form":     req,
			"Platform": platform,
		})
	}

	logoPath, err := saveUpload(c, "logo")
	if err != nil {
		return renderAdmin(c, "admin/platforms/form", fiber.Map{
			"Title":    "Edit Platform",
			"Action":   action,
			"Errors":   []string{uploadErrorMessage(err)},
			"Form":     req,
			"Platform": platform,
		})
	}

	oldLogo := platform.LogoPath

	platform.Name = req.Name
	platform.Description = req.Description
	platform.WebsiteURL = optional(req.WebsiteURL)
	platform.Rating = req.Rating
	platform.Pros = req.Pros
	platform.Cons = req.Cons
	platform.DisplayOrder = req.DisplayOrder
	platform.IsActive = req.IsActive
	if logoPath != nil {
		platform.LogoPath = logoPath
	}

	if err := database.DB.Save(&platform).Error; err != nil {
		log.Printf("Failed to update platform: %v", err)
		files.DeleteIfSet(logoPath)
		return flashAndRedirect(c, flash.LevelError, "Could not update the platform.", "/admin/platforms")
	}

	if logoPath != nil {
		files.DeleteIfSet(oldLogo)
	}

	return flashAndRedirect(c, flash.LevelSuccess, "Platform updated.", "/admin/platforms")
}

func DeletePlatform(c *fiber.Ctx) error {
	var platform models.Platform
	if err := database.DB.First(&platform, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Platform not found.", "/admin/platforms")
	}

	if err := database.DB.Delete(&platform).Error; err != nil {
		log.Printf("Failed to delete platform: %v", err)
		return flashAndRedirect(c, flash.LevelError, "Could not delete the platform.", "/admin/platforms")
	}

	files.DeleteIfSet(platform.LogoPath)

	return flashAndRedirect(c, flash.LevelSuccess, "Platform deleted.", "/admin/platforms")
}
