package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nurbekov/paylinks/database"
	"github.com/nurbekov/paylinks/flash"
	"github.com/nurbekov/paylinks/models"
	"github.com/nurbekov/paylinks/utils"
)

type TutorialRequest struct {
	Title        string `form:"title" validate:"required,min=3,max=255"`
	Slug         string `form:"slug" validate:"max=255"`
	Content      string `form:"content" validate:"required"`
	Category     string `form:"category" validate:"required,oneof=beginner intermediate advanced general"`
	DisplayOrder int    `form:"display_order" validate:"gte=0"`
	IsPublished  bool   `form:"is_published"`
}

// resolveSlug normalizes the explicit slug (falling back to the title) and
// checks uniqueness against every other tutorial row.
func resolveSlug(req TutorialRequest, excludeID *uuid.UUID) (string, string) {
	slug := utils.Slugify(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}
	if slug == "" {
		return "", "Slug cannot be empty."
	}

	query := database.DB.Model(&models.Tutorial{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		log.Printf("Failed to check slug uniqueness: %v", err)
		return "", "Could not verify slug uniqueness."
	}
	if count > 0 {
		return "", "A tutorial with the slug \"" + slug + "\" already exists."
	}
	return slug, ""
}

func ListTutorials(c *fiber.Ctx) error {
	var tutorials []models.Tutorial
	if err := database.DB.Order("display_order asc, created_at desc").Find(&tutorials).Error; err != nil {
		log.Printf("Failed to list tutorials: %v", err)
		return flashAndRedirect(c, flash.LevelError, "Could not load tutorials.", "/admin")
	}
	return renderAdmin(c, "admin/tutorials/index", fiber.Map{
		"Title":     "Tutorials",
		"Tutorials": tutorials,
	})
}

func NewTutorial(c *fiber.Ctx) error {
	return renderAdmin(c, "admin/tutorials/form", fiber.Map{
		"Title":  "New Tutorial",
		"Action": "/admin/tutorials/new",
	})
}

func CreateTutorial(c *fiber.Ctx) error {
	var req TutorialRequest
	if err := c.BodyParser(&req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid form submission.", "/admin/tutorials")
	}

	if err := validate.Struct(req); err != nil {
		return renderAdmin(c, "admin/tutorials/form", fiber.Map{
			"Title":  "New Tutorial",
			"Action": "/admin/tutorials/new",
			"Errors": validationErrors(err),
			"Form":   req,
		})
	}

	slug, slugErr := resolveSlug(req, nil)
	if slugErr != "" {
		return renderAdmin(c, "admin/tutorials/form", fiber.Map{
			"Title":  "New Tutorial",
			"Action": "/admin/tutorials/new",
			"Errors": []string{slugErr},
			"Form":   req,
		})
	}

	imagePath, err := saveUpload(c, "image")
	if err != nil {
		return renderAdmin(c, "admin/tutorials/form", fiber.Map{
			"Title":  "New Tutorial",
			"Action": "/admin/tutorials/new",
			"Errors": []string{uploadErrorMessage(err)},
			"Form":   req,
		})
	}

	tutorial := models.Tutorial{
		Title:        req.Title,
		Slug:         slug,
		Content:      req.Content,
		Category:     req.Category,
		ImagePath:    imagePath,
		DisplayOrder: req.DisplayOrder,
		IsPublished:  req.IsPublished,
	}
	if err := database.DB.Create(&tutorial).Error; err != nil {
		log.Printf("Failed to create tutorial: %v", err)
		files.DeleteIfSet(imagePath)
		return flashAndRedirect(c, flash.LevelError, "Could not create the tutorial.", "/admin/tutorials")
	}

	return flashAndRedirect(c, flash.LevelSuccess, "Tutorial created.", "/admin/tutorials")
}

func EditTutorial(c *fiber.Ctx) error {
	var tutorial models.Tutorial
	if err := database.DB.First(&tutorial, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Tutorial not found.", "/admin/tutorials")
	}
	return renderAdmin(c, "admin/tutorials/form", fiber.Map{
		"Title":    "Edit Tutorial",
		"Action":   "/admin/tutorials/" + tutorial.ID.String() + "/edit",
		"Tutorial": tutorial,
	})
}

func UpdateTutorial(c *fiber.Ctx) error {
	var tutorial models.Tutorial
	if err := database.DB.First(&tutorial, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Tutorial not found.", "/admin/tutorials")
	}

	var req TutorialRequest
	if err := c.BodyParser(&req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid form submission.", "/admin/tutorials")
	}

	action := "/admin/tutorials/" + tutorial.ID.String() + "/edit"
	if err := validate.Struct(req); err != nil {
		return renderAdmin(c, "admin/tutorials/form", fiber.Map{
			"Title":    "Edit Tutorial",
			"Action":   action,
			"Errors":   validationErrors(err),
			"Form":     req,
			"Tutorial": tutorial,
		})
	}

	slug, slugErr := resolveSlug(req, &tutorial.ID)
	if slugErr != "" {
		return renderAdmin(c, "admin/tutorials/form", fiber.Map{
			"Title":    "Edit Tutorial",
			"Action":   action,
			"Errors":   []string{slugErr},
			"Form":     req,
			"Tutorial": tutorial,
		})
	}

	imagePath, err := saveUpload(c, "image")
	if err != nil {
		return renderAdmin(c, "admin/tutorials/form", fiber.Map{
			"Title":    "Edit Tutorial",
			"Action":   action,
			"Errors":   []string{uploadErrorMessage(err)},
			"Form":     req,
			"Tutorial": tutorial,
		})
	}

	oldImage := tutorial.ImagePath

	tutorial.Title = req.Title
	tutorial.Slug = slug
	tutorial.Content = req.Content
	tutorial.Category = req.Category
	tutorial.DisplayOrder = req.DisplayOrder
	tutorial.IsPublished = req.IsPublished
	if imagePath != nil {
		tutorial.ImagePath = imagePath
	}

	if err := database.DB.Save(&tutorial).Error; err != nil {
		log.Printf("Failed to update tutorial: %v", err)
		files.DeleteIfSet(imagePath)
		return flashAndRedirect(c, flash.LevelError, "Could not update the tutorial.", "/admin/tutorials")
	}

	if imagePath != nil {
		files.DeleteIfSet(oldImage)
	}

	return flashAndRedirect(c, flash.LevelSuccess, "Tutorial updated.", "/admin/tutorials")
}

func DeleteTutorial(c *fiber.Ctx) error {
	var tutorial models.Tutorial
	if err := database.DB.First(&tutorial, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Tutorial not found.", "/admin/tutorials")
	}

	if err := database.DB.Delete(&tutorial).Error; err != nil {
		log.Printf("Failed to delete tutorial: %v", err)
		return flashAndRedirect(c, flash.LevelError, "Could not delete the tutorial.", "/admin/tutorials")
	}

	files.DeleteIfSet(tutorial.ImagePath)

	return flashAndRedirect(c, flash.LevelSuccess, "Tutorial deleted.", "/admin/tutorials")
}
