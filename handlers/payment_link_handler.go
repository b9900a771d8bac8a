package handlers

import (
	"errors"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurbekov/paylinks/database"
	"github.com/nurbekov/paylinks/flash"
	"github.com/nurbekov/paylinks/models"
	"github.com/nurbekov/paylinks/utils"
	"github.com/nurbekov/paylinks/websocket"
)

type PaymentLinkRequest struct {
	PaymentType         string  `form:"payment_type" validate:"required,oneof=crypto bank"`
	PaymentMethodID     string  `form:"payment_method_id"`
	BankPaymentMethodID string  `form:"bank_payment_method_id"`
	Amount              float64 `form:"amount" validate:"required,gt=0"`
	Currency            string  `form:"currency" validate:"required,min=2,max=10"`
	RecipientEmail      string  `form:"recipient_email" validate:"omitempty,email"`
	ExpiryOption        string  `form:"expiry_option" validate:"required,oneof=7 14 30 fixed never"`
	ExpiresAt           string  `form:"expires_at"`
}

// ComputeExpiry turns the expiry form choice into an absolute timestamp.
// Relative options store creation time plus the offset; "never" stores nil;
// "fixed" parses the datetime-local value and requires it to be in the future.
func ComputeExpiry(option, fixed string, now time.Time) (*time.Time, error) {
	switch option {
	case "never", "":
		return nil, nil
	case "7", "14", "30":
		days, _ := strconv.Atoi(option)
		t := now.AddDate(0, 0, days)
		return &t, nil
	case "fixed":
		t, err := time.ParseInLocation("2006-01-02T15:04", fixed, now.Location())
		if err != nil {
			return nil, errors.New("expiry date must be in YYYY-MM-DDTHH:MM format")
		}
		if !t.After(now) {
			return nil, errors.New("expiry date must be in the future")
		}
		return &t, nil
	default:
		return nil, errors.New("unknown expiry option")
	}
}

func linkFormData(c *fiber.Ctx, data fiber.Map) fiber.Map {
	var cryptoMethods []models.PaymentMethod
	var bankMethods []models.BankPaymentMethod
	database.DB.Where("is_active = ?", true).Order("display_order asc").Find(&cryptoMethods)
	database.DB.Where("is_active = ?", true).Order("display_order asc").Find(&bankMethods)
	data["CryptoMethods"] = cryptoMethods
	data["BankMethods"] = bankMethods
	return data
}

func ListPaymentLinks(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit := 20
	offset := (page - 1) * limit

	query := database.DB.Model(&models.PaymentLink{})
	countQuery := database.DB.Model(&models.PaymentLink{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}

	var total int64
	var links []models.PaymentLink
	countQuery.Count(&total)
	query.Order("created_at desc").Offset(offset).Limit(limit).
		Preload("PaymentMethod").Preload("BankPaymentMethod").
		Find(&links)

	return renderAdmin(c, "admin/payment_links/index", fiber.Map{
		"Title":      "Payment Links",
		"Links":      links,
		"Status":     c.Query("status"),
		"Page":       page,
		"TotalPages": int(math.Ceil(float64(total) / float64(limit))),
		"Statuses":   []string{models.PaymentStatusPending, models.PaymentStatusCompleted, models.PaymentStatusExpired},
	})
}

func NewPaymentLink(c *fiber.Ctx) error {
	return renderAdmin(c, "admin/payment_links/form", linkFormData(c, fiber.Map{
		"Title":  "New Payment Link",
		"Action": "/admin/payment-links/new",
	}))
}

func CreatePaymentLink(c *fiber.Ctx) error {
	var req PaymentLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid form submission.", "/admin/payment-links")
	}
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))

	formErr := func(msgs []string) error {
		return renderAdmin(c, "admin/payment_links/form", linkFormData(c, fiber.Map{
			"Title":  "New Payment Link",
			"Action": "/admin/payment-links/new",
			"Errors": msgs,
			"Form":   req,
		}))
	}

	if err := validate.Struct(req); err != nil {
		return formErr(validationErrors(err))
	}

	expiresAt, err := ComputeExpiry(req.ExpiryOption, req.ExpiresAt, time.Now())
	if err != nil {
		return formErr([]string{err.Error()})
	}

	// Exactly one of the two method references is set, selected by the
	// payment_type discriminator.
	var methodID, bankMethodID *uuid.UUID
	switch req.PaymentType {
	case models.PaymentTypeCrypto:
		id, perr := uuid.Parse(req.PaymentMethodID)
		if perr != nil {
			return formErr([]string{"Select a crypto payment method."})
		}
		var method models.PaymentMethod
		if err := database.DB.First(&method, "id = ?", id).Error; err != nil {
			return formErr([]string{"The selected crypto payment method does not exist."})
		}
		methodID = &id
	case models.PaymentTypeBank:
		id, perr := uuid.Parse(req.BankPaymentMethodID)
		if perr != nil {
			return formErr([]string{"Select a bank payment method."})
		}
		var method models.BankPaymentMethod
		if err := database.DB.First(&method, "id = ?", id).Error; err != nil {
			return formErr([]string{"The selected bank payment method does not exist."})
		}
		bankMethodID = &id
	}

	var link models.PaymentLink
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		uniqueID, gerr := utils.GenerateUniquePaymentLinkID(tx)
		if gerr != nil {
			return gerr
		}
		link = models.PaymentLink{
			UniqueID:            uniqueID,
			PaymentType:         req.PaymentType,
			PaymentMethodID:     methodID,
			BankPaymentMethodID: bankMethodID,
			Amount:              req.Amount,
			Currency:            req.Currency,
			RecipientEmail:      optional(req.RecipientEmail),
			Status:              models.PaymentStatusPending,
			ExpiresAt:           expiresAt,
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		log.Printf("Failed to create payment link: %v", err)
		return flashAndRedirect(c, flash.LevelError, "Could not create the payment link.", "/admin/payment-links")
	}

	return flashAndRedirect(c, flash.LevelSuccess,
		"Payment link created: "+cfg.SiteURL+"/pay/"+link.UniqueID, "/admin/payment-links")
}

func EditPaymentLink(c *fiber.Ctx) error {
	var link models.PaymentLink
	err := database.DB.Preload("PaymentMethod").Preload("BankPaymentMethod").
		First(&link, "id = ?", c.Params("id")).Error
	if err != nil {
		return flashAndRedirect(c, flash.LevelError, "Payment link not found.", "/admin/payment-links")
	}
	return renderAdmin(c, "admin/payment_links/edit", fiber.Map{
		"Title":    "Edit Payment Link",
		"Action":   "/admin/payment-links/" + link.ID.String() + "/edit",
		"Link":     link,
		"Statuses": []string{models.PaymentStatusPending, models.PaymentStatusCompleted, models.PaymentStatusExpired},
	})
}

type PaymentLinkEditRequest struct {
	Amount         float64 `form:"amount" validate:"required,gt=0"`
	Currency       string  `form:"currency" validate:"required,min=2,max=10"`
	RecipientEmail string  `form:"recipient_email" validate:"omitempty,email"`
	ExpiryOption   string  `form:"expiry_option" validate:"required,oneof=keep 7 14 30 fixed never"`
	ExpiresAt      string  `form:"expires_at"`
}

func UpdatePaymentLink(c *fiber.Ctx) error {
	var link models.PaymentLink
	if err := database.DB.First(&link, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Payment link not found.", "/admin/payment-links")
	}

	var req PaymentLinkEditRequest
	if err := c.BodyParser(&req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid form submission.", "/admin/payment-links")
	}
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))

	formErr := func(msgs []string) error {
		return renderAdmin(c, "admin/payment_links/edit", fiber.Map{
			"Title":    "Edit Payment Link",
			"Action":   "/admin/payment-links/" + link.ID.String() + "/edit",
			"Errors":   msgs,
			"Link":     link,
			"Form":     req,
			"Statuses": []string{models.PaymentStatusPending, models.PaymentStatusCompleted, models.PaymentStatusExpired},
		})
	}

	if err := validate.Struct(req); err != nil {
		return formErr(validationErrors(err))
	}

	if req.ExpiryOption != "keep" {
		expiresAt, err := ComputeExpiry(req.ExpiryOption, req.ExpiresAt, time.Now())
		if err != nil {
			return formErr([]string{err.Error()})
		}
		link.ExpiresAt = expiresAt
	}

	link.Amount = req.Amount
	link.Currency = req.Currency
	link.RecipientEmail = optional(req.RecipientEmail)

	if err := database.DB.Save(&link).Error; err != nil {
		log.Printf("Failed to update payment link: %v", err)
		return flashAndRedirect(c, flash.LevelError, "Could not update the payment link.", "/admin/payment-links")
	}

	return flashAndRedirect(c, flash.LevelSuccess, "Payment link updated.", "/admin/payment-links")
}

type PaymentLinkStatusRequest struct {
	Status string `form:"status" validate:"required,oneof=pending completed expired"`
}

// UpdatePaymentLinkStatus applies the status chosen in the admin dropdown.
// Any transition is allowed here, including reopening an expired link.
func UpdatePaymentLinkStatus(c *fiber.Ctx) error {
	var link models.PaymentLink
	if err := database.DB.First(&link, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Payment link not found.", "/admin/payment-links")
	}

	var req PaymentLinkStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid form submission.", "/admin/payment-links")
	}
	if err := validate.Struct(req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid status value.", "/admin/payment-links")
	}

	link.Status = req.Status
	if err := database.DB.Save(&link).Error; err != nil {
		log.Printf("Failed to update payment link status: %v", err)
		return flashAndRedirect(c, flash.LevelError, "Could not update the status.", "/admin/payment-links")
	}

	websocket.Broadcast <- websocket.StatusUpdate{UniqueID: link.UniqueID, Status: link.Status}

	return flashAndRedirect(c, flash.LevelSuccess, "Payment link marked as "+req.Status+".", "/admin/payment-links")
}

func DeletePaymentLink(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.PaymentLink{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		log.Printf("Failed to delete payment link: %v", result.Error)
		return flashAndRedirect(c, flash.LevelError, "Could not delete the payment link.", "/admin/payment-links")
	}
	if result.RowsAffected == 0 {
		return flashAndRedirect(c, flash.LevelError, "Payment link not found.", "/admin/payment-links")
	}
	return flashAndRedirect(c, flash.LevelSuccess, "Payment link deleted.", "/admin/payment-links")
}
