package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/nurbekov/paylinks/database"
	"github.com/nurbekov/paylinks/flash"
	"github.com/nurbekov/paylinks/models"
	"github.com/nurbekov/paylinks/uploads"
)

type PaymentMethodRequest struct {
	Name          string `form:"name" validate:"required,min=2,max=100"`
	Symbol        string `form:"symbol" validate:"required,crypto_ticker,max=20"`
	WalletAddress string `form:"wallet_address" validate:"required,max=255"`
	Networks      string `form:"networks" validate:"max=255"`
	DisplayOrder  int    `form:"display_order" validate:"gte=0"`
	IsActive      bool   `form:"is_active"`
}

// saveUpload reads an optional file field. A missing file is not an error; a
// present file that fails validation is.
func saveUpload(c *fiber.Ctx, field string) (*string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil, nil
	}
	path, err := files.Save(fh)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, uploads.ErrFileTooLarge):
		return "Uploaded file exceeds the maximum allowed size."
	case errors.Is(err, uploads.ErrUnsupportedType):
		return "Uploaded file must be a JPEG, PNG, GIF, WebP or SVG image."
	default:
		log.Printf("Upload error: %v", err)
		return "Could not store the uploaded file."
	}
}

func ListPaymentMethods(c *fiber.Ctx) error {
	var methods []models.PaymentMethod
	if err := database.DB.Order("display_order asc, created_at asc").Find(&methods).Error; err != nil {
		log.Printf("Failed to list payment methods: %v", err)
		return flashAndRedirect(c, flash.LevelError, "Could not load payment methods.", "/admin")
	}
	return renderAdmin(c, "admin/payment_methods/index", fiber.Map{
		"Title":   "Payment Methods",
		"Methods": methods,
	})
}

func NewPaymentMethod(c *fiber.Ctx) error {
	return renderAdmin(c, "admin/payment_methods/form", fiber.Map{
		"Title":  "New Payment Method",
		"Action": "/admin/payment-methods/new",
	})
}

func CreatePaymentMethod(c *fiber.Ctx) error {
	var req PaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid form submission.", "/admin/payment-methods")
	}
	req.Symbol = strings.ToUpper(strings.TrimSpace(req.Symbol))

	if err := validate.Struct(req); err != nil {
		return renderAdmin(c, "admin/payment_methods/form", fiber.Map{
			"Title":  "New Payment Method",
			"Action": "/admin/payment-methods/new",
			"Errors": validationErrors(err),
			"Form":   req,
		})
	}

	logoPath, err := saveUpload(c, "logo")
	if err != nil {
		return renderAdmin(c, "admin/payment_methods/form", fiber.Map{
			"Title":  "New Payment Method",
			"Action": "/admin/payment-methods/new",
			"Errors": []string{uploadErrorMessage(err)},
			"Form":   req,
		})
	}
	qrPath, err := saveUpload(c, "qr_code")
	if err != nil {
		files.DeleteIfSet(logoPath)
		return renderAdmin(c, "admin/payment_methods/form", fiber.Map{
			"Title":  "New Payment Method",
			"Action": "/admin/payment-methods/new",
			"Errors": []string{uploadErrorMessage(err)},
			"Form":   req,
		})
	}

	method := models.PaymentMethod{
		Name:          req.Name,
		Symbol:        req.Symbol,
		WalletAddress: req.WalletAddress,
		Networks:      req.Networks,
		LogoPath:      logoPath,
		QRCodePath:    qrPath,
		DisplayOrder:  req.DisplayOrder,
		IsActive:      req.IsActive,
	}
	if err := database.DB.Create(&method).Error; err != nil {
		log.Printf("Failed to create payment method: %v", err)
		files.DeleteIfSet(logoPath)
		files.DeleteIfSet(qrPath)
		return flashAndRedirect(c, flash.LevelError, "Could not create the payment method.", "/admin/payment-methods")
	}

	return flashAndRedirect(c, flash.LevelSuccess, "Payment method created.", "/admin/payment-methods")
}

func EditPaymentMethod(c *fiber.Ctx) error {
	var method models.PaymentMethod
	if err := database.DB.First(&method, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Payment method not found.", "/admin/payment-methods")
	}
	return renderAdmin(c, "admin/payment_methods/form", fiber.Map{
		"Title":  "Edit Payment Method",
		"Action": "/admin/payment-methods/" + method.ID.String() + "/edit",
		"Method": method,
	})
}

func UpdatePaymentMethod(c *fiber.Ctx) error {
	var method models.PaymentMethod
	if err := database.DB.First(&method, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Payment method not found.", "/admin/payment-methods")
	}

	var req PaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid form submission.", "/admin/payment-methods")
	}
	req.Symbol = strings.ToUpper(strings.TrimSpace(req.Symbol))

	action := "/admin/payment-methods/" + method.ID.String() + "/edit"
	if err := validate.Struct(req); err != nil {
		return renderAdmin(c, "admin/payment_methods/form", fiber.Map{
			"Title":  "Edit Payment Method",
			"Action": action,
			"Errors": validationErrors(err),
			"Form":   req,
			"Method": method,
		})
	}

	logoPath, err := saveUpload(c, "logo")
	if err != nil {
		return renderAdmin(c, "admin/payment_methods/form", fiber.Map{
			"Title":  "Edit Payment Method",
			"Action": action,
			"Errors": []string{uploadErrorMessage(err)},
			"Form":   req,
			"Method": method,
		})
	}
	qrPath, err := saveUpload(c, "qr_code")
	if err != nil {
		files.DeleteIfSet(logoPath)
		return renderAdmin(c, "admin/payment_methods/form", fiber.Map{
			"Title":  "Edit Payment Method",
			"Action": action,
			"Errors": []string{uploadErrorMessage(err)},
			"Form":   req,
			"Method": method,
		})
	}

	oldLogo, oldQR := method.LogoPath, method.QRCodePath

	method.Name = req.Name
	method.Symbol = req.Symbol
	method.WalletAddress = req.WalletAddress
	method.Networks = req.Networks
	method.DisplayOrder = req.DisplayOrder
	method.IsActive = req.IsActive
	if logoPath != nil {
		method.LogoPath = logoPath
	}
	if qrPath != nil {
		method.QRCodePath = qrPath
	}

	if err := database.DB.Save(&method).Error; err != nil {
		log.Printf("Failed to update payment method: %v", err)
		files.DeleteIfSet(logoPath)
		files.DeleteIfSet(qrPath)
		return flashAndRedirect(c, flash.LevelError, "Could not update the payment method.", "/admin/payment-methods")
	}

	if logoPath != nil {
		files.DeleteIfSet(oldLogo)
	}
	if qrPath != nil {
		files.DeleteIfSet(oldQR)
	}

	return flashAndRedirect(c, flash.LevelSuccess, "Payment method updated.", "/admin/payment-methods")
}

// DeletePaymentMethod removes the method and all payment links that reference
// it in one transaction, then deletes its files. The file removal happens
// outside the transaction; a crash in between leaves an orphaned file that the
// cleanup job collects later.
func DeletePaymentMethod(c *fiber.Ctx) error {
	var method models.PaymentMethod
	if err := database.DB.First(&method, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Payment method not found.", "/admin/payment-methods")
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_method_id = ?", method.ID).Delete(&models.PaymentLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(&method).Error
	})
	if err != nil {
		log.Printf("Failed to delete payment method: %v", err)
		return flashAndRedirect(c, flash.LevelError, "Could not delete the payment method.", "/admin/payment-methods")
	}

	files.DeleteIfSet(method.LogoPath)
	files.DeleteIfSet(method.QRCodePath)

	return flashAndRedirect(c, flash.LevelSuccess, "Payment method and its links deleted.", "/admin/payment-methods")
}
