package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/nurbekov/paylinks/database"
	"github.com/nurbekov/paylinks/flash"
	"github.com/nurbekov/paylinks/models"
)

// The create and edit forms intentionally differ: the original admin panel
// shipped two divergent forms (swift_code vs swift_bic_code, routing number
// 6-11 digits vs exactly 9) and the behavior is preserved until product
// decides which one is right.
// TODO: unify BankMethodCreateRequest/BankMethodEditRequest once product
// confirms the routing number rule.
type BankMethodCreateRequest struct {
	BankName      string `form:"bank_name" validate:"required,min=2,max=150"`
	AccountHolder string `form:"account_holder" validate:"required,min=2,max=150"`
	AccountNumber string `form:"account_number" validate:"required,max=50"`
	RoutingNumber string `form:"routing_number" validate:"routing_number"`
	SwiftCode     string `form:"swift_code" validate:"swiftbic"`
	Iban          string `form:"iban" validate:"iban_format"`
	BankAddress   string `form:"bank_address"`
	AccountType   string `form:"account_type" validate:"required,oneof=checking savings business"`
	Currency      string `form:"currency" validate:"required,len=3"`
	Country       string `form:"country" validate:"max=100"`
	Instructions  string `form:"instructions"`
	DisplayOrder  int    `form:"display_order" validate:"gte=0"`
	IsActive      bool   `form:"is_active"`
}

type BankMethodEditRequest struct {
	BankName      string `form:"bank_name" validate:"required,min=2,max=150"`
	AccountHolder string `form:"account_holder" validate:"required,min=2,max=150"`
	AccountNumber string `form:"account_number" validate:"required,max=50"`
	RoutingNumber string `form:"routing_number" validate:"routing_number_strict"`
	SwiftBicCode  string `form:"swift_bic_code" validate:"swiftbic"`
	Iban          string `form:"iban" validate:"iban_format"`
	BankAddress   string `form:"bank_address"`
	AccountType   string `form:"account_type" validate:"required,oneof=checking savings business"`
	Currency      string `form:"currency" validate:"required,len=3"`
	Country       string `form:"country" validate:"max=100"`
	Instructions  string `form:"instructions"`
	DisplayOrder  int    `form:"display_order" validate:"gte=0"`
	IsActive      bool   `form:"is_active"`
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

func ListBankMethods(c *fiber.Ctx) error {
	var methods []models.BankPaymentMethod
	if err := database.DB.Order("display_order asc, created_at asc").Find(&methods).Error; err != nil {
		log.Printf("Failed to list bank methods: %v", err)
		return flashAndRedirect(c, flash.LevelError, "Could not load bank payment methods.", "/admin")
	}
	return renderAdmin(c, "admin/bank_methods/index", fiber.Map{
		"Title":   "Bank Payment Methods",
		"Methods": methods,
	})
}

func NewBankMethod(c *fiber.Ctx) error {
	return renderAdmin(c, "admin/bank_methods/new", fiber.Map{
		"Title":  "New Bank Payment Method",
		"Action": "/admin/bank-methods/new",
	})
}

func CreateBankMethod(c *fiber.Ctx) error {
	var req BankMethodCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid form submission.", "/admin/bank-methods")
	}
	req.SwiftCode = strings.ToUpper(strings.TrimSpace(req.SwiftCode))
	req.Iban = strings.ToUpper(strings.ReplaceAll(req.Iban, " ", ""))
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))

	if err := validate.Struct(req); err != nil {
		return renderAdmin(c, "admin/bank_methods/new", fiber.Map{
			"Title":  "New Bank Payment Method",
			"Action": "/admin/bank-methods/new",
			"Errors": validationErrors(err),
			"Form":   req,
		})
	}

	logoPath, err := saveUpload(c, "logo")
	if err != nil {
		return renderAdmin(c, "admin/bank_methods/new", fiber.Map{
			"Title":  "New Bank Payment Method",
			"Action": "/admin/bank-methods/new",
			"Errors": []string{uploadErrorMessage(err)},
			"Form":   req,
		})
	}

	method := models.BankPaymentMethod{
		BankName:      req.BankName,
		AccountHolder: req.AccountHolder,
		AccountNumber: req.AccountNumber,
		RoutingNumber: optional(req.RoutingNumber),
		SwiftBic:      optional(req.SwiftCode),
		Iban:          optional(req.Iban),
		BankAddress:   optional(req.BankAddress),
		AccountType:   req.AccountType,
		Currency:      req.Currency,
		Country:       optional(req.Country),
		Instructions:  optional(req.Instructions),
		LogoPath:      logoPath,
		DisplayOrder:  req.DisplayOrder,
		IsActive:      req.IsActive,
	}
	if err := database.DB.Create(&method).Error; err != nil {
		log.Printf("Failed to create bank method: %v", err)
		files.DeleteIfSet(logoPath)
		return flashAndRedirect(c, flash.LevelError, "Could not create the bank payment method.", "/admin/bank-methods")
	}

	return flashAndRedirect(c, flash.LevelSuccess, "Bank payment method created.", "/admin/bank-methods")
}

func EditBankMethod(c *fiber.Ctx) error {
	var method models.BankPaymentMethod
	if err := database.DB.First(&method, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Bank payment method not found.", "/admin/bank-methods")
	}
	return renderAdmin(c, "admin/bank_methods/edit", fiber.Map{
		"Title":  "Edit Bank Payment Method",
		"Action": "/admin/bank-methods/" + method.ID.String() + "/edit",
		"Method": method,
	})
}

func UpdateBankMethod(c *fiber.Ctx) error {
	var method models.BankPaymentMethod
	if err := database.DB.First(&method, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Bank payment method not found.", "/admin/bank-methods")
	}

	var req BankMethodEditRequest
	if err := c.BodyParser(&req); err != nil {
		return flashAndRedirect(c, flash.LevelError, "Invalid form submission.", "/admin/bank-methods")
	}
	req.SwiftBicCode = strings.ToUpper(strings.TrimSpace(req.SwiftBicCode))
	req.Iban = strings.ToUpper(strings.ReplaceAll(req.Iban, " ", ""))
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))

	action := "/admin/bank-methods/" + method.ID.String() + "/edit"
	if err := validate.Struct(req); err != nil {
		return renderAdmin(c, "admin/bank_methods/edit", fiber.Map{
			"Title":  "Edit Bank Payment Method",
			"Action": action,
			"Errors": validationErrors(err),
			"Form":   req,
			"Method": method,
		})
	}

	logoPath, err := saveUpload(c, "logo")
	if err != nil {
		return renderAdmin(c, "admin/bank_methods/edit", fiber.Map{
			"Title":  "Edit Bank Payment Method",
			"Action": action,
			"Errors": []string{uploadErrorMessage(err)},
			"Form":   req,
			"Method": method,
		})
	}

	oldLogo := method.LogoPath

	method.BankName = req.BankName
	method.AccountHolder = req.AccountHolder
	method.AccountNumber = req.AccountNumber
	method.RoutingNumber = optional(req.RoutingNumber)
	method.SwiftBic = optional(req.SwiftBicCode)
	method.Iban = optional(req.Iban)
	method.BankAddress = optional(req.BankAddress)
	method.AccountType = req.AccountType
	method.Currency = req.Currency
	method.Country = optional(req.Country)
	method.Instructions = optional(req.Instructions)
	method.DisplayOrder = req.DisplayOrder
	method.IsActive = req.IsActive
	if logoPath != nil {
		method.LogoPath = logoPath
	}

	if err := database.DB.Save(&method).Error; err != nil {
		log.Printf("Failed to update bank method: %v", err)
		files.DeleteIfSet(logoPath)
		return flashAndRedirect(c, flash.LevelError, "Could not update the bank payment method.", "/admin/bank-methods")
	}

	if logoPath != nil {
		files.DeleteIfSet(oldLogo)
	}

	return flashAndRedirect(c, flash.LevelSuccess, "Bank payment method updated.", "/admin/bank-methods")
}

func DeleteBankMethod(c *fiber.Ctx) error {
	var method models.BankPaymentMethod
	if err := database.DB.First(&method, "id = ?", c.Params("id")).Error; err != nil {
		return flashAndRedirect(c, flash.LevelError, "Bank payment method not found.", "/admin/bank-methods")
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bank_payment_method_id = ?", method.ID).Delete(&models.PaymentLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(&method).Error
	})
	if err != nil {
		log.Printf("Failed to delete bank method: %v", err)
		return flashAndRedirect(c, flash.LevelError, "Could not delete the bank payment method.", "/admin/bank-methods")
	}

	files.DeleteIfSet(method.LogoPath)

	return flashAndRedirect(c, flash.LevelSuccess, "Bank payment method and its links deleted.", "/admin/bank-methods")
}
