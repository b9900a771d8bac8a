package models

import (
	"time"

	"github.com/google/uuid"
)

type BankPaymentMethod struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BankName      string    `gorm:"size:150;not null" json:"bank_name"`
	AccountHolder string    `gorm:"size:150;not null" json:"account_holder"`
	AccountNumber string    `gorm:"size:50;not null" json:"account_number"`
	RoutingNumber *string   `gorm:"size:20" json:"routing_number"`
	SwiftBic      *string   `gorm:"size:11" json:"swift_bic"`
	Iban          *string   `gorm:"size:34" json:"iban"`
	BankAddress   *string   `gorm:"type:text" json:"bank_address"`
	AccountType   string    `gorm:"size:20;not null;default:'checking'" json:"account_type"`
	Currency      string    `gorm:"size:3;not null" json:"currency"`
	Country       *string   `gorm:"size:100" json:"country"`
	Instructions  *string   `gorm:"type:text" json:"instructions"`
	LogoPath      *string   `gorm:"size:255" json:"logo_path"`
	DisplayOrder  int       `gorm:"default:0" json:"display_order"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MaskedAccountNumber hides all but the last four digits for public pages.
func (b *BankPaymentMethod) MaskedAccountNumber() string {
	if len(b.AccountNumber) <= 4 {
		return b.AccountNumber
	}
	masked := make([]byte, len(b.AccountNumber)-4)
	for i := range masked {
		masked[i] = '*'
	}
	return string(masked) + b.AccountNumber[len(b.AccountNumber)-4:]
}
