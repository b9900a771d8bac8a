package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PaymentMethod struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Symbol        string    `gorm:"size:20;not null" json:"symbol"`
	WalletAddress string    `gorm:"size:255;not null" json:"wallet_address"`
	Networks      string    `gorm:"size:255" json:"networks"`
	LogoPath      *string   `gorm:"size:255" json:"logo_path"`
	QRCodePath    *string   `gorm:"size:255" json:"qr_code_path"`
	DisplayOrder  int       `gorm:"default:0" json:"display_order"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NetworkList splits the stored comma list into trimmed entries.
func (m *PaymentMethod) NetworkList() []string {
	if strings.TrimSpace(m.Networks) == "" {
		return nil
	}
	parts := strings.Split(m.Networks, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
