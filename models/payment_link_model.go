package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentTypeCrypto = "crypto"
	PaymentTypeBank   = "bank"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusExpired   = "expired"
)

type PaymentLink struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UniqueID            string     `gorm:"size:40;not null;uniqueIndex" json:"unique_id"`
	PaymentType         string     `gorm:"size:10;not null" json:"payment_type"`
	PaymentMethodID     *uuid.UUID `gorm:"type:uuid" json:"payment_method_id"`
	BankPaymentMethodID *uuid.UUID `gorm:"type:uuid" json:"bank_payment_method_id"`
	Amount              float64    `gorm:"type:numeric(20,8);not null" json:"amount"`
	Currency            string     `gorm:"size:10;not null" json:"currency"`
	RecipientEmail      *string    `gorm:"size:255" json:"recipient_email"`
	Status              string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	ExpiresAt           *time.Time `json:"expires_at"`

	PaymentMethod     *PaymentMethod     `gorm:"foreignKey:PaymentMethodID;constraint:OnDelete:CASCADE" json:"payment_method,omitempty"`
	BankPaymentMethod *BankPaymentMethod `gorm:"foreignKey:BankPaymentMethodID;constraint:OnDelete:CASCADE" json:"bank_payment_method,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsExpired reports whether the link has an expiry in the past relative to now.
// A nil ExpiresAt means the link never expires.
func (l *PaymentLink) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}

// ResolveStatus returns the status the link should carry as of now. Only a
// pending link with a past expiry moves; completed and expired are terminal
// for this check (the admin status form may still overwrite them).
func (l *PaymentLink) ResolveStatus(now time.Time) string {
	if l.Status == PaymentStatusPending && l.IsExpired(now) {
		return PaymentStatusExpired
	}
	return l.Status
}
