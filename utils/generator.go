package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"gorm.io/gorm"

	"github.com/nurbekov/paylinks/models"
)

const paymentLinkIDPrefix = "pay-"
const paymentLinkIDBytes = 16

// NewPaymentLinkID returns a public identifier of the form pay-<32 hex chars>
// from a secure random source.
func NewPaymentLinkID() (string, error) {
	b := make([]byte, paymentLinkIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return paymentLinkIDPrefix + hex.EncodeToString(b), nil
}

// GenerateUniquePaymentLinkID generates a public identifier and retries on the
// unlikely event of a collision with an existing row.
func GenerateUniquePaymentLinkID(tx *gorm.DB) (string, error) {
	for i := 0; i < 5; i++ {
		id, err := NewPaymentLinkID()
		if err != nil {
			return "", err
		}

		var link models.PaymentLink
		err = tx.Where("unique_id = ?", id).First(&link).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return id, nil
			}
			return "", err
		}
	}
	return "", errors.New("could not generate a unique payment link id")
}
