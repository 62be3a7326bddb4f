// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"barista/internal/domain/entity"
)

// --- Input DTOs ---

// SaveCardInput defines the data required to save the payment card.
// UpdatedAt is stamped at save time and cannot be supplied.
type SaveCardInput struct {
	CardNumber     string `validate:"required"`
	CardHolderName string `validate:"required"`
	ExpiryDate     string `validate:"required,datetime=01/06"`
	CVV            string `validate:"required,number,min=3,max=4"`
}

// PaymentUsecase defines the interface for payment-card operations.
type PaymentUsecase interface {
	// SaveCard validates the input and overwrites the stored card record.
	SaveCard(ctx context.Context, input SaveCardInput) (*entity.CardInformation, error)

	// Card returns the stored card, or nil when none is saved.
	Card(ctx context.Context) (*entity.CardInformation, error)
}
