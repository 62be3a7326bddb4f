// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"barista/internal/domain/entity"
)

// CardInput is a card record minus the save timestamp, which the adapter
// stamps itself.
type CardInput struct {
	CardNumber     string
	CardHolderName string
	ExpiryDate     string
	CVV            string
}

// CardRepository persists the singleton payment card record.
type CardRepository interface {
	// Get returns the saved card, or nil when absent or corrupt.
	Get(ctx context.Context) (*entity.CardInformation, error)

	// Save stamps UpdatedAt with the current time, overwrites the whole
	// record, and returns what was written.
	Save(ctx context.Context, input CardInput) (*entity.CardInformation, error)
}

// ProfilePhotoRepository persists the profile photo URI as a raw string,
// not JSON.
type ProfilePhotoRepository interface {
	// Load returns the stored URI, or "" when no photo is set.
	Load(ctx context.Context) (string, error)

	// Save stores the URI.
	Save(ctx context.Context, uri string) error

	// Clear deletes the persisted key entirely; clearing an unset photo is
	// not an error.
	Clear(ctx context.Context) error
}
