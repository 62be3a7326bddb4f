// Package entity contains the core business objects of the project.
package entity

import "time"

// CardInformation is the saved payment card of the installation. It is a
// singleton record and every save overwrites the whole record; there is no
// field-level merge.
type CardInformation struct {
	CardNumber     string    `json:"cardNumber"`     // 16 digits, display-formatted with spaces.
	CardHolderName string    `json:"cardHolderName"` // Name as printed on the card.
	ExpiryDate     string    `json:"expiryDate"`     // MM/YY.
	CVV            string    `json:"cvv"`            // 3 or 4 digits.
	UpdatedAt      time.Time `json:"updatedAt"`      // Stamped at save time, never client-supplied.
}
