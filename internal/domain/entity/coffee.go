// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Size enumerates the cup sizes a coffee can be ordered in.
type Size string

const (
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

// Coffee is an immutable catalog row. The catalog is loaded once at startup
// and never mutated at runtime.
type Coffee struct {
	ID          string  // Stable catalog identifier.
	Name        string  // Display name, e.g. "Cappuccino".
	Description string  // Short tagline shown on the product card.
	Price       float64 // Unit price in the store currency.
	ImageURI    string  // Opaque reference to the product image.
	Category    string  // Grouping used by the catalog view, e.g. "Espresso".
}

// CartLine is one (coffee, size) entry of the active order.
// A cart never holds two lines with the same (Coffee.ID, Size) pair,
// and Quantity is always at least 1.
type CartLine struct {
	Coffee   Coffee
	Size     Size
	Quantity int
}

// Subtotal returns the derived price of the line, unit price times quantity.
// It is computed on demand and never stored.
func (l CartLine) Subtotal() float64 {
	return l.Coffee.Price * float64(l.Quantity)
}
