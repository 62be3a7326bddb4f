package store

import "barista/internal/domain/entity"

// DefaultCatalog returns the fixed coffee catalog. The slice is rebuilt on
// every call so callers cannot mutate the reference data.
func DefaultCatalog() []entity.Coffee {
	return []entity.Coffee{
		{ID: "1", Name: "Cappuccino", Description: "With Steamed Milk", Price: 2.0, Category: "Cappuccino"},
		{ID: "2", Name: "Cappuccino", Description: "With Foam", Price: 2.0, Category: "Cappuccino"},
		{ID: "3", Name: "Latte", Description: "Classic milk coffee", Price: 2.5, Category: "Latte"},
		{ID: "4", Name: "Vanilla Latte", Description: "With vanilla syrup", Price: 2.9, Category: "Latte"},
		{ID: "5", Name: "Espresso", Description: "Strong and bold", Price: 1.9, Category: "Espresso"},
		{ID: "6", Name: "Double Espresso", Description: "Extra shot", Price: 2.4, Category: "Espresso"},
		{ID: "7", Name: "Americano", Description: "Espresso with hot water", Price: 2.1, Category: "Americano"},
		{ID: "8", Name: "Iced Americano", Description: "Chilled and smooth", Price: 2.4, Category: "Americano"},
		{ID: "9", Name: "Mocha", Description: "Chocolate + espresso", Price: 3.1, Category: "Mocha"},
		{ID: "10", Name: "White Mocha", Description: "Sweet and creamy", Price: 3.3, Category: "Mocha"},
		{ID: "11", Name: "Cold Brew", Description: "Slow steeped coffee", Price: 3.0, Category: "Cold Brew"},
		{ID: "12", Name: "Nitro Cold Brew", Description: "Creamy nitrogen finish", Price: 3.6, Category: "Cold Brew"},
	}
}
