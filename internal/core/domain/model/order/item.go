package order

import (
	"fmt"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"
)

// Item is an order line with the product name and unit price snapshotted at
// order time. The snapshot is authoritative: prices are never re-read from
// the catalog once the order exists.
type Item struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   float64
}

// NewItem creates a validated order line.
// Quantity must be positive and the unit price non-negative.
func NewItem(productID kernel.UUID, productName string, quantity int, unitPrice float64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is negative", unitPrice))
	}

	return Item{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

// ProductID returns the catalog product identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name snapshotted at order time.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price snapshotted at order time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() float64 {
	return float64(i.quantity) * i.unitPrice
}
