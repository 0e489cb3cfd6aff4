// Package store is a small documented package used as a fixture by the
// analyzer tests.
package store

// Product represents an individual item available for sale.
type Product struct {
	ID         int64
	SKU        string
	PriceCents int64
	Inventory  int
}

// Order represents a transaction made by a customer.
type Order struct {
	ID     int64
	Items  []OrderItem
	Status OrderStatus
	notes  map[string]any
}

// OrderItem represents a specific product line within an order.
type OrderItem struct {
	ProductID int64
	Quantity  int
	UnitPrice int64
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending OrderStatus = "PENDING"
	StatusPaid    OrderStatus = "PAID"
)

// NewOrder creates a pending order.
//
// @param id [String] The order identifier.
// @param items The ordered items.
// @param coupon An obsolete coupon code.
func NewOrder(id int64, items ...OrderItem) *Order {
	return &Order{ID: id, Items: items, Status: StatusPending}
}

// Annotate attaches a free-form note to an order.
//
// @param key The note key.
// @param value [Hash] The note value.
func Annotate(o *Order, key string, value any) {
	if o.notes == nil {
		o.notes = make(map[string]any)
	}
	o.notes[key] = value
}

// Total returns the order total in cents.
func (o *Order) Total(prices map[int64]int64) int64 {
	var total int64
	for _, it := range o.Items {
		total += prices[it.ProductID] * int64(it.Quantity)
	}

	return total
}

func Restock(p *Product, qty int) {
	p.Inventory += qty
}

// Discard removes a product from sale.
//
// @param reason Why the product is discarded.
func Discard(_ *Product, reason string) string {
	return reason
}

// reserve holds back inventory for an order.
func reserve(p *Product, qty int) bool {
	if p.Inventory < qty {
		return false
	}
	p.Inventory -= qty

	return true
}

func (o *Order) pay() {
	o.Status = StatusPaid
}
