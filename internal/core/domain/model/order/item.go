package order

import (
	"fmt"
	"strings"
)

// Category classifies an order line as food or drink. It is assigned
// explicitly when the line is created; nothing infers it from field presence.
type Category string

const (
	CategoryFood  Category = "food"
	CategoryDrink Category = "drink"
)

// Item is one line of an in-progress order.
//
// Size and SizePrice are present only for items whose catalog definition
// declares size support; Size is nil otherwise. ItemTotal is maintained at
// mutation time and always equals (BasePrice + SizePrice) * Quantity, except
// after a partial removal, where it is rescaled proportionally (see
// Session.Reduce).
type Item struct {
	ItemID         string
	Name           string
	Category       Category
	Quantity       int
	BasePrice      float64
	Customizations []string
	Size           *string
	SizePrice      float64
	ItemTotal      float64
}

// SizeLabel returns the item's size label, or "" when the item has none.
func (i Item) SizeLabel() string {
	if i.Size == nil {
		return ""
	}
	return *i.Size
}

// UnitPrice returns the per-unit price including any size surcharge.
func (i Item) UnitPrice() float64 {
	return i.BasePrice + i.SizePrice
}

// Description renders the line for spoken summaries:
// "2 large Coke with no ice, extra lemon".
func (i Item) Description() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d ", i.Quantity)
	if label := i.SizeLabel(); label != "" {
		b.WriteString(label)
		b.WriteString(" ")
	}
	b.WriteString(i.Name)
	if len(i.Customizations) > 0 {
		b.WriteString(" with ")
		b.WriteString(strings.Join(i.Customizations, ", "))
	}
	return b.String()
}
