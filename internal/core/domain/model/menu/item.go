// Package menu models catalog item definitions as read by the fulfillment
// core. Items are owned by the external menu catalog; this package only
// captures the pricing, size, and customization rules the order engine needs.
package menu

import "strings"

// Customizations holds the three disjoint sets of components an item allows
// to be changed. A nil Customizations means the item cannot be customized at
// all, which is different from empty sets.
type Customizations struct {
	// Removable components may be left off ("no pickles").
	Removable []string

	// Addable components may be added in extra amounts ("extra cheese").
	Addable []string

	// Modifiable components allow intensity changes ("light ice", "heavy sauce").
	Modifiable []string
}

// Item is a purchasable catalog product. Name is matched case-insensitively
// by the catalog; Sizes is present only when HasSize is set and maps a size
// label to its additive price.
type Item struct {
	ID             string
	Name           string
	BasePrice      float64
	HasSize        bool
	Sizes          map[string]float64
	Customizations *Customizations
}

// SizePrice returns the additive price for a size label, matched
// case-insensitively. Unknown labels and items without sizes price at zero.
func (i *Item) SizePrice(label string) float64 {
	if !i.HasSize || label == "" {
		return 0
	}
	for size, price := range i.Sizes {
		if strings.EqualFold(size, label) {
			return price
		}
	}
	return 0
}

// UnitPrice returns the per-unit price of the item at the given size label.
func (i *Item) UnitPrice(label string) float64 {
	return i.BasePrice + i.SizePrice(label)
}
