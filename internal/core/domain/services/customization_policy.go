package services

import (
	"fmt"
	"slices"

	"fulfillment/internal/core/domain/model/menu"
)

// CustomizationResult is the decision for one (kind, component) pair.
// Canonical is the textual form stored on the order item; it is empty for
// pass-through kinds, which are accepted but produce no stored descriptor.
type CustomizationResult struct {
	Allowed   bool
	Canonical string
	Reason    string
}

// CustomizationPolicy validates a requested modification against an item's
// allowed customization sets.
//
// Kind groups map to the item's sets as follows:
//   - "no", "without"  -> Removable
//   - "extra", "add"   -> Addable
//   - "light", "heavy" -> Modifiable
//
// Any other kind is accepted without a set check. That laxity is inherited
// policy, not an oversight; tightening it would reject requests the
// interpreter already accepts today.
type CustomizationPolicy struct{}

// NewCustomizationPolicy creates a CustomizationPolicy.
func NewCustomizationPolicy() CustomizationPolicy {
	return CustomizationPolicy{}
}

// Validate decides whether the (kind, component) pair is legal for the item.
// Items with no customization sets defined reject every pair.
func (CustomizationPolicy) Validate(item *menu.Item, kind, component string) CustomizationResult {
	if item.Customizations == nil {
		return CustomizationResult{
			Reason: fmt.Sprintf("I'm sorry, %s cannot be customized.", item.Name),
		}
	}

	sets := item.Customizations
	switch kind {
	case "no", "without":
		if !slices.Contains(sets.Removable, component) {
			return CustomizationResult{
				Reason: fmt.Sprintf("I'm sorry, we cannot remove %s from this item.", component),
			}
		}
		return CustomizationResult{Allowed: true, Canonical: "no " + component}

	case "extra", "add":
		if !slices.Contains(sets.Addable, component) {
			return CustomizationResult{
				Reason: fmt.Sprintf("I'm sorry, we cannot add extra %s to this item.", component),
			}
		}
		return CustomizationResult{Allowed: true, Canonical: "extra " + component}

	case "light", "heavy":
		if !slices.Contains(sets.Modifiable, component) {
			return CustomizationResult{
				Reason: fmt.Sprintf("I'm sorry, we cannot modify the amount of %s.", component),
			}
		}
		return CustomizationResult{Allowed: true, Canonical: kind + " " + component}
	}

	return CustomizationResult{Allowed: true}
}
