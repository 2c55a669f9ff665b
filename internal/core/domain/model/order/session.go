package order

import "strings"

// Session is the ephemeral state of one in-progress order, keyed by
// conversation identifier. Items keep insertion order; the last item is the
// implicit target of "modify the last thing I said" operations.
//
// Session is not safe for concurrent use; the session store serializes
// access per conversation.
type Session struct {
	items       []Item
	totalAmount float64
}

// NewSession creates an empty order session.
func NewSession() *Session {
	return &Session{}
}

// IsEmpty reports whether the session has no items.
func (s *Session) IsEmpty() bool {
	return len(s.items) == 0
}

// TotalAmount returns the running total of the session.
func (s *Session) TotalAmount() float64 {
	return s.totalAmount
}

// Last returns the most recently appended item.
func (s *Session) Last() (Item, bool) {
	if len(s.items) == 0 {
		return Item{}, false
	}
	return s.items[len(s.items)-1], true
}

// IndexOf returns the position of the first item matching name
// case-insensitively, or -1.
func (s *Session) IndexOf(name string) int {
	for i, item := range s.items {
		if strings.EqualFold(item.Name, name) {
			return i
		}
	}
	return -1
}

// ItemAt returns the item at the given position.
func (s *Session) ItemAt(index int) (Item, bool) {
	if index < 0 || index >= len(s.items) {
		return Item{}, false
	}
	return s.items[index], true
}

// Append adds a committed item and its total to the session.
func (s *Session) Append(item Item) {
	s.items = append(s.items, item)
	s.totalAmount += item.ItemTotal
}

// Replace swaps the item at index for a new one, adjusting the running total
// by the difference between the old and the new item totals.
func (s *Session) Replace(index int, item Item) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	old := s.items[index]
	s.items[index] = item
	s.totalAmount = s.totalAmount - old.ItemTotal + item.ItemTotal
	return true
}

// RequantifyLast sets the last item's quantity, recomputing its total from
// the unit price, and adjusts the running total by the delta. Returns the
// updated item.
func (s *Session) RequantifyLast(quantity int) (Item, bool) {
	if len(s.items) == 0 {
		return Item{}, false
	}
	last := &s.items[len(s.items)-1]
	oldTotal := last.ItemTotal
	last.Quantity = quantity
	last.ItemTotal = last.UnitPrice() * float64(quantity)
	s.totalAmount = s.totalAmount - oldTotal + last.ItemTotal
	return *last, true
}

// CustomizeLast appends customizations to the last item. Customizations never
// change the price.
func (s *Session) CustomizeLast(customizations []string) (Item, bool) {
	if len(s.items) == 0 {
		return Item{}, false
	}
	last := &s.items[len(s.items)-1]
	last.Customizations = append(last.Customizations, customizations...)
	return *last, true
}

// Reduce removes quantity units of the named item (case-insensitive match).
// When the requested quantity covers the whole line, the line is dropped and
// its full total subtracted. Otherwise the quantity is decreased and the line
// total rescaled proportionally from the previous total — not recomputed from
// the base price — so embedded size and customization surcharges survive.
func (s *Session) Reduce(name string, quantity int) bool {
	i := s.IndexOf(name)
	if i < 0 {
		return false
	}

	item := &s.items[i]
	if item.Quantity <= quantity {
		s.totalAmount -= item.ItemTotal
		s.items = append(s.items[:i], s.items[i+1:]...)
		return true
	}

	oldTotal := item.ItemTotal
	oldQuantity := item.Quantity
	item.Quantity -= quantity
	item.ItemTotal = oldTotal / float64(oldQuantity) * float64(item.Quantity)
	s.totalAmount -= oldTotal - item.ItemTotal
	return true
}

// Snapshot captures the session state as an immutable value for response
// payloads and ledger writes.
func (s *Session) Snapshot() Snapshot {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	for i := range items {
		if items[i].Customizations != nil {
			customizations := make([]string, len(items[i].Customizations))
			copy(customizations, items[i].Customizations)
			items[i].Customizations = customizations
		}
	}
	return Snapshot{Items: items, TotalAmount: s.totalAmount}
}

// Snapshot is a point-in-time copy of a session's items and total.
type Snapshot struct {
	Items       []Item
	TotalAmount float64
}

// ItemCount returns the summed quantity across all items.
func (s Snapshot) ItemCount() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}
