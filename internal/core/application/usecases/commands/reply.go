package commands

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/core/domain/model/order"
)

// Reply is the outcome of a fulfillment command. Text carries the
// sentence spoken back to the customer, Directives carry the dialog
// context changes the handler wants applied, and Summary (set only by
// order completion) carries the final snapshot of the order.
//
// Policy declines (quantity limits, customization refusals, missing
// slots) are regular replies, not errors: the error return of a handler
// is reserved for infrastructure failures.
type Reply struct {
	Text       string
	Directives []dialog.Directive
	Summary    *order.Snapshot
}

func textReply(text string) Reply {
	return Reply{Text: text}
}

// joinList renders a spoken enumeration: "a", "a and b",
// "a, b, and c".
func joinList(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}

// describeAddition renders the quantity/size/customizations tail used by
// confirmation texts, e.g. "2 large fries with extra cheese".
func describeAddition(quantity int, size, name string, customizations []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d ", quantity)
	if size != "" {
		b.WriteString(size)
		b.WriteString(" ")
	}
	b.WriteString(name)
	if len(customizations) > 0 {
		b.WriteString(" with ")
		b.WriteString(strings.Join(customizations, ", "))
	}
	return b.String()
}
