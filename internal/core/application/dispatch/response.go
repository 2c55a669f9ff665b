package dispatch

import (
	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/core/domain/model/order"
)

// Response is the webhook reply body. FulfillmentText and the single
// fulfillment message always carry the same sentence; the payload
// always carries an order summary, empty when the conversation has no
// items.
type Response struct {
	FulfillmentText     string         `json:"fulfillmentText"`
	FulfillmentMessages []Message      `json:"fulfillmentMessages"`
	Payload             Payload        `json:"payload"`
	OutputContexts      []ContextValue `json:"outputContexts,omitempty"`
}

// Message wraps one spoken text alternative.
type Message struct {
	Text MessageText `json:"text"`
}

// MessageText is the list of text variants for a message.
type MessageText struct {
	Text []string `json:"text"`
}

// ContextValue is an output context entry: a positive lifespan sets the
// context, zero clears it.
type ContextValue struct {
	Name          string        `json:"name"`
	LifespanCount int           `json:"lifespanCount"`
	Parameters    dialog.Params `json:"parameters,omitempty"`
}

// Payload carries the structured order summary alongside the spoken reply.
type Payload struct {
	OrderSummary OrderSummary `json:"order_summary"`
}

// OrderSummary is the machine-readable view of the order state after the
// operation.
type OrderSummary struct {
	Items       []SummaryItem `json:"items"`
	TotalAmount float64       `json:"total_amount"`
	ItemCount   int           `json:"item_count"`
}

// SummaryItem is one order line in the summary payload. Size and
// SizePrice appear only for sized lines.
type SummaryItem struct {
	ItemID         string   `json:"item_id"`
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	BasePrice      float64  `json:"base_price"`
	Customizations []string `json:"customizations"`
	Size           *string  `json:"size,omitempty"`
	SizePrice      *float64 `json:"size_price,omitempty"`
	ItemTotal      float64  `json:"item_total"`
}

// NewResponse builds a reply from the spoken text, the order snapshot to
// summarize, and the context directives to apply.
func NewResponse(text string, snapshot order.Snapshot, directives []dialog.Directive) Response {
	summary := OrderSummary{Items: []SummaryItem{}}
	if len(snapshot.Items) > 0 {
		summary.Items = make([]SummaryItem, 0, len(snapshot.Items))
		for _, item := range snapshot.Items {
			customizations := item.Customizations
			if customizations == nil {
				customizations = []string{}
			}
			line := SummaryItem{
				ItemID:         item.ItemID,
				Name:           item.Name,
				Quantity:       item.Quantity,
				BasePrice:      item.BasePrice,
				Customizations: customizations,
				Size:           item.Size,
				ItemTotal:      item.ItemTotal,
			}
			if item.Size != nil {
				sizePrice := item.SizePrice
				line.SizePrice = &sizePrice
			}
			summary.Items = append(summary.Items, line)
		}
		summary.TotalAmount = snapshot.TotalAmount
		summary.ItemCount = snapshot.ItemCount()
	}

	response := Response{
		FulfillmentText:     text,
		FulfillmentMessages: []Message{{Text: MessageText{Text: []string{text}}}},
		Payload:             Payload{OrderSummary: summary},
	}

	for _, directive := range directives {
		response.OutputContexts = append(response.OutputContexts, ContextValue{
			Name:          directive.Name,
			LifespanCount: directive.LifespanCount,
			Parameters:    directive.Parameters,
		})
	}

	return response
}
