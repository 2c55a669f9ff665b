package http

import (
	"time"

	"fulfillment/internal/core/domain/model/dialog"
)

// WebhookRequest is the inbound fulfillment event as posted by the
// conversational agent. Only the fields the dispatcher consumes are mapped;
// the rest of the payload is ignored.
type WebhookRequest struct {
	Session     string      `json:"session"`
	QueryResult QueryResult `json:"queryResult"`
}

// QueryResult carries the matched intent, the extracted slot parameters, and
// the continuation contexts active on this turn.
type QueryResult struct {
	Intent         Intent         `json:"intent"`
	Parameters     map[string]any `json:"parameters"`
	OutputContexts []ContextDTO   `json:"outputContexts"`
}

// Intent identifies the matched intent by display name.
type Intent struct {
	DisplayName string `json:"displayName"`
}

// ContextDTO is an active continuation context on the inbound event.
type ContextDTO struct {
	Name          string         `json:"name"`
	LifespanCount int            `json:"lifespanCount"`
	Parameters    map[string]any `json:"parameters"`
}

// MenuItemResponse is one catalog item in the menu listing.
type MenuItemResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	BasePrice float64            `json:"base_price"`
	HasSize   bool               `json:"has_size"`
	Sizes     map[string]float64 `json:"sizes,omitempty"`
}

// CompletedOrderResponse is one order in the completed-orders listing.
type CompletedOrderResponse struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	CompletedAt time.Time `json:"completed_at"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
}

// ErrorResponse is the error body for the read-side endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toDomainContexts(dtos []ContextDTO) []dialog.Context {
	contexts := make([]dialog.Context, 0, len(dtos))
	for _, dto := range dtos {
		contexts = append(contexts, dialog.Context{
			Name:          dto.Name,
			LifespanCount: dto.LifespanCount,
			Parameters:    dialog.Params(dto.Parameters),
		})
	}
	return contexts
}
