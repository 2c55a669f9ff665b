package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/core/ports"
)

// CompleteOrderCommandHandler finalizes the order: it records the
// completed order in the ledger, reads back the summary, clears the
// continuation contexts, and only then discards the session. The
// snapshot travels on the reply because the session is gone by the time
// the response is composed.
//
// Example:
//
//	handler := NewCompleteOrderCommandHandler(sessions, ledger)
//	cmd, _ := NewCompleteOrderCommand("abc-123", "my-project")
//
//	reply, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("completion failed: %w", err)
//	}
//	// reply.Summary holds the final items and total
type CompleteOrderCommandHandler struct {
	sessions ports.SessionStore
	ledger   ports.OrderLedger
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(sessions ports.SessionStore, ledger ports.OrderLedger) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		sessions: sessions,
		ledger:   ledger,
	}
}

// Handle persists the completed order and ends the conversation's
// ordering phase.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (Reply, error) {
	if err := cmd.Validate(); err != nil {
		return Reply{}, err
	}

	snapshot := h.sessions.GetOrCreate(cmd.SessionID())
	if len(snapshot.Items) == 0 {
		return textReply("Your order is empty. What would you like to order?"), nil
	}

	now := time.Now().UTC()
	completed := ports.CompletedOrder{
		ID:          uuid.New(),
		SessionID:   cmd.SessionID(),
		Status:      "completed",
		CreatedAt:   now,
		CompletedAt: now,
		Items:       snapshot.Items,
		TotalAmount: snapshot.TotalAmount,
	}
	if err := h.ledger.Persist(ctx, completed); err != nil {
		return Reply{}, err
	}

	descriptions := make([]string, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		descriptions = append(descriptions, item.Description())
	}

	reply := Reply{
		Text: fmt.Sprintf(
			"Great! Your order is: %s. Total amount: $%.2f. Please proceed to next window for payment.",
			strings.Join(descriptions, ", "), snapshot.TotalAmount,
		),
		Directives: []dialog.Directive{
			dialog.NewDirective(cmd.ProjectID(), cmd.SessionID(), dialog.ContextAwaitingCompletionAcknowledgment, 1, nil),
			dialog.ClearDirective(cmd.ProjectID(), cmd.SessionID(), dialog.ContextAwaitingSize),
			dialog.ClearDirective(cmd.ProjectID(), cmd.SessionID(), dialog.ContextOngoingOrder),
		},
		Summary: &snapshot,
	}

	h.sessions.Delete(cmd.SessionID())
	return reply, nil
}
