// Package dispatch routes decoded webhook events to the fulfillment
// commands and composes the protocol-level reply around their results.
package dispatch

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// Intent display names recognized by the router.
const (
	IntentFood                = "order.food"
	IntentDrink               = "order.drink"
	IntentCombined            = "order.combined"
	IntentSize                = "order.size"
	IntentQuantity            = "order.quantity"
	IntentRemove              = "order.remove"
	IntentModify              = "order.modify"
	IntentComplete            = "order.complete"
	IntentLimitAcknowledge    = "order.limit.acknowledge"
	IntentCompleteAcknowledge = "order.complete.acknowledge"
)

// Request is one decoded webhook event: the matched intent, its slots,
// and the conversation it belongs to.
type Request struct {
	Intent    string
	SessionID string
	ProjectID string
	Params    dialog.Params
	Contexts  []dialog.Context
}

// Router maps intents to command handlers. Every event touches the
// session store up front so the summary payload always reflects an
// existing session, and every outcome — including unknown intents and
// handler failures — is answered with a well-formed response.
type Router struct {
	sessions       ports.SessionStore
	addItem        commands.AddItemCommandHandler
	addCombined    commands.AddCombinedCommandHandler
	updateSize     commands.UpdateSizeCommandHandler
	updateQuantity commands.UpdateQuantityCommandHandler
	removeItem     commands.RemoveItemCommandHandler
	modifyLast     commands.ModifyLastCommandHandler
	completeOrder  commands.CompleteOrderCommandHandler
	acknowledge    commands.AcknowledgeCommandHandler
	logger         *slog.Logger
}

// NewRouter creates a router over the given store and handlers.
func NewRouter(
	sessions ports.SessionStore,
	addItem commands.AddItemCommandHandler,
	addCombined commands.AddCombinedCommandHandler,
	updateSize commands.UpdateSizeCommandHandler,
	updateQuantity commands.UpdateQuantityCommandHandler,
	removeItem commands.RemoveItemCommandHandler,
	modifyLast commands.ModifyLastCommandHandler,
	completeOrder commands.CompleteOrderCommandHandler,
	acknowledge commands.AcknowledgeCommandHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		sessions:       sessions,
		addItem:        addItem,
		addCombined:    addCombined,
		updateSize:     updateSize,
		updateQuantity: updateQuantity,
		removeItem:     removeItem,
		modifyLast:     modifyLast,
		completeOrder:  completeOrder,
		acknowledge:    acknowledge,
		logger:         logger.With("component", "dispatch"),
	}
}

// Dispatch routes the event and returns the composed reply. The conversation
// is never left without a structurally valid response: handler errors and
// panics both degrade to a generic apology with an empty summary.
func (r *Router) Dispatch(ctx context.Context, req Request) (response Response) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.ErrorContext(ctx, "Intent handling panicked",
				"intent", req.Intent, "session_id", req.SessionID, "panic", rec)
			response = NewResponse("Sorry, there was an error processing your request.", order.Snapshot{}, nil)
		}
	}()

	r.sessions.GetOrCreate(req.SessionID)

	reply, err := r.handle(ctx, req)
	if err != nil {
		r.logger.ErrorContext(ctx, "Intent handling failed",
			"intent", req.Intent, "session_id", req.SessionID, "error", err)
		return NewResponse("Sorry, there was an error processing your request.", order.Snapshot{}, nil)
	}

	// Completion deletes the session; reading the store afterwards would
	// recreate an empty entry, so the pre-deletion summary short-circuits.
	snapshot := order.Snapshot{}
	if reply.Summary != nil {
		snapshot = *reply.Summary
	} else {
		snapshot = r.sessions.GetOrCreate(req.SessionID)
	}
	return NewResponse(reply.Text, snapshot, reply.Directives)
}

func (r *Router) handle(ctx context.Context, req Request) (commands.Reply, error) {
	switch req.Intent {
	case IntentFood:
		return r.handleFood(ctx, req)
	case IntentDrink:
		return r.handleDrink(ctx, req)
	case IntentCombined:
		return r.handleCombined(ctx, req)
	case IntentSize:
		return r.handleSize(ctx, req)
	case IntentQuantity:
		return r.handleQuantity(ctx, req)
	case IntentRemove:
		return r.handleRemove(ctx, req)
	case IntentModify:
		return r.handleModify(ctx, req)
	case IntentComplete:
		return r.handleComplete(ctx, req)
	case IntentLimitAcknowledge:
		return r.handleAcknowledge(ctx, req, commands.AcknowledgeLimit)
	case IntentCompleteAcknowledge:
		return r.handleAcknowledge(ctx, req, commands.AcknowledgeCompletion)
	}

	r.logger.WarnContext(ctx, "No handler for intent", "intent", req.Intent)
	return commands.Reply{
		Text: "I'm not sure how to handle that request. Could you please try again?",
	}, nil
}

func (r *Router) handleFood(ctx context.Context, req Request) (commands.Reply, error) {
	cmd, err := commands.NewAddItemCommand(
		req.SessionID, req.ProjectID,
		order.CategoryFood,
		req.Params.String("food-item"),
		req.Params.String("drink-size"),
		req.Params.Quantity("number"),
		req.Params.StringSlice("modification-type"),
		req.Params.StringSlice("food-components"),
	)
	if err != nil {
		return commands.Reply{}, err
	}
	return r.addItem.Handle(ctx, cmd)
}

func (r *Router) handleDrink(ctx context.Context, req Request) (commands.Reply, error) {
	cmd, err := commands.NewAddItemCommand(
		req.SessionID, req.ProjectID,
		order.CategoryDrink,
		req.Params.String("drink-item"),
		req.Params.String("drink-size"),
		req.Params.Quantity("number"),
		nil, nil,
	)
	if err != nil {
		return commands.Reply{}, err
	}
	return r.addItem.Handle(ctx, cmd)
}

func (r *Router) handleCombined(ctx context.Context, req Request) (commands.Reply, error) {
	cmd, err := commands.NewAddCombinedCommand(
		req.SessionID, req.ProjectID,
		req.Params.StringSlice("food-item"),
		req.Params.StringSlice("drink-item"),
		req.Params.StringSlice("drink-size"),
		req.Params.QuantitySlice("number"),
	)
	if err != nil {
		return commands.Reply{}, err
	}
	return r.addCombined.Handle(ctx, cmd)
}

// handleSize reads its slots from the active contexts rather than the
// query parameters: the size answer arrives as a parameter of the
// ongoing-order context, and the target item rides on awaiting-size.
func (r *Router) handleSize(ctx context.Context, req Request) (commands.Reply, error) {
	size := ""
	ongoing, hasOngoing := dialog.FindContext(req.Contexts, dialog.ContextOngoingOrder)
	if hasOngoing {
		size = ongoing.Parameters.String("drink-size")
	}

	awaitedItem, awaitedCategory := "", order.Category("")
	awaitedQuantity := 0
	var awaitedCustomizations []string
	awaiting, hasAwaiting := dialog.FindContext(req.Contexts, dialog.ContextAwaitingSize)
	if hasAwaiting {
		awaitedItem = awaiting.Parameters.String("item_name")
		awaitedCategory = order.Category(awaiting.Parameters.String("item_type"))
		awaitedQuantity = awaiting.Parameters.Quantity("quantity").OrDefault(0)
		awaitedCustomizations = awaiting.Parameters.StringSlice("customizations")
	}

	cmd, err := commands.NewUpdateSizeCommand(
		req.SessionID, req.ProjectID,
		hasOngoing, size, hasAwaiting, awaitedItem, awaitedCategory,
		awaitedQuantity, awaitedCustomizations,
	)
	if err != nil {
		return commands.Reply{}, err
	}
	return r.updateSize.Handle(ctx, cmd)
}

func (r *Router) handleQuantity(ctx context.Context, req Request) (commands.Reply, error) {
	cmd, err := commands.NewUpdateQuantityCommand(req.SessionID, req.ProjectID, req.Params.Quantity("number"))
	if err != nil {
		return commands.Reply{}, err
	}
	return r.updateQuantity.Handle(ctx, cmd)
}

func (r *Router) handleRemove(ctx context.Context, req Request) (commands.Reply, error) {
	foodNames := req.Params.StringSlice("food-item")
	foodName := ""
	if len(foodNames) > 0 {
		foodName = foodNames[0]
	}

	cmd, err := commands.NewRemoveItemCommand(
		req.SessionID,
		foodName,
		req.Params.String("drink-item"),
		req.Params.Quantity("number"),
	)
	if err != nil {
		return commands.Reply{}, err
	}
	return r.removeItem.Handle(ctx, cmd)
}

func (r *Router) handleModify(ctx context.Context, req Request) (commands.Reply, error) {
	cmd, err := commands.NewModifyLastCommand(
		req.SessionID,
		req.Params.StringSlice("modification-type"),
		req.Params.StringSlice("food-components"),
	)
	if err != nil {
		return commands.Reply{}, err
	}
	return r.modifyLast.Handle(ctx, cmd)
}

func (r *Router) handleComplete(ctx context.Context, req Request) (commands.Reply, error) {
	cmd, err := commands.NewCompleteOrderCommand(req.SessionID, req.ProjectID)
	if err != nil {
		return commands.Reply{}, err
	}
	return r.completeOrder.Handle(ctx, cmd)
}

func (r *Router) handleAcknowledge(ctx context.Context, req Request, kind commands.AcknowledgeKind) (commands.Reply, error) {
	cmd, err := commands.NewAcknowledgeCommand(req.SessionID, kind)
	if err != nil {
		return commands.Reply{}, err
	}
	return r.acknowledge.Handle(ctx, cmd)
}
