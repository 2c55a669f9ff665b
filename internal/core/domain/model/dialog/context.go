package dialog

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Names of the continuation contexts exchanged with the conversational agent.
// A context is a short-lived marker carried across turns to resume a specific
// exchange, such as waiting for a size answer.
const (
	ContextOngoingOrder                     = "ongoing-order"
	ContextAwaitingSize                     = "awaiting-size"
	ContextAwaitingLimitAcknowledgment      = "awaiting-limit-acknowledgment"
	ContextAwaitingCompletionAcknowledgment = "awaiting-completion-acknowledgment"
)

// Context is an active continuation context received on an inbound event.
// Name is fully qualified: "projects/<project>/agent/sessions/<session>/contexts/<context>".
type Context struct {
	Name          string
	LifespanCount int
	Parameters    Params
}

// Directive instructs the agent to create, refresh, or clear a continuation
// context. A positive LifespanCount creates or refreshes the context; a
// LifespanCount of zero clears it.
type Directive struct {
	Name          string
	LifespanCount int
	Parameters    Params
}

// QualifiedName builds the fully qualified context name for a session.
func QualifiedName(projectID, sessionID, context string) string {
	return fmt.Sprintf("projects/%s/agent/sessions/%s/contexts/%s", projectID, sessionID, context)
}

// NewDirective creates a directive that sets a context with the given lifespan
// and parameter bag.
func NewDirective(projectID, sessionID, context string, lifespan int, params Params) Directive {
	return Directive{
		Name:          QualifiedName(projectID, sessionID, context),
		LifespanCount: lifespan,
		Parameters:    params,
	}
}

// ClearDirective creates a directive that clears a context (lifespan zero).
func ClearDirective(projectID, sessionID, context string) Directive {
	return Directive{Name: QualifiedName(projectID, sessionID, context)}
}

// SessionIDFromContexts extracts the conversation's session identifier from the
// name of the first active context. An event without any active context cannot
// be attributed to a conversation and is a structural input error.
func SessionIDFromContexts(contexts []Context) (string, error) {
	if len(contexts) == 0 {
		return "", errs.NewValueIsRequiredError("output contexts")
	}

	name := contexts[0].Name
	_, after, found := strings.Cut(name, "/sessions/")
	if !found {
		return "", errs.NewValueIsInvalidError("context name: " + name)
	}

	id, _, found := strings.Cut(after, "/contexts/")
	if !found || id == "" {
		return "", errs.NewValueIsInvalidError("context name: " + name)
	}

	return id, nil
}

// ProjectIDFromSession extracts the project identifier from a session path of
// the form "projects/<project>/agent/sessions/<session>". Returns an empty
// string when the path does not carry one.
func ProjectIDFromSession(sessionPath string) string {
	parts := strings.Split(sessionPath, "/")
	if len(parts) < 2 || parts[0] != "projects" {
		return ""
	}
	return parts[1]
}

// FindContext returns the active context with the given short name, matching on
// the "/contexts/<name>" suffix of the qualified name.
func FindContext(contexts []Context, context string) (Context, bool) {
	suffix := "/contexts/" + context
	for _, c := range contexts {
		if strings.HasSuffix(c.Name, suffix) {
			return c, true
		}
	}
	return Context{}, false
}
