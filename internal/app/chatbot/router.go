/*
Package chatbot routes incoming chat messages.

A message whose first token exactly matches a registered slash command goes
to the command dispatcher; every other non-empty message goes to the
completion gateway with the caller's tier/points context attached. The
router is stateless.
*/
package chatbot

import (
	"context"
	"errors"

	"hpzbot/internal/app/ai"
	"hpzbot/internal/app/command"
	"hpzbot/internal/app/identity"
)

// ErrEmptyMessage reports a chat request without a usable message string.
var ErrEmptyMessage = errors.New("message is required")

// ChatContext carries the optional caller standing shipped by the frontend.
type ChatContext struct {
	UserTier   string `json:"userTier"`
	UserPoints int    `json:"userPoints"`
}

// Completer is the slice of the completion gateway the router depends on.
type Completer interface {
	SimpleChat(ctx context.Context, userMessage string, chatCtx ai.Context) ai.ChatReply
}

// Reply is the routed result: exactly one of Command or AI is set,
// matching Type ("command" or "ai").
type Reply struct {
	Type    string
	Command *command.Result
	AI      *ai.ChatReply
}

// Router decides per message between the command and completion paths.
type Router struct {
	dispatcher *command.Dispatcher
	completer  Completer
}

// NewRouter wires the router to its two downstream paths.
func NewRouter(dispatcher *command.Dispatcher, completer Completer) *Router {
	return &Router{
		dispatcher: dispatcher,
		completer:  completer,
	}
}

// Route classifies and executes one message for the authenticated caller.
func (r *Router) Route(ctx context.Context, message string, id *identity.Identity, chatCtx ChatContext) (*Reply, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}

	if command.IsCommand(message) {
		result, err := r.dispatcher.Execute(ctx, command.Extract(message), id)
		if err != nil {
			return nil, err
		}

		return &Reply{Type: "command", Command: result}, nil
	}

	aiCtx := ai.Context{
		UserTier:   chatCtx.UserTier,
		UserPoints: chatCtx.UserPoints,
		UserName:   id.DisplayName(),
	}
	if aiCtx.UserTier == "" {
		aiCtx.UserTier = "Unknown"
	}

	reply := r.completer.SimpleChat(ctx, message, aiCtx)

	return &Reply{Type: "ai", AI: &reply}, nil
}
