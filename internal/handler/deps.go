package handler

import (
	"context"

	"hpzbot/internal/app/chatbot"
	"hpzbot/internal/app/command"
	"hpzbot/internal/app/identity"
	"hpzbot/internal/configs"
)

// KeyValidator is the slice of the completion gateway used by the status
// and key-validation endpoints.
type KeyValidator interface {
	ValidateKey(ctx context.Context) bool
}

// AppDeps bundles the dependencies handlers need, constructed once at boot.
type AppDeps struct {
	Config     *configs.AppConfig
	Verifier   identity.Verifier
	Router     *chatbot.Router
	Dispatcher *command.Dispatcher
	AI         KeyValidator
}
