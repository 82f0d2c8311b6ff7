/*
Package handler provides the HTTP handlers and routing setup for the HPZ Chatbot Backend.

This file holds the chat endpoints: free-text message routing, the command
list, direct command execution, and the service status probe.
*/
package handler

import (
	"errors"
	"net/http"
	"time"

	"hpzbot/internal/app/chatbot"
	"hpzbot/internal/app/command"
	"hpzbot/internal/app/identity"
	"hpzbot/internal/pkg/errs"
	"hpzbot/internal/pkg/logx"
	"hpzbot/internal/pkg/req"
	"hpzbot/internal/pkg/resp"
)

// timestamp renders the response timestamp the way the frontend expects.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// commandStrings lists the registered tokens for availableCommands fields.
func commandStrings() []string {
	list := make([]string, 0, len(command.All))
	for _, token := range command.All {
		list = append(list, string(token))
	}
	return list
}

type ChatMessageInput struct {
	Message string              `json:"message"`
	Context chatbot.ChatContext `json:"context"`
}

// HandleChatMessage routes a free-text chat message to the command
// dispatcher or the completion gateway and returns the routed reply.
func HandleChatMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := identity.FromContext(r)
		if id == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
			return
		}

		var input ChatMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		logx.Info("Incoming chat message",
			"from", id.Email,
			"message_preview", preview(input.Message),
		)

		reply, err := deps.Router.Route(r.Context(), input.Message, id, input.Context)
		if err != nil {
			if errors.Is(err, chatbot.ErrEmptyMessage) {
				resp.RespondError(w, r, errs.NewError(errs.ErrMessageRequired))
				return
			}

			logx.Error(err, "chat message routing failed", "from", id.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		body := map[string]any{
			"success":   true,
			"type":      reply.Type,
			"timestamp": timestamp(),
		}
		switch reply.Type {
		case "command":
			logx.Info("Command executed", "command", reply.Command.Type, "by", id.Email)
			body["response"] = reply.Command
		default:
			body["response"] = reply.AI
		}

		resp.RespondJSON(w, r, http.StatusOK, body)
	}
}

// preview truncates a message for logging.
func preview(message string) string {
	const maxPreview = 200
	if len(message) > maxPreview {
		return message[:maxPreview]
	}
	return message
}

// HandleListCommands lists the registered commands with their descriptions.
func HandleListCommands(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commands := make([]map[string]string, 0, len(command.All))
		for _, token := range command.All {
			commands = append(commands, map[string]string{
				"command":     string(token),
				"description": command.Descriptions[token],
			})
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"success":  true,
			"commands": commands,
		})
	}
}

type ExecuteCommandInput struct {
	Command string `json:"command"`
}

// HandleExecuteCommand executes a named command directly, bypassing
// free-text classification. Unknown commands get HTTP 400 with the list of
// valid tokens.
func HandleExecuteCommand(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := identity.FromContext(r)
		if id == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
			return
		}

		var input ExecuteCommandInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Command == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrCommandRequired))
			return
		}

		if !command.IsCommand(input.Command) {
			resp.RespondErrorExtra(w, r, errs.NewError(errs.ErrUnknownCommand), map[string]any{
				"availableCommands": commandStrings(),
			})
			return
		}

		token := command.Extract(input.Command)

		result, err := deps.Dispatcher.Execute(r.Context(), token, id)
		if err != nil {
			if errors.Is(err, command.ErrUnknownToken) {
				resp.RespondErrorExtra(w, r, errs.NewError(errs.ErrUnknownCommand), map[string]any{
					"availableCommands": commandStrings(),
				})
				return
			}

			logx.Error(err, "direct command execution failed", "command", string(token))
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		logx.Info("Direct command executed", "command", string(token), "by", id.Email)

		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"success":   true,
			"command":   string(token),
			"response":  result,
			"timestamp": timestamp(),
		})
	}
}

// HandleChatStatus reports completion gateway reachability and the size of
// the command registry. Served without authentication so the frontend can
// poll it before login.
func HandleChatStatus(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connected := deps.AI.ValidateKey(r.Context())

		status := "disconnected"
		message := "Invalid API key"
		if connected {
			status = "connected"
			message = "API key valid"
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"success": true,
			"services": map[string]any{
				"openRouter": map[string]any{
					"status":  status,
					"message": message,
				},
			},
			"commands": map[string]any{
				"available": len(command.All),
				"list":      commandStrings(),
			},
			"timestamp": timestamp(),
		})
	}
}
