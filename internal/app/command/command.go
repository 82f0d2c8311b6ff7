/*
Package command implements the slash-command dispatcher of the HPZ Crew chatbot.

A fixed set of command tokens maps onto handlers that render Indonesian
markdown templates from crew data snapshots. Every handler degrades to a
hardcoded default dataset when its data fetch fails, so the chat surface
never shows a raw error on the command path.
*/
package command

import (
	"context"
	"errors"
	"strings"
	"time"

	"hpzbot/internal/app/crew"
	"hpzbot/internal/app/identity"
	"hpzbot/internal/pkg/logx"

	"github.com/google/uuid"
)

// Token is one of the fixed slash-command strings recognized as a direct
// command. The set is static and immutable.
type Token string

const (
	TokenMisi         Token = "/misi"
	TokenPoinku       Token = "/poinku"
	TokenTierku       Token = "/tierku"
	TokenFaq          Token = "/faq"
	TokenUpgrade      Token = "/upgrade"
	TokenHubungiAdmin Token = "/hubungiadmin"
)

// All lists the registered tokens in presentation order.
var All = []Token{
	TokenMisi,
	TokenPoinku,
	TokenTierku,
	TokenFaq,
	TokenUpgrade,
	TokenHubungiAdmin,
}

// Descriptions maps each token to its static help text.
var Descriptions = map[Token]string{
	TokenMisi:         "Tampilkan misi aktif yang bisa dikerjakan",
	TokenPoinku:       "Cek total poin dan progress kamu",
	TokenTierku:       "Lihat tier dan benefit saat ini",
	TokenFaq:          "Pertanyaan yang sering diajukan",
	TokenUpgrade:      "Info cara naik ke tier berikutnya",
	TokenHubungiAdmin: "Cara menghubungi admin HPZ",
}

// ErrUnknownToken reports a token outside the registered set. The router
// pre-validates, so reaching this means a caller bypassed classification.
var ErrUnknownToken = errors.New("unknown command token")

// Result is the output of executing a command. Content is the rendered
// markdown; Data mirrors it as a structured payload.
type Result struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Data    any    `json:"data,omitempty"`
}

// Extract returns the first whitespace-delimited token of the message,
// trimmed and lowercased.
func Extract(message string) Token {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(message)))
	if len(fields) == 0 {
		return ""
	}
	return Token(fields[0])
}

// registered reports whether the token is in the fixed command set.
// Exact-token match only: no prefixes, no aliases.
func registered(token Token) bool {
	switch token {
	case TokenMisi, TokenPoinku, TokenTierku, TokenFaq, TokenUpgrade, TokenHubungiAdmin:
		return true
	default:
		return false
	}
}

// IsCommand reports whether the message's first token exactly matches a
// registered command.
func IsCommand(message string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(message))
	return strings.HasPrefix(trimmed, "/") && registered(Extract(message))
}

// DataGateway is the slice of the crew gateway the dispatcher depends on.
type DataGateway interface {
	Missions(ctx context.Context) (crew.MissionsSnapshot, error)
	Points(ctx context.Context, authUserID uuid.UUID) (crew.PointsSnapshot, error)
	TierProgress(ctx context.Context, authUserID uuid.UUID) (crew.TierSnapshot, error)
	Upgrade(ctx context.Context, authUserID uuid.UUID) (crew.UpgradeSnapshot, error)
}

// Dispatcher executes commands against the crew data gateway.
type Dispatcher struct {
	gateway DataGateway
	now     func() time.Time
}

// NewDispatcher wires the dispatcher to its data gateway.
func NewDispatcher(gateway DataGateway) *Dispatcher {
	return &Dispatcher{
		gateway: gateway,
		now:     time.Now,
	}
}

// Execute runs the handler for the given token. It re-validates the token
// defensively and otherwise always returns a Result: gateway failures are
// absorbed by each handler's fallback dataset.
func (d *Dispatcher) Execute(ctx context.Context, token Token, id *identity.Identity) (*Result, error) {
	if !registered(token) {
		return nil, ErrUnknownToken
	}

	logx.Info("Processing command", "command", string(token), "user", id.Email)

	switch token {
	case TokenMisi:
		return d.handleMisi(ctx), nil
	case TokenPoinku:
		return d.handlePoinku(ctx, id), nil
	case TokenTierku:
		return d.handleTierku(ctx, id), nil
	case TokenFaq:
		return d.handleFaq(), nil
	case TokenUpgrade:
		return d.handleUpgrade(ctx, id), nil
	case TokenHubungiAdmin:
		return d.handleHubungiAdmin(id), nil
	default:
		return nil, ErrUnknownToken
	}
}
