package chatbot

import (
	"context"
	"errors"
	"testing"

	"hpzbot/internal/app/ai"
	"hpzbot/internal/app/command"
	"hpzbot/internal/app/crew"
	"hpzbot/internal/app/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenGateway fails every fetch, forcing the dispatcher onto its
// fallback datasets.
type brokenGateway struct{}

var errGatewayDown = errors.New("gateway down")

func (brokenGateway) Missions(ctx context.Context) (crew.MissionsSnapshot, error) {
	return crew.MissionsSnapshot{}, errGatewayDown
}

func (brokenGateway) Points(ctx context.Context, authUserID uuid.UUID) (crew.PointsSnapshot, error) {
	return crew.PointsSnapshot{}, errGatewayDown
}

func (brokenGateway) TierProgress(ctx context.Context, authUserID uuid.UUID) (crew.TierSnapshot, error) {
	return crew.TierSnapshot{}, errGatewayDown
}

func (brokenGateway) Upgrade(ctx context.Context, authUserID uuid.UUID) (crew.UpgradeSnapshot, error) {
	return crew.UpgradeSnapshot{}, errGatewayDown
}

// stubCompleter records the completion request it received and returns a
// canned reply.
type stubCompleter struct {
	gotMessage string
	gotCtx     ai.Context
	reply      ai.ChatReply
}

func (s *stubCompleter) SimpleChat(ctx context.Context, userMessage string, chatCtx ai.Context) ai.ChatReply {
	s.gotMessage = userMessage
	s.gotCtx = chatCtx
	return s.reply
}

func newTestRouter(completer Completer) *Router {
	return NewRouter(command.NewDispatcher(brokenGateway{}), completer)
}

func routerIdentity() *identity.Identity {
	return &identity.Identity{
		ID:           uuid.New(),
		Email:        "rider@hpztv.com",
		UserMetadata: map[string]any{"name": "Budi"},
	}
}

func TestRouteEmptyMessage(t *testing.T) {
	r := newTestRouter(&stubCompleter{})

	_, err := r.Route(context.Background(), "", routerIdentity(), ChatContext{})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestRouteCommandPath(t *testing.T) {
	completer := &stubCompleter{}
	r := newTestRouter(completer)

	reply, err := r.Route(context.Background(), "  /FAQ  ", routerIdentity(), ChatContext{})
	require.NoError(t, err)

	assert.Equal(t, "command", reply.Type)
	require.NotNil(t, reply.Command)
	assert.Equal(t, "faq", reply.Command.Type)
	assert.Nil(t, reply.AI)
	assert.Empty(t, completer.gotMessage, "command messages must not reach the completion gateway")
}

func TestRouteAIPath(t *testing.T) {
	model := "test-model"
	completer := &stubCompleter{reply: ai.ChatReply{Content: "Halo bro!", Model: &model}}
	r := newTestRouter(completer)

	reply, err := r.Route(context.Background(), "halo, apa kabar?", routerIdentity(), ChatContext{
		UserTier:   "Pro Racer",
		UserPoints: 900,
	})
	require.NoError(t, err)

	assert.Equal(t, "ai", reply.Type)
	require.NotNil(t, reply.AI)
	assert.Equal(t, "Halo bro!", reply.AI.Content)
	assert.Nil(t, reply.Command)

	assert.Equal(t, "halo, apa kabar?", completer.gotMessage)
	assert.Equal(t, "Pro Racer", completer.gotCtx.UserTier)
	assert.Equal(t, 900, completer.gotCtx.UserPoints)
	assert.Equal(t, "Budi", completer.gotCtx.UserName)
}

func TestRouteAIPathDefaultsTier(t *testing.T) {
	completer := &stubCompleter{reply: ai.ChatReply{Content: "ok"}}
	r := newTestRouter(completer)

	_, err := r.Route(context.Background(), "halo", routerIdentity(), ChatContext{})
	require.NoError(t, err)

	assert.Equal(t, "Unknown", completer.gotCtx.UserTier)
}

func TestRouteUnregisteredSlashGoesToAI(t *testing.T) {
	completer := &stubCompleter{reply: ai.ChatReply{Content: "ok"}}
	r := newTestRouter(completer)

	reply, err := r.Route(context.Background(), "/bukanperintah", routerIdentity(), ChatContext{})
	require.NoError(t, err)

	assert.Equal(t, "ai", reply.Type)
	assert.Equal(t, "/bukanperintah", completer.gotMessage)
}
