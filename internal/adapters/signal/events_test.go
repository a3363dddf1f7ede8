package signal

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rikdas/dobhashi/internal/app"
	"github.com/rikdas/dobhashi/internal/app/orch"
	"github.com/rikdas/dobhashi/internal/core"
	"github.com/rikdas/dobhashi/internal/domain"
)

type passthroughGateway struct{}

func (passthroughGateway) Transliterate(text string) string { return text }

func (passthroughGateway) Translate(_ context.Context, text string, _, _ domain.Language) string {
	return text
}

func newTestController() *ChatWSController {
	o := orch.New(app.NewRegistry(), app.NewRooms(), passthroughGateway{})
	return NewChatWSController(o, 0, time.Minute)
}

// drainEvents decodes every frame currently queued on the connection.
func drainEvents(t *testing.T, c *WsChatConn) []map[string]any {
	t.Helper()
	var out []map[string]any
	for {
		select {
		case fr := <-c.send:
			var m map[string]any
			require.NoError(t, json.Unmarshal(fr, &m))
			out = append(out, m)
		default:
			return out
		}
	}
}

func TestHandleJoin_RegistersParticipant(t *testing.T) {
	req := require.New(t)
	ctl := newTestController()
	conn := &WsChatConn{send: make(chan core.Frame, 8)}
	ctl.Orch.Registry.BindSignal("sid-1", conn, func() {})

	ctl.handleJoin("sid-1", conn, []byte(`{"type":"join","username":"alice","language":"en","room":"r1"}`))

	p, ok := ctl.Orch.Registry.Get("sid-1")
	req.True(ok)
	req.Equal("alice", p.Username)
	req.Equal(domain.English, p.Language)
	req.Equal(domain.RoomName("r1"), p.Room)

	evs := drainEvents(t, conn)
	req.NotEmpty(evs)
	req.Equal("join_response", evs[0]["type"])
	req.Equal(true, evs[0]["success"])
}

func TestHandleJoin_BadPayloadRejected(t *testing.T) {
	req := require.New(t)
	ctl := newTestController()
	conn := &WsChatConn{send: make(chan core.Frame, 8)}
	ctl.Orch.Registry.BindSignal("sid-1", conn, func() {})

	// Username missing: payload validation fails before anything mutates.
	ctl.handleJoin("sid-1", conn, []byte(`{"type":"join","language":"en","room":"r1"}`))

	_, ok := ctl.Orch.Registry.Get("sid-1")
	req.False(ok)

	evs := drainEvents(t, conn)
	req.Len(evs, 1)
	req.Equal("error", evs[0]["type"])
	req.Equal("bad_payload", evs[0]["error"])
}
