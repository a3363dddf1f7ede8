// Package orch holds the session state machine: it is the only writer of
// the connection and room registries and keeps them mutually consistent.
package orch

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/rikdas/dobhashi/internal/app"
	"github.com/rikdas/dobhashi/internal/core"
	"github.com/rikdas/dobhashi/internal/domain"
	"github.com/rikdas/dobhashi/internal/translate"
)

const (
	noticeChatStarted = "Chat started! Go ahead and talk."
	noticeRoomFull    = "Room's full. Only two users allowed."
	noticeInvalidRoom = "Error: Invalid room."
	noticeNoOneElse   = "No one else in the room."
)

func noticeJoined(name string, lang domain.Language) string {
	return fmt.Sprintf("%s joined in %s.", name, lang.Name())
}

func noticeSwitched(name string, lang domain.Language) string {
	return fmt.Sprintf("%s switched to %s.", name, lang.Name())
}

func noticeLeft(name string) string {
	return fmt.Sprintf("%s left the chat.", name)
}

type Orchestrator struct {
	// mu serializes lifecycle transitions so join/leave/change interleave
	// cleanly and room notices keep their generation order. Gateway calls
	// never run under it.
	mu       sync.Mutex
	Registry *app.Registry
	Rooms    *app.Rooms
	Gateway  translate.Translator
}

func New(registry *app.Registry, rooms *app.Rooms, gateway translate.Translator) *Orchestrator {
	return &Orchestrator{Registry: registry, Rooms: rooms, Gateway: gateway}
}

// sendTo pushes one encoded event at a single connection. TrySend is
// non-blocking; a saturated or gone connection just drops the frame.
func (o *Orchestrator) sendTo(sid core.SessionID, v any) {
	conn, ok := o.Registry.Signal(sid)
	if !ok {
		log.Debug().Str("module", "app.orch").Str("sid", string(sid)).Msg("no signal connection, dropping event")
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.orch").Msg("marshal event")
		return
	}
	if err := conn.TrySend(core.Frame(b)); err != nil {
		log.Warn().Err(err).Str("module", "app.orch").Str("sid", string(sid)).Msg("send failed")
	}
}

func (o *Orchestrator) broadcast(room domain.RoomName, v any) {
	for _, sid := range o.Rooms.Occupants(room) {
		o.sendTo(sid, v)
	}
}
