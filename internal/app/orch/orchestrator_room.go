package orch

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/rikdas/dobhashi/internal/app"
	"github.com/rikdas/dobhashi/internal/core"
	"github.com/rikdas/dobhashi/internal/domain"
)

// Join admits sid into room. A prior membership is retracted first, so a
// re-join reuses the slot instead of duplicating it. A full room rejects
// the requester before anything is registered.
func (o *Orchestrator) Join(sid core.SessionID, username string, lang domain.Language, room domain.RoomName) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if prev, ok := o.Registry.Get(sid); ok && prev.Room != "" {
		o.Rooms.RemoveOccupant(prev.Room, sid)
		log.Info().Str("module", "app.orch").Str("sid", string(sid)).Str("from_room", string(prev.Room)).Msg("retracted prior membership")
	}

	if err := o.Rooms.AddOccupant(room, sid); err != nil {
		if errors.Is(err, app.ErrRoomFull) {
			o.Registry.Remove(sid)
			o.sendTo(sid, domain.NewJoinResponse(false, noticeRoomFull))
			log.Info().Str("module", "app.orch").Str("sid", string(sid)).Str("room", string(room)).Msg("rejected join, room full")
			return
		}
		log.Error().Err(err).Str("module", "app.orch").Str("sid", string(sid)).Msg("add occupant")
		return
	}

	o.Registry.Upsert(sid, username, lang, room)
	o.sendTo(sid, domain.NewJoinResponse(true, "Joined "+string(room)+"."))
	o.broadcast(room, domain.NewSystemNotice(noticeJoined(username, lang)))
	if o.Rooms.Size(room) == domain.RoomCapacity {
		o.broadcast(room, domain.NewSystemNotice(noticeChatStarted))
	}
}

// ChangeLanguage updates the participant's language and tells the room.
// A room that is not in the registry yields an error notice to the
// requester only.
func (o *Orchestrator) ChangeLanguage(sid core.SessionID, username string, lang domain.Language, room domain.RoomName) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.Rooms.Exists(room) {
		log.Warn().Str("module", "app.orch").Str("sid", string(sid)).Str("room", string(room)).Msg("change_language against unknown room")
		o.sendTo(sid, domain.NewSystemNotice(noticeInvalidRoom))
		return
	}
	if err := o.Registry.SetLanguage(sid, lang); err != nil {
		log.Warn().Err(err).Str("module", "app.orch").Str("sid", string(sid)).Msg("change_language for unknown session")
		o.sendTo(sid, domain.NewSystemNotice(noticeInvalidRoom))
		return
	}
	o.broadcast(room, domain.NewSystemNotice(noticeSwitched(username, lang)))
}

// Leave retracts sid from its room. Repeating it is a no-op.
func (o *Orchestrator) Leave(sid core.SessionID, room domain.RoomName) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.retire(sid, room)
}

// Disconnect is the abrupt-close path; same cleanup as an explicit leave.
func (o *Orchestrator) Disconnect(sid core.SessionID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.retire(sid, "")
}

func (o *Orchestrator) retire(sid core.SessionID, room domain.RoomName) {
	p, ok := o.Registry.Get(sid)
	if !ok {
		return // already gone, idempotent
	}
	if p.Room != "" {
		room = p.Room
	}
	if room != "" && o.Rooms.Exists(room) {
		o.Rooms.RemoveOccupant(room, sid)
		o.broadcast(room, domain.NewSystemNotice(noticeLeft(p.Username)))
	}
	o.Registry.Remove(sid)
	log.Info().Str("module", "app.orch").Str("sid", string(sid)).Str("room", string(room)).Msg("participant retired")
}
