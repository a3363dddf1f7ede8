package orch

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/rikdas/dobhashi/internal/core"
	"github.com/rikdas/dobhashi/internal/domain"
)

type recipient struct {
	sid      core.SessionID
	language domain.Language
}

// Message routes one inbound chat message: per recipient it computes the
// delivered text (original, transliterated or translated) plus the
// companion original, and echoes the verbatim input back to the sender.
// Registry reads happen in one critical section; gateway calls run after
// it since they may block on network I/O.
func (o *Orchestrator) Message(ctx context.Context, sid core.SessionID, room domain.RoomName, raw string) {
	o.mu.Lock()
	sender, ok := o.Registry.Get(sid)
	if !ok || room == "" || !o.Rooms.Exists(room) {
		o.sendTo(sid, domain.NewSystemNotice(noticeInvalidRoom))
		o.mu.Unlock()
		log.Warn().Str("module", "app.orch").Str("sid", string(sid)).Str("room", string(room)).Msg("message against unknown room")
		return
	}
	var recipients []recipient
	for _, occupant := range o.Rooms.Occupants(room) {
		if occupant == sid {
			continue
		}
		if p, ok := o.Registry.Get(occupant); ok {
			recipients = append(recipients, recipient{sid: occupant, language: p.Language})
		}
	}
	o.mu.Unlock()

	if len(recipients) == 0 {
		o.sendTo(sid, domain.NewSystemNotice(noticeNoOneElse))
		return
	}

	// Benglish from a Bengali speaker is normalized to Bengali script
	// before any translation. The gateway leaves non-Latin input alone.
	processed := raw
	if sender.Language == domain.Bengali {
		processed = o.Gateway.Transliterate(raw)
	}

	for _, r := range recipients {
		display, original := processed, raw
		switch {
		case r.language == sender.Language:
			// delivered as-is, hover shows the raw input
		case sender.Language == domain.English && r.language == domain.Bengali:
			display = o.Gateway.Translate(ctx, processed, domain.English, domain.Bengali)
			original = raw
		case sender.Language == domain.Bengali && r.language == domain.English:
			display = o.Gateway.Translate(ctx, processed, domain.Bengali, domain.English)
			// hover shows the script-normalized form, the most faithful
			// intermediate of what was actually said
			original = processed
		default:
			display = o.Gateway.Translate(ctx, processed, sender.Language, r.language)
		}
		o.sendTo(r.sid, domain.NewMessageEvent(sender.Username, display, original))
	}

	// The sender never sees their own message translated.
	o.sendTo(sid, domain.NewMessageEvent(sender.Username, raw, raw))
}
