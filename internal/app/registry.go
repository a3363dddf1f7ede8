package app

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/rikdas/dobhashi/internal/core"
	"github.com/rikdas/dobhashi/internal/domain"
)

var ErrUnknownSession = errors.New("unknown session")

type sessionEntry struct {
	Participant *domain.Participant
	Signal      core.SignalConnection
	Cancel      context.CancelFunc
}

// Registry maps connection identity to participant state plus the bound
// signal connection. Mutated only by the orchestrator and the WS adapter.
type Registry struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[core.SessionID]*sessionEntry)}
}

// BindSignal attaches a live connection before the participant joins.
func (r *Registry) BindSignal(sid core.SessionID, conn core.SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[sid]; ok {
		e.Signal = conn
		e.Cancel = cancel
		return
	}
	r.sessions[sid] = &sessionEntry{Signal: conn, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("bound signal")
}

func (r *Registry) Signal(sid core.SessionID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[sid]
	if !ok || e.Signal == nil {
		return nil, false
	}
	return e.Signal, true
}

// Upsert registers or replaces the participant state for sid.
func (r *Registry) Upsert(sid core.SessionID, username string, lang domain.Language, room domain.RoomName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sid]
	if !ok {
		e = &sessionEntry{}
		r.sessions[sid] = e
	}
	e.Participant = &domain.Participant{Username: username, Language: lang, Room: room}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).
		Str("username", username).Str("lang", string(lang)).Str("room", string(room)).Msg("upserted participant")
}

// Get returns a copy; callers never see the guarded struct.
func (r *Registry) Get(sid core.SessionID) (domain.Participant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[sid]
	if !ok || e.Participant == nil {
		return domain.Participant{}, false
	}
	return *e.Participant, true
}

func (r *Registry) SetLanguage(sid core.SessionID, lang domain.Language) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sid]
	if !ok || e.Participant == nil {
		return ErrUnknownSession
	}
	e.Participant.Language = lang
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("lang", string(lang)).Msg("updated language")
	return nil
}

func (r *Registry) SetRoom(sid core.SessionID, room domain.RoomName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[sid]; ok && e.Participant != nil {
		e.Participant.Room = room
	}
}

// Remove drops the participant state but keeps the signal binding: the
// connection may join again later.
func (r *Registry) Remove(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sid]
	if !ok {
		return
	}
	if e.Signal == nil {
		delete(r.sessions, sid)
	} else {
		e.Participant = nil
	}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("removed participant")
}

// Unbind tears the session down entirely on socket close.
func (r *Registry) Unbind(sid core.SessionID) {
	r.mu.Lock()
	e, ok := r.sessions[sid]
	delete(r.sessions, sid)
	r.mu.Unlock()
	if ok && e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unbind session")
}

// Snapshot is a read-only view for the debug endpoint.
func (r *Registry) Snapshot() map[string]domain.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := lo.PickBy(r.sessions, func(_ core.SessionID, e *sessionEntry) bool {
		return e.Participant != nil
	})
	out := make(map[string]domain.Participant, len(entries))
	for sid, e := range entries {
		out[string(sid)] = *e.Participant
	}
	return out
}
