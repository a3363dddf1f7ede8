package app

import (
	"errors"
	"sync"

	"github.com/samber/lo"

	"github.com/rikdas/dobhashi/internal/core"
	"github.com/rikdas/dobhashi/internal/domain"
)

var ErrRoomFull = errors.New("room full")

// Rooms maps a room name to its ordered occupant list. Capacity check and
// insert run under one lock so concurrent joins cannot overfill a room.
// An emptied room is deleted in the same critical section that empties it.
type Rooms struct {
	mu        sync.Mutex
	occupants map[domain.RoomName][]core.SessionID
}

func NewRooms() *Rooms {
	return &Rooms{occupants: make(map[domain.RoomName][]core.SessionID)}
}

func (r *Rooms) AddOccupant(room domain.RoomName, sid core.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	occ := r.occupants[room]
	if lo.Contains(occ, sid) {
		return nil
	}
	if len(occ) >= domain.RoomCapacity {
		return ErrRoomFull
	}
	r.occupants[room] = append(occ, sid)
	return nil
}

func (r *Rooms) RemoveOccupant(room domain.RoomName, sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	occ, ok := r.occupants[room]
	if !ok {
		return
	}
	occ = lo.Without(occ, sid)
	if len(occ) == 0 {
		delete(r.occupants, room)
		return
	}
	r.occupants[room] = occ
}

// Occupants returns a copy in insertion order; nil when the room is absent.
func (r *Rooms) Occupants(room domain.RoomName) []core.SessionID {
	r.mu.Lock()
	defer r.mu.Unlock()
	occ, ok := r.occupants[room]
	if !ok {
		return nil
	}
	out := make([]core.SessionID, len(occ))
	copy(out, occ)
	return out
}

func (r *Rooms) Size(room domain.RoomName) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.occupants[room])
}

func (r *Rooms) Exists(room domain.RoomName) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.occupants[room]
	return ok
}

// Snapshot is a read-only view for the debug endpoint.
func (r *Rooms) Snapshot() map[string][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string][]string, len(r.occupants))
	for room, occ := range r.occupants {
		out[string(room)] = lo.Map(occ, func(sid core.SessionID, _ int) string { return string(sid) })
	}
	return out
}
