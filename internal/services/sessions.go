package services

import "board-banker-backend/internal/models"

type sessionRef struct {
	roomID   string
	playerID string
}

// SessionDirectory maps a live connection to the (room, player) it acts as.
// A connection belongs to at most one room; binding again overwrites.
// Like the registry, it relies on the Coordinator for serialization.
type SessionDirectory struct {
	registry *RoomRegistry
	sessions map[string]sessionRef
}

func NewSessionDirectory(registry *RoomRegistry) *SessionDirectory {
	return &SessionDirectory{
		registry: registry,
		sessions: make(map[string]sessionRef),
	}
}

func (d *SessionDirectory) Bind(connID, roomID, playerID string) {
	d.sessions[connID] = sessionRef{roomID: roomID, playerID: playerID}
}

// Resolve re-reads the live room and player from the registry on every call,
// never a cached copy. Both nil when the connection is not currently acting
// inside a room (never bound, room gone, or player gone).
func (d *SessionDirectory) Resolve(connID string) (*models.Room, *models.Player) {
	ref, ok := d.sessions[connID]
	if !ok {
		return nil, nil
	}
	room := d.registry.Get(ref.roomID)
	if room == nil {
		return nil, nil
	}
	player := room.FindPlayer(ref.playerID)
	if player == nil {
		return nil, nil
	}
	return room, player
}

// Unbind removes the mapping. Idempotent.
func (d *SessionDirectory) Unbind(connID string) {
	delete(d.sessions, connID)
}

func (d *SessionDirectory) lookup(connID string) (sessionRef, bool) {
	ref, ok := d.sessions[connID]
	return ref, ok
}
