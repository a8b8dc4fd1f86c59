package models

import "time"

// MaxRoomPlayers caps room membership. The avatar and color palettes are
// sized so that a full room never exhausts them.
const MaxRoomPlayers = 8

// Room is an isolated game session identified by a short join code.
// Players keeps insertion order, which doubles as join order; the host is
// always one of the current players.
type Room struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Players        []*Player `json:"players"`
	InitialBalance int64     `json:"initialBalance"`
	CreatedAt      time.Time `json:"createdAt"`
	HostID         string    `json:"hostId"`
}

// FindPlayer returns the member with the given id, or nil.
func (r *Room) FindPlayer(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Snapshot returns a deep copy of the room and its players. Anything handed
// to the transport must be a snapshot: the live structs keep mutating under
// the coordinator lock while writer goroutines marshal concurrently.
func (r *Room) Snapshot() *Room {
	cp := *r
	cp.Players = make([]*Player, len(r.Players))
	for i, p := range r.Players {
		pc := *p
		cp.Players[i] = &pc
	}
	return &cp
}

// RemovePlayer drops the member with the given id, preserving join order of
// the rest. Returns the removed player, or nil if no such member.
func (r *Room) RemovePlayer(id string) *Player {
	for i, p := range r.Players {
		if p.ID == id {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return p
		}
	}
	return nil
}
