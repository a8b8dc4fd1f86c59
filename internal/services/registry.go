package services

import (
	"strings"
	"time"

	"board-banker-backend/internal/models"
)

// RoomRegistry is the authoritative mapping from room code to room state.
// It is not safe for concurrent use on its own; the Coordinator serializes
// every access under its lock.
type RoomRegistry struct {
	rooms map[string]*models.Room
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: make(map[string]*models.Room)}
}

// Create allocates a room with a fresh code and seeds it with its creating
// player, who becomes host. The creator always gets the first palette
// avatar and color. Codes are re-rolled on the rare collision with a live
// room; after a handful of attempts the last roll is taken as-is.
func (r *RoomRegistry) Create(roomName, playerName string, initialBalance int64) (*models.Room, *models.Player) {
	code := models.NewRoomCode()
	for i := 0; i < 5 && r.rooms[code] != nil; i++ {
		code = models.NewRoomCode()
	}

	player := &models.Player{
		ID:      models.NewEntityID(),
		Name:    playerName,
		Avatar:  Avatars[0],
		Balance: initialBalance,
		Color:   PlayerColors[0],
	}

	room := &models.Room{
		ID:             code,
		Name:           roomName,
		Players:        []*models.Player{player},
		InitialBalance: initialBalance,
		CreatedAt:      time.Now(),
		HostID:         player.ID,
	}

	r.rooms[code] = room
	return room, player
}

// Join appends a new player to the room with the given code. Codes are
// case-insensitive. The new member starts at the room's initial balance with
// a free avatar/color pair.
func (r *RoomRegistry) Join(roomID, playerName string) (*models.Room, *models.Player, error) {
	room := r.Get(roomID)
	if room == nil {
		return nil, nil, ErrRoomNotFound
	}
	if len(room.Players) >= models.MaxRoomPlayers {
		return nil, nil, ErrRoomFull
	}

	avatar, color := AllocateAppearance(room)
	player := &models.Player{
		ID:      models.NewEntityID(),
		Name:    playerName,
		Avatar:  avatar,
		Balance: room.InitialBalance,
		Color:   color,
	}

	room.Players = append(room.Players, player)
	return room, player, nil
}

// Leave removes the player from the room. The last member leaving deletes
// the room; a departing host hands the role to the earliest remaining
// joiner. Duplicate leave signals for the same player are no-ops, so the
// transport may deliver both an explicit leave and a disconnect.
func (r *RoomRegistry) Leave(roomID, playerID string) (room *models.Room, removed *models.Player, deleted bool) {
	room = r.Get(roomID)
	if room == nil {
		return nil, nil, false
	}

	removed = room.RemovePlayer(playerID)
	if removed == nil {
		return room, nil, false
	}

	if len(room.Players) == 0 {
		delete(r.rooms, room.ID)
		return room, removed, true
	}

	if room.HostID == removed.ID {
		room.HostID = room.Players[0].ID
	}
	return room, removed, false
}

// Get resolves a room by code, case-insensitively. Nil when no live room
// has that code.
func (r *RoomRegistry) Get(roomID string) *models.Room {
	return r.rooms[strings.ToUpper(roomID)]
}

// Count reports the number of live rooms.
func (r *RoomRegistry) Count() int {
	return len(r.rooms)
}
