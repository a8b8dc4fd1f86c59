package models

import (
	"math/rand"

	"github.com/google/uuid"
)

// Room codes avoid characters that are easy to misread when shouted across a
// table (0/O, 1/I).
const (
	roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	roomCodeLength   = 6
)

// NewRoomCode returns a 6-character join code. Uniqueness against live rooms
// is the registry's concern, not ours.
func NewRoomCode() string {
	b := make([]byte, roomCodeLength)
	for i := range b {
		b[i] = roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))]
	}
	return string(b)
}

// NewEntityID returns a globally unique id for players and transactions.
func NewEntityID() string {
	return uuid.New().String()
}
