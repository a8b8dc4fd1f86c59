package models_test

import (
	"strings"
	"testing"

	"board-banker-backend/internal/models"
)

func TestNewRoomCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		code := models.NewRoomCode()

		if len(code) != 6 {
			t.Fatalf("Room code should be 6 characters, got %q", code)
		}

		for _, r := range code {
			if strings.ContainsRune("0O1I", r) {
				t.Errorf("Room code %q contains confusable character %q", code, r)
			}
			if !strings.ContainsRune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789", r) {
				t.Errorf("Room code %q contains character outside the alphabet", code)
			}
		}

		seen[code] = true
	}

	if len(seen) < 100 {
		t.Errorf("Expected reasonable spread of room codes, got %d unique out of 200", len(seen))
	}
}

func TestNewEntityID(t *testing.T) {
	a := models.NewEntityID()
	b := models.NewEntityID()

	if a == "" {
		t.Error("Entity ID should not be empty")
	}
	if a == b {
		t.Error("Entity IDs should be unique")
	}
}

func TestRoomPlayerLookup(t *testing.T) {
	alice := &models.Player{ID: "a", Name: "Alice"}
	bob := &models.Player{ID: "b", Name: "Bob"}
	carol := &models.Player{ID: "c", Name: "Carol"}

	room := &models.Room{
		ID:      "ROOM42",
		Players: []*models.Player{alice, bob, carol},
		HostID:  "a",
	}

	if room.FindPlayer("b") != bob {
		t.Error("FindPlayer should return the member with the given id")
	}
	if room.FindPlayer("missing") != nil {
		t.Error("FindPlayer should return nil for unknown ids")
	}

	removed := room.RemovePlayer("b")
	if removed != bob {
		t.Error("RemovePlayer should return the removed player")
	}
	if len(room.Players) != 2 {
		t.Fatalf("Expected 2 players after removal, got %d", len(room.Players))
	}
	if room.Players[0] != alice || room.Players[1] != carol {
		t.Error("RemovePlayer should preserve join order of remaining players")
	}

	if room.RemovePlayer("b") != nil {
		t.Error("Removing an absent player should return nil")
	}
}
