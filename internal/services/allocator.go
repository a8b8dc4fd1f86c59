package services

import (
	"math/rand"

	"board-banker-backend/internal/models"
)

// Avatars is the fixed appearance palette, assigned to members in order of
// first availability. Sixteen entries against an 8-player cap means a room
// never runs out in practice.
var Avatars = []string{
	"🎩", "🚗", "🐕", "👢", "🚢", "🎀", "💎", "🎲",
	"🏠", "🔑", "💰", "🎭", "🎯", "🏆", "⭐", "🌟",
}

// PlayerColors is the fixed color palette, sized exactly to the player cap.
var PlayerColors = []string{
	"#E63946", "#2A9D8F", "#E9C46A", "#264653",
	"#F4A261", "#9B5DE5", "#00BBF9", "#00F5D4",
}

// AllocateAppearance picks an avatar and a color for a joining member,
// preferring values no current member uses. Avatar and color are chosen
// independently. If a palette is somehow exhausted the fallback is a random
// entry; duplicates are tolerated at that point.
func AllocateAppearance(room *models.Room) (avatar, color string) {
	usedAvatars := make(map[string]bool, len(room.Players))
	usedColors := make(map[string]bool, len(room.Players))
	for _, p := range room.Players {
		usedAvatars[p.Avatar] = true
		usedColors[p.Color] = true
	}

	avatar = Avatars[rand.Intn(len(Avatars))]
	for _, a := range Avatars {
		if !usedAvatars[a] {
			avatar = a
			break
		}
	}

	color = PlayerColors[rand.Intn(len(PlayerColors))]
	for _, c := range PlayerColors {
		if !usedColors[c] {
			color = c
			break
		}
	}

	return avatar, color
}
