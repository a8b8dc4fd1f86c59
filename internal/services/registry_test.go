package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board-banker-backend/internal/models"
	"board-banker-backend/internal/services"
)

func TestRegistryCreate(t *testing.T) {
	registry := services.NewRoomRegistry()

	room, player := registry.Create("Game Night", "Alice", 1500)

	require.NotNil(t, room)
	require.NotNil(t, player)
	assert.Len(t, room.ID, 6)
	assert.Equal(t, room.ID, strings.ToUpper(room.ID))
	assert.Equal(t, "Game Night", room.Name)
	assert.Equal(t, int64(1500), room.InitialBalance)
	assert.Equal(t, player.ID, room.HostID)
	assert.Equal(t, services.Avatars[0], player.Avatar)
	assert.Equal(t, services.PlayerColors[0], player.Color)
	assert.Equal(t, int64(1500), player.Balance)
	assert.Same(t, room, registry.Get(room.ID))
	assert.Equal(t, 1, registry.Count())
}

func TestRegistryJoin(t *testing.T) {
	registry := services.NewRoomRegistry()
	room, _ := registry.Create("Game Night", "Alice", 1500)

	joined, bob, err := registry.Join(strings.ToLower(room.ID), "Bob")
	require.NoError(t, err)
	assert.Same(t, room, joined, "join should be case-insensitive on the code")
	assert.Equal(t, int64(1500), bob.Balance)
	assert.Len(t, room.Players, 2)
	assert.NotEqual(t, room.Players[0].Avatar, bob.Avatar)

	_, _, err = registry.Join("ZZZZZZ", "Mallory")
	assert.ErrorIs(t, err, services.ErrRoomNotFound)
}

func TestRegistryJoinFullRoom(t *testing.T) {
	registry := services.NewRoomRegistry()
	room, _ := registry.Create("Game Night", "Alice", 1500)

	for i := 1; i < models.MaxRoomPlayers; i++ {
		_, _, err := registry.Join(room.ID, fmt.Sprintf("Player %d", i))
		require.NoError(t, err)
	}
	require.Len(t, room.Players, models.MaxRoomPlayers)

	_, _, err := registry.Join(room.ID, "Ninth")
	assert.ErrorIs(t, err, services.ErrRoomFull)
	assert.Len(t, room.Players, models.MaxRoomPlayers, "failed join should leave membership unchanged")
}

func TestRegistryLeaveReassignsHost(t *testing.T) {
	registry := services.NewRoomRegistry()
	room, alice := registry.Create("Game Night", "Alice", 1500)
	_, bob, err := registry.Join(room.ID, "Bob")
	require.NoError(t, err)
	_, _, err = registry.Join(room.ID, "Carol")
	require.NoError(t, err)

	_, removed, deleted := registry.Leave(room.ID, alice.ID)
	require.Same(t, alice, removed)
	assert.False(t, deleted)
	assert.Equal(t, bob.ID, room.HostID, "host should pass to the earliest remaining joiner")
}

func TestRegistryLeaveDeletesEmptyRoom(t *testing.T) {
	registry := services.NewRoomRegistry()
	room, alice := registry.Create("Game Night", "Alice", 1500)

	_, removed, deleted := registry.Leave(room.ID, alice.ID)
	require.NotNil(t, removed)
	assert.True(t, deleted)
	assert.Nil(t, registry.Get(room.ID))
	assert.Equal(t, 0, registry.Count())
}

func TestRegistryLeaveIdempotent(t *testing.T) {
	registry := services.NewRoomRegistry()
	room, alice := registry.Create("Game Night", "Alice", 1500)
	_, _, err := registry.Join(room.ID, "Bob")
	require.NoError(t, err)

	_, removed, _ := registry.Leave(room.ID, alice.ID)
	require.NotNil(t, removed)

	_, removed, deleted := registry.Leave(room.ID, alice.ID)
	assert.Nil(t, removed, "second leave for the same player should be a no-op")
	assert.False(t, deleted)
	assert.Len(t, room.Players, 1)

	_, removed, _ = registry.Leave("ZZZZZZ", alice.ID)
	assert.Nil(t, removed, "leave on a dead room should be a no-op")
}
