package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board-banker-backend/internal/models"
	"board-banker-backend/internal/services"
)

func TestSessionDirectoryResolvesLiveState(t *testing.T) {
	registry := services.NewRoomRegistry()
	sessions := services.NewSessionDirectory(registry)

	room, alice := registry.Create("Game Night", "Alice", 1500)
	sessions.Bind("conn-1", room.ID, alice.ID)

	gotRoom, gotPlayer := sessions.Resolve("conn-1")
	require.Same(t, room, gotRoom)
	require.Same(t, alice, gotPlayer)

	// Resolution always goes back to the registry, so a departed player
	// stops resolving even while the binding still exists.
	registry.Leave(room.ID, alice.ID)
	gotRoom, gotPlayer = sessions.Resolve("conn-1")
	assert.Nil(t, gotRoom)
	assert.Nil(t, gotPlayer)
}

func TestSessionDirectoryRebindAndUnbind(t *testing.T) {
	registry := services.NewRoomRegistry()
	sessions := services.NewSessionDirectory(registry)

	first, alice := registry.Create("First", "Alice", 100)
	second, bob := registry.Create("Second", "Bob", 100)

	sessions.Bind("conn-1", first.ID, alice.ID)
	sessions.Bind("conn-1", second.ID, bob.ID)

	gotRoom, gotPlayer := sessions.Resolve("conn-1")
	assert.Same(t, second, gotRoom, "rebinding overwrites the prior mapping")
	assert.Same(t, bob, gotPlayer)

	sessions.Unbind("conn-1")
	gotRoom, _ = sessions.Resolve("conn-1")
	assert.Nil(t, gotRoom)

	sessions.Unbind("conn-1") // idempotent
}

func TestPendingLedger(t *testing.T) {
	ledger := services.NewPendingLedger()
	registry := services.NewRoomRegistry()
	room, alice := registry.Create("Game Night", "Alice", 1500)
	_, bob, err := registry.Join(room.ID, "Bob")
	require.NoError(t, err)

	tx := &models.Transaction{
		ID:     models.NewEntityID(),
		Type:   models.TransactionTypeRequest,
		FromID: alice.ID,
		ToID:   bob.ID,
		Amount: 200,
		Status: models.TransactionStatusPending,
	}
	ledger.Put(tx)

	assert.Same(t, tx, ledger.Get(tx.ID))
	assert.Equal(t, 1, ledger.Len())
	assert.Len(t, ledger.ForPlayer(alice.ID), 1, "payer is party to the request")
	assert.Len(t, ledger.ForPlayer(bob.ID), 1, "requester is party to the request")
	assert.Empty(t, ledger.ForPlayer("someone-else"))

	ledger.Remove(tx.ID)
	assert.Nil(t, ledger.Get(tx.ID))
	assert.Equal(t, 0, ledger.Len())
}
