package services

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"board-banker-backend/internal/models"
)

// Coordinator is the state machine behind every balance-changing action. It
// owns the registry, session directory, pending ledger, and history, and is
// the only component allowed to mutate them.
//
// A single mutex serializes each inbound action end to end: validation,
// mutation, and broadcast enqueueing happen before the next action is
// admitted, so two transfers touching the same balance can never interleave
// and no observer ever sees a debit without its matching credit. Broadcast
// sends are buffered by the transport and never block under the lock, and
// every broadcast payload is a value snapshot taken while the lock is still
// held; writer goroutines marshal long after the lock is gone, so handing
// them live structs would serialize torn state.
type Coordinator struct {
	mu          sync.Mutex
	registry    *RoomRegistry
	sessions    *SessionDirectory
	pending     *PendingLedger
	history     *TransactionHistory
	broadcaster Broadcaster
}

func NewCoordinator(broadcaster Broadcaster) *Coordinator {
	registry := NewRoomRegistry()
	return &Coordinator{
		registry:    registry,
		sessions:    NewSessionDirectory(registry),
		pending:     NewPendingLedger(),
		history:     NewTransactionHistory(),
		broadcaster: broadcaster,
	}
}

// CreateRoom opens a fresh room with the caller as host and binds the
// connection to the new membership.
func (c *Coordinator) CreateRoom(connID string, p *models.CreateRoomPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, player := c.registry.Create(p.RoomName, p.PlayerName, p.InitialBalance)
	c.sessions.Bind(connID, room.ID, player.ID)
	c.broadcaster.Join(connID, room.ID)

	snap := room.Snapshot()
	c.broadcaster.ToConn(connID, models.EventRoomJoined, models.RoomJoinedData{
		Room:   snap,
		Player: snap.FindPlayer(player.ID),
	})

	log.Info().Str("room", room.ID).Str("player", player.Name).Msg("room created")
	return nil
}

// JoinRoom adds the caller to an existing room. The joiner gets the room
// snapshot plus the recent transaction window; everyone else learns only
// about the new player.
func (c *Coordinator) JoinRoom(connID string, p *models.JoinRoomPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, player, err := c.registry.Join(p.RoomID, p.PlayerName)
	if err != nil {
		return err
	}

	c.sessions.Bind(connID, room.ID, player.ID)
	c.broadcaster.Join(connID, room.ID)

	snap := room.Snapshot()
	joined := snap.FindPlayer(player.ID)
	c.broadcaster.ToConn(connID, models.EventRoomJoined, models.RoomJoinedData{Room: snap, Player: joined})
	if recent := c.history.Snapshot(room.ID); len(recent) > 0 {
		c.broadcaster.ToConn(connID, models.EventTxHistory, recent)
	}
	c.broadcaster.ToRoomExcept(room.ID, connID, models.EventPlayerJoined, joined)

	log.Info().Str("room", room.ID).Str("player", player.Name).Msg("player joined")
	return nil
}

// Transfer moves money from the calling player to another member of the same
// room, immediately and unconditionally. Preconditions run in a fixed order
// and the first failure wins; on any failure nothing is mutated.
func (c *Coordinator) Transfer(connID string, p *models.TransferPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, sender := c.sessions.Resolve(connID)
	if sender == nil {
		return ErrNotInRoom
	}
	receiver := room.FindPlayer(p.ToPlayerID)
	if receiver == nil {
		return ErrPlayerNotFound
	}
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}
	if sender.Balance < p.Amount {
		return ErrInsufficientBalance
	}

	sender.Balance -= p.Amount
	receiver.Balance += p.Amount

	tx := &models.Transaction{
		ID:        models.NewEntityID(),
		Type:      models.TransactionTypeTransfer,
		FromID:    sender.ID,
		ToID:      receiver.ID,
		Amount:    p.Amount,
		Status:    models.TransactionStatusAccepted,
		Timestamp: time.Now(),
		Message:   p.Message,
	}
	c.history.Append(room.ID, tx)

	c.broadcaster.ToRoom(room.ID, models.EventRoomUpdated, room.Snapshot())
	c.broadcaster.ToRoom(room.ID, models.EventTxCompleted, tx.Snapshot())

	log.Info().
		Str("room", room.ID).
		Str("from", sender.Name).
		Str("to", receiver.Name).
		Int64("amount", p.Amount).
		Msg("transfer")
	return nil
}

// RequestMoney records a pending request that the named payer must answer.
// The payer's balance is deliberately not checked here; only the response
// decides whether funds actually move.
func (c *Coordinator) RequestMoney(connID string, p *models.RequestPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, requester := c.sessions.Resolve(connID)
	if requester == nil {
		return ErrNotInRoom
	}
	payer := room.FindPlayer(p.FromPlayerID)
	if payer == nil {
		return ErrPlayerNotFound
	}
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}

	tx := &models.Transaction{
		ID:        models.NewEntityID(),
		Type:      models.TransactionTypeRequest,
		FromID:    payer.ID,
		ToID:      requester.ID,
		Amount:    p.Amount,
		Status:    models.TransactionStatusPending,
		Timestamp: time.Now(),
		Message:   p.Message,
	}
	c.pending.Put(tx)
	c.history.Append(room.ID, tx)

	c.broadcaster.ToRoom(room.ID, models.EventRequest, tx.Snapshot())

	log.Info().
		Str("room", room.ID).
		Str("requester", requester.Name).
		Str("payer", payer.Name).
		Int64("amount", p.Amount).
		Msg("money requested")
	return nil
}

// Respond settles a pending request. Only the payer may answer. Acceptance
// re-checks the payer's current balance: if it no longer covers the amount
// the request is rejected (and the shortfall reported to the responder
// alone), not left pending for a retry. Every outcome removes the ledger
// entry and broadcasts the terminal transaction; the room snapshot goes out
// only when balances actually changed.
func (c *Coordinator) Respond(connID string, p *models.RespondPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx := c.pending.Get(p.TransactionID)
	if tx == nil {
		return ErrTransactionNotFound
	}
	room, responder := c.sessions.Resolve(connID)
	if responder == nil {
		return ErrNotInRoom
	}
	if responder.ID != tx.FromID {
		return ErrNotPayer
	}

	payer := room.FindPlayer(tx.FromID)
	requester := room.FindPlayer(tx.ToID)
	if payer == nil || requester == nil {
		return ErrPlayerNotFound
	}

	var shortfall error
	if p.Accept {
		if payer.Balance < tx.Amount {
			tx.Status = models.TransactionStatusRejected
			shortfall = ErrInsufficientBalance
		} else {
			payer.Balance -= tx.Amount
			requester.Balance += tx.Amount
			tx.Status = models.TransactionStatusAccepted
		}
	} else {
		tx.Status = models.TransactionStatusRejected
	}

	c.pending.Remove(tx.ID)
	c.broadcaster.ToRoom(room.ID, models.EventTxResponse, tx.Snapshot())
	if tx.Status == models.TransactionStatusAccepted {
		c.broadcaster.ToRoom(room.ID, models.EventRoomUpdated, room.Snapshot())
	}

	log.Info().
		Str("room", room.ID).
		Str("payer", payer.Name).
		Str("requester", requester.Name).
		Int64("amount", tx.Amount).
		Str("status", string(tx.Status)).
		Msg("request resolved")
	return shortfall
}

// EditBalance lets the host set any member's balance outright. This is an
// administrative override, not a player-to-player movement, and on purpose
// leaves no Transaction record behind.
func (c *Coordinator) EditBalance(connID string, p *models.EditBalancePayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, editor := c.sessions.Resolve(connID)
	if editor == nil {
		return ErrNotInRoom
	}
	if room.HostID != editor.ID {
		return ErrNotHost
	}
	target := room.FindPlayer(p.PlayerID)
	if target == nil {
		return ErrPlayerNotFound
	}
	if p.NewBalance < 0 {
		return ErrNegativeBalance
	}

	old := target.Balance
	target.Balance = p.NewBalance

	c.broadcaster.ToRoom(room.ID, models.EventRoomUpdated, room.Snapshot())
	c.broadcaster.ToRoom(room.ID, models.EventBalanceUpdated, models.BalanceUpdatedData{
		PlayerID: target.ID,
		Balance:  target.Balance,
	})

	log.Info().
		Str("room", room.ID).
		Str("player", target.Name).
		Int64("old", old).
		Int64("new", target.Balance).
		Msg("balance edited by host")
	return nil
}

// Disconnect tears down whatever the connection was: the player leaves the
// room, pending requests they were party to are auto-rejected, the host role
// moves to the earliest remaining joiner, and an emptied room is deleted.
// Safe to call twice for the same connection, since an explicit room:leave
// and the transport-level disconnect both funnel here.
func (c *Coordinator) Disconnect(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ref, ok := c.sessions.lookup(connID)
	if !ok {
		return
	}
	c.sessions.Unbind(connID)
	c.broadcaster.Leave(connID, ref.roomID)

	room, removed, deleted := c.registry.Leave(ref.roomID, ref.playerID)
	if removed == nil {
		return
	}

	c.broadcaster.ToRoomExcept(ref.roomID, connID, models.EventPlayerLeft, removed.ID)

	// A request whose payer or requester has left can never settle; reject
	// it now instead of leaving a dead ledger entry behind.
	for _, tx := range c.pending.ForPlayer(removed.ID) {
		tx.Status = models.TransactionStatusRejected
		c.pending.Remove(tx.ID)
		if !deleted {
			c.broadcaster.ToRoom(ref.roomID, models.EventTxResponse, tx.Snapshot())
		}
	}

	if deleted {
		c.history.Drop(ref.roomID)
		log.Info().Str("room", ref.roomID).Msg("room deleted")
		return
	}

	c.broadcaster.ToRoom(ref.roomID, models.EventRoomUpdated, room.Snapshot())
	log.Info().Str("room", ref.roomID).Str("player", removed.Name).Msg("player left")
}

// Room returns the live room for a code, or nil.
func (c *Coordinator) Room(roomID string) *models.Room {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.Get(roomID)
}

// RoomCount reports how many rooms are live, for the liveness endpoint.
func (c *Coordinator) RoomCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.Count()
}

// PendingCount reports the number of unresolved money requests.
func (c *Coordinator) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending.Len()
}

// History returns a copy of the room's recent transaction window, oldest
// first.
func (c *Coordinator) History(roomID string) []*models.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Snapshot(roomID)
}
