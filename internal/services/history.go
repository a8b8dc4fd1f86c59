package services

import "board-banker-backend/internal/models"

// historyLimit bounds the per-room transaction window. Older records are
// dropped; this server never stores history durably.
const historyLimit = 50

// TransactionHistory keeps a bounded recent window of transactions per room,
// in creation order. Entries are the live records, so a pending request
// already in the window shows its terminal status once resolved.
type TransactionHistory struct {
	byRoom map[string][]*models.Transaction
}

func NewTransactionHistory() *TransactionHistory {
	return &TransactionHistory{byRoom: make(map[string][]*models.Transaction)}
}

func (h *TransactionHistory) Append(roomID string, tx *models.Transaction) {
	window := append(h.byRoom[roomID], tx)
	if len(window) > historyLimit {
		window = window[len(window)-historyLimit:]
	}
	h.byRoom[roomID] = window
}

// Recent returns the room's window, oldest first. These are the live
// records; callers handing them outside the coordinator lock use Snapshot.
func (h *TransactionHistory) Recent(roomID string) []*models.Transaction {
	return h.byRoom[roomID]
}

// Snapshot returns a copied window safe to marshal outside the lock.
func (h *TransactionHistory) Snapshot(roomID string) []*models.Transaction {
	window := h.byRoom[roomID]
	if len(window) == 0 {
		return nil
	}
	out := make([]*models.Transaction, len(window))
	for i, tx := range window {
		out[i] = tx.Snapshot()
	}
	return out
}

// Drop forgets a deleted room's window.
func (h *TransactionHistory) Drop(roomID string) {
	delete(h.byRoom, roomID)
}
