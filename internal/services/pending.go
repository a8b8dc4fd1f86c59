package services

import "board-banker-backend/internal/models"

// PendingLedger holds money requests awaiting the payer's decision, keyed by
// transaction id. An entry lives here only between creation and resolution;
// there is no timed expiry, but requests tied to a departing player are
// swept by the Coordinator.
type PendingLedger struct {
	byID map[string]*models.Transaction
}

func NewPendingLedger() *PendingLedger {
	return &PendingLedger{byID: make(map[string]*models.Transaction)}
}

func (l *PendingLedger) Put(tx *models.Transaction) {
	l.byID[tx.ID] = tx
}

func (l *PendingLedger) Get(id string) *models.Transaction {
	return l.byID[id]
}

func (l *PendingLedger) Remove(id string) {
	delete(l.byID, id)
}

func (l *PendingLedger) Len() int {
	return len(l.byID)
}

// ForPlayer returns every pending request the given player is party to,
// whether as payer or as requester.
func (l *PendingLedger) ForPlayer(playerID string) []*models.Transaction {
	var out []*models.Transaction
	for _, tx := range l.byID {
		if tx.FromID == playerID || tx.ToID == playerID {
			out = append(out, tx)
		}
	}
	return out
}
