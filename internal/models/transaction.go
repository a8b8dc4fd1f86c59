package models

import "time"

type TransactionType string

const (
	TransactionTypeTransfer TransactionType = "transfer"
	TransactionTypeRequest  TransactionType = "request"
)

type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusAccepted TransactionStatus = "accepted"
	TransactionStatusRejected TransactionStatus = "rejected"
)

// Transaction records a balance movement between two room members. FromID is
// always the paying side: for a transfer that is the sender, for a request it
// is the player being asked to pay. Transfers are born accepted; requests are
// born pending and transition exactly once to accepted or rejected, after
// which the record is immutable.
type Transaction struct {
	ID        string            `json:"id"`
	Type      TransactionType   `json:"type"`
	FromID    string            `json:"fromId"`
	ToID      string            `json:"toId"`
	Amount    int64             `json:"amount"`
	Status    TransactionStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Message   string            `json:"message,omitempty"`
}

// Snapshot returns a copy safe to hand to the transport; the live record's
// status may still change for a pending request.
func (t *Transaction) Snapshot() *Transaction {
	cp := *t
	return &cp
}
