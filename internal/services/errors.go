package services

import "errors"

// Request-scoped, user-facing errors. The messages are sent verbatim as
// room:error payloads to the connection that issued the failing action, so
// they read like UI copy rather than Go error strings.
var (
	ErrNotInRoom           = errors.New("Not in a room")
	ErrRoomNotFound        = errors.New("Room not found. Please check the room code.")
	ErrRoomFull            = errors.New("Room is full (max 8 players).")
	ErrPlayerNotFound      = errors.New("Player not found")
	ErrInvalidAmount       = errors.New("Amount must be positive")
	ErrInsufficientBalance = errors.New("Insufficient balance")
	ErrNotPayer            = errors.New("Only the payer can respond to this request")
	ErrNotHost             = errors.New("Only the host can edit balances")
	ErrNegativeBalance     = errors.New("Balance cannot be negative")
	ErrTransactionNotFound = errors.New("Transaction not found")
	ErrBadPayload          = errors.New("Malformed payload")
	ErrTooManyActions      = errors.New("Too many actions. Please slow down.")
)
