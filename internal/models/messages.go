package models

// Client → server event types.
const (
	EventRoomCreate  = "room:create"
	EventRoomJoin    = "room:join"
	EventRoomLeave   = "room:leave"
	EventTransfer    = "transaction:transfer"
	EventRequest     = "transaction:request"
	EventRespond     = "transaction:respond"
	EventBalanceEdit = "balance:edit"
)

// Server → client event types. EventRequest is shared: the same name carries
// the client's ask and the pending transaction broadcast to the room.
const (
	EventRoomJoined     = "room:joined"
	EventRoomUpdated    = "room:updated"
	EventRoomError      = "room:error"
	EventPlayerJoined   = "player:joined"
	EventPlayerLeft     = "player:left"
	EventTxCompleted    = "transaction:completed"
	EventTxResponse     = "transaction:response"
	EventTxHistory      = "transaction:history"
	EventBalanceUpdated = "balance:updated"
)

// Inbound payloads. Each client event decodes into one of these and is
// rejected with a scoped error when it does not validate; missing fields
// never reach the coordinator.

type CreateRoomPayload struct {
	RoomName       string `json:"roomName" validate:"required,max=64"`
	PlayerName     string `json:"playerName" validate:"required,max=32"`
	InitialBalance int64  `json:"initialBalance" validate:"min=0"`
}

type JoinRoomPayload struct {
	RoomID     string `json:"roomId" validate:"required,max=16"`
	PlayerName string `json:"playerName" validate:"required,max=32"`
}

type TransferPayload struct {
	ToPlayerID string `json:"toPlayerId" validate:"required"`
	Amount     int64  `json:"amount"`
	Message    string `json:"message,omitempty" validate:"max=200"`
}

type RequestPayload struct {
	FromPlayerID string `json:"fromPlayerId" validate:"required"`
	Amount       int64  `json:"amount"`
	Message      string `json:"message,omitempty" validate:"max=200"`
}

type RespondPayload struct {
	TransactionID string `json:"transactionId" validate:"required"`
	Accept        bool   `json:"accept"`
}

type EditBalancePayload struct {
	PlayerID   string `json:"playerId" validate:"required"`
	NewBalance int64  `json:"newBalance"`
}

// Outbound payloads that are not a bare Room, Player, or Transaction.

type RoomJoinedData struct {
	Room   *Room   `json:"room"`
	Player *Player `json:"player"`
}

type BalanceUpdatedData struct {
	PlayerID string `json:"playerId"`
	Balance  int64  `json:"balance"`
}
