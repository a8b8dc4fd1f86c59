package services

// Broadcaster is the coordinator's view of the real-time transport. Join and
// Leave maintain room membership for fan-out; the To* methods emit events to
// a single connection, a whole room, or a room minus one connection.
// Implementations must not block the caller: the coordinator emits while
// holding its lock and expects sends to be buffered.
type Broadcaster interface {
	Join(connID, roomID string)
	Leave(connID, roomID string)
	ToConn(connID, event string, data any)
	ToRoom(roomID, event string, data any)
	ToRoomExcept(roomID, exceptConnID, event string, data any)
}
