package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"board-banker-backend/internal/models"
	"board-banker-backend/internal/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Balance-changing events share one throttle bucket per connection.
const (
	actionRateLimit  = 60
	actionRateWindow = time.Minute
)

type WebSocketHandler struct {
	coordinator *services.Coordinator
	hub         *Hub
	limiter     *services.RateLimiter
	validate    *validator.Validate
}

func NewWebSocketHandler(coordinator *services.Coordinator, hub *Hub, limiter *services.RateLimiter) *WebSocketHandler {
	return &WebSocketHandler{
		coordinator: coordinator,
		hub:         hub,
		limiter:     limiter,
		validate:    validator.New(),
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade to WebSocket")
		return
	}

	client := newClient(conn)
	h.hub.register(client)
	go client.writePump()

	log.Debug().Str("conn", client.ID).Msg("client connected")

	defer func() {
		h.coordinator.Disconnect(client.ID)
		h.hub.unregister(client)
		log.Debug().Str("conn", client.ID).Msg("client disconnected")
	}()

	for {
		var ev ClientEvent
		if err := conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("conn", client.ID).Msg("websocket read error")
			}
			break
		}
		h.handleEvent(client, &ev)
	}
}

func (h *WebSocketHandler) handleEvent(client *Client, ev *ClientEvent) {
	switch ev.Type {
	case models.EventRoomCreate:
		var p models.CreateRoomPayload
		if !h.decode(client, ev.Data, &p) {
			return
		}
		h.report(client, h.coordinator.CreateRoom(client.ID, &p))

	case models.EventRoomJoin:
		var p models.JoinRoomPayload
		if !h.decode(client, ev.Data, &p) {
			return
		}
		h.report(client, h.coordinator.JoinRoom(client.ID, &p))

	case models.EventRoomLeave:
		h.coordinator.Disconnect(client.ID)

	case models.EventTransfer:
		var p models.TransferPayload
		if !h.decode(client, ev.Data, &p) || !h.allow(client) {
			return
		}
		h.report(client, h.coordinator.Transfer(client.ID, &p))

	case models.EventRequest:
		var p models.RequestPayload
		if !h.decode(client, ev.Data, &p) || !h.allow(client) {
			return
		}
		h.report(client, h.coordinator.RequestMoney(client.ID, &p))

	case models.EventRespond:
		var p models.RespondPayload
		if !h.decode(client, ev.Data, &p) || !h.allow(client) {
			return
		}
		h.report(client, h.coordinator.Respond(client.ID, &p))

	case models.EventBalanceEdit:
		var p models.EditBalancePayload
		if !h.decode(client, ev.Data, &p) || !h.allow(client) {
			return
		}
		h.report(client, h.coordinator.EditBalance(client.ID, &p))

	default:
		h.report(client, services.ErrBadPayload)
	}
}

// decode unmarshals and validates an event payload. Anything malformed is
// answered with a scoped error and never reaches the coordinator.
func (h *WebSocketHandler) decode(client *Client, raw json.RawMessage, dst any) bool {
	if len(raw) == 0 {
		h.report(client, services.ErrBadPayload)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		h.report(client, services.ErrBadPayload)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.report(client, services.ErrBadPayload)
		return false
	}
	return true
}

func (h *WebSocketHandler) allow(client *Client) bool {
	if !h.limiter.Allow(client.ID, "transaction", actionRateLimit, actionRateWindow) {
		h.report(client, services.ErrTooManyActions)
		return false
	}
	return true
}

// report forwards a failed action to the issuing connection only. Successful
// actions answer through their own broadcasts.
func (h *WebSocketHandler) report(client *Client, err error) {
	if err != nil {
		h.hub.ToConn(client.ID, models.EventRoomError, err.Error())
	}
}
