package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aromi-agent-backend/middleware"
	"aromi-agent-backend/models"
	"aromi-agent-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const maxFrameSize = 64 << 10

var upgrader = websocket.Upgrader{
	// CORS is open for the HTTP API, so the socket accepts any origin too.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketController struct {
	assistantService *services.AssistantService
}

func NewWebSocketController(assistantService *services.AssistantService) *WebSocketController {
	return &WebSocketController{
		assistantService: assistantService,
	}
}

// HandleWebSocket handles GET /ws. Every text frame is one models.Envelope and
// receives exactly one models.EnvelopeReply, in order.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	logger := middleware.Logger(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxFrameSize)

	ctx := c.Request.Context()
	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn().Err(err).Msg("websocket read failed")
			}
			return
		}

		var env models.Envelope
		if err := json.Unmarshal(frame, &env); err != nil {
			if !wc.write(c, conn, models.EnvelopeReply{Detail: "invalid frame: " + err.Error()}) {
				return
			}
			continue
		}

		reply, err := wc.assistantService.Dispatch(ctx, env)
		if err != nil {
			reply = &models.EnvelopeReply{Type: env.Type, ID: env.ID, Detail: errorDetail(err)}
		}
		if !wc.write(c, conn, *reply) {
			return
		}
	}
}

func (wc *WebSocketController) write(c *gin.Context, conn *websocket.Conn, reply models.EnvelopeReply) bool {
	if err := conn.WriteJSON(reply); err != nil {
		middleware.Logger(c).Warn().Err(err).Msg("websocket write failed")
		return false
	}
	return true
}

func errorDetail(err error) string {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
