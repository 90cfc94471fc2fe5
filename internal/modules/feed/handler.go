package feed

import (
	"net/http"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

type Handler struct {
	hub     *Hub
	loggerf func(format string, args ...interface{})
}

func NewHandler(hub *Hub, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{hub: hub, loggerf: loggerf}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/feed", h.Serve)
}

// Serve upgrades the request and streams reservation events until the admin
// disconnects.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "WEBSOCKET_UPGRADE_FAILED", "Could not upgrade connection")
		return
	}

	userID := c.GetInt64("user_id")
	h.loggerf("level=info msg=admin feed connected user_id=%d online=%d", userID, h.hub.ConnectedCount()+1)
	h.hub.ServeWS(conn, userID)
	h.loggerf("level=info msg=admin feed disconnected user_id=%d", userID)
}
