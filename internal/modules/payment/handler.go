package payment

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	loggerf func(format string, args ...interface{})
}

func NewHandler(service *Service, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{service: service, loggerf: loggerf}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/paytr/callback", h.Callback)
}

// Callback answers PayTR's notification endpoint. The gateway keeps retrying
// until it receives the literal plain-text body "OK", so every handled case
// (including replays) must answer exactly that.
func (h *Handler) Callback(c *gin.Context) {
	rawBody, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(strings.NewReader(string(rawBody)))

	var form CallbackForm
	if err := c.ShouldBind(&form); err != nil {
		h.loggerf("level=error msg=invalid paytr callback form err=%v", err)
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	if err := h.service.HandleCallback(c.Request.Context(), form, string(rawBody)); err != nil {
		h.loggerf("level=error msg=paytr callback failed merchant_oid=%s err=%v", form.MerchantOID, err)
		if errors.Is(err, ErrInvalidHash) || errors.Is(err, ErrAmountMismatch) {
			c.String(http.StatusForbidden, "forbidden")
			return
		}
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.String(http.StatusOK, "OK")
}
