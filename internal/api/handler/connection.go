package handler

import (
	"github.com/gin-gonic/gin"

	"impulsa/backend/internal/common"
	"impulsa/backend/internal/models"
)

type connectionRequestBody struct {
	AddresseeID string `json:"addressee_id" binding:"required"`
	Message     string `json:"message"`
}

type connectionResponseBody struct {
	Decision string `json:"decision" binding:"required"`
}

// RequestConnection handles POST /connections.
func (h *Handler) RequestConnection(c *gin.Context) {
	var body connectionRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.failValidation(c)
		return
	}

	conn, err := h.Connections.RequestConnection(CurrentUserID(c), body.AddresseeID, body.Message)
	if err != nil {
		h.fail(c, err)
		return
	}
	common.CreatedResponse(c, conn)
}

// RespondToConnection handles POST /connections/:id/response.
func (h *Handler) RespondToConnection(c *gin.Context) {
	var body connectionResponseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.failValidation(c)
		return
	}

	var accept bool
	switch body.Decision {
	case "accept":
		accept = true
	case "decline":
		accept = false
	default:
		h.fail(c, common.ErrInvalidDecision)
		return
	}

	conn, err := h.Connections.RespondToConnection(c.Param("id"), CurrentUserID(c), accept)
	if err != nil {
		h.fail(c, err)
		return
	}
	common.SuccessResponse(c, conn, nil)
}

// ListConnections handles GET /connections?status=&role=.
func (h *Handler) ListConnections(c *gin.Context) {
	status := models.ConnectionStatus(c.Query("status"))
	role := c.Query("role")

	conns, err := h.Connections.ListConnections(CurrentUserID(c), status, role)
	if err != nil {
		h.fail(c, err)
		return
	}
	common.SuccessResponse(c, conns, &common.Meta{Total: int64(len(conns))})
}

type viewerStatusResponse struct {
	Status     models.ViewerStatus `json:"status"`
	Connection *models.Connection  `json:"connection,omitempty"`
}

// ConnectionStatus handles GET /connections/status/:userID, returning the
// viewer-relative status against the given user.
func (h *Handler) ConnectionStatus(c *gin.Context) {
	status, conn, err := h.Connections.ViewerStatus(CurrentUserID(c), c.Param("userID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	common.SuccessResponse(c, viewerStatusResponse{Status: status, Connection: conn}, nil)
}
