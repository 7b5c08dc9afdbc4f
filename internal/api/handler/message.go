package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"impulsa/backend/internal/common"
	"impulsa/backend/internal/models"
)

type sendMessageBody struct {
	RecipientID string `json:"recipient_id" binding:"required"`
	Content     string `json:"content" binding:"required"`
	ContextType string `json:"context_type" binding:"required"`
	ContextID   string `json:"context_id"`
}

// SendMessage handles POST /messages.
func (h *Handler) SendMessage(c *gin.Context) {
	var body sendMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.failValidation(c)
		return
	}

	msg, err := h.Messaging.SendMessage(
		CurrentUserID(c),
		body.RecipientID,
		models.ContextType(body.ContextType),
		body.ContextID,
		body.Content,
	)
	if err != nil {
		h.fail(c, err)
		return
	}
	common.CreatedResponse(c, msg)
}

// GetChannel handles GET /channel?with=&context_type=&context_id=&cursor=&limit=.
// Opening the channel marks the returned incoming messages as read.
func (h *Handler) GetChannel(c *gin.Context) {
	withUser := c.Query("with")
	if withUser == "" {
		h.failValidation(c)
		return
	}
	var limit int
	if raw := c.Query("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil {
			h.failValidation(c)
			return
		}
	}

	page, err := h.Messaging.GetChannel(
		CurrentUserID(c),
		withUser,
		models.ContextType(c.Query("context_type")),
		c.Query("context_id"),
		c.Query("cursor"),
		limit,
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	var meta *common.Meta
	if page.NextCursor != "" {
		meta = &common.Meta{NextCursor: page.NextCursor}
	}
	common.SuccessResponse(c, page.Messages, meta)
}

// MarkMessageRead handles POST /messages/:id/read.
func (h *Handler) MarkMessageRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.failValidation(c)
		return
	}

	msg, err := h.Messaging.MarkMessageRead(uint(id), CurrentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	common.SuccessResponse(c, msg, nil)
}
