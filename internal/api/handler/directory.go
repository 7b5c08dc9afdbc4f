package handler

import (
	"github.com/gin-gonic/gin"

	"impulsa/backend/internal/common"
)

type publishEntrepreneurshipBody struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Sectors     []string `json:"sectors"`
}

// PublishEntrepreneurship handles POST /entrepreneurships.
func (h *Handler) PublishEntrepreneurship(c *gin.Context) {
	var body publishEntrepreneurshipBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.failValidation(c)
		return
	}

	e, err := h.Directory.Publish(CurrentUserID(c), body.Name, body.Description, body.Sectors)
	if err != nil {
		h.fail(c, err)
		return
	}
	common.CreatedResponse(c, e)
}

// ListEntrepreneurships handles GET /entrepreneurships?sector=.
func (h *Handler) ListEntrepreneurships(c *gin.Context) {
	list, err := h.Directory.List(c.Query("sector"))
	if err != nil {
		h.fail(c, err)
		return
	}
	common.SuccessResponse(c, list, &common.Meta{Total: int64(len(list))})
}

// GetEntrepreneurship handles GET /entrepreneurships/:id.
func (h *Handler) GetEntrepreneurship(c *gin.Context) {
	e, err := h.Directory.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	common.SuccessResponse(c, e, nil)
}
