package handler

import (
	"github.com/gin-gonic/gin"

	"impulsa/backend/internal/common"
)

// NotificationSummary handles GET /notifications/summary.
func (h *Handler) NotificationSummary(c *gin.Context) {
	summary, err := h.Notifications.Summary(CurrentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	common.SuccessResponse(c, summary, nil)
}
