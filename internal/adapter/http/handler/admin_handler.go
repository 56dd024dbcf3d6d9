package handler

import (
	"context"

	"monero-wallet-manager/internal/core/ports"
	"monero-wallet-manager/pkg/apperror"
	"monero-wallet-manager/pkg/response"

	"github.com/gin-gonic/gin"
)

// QueueAdmin is the consumer surface exposed on the admin endpoints.
type QueueAdmin interface {
	Stats(ctx context.Context) (ports.QueueStats, error)
	Drain(ctx context.Context) error
}

// AdminHandler handles the queue admin endpoints. A nil admin means the
// consumer is disabled (no queue URL configured).
type AdminHandler struct {
	admin QueueAdmin
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin QueueAdmin) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// GetQueue handles GET /admin/queue.
func (h *AdminHandler) GetQueue(c *gin.Context) {
	if h.admin == nil {
		response.OK(c, gin.H{"enabled": false})
		return
	}

	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, gin.H{
		"enabled":        true,
		"queue":          stats.Queue,
		"message_count":  stats.MessageCount,
		"consumer_count": stats.ConsumerCount,
	})
}

// Drain handles POST /admin/drain: one synchronous drain cycle on demand,
// ahead of the consumer's next scheduled poll.
func (h *AdminHandler) Drain(c *gin.Context) {
	if h.admin == nil {
		response.Error(c, apperror.Validation("queue consumer is disabled"))
		return
	}

	if err := h.admin.Drain(c.Request.Context()); err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, gin.H{"status": "ok"})
}
