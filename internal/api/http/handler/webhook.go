package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"actionlog/internal/model"
)

type WebhookService interface {
	Process(ctx context.Context, event model.InboundEvent) (*model.ProcessResult, error)
}

type WebhookHandler struct {
	log *zap.Logger
	svc WebhookService
}

func NewWebhookHandler(log *zap.Logger, svc WebhookService) *WebhookHandler {
	return &WebhookHandler{
		log: log,
		svc: svc,
	}
}

// Receive handles POST /webhook. Skips and negative classifications are
// normal outcomes and answer 200; only unexpected failures answer 500.
func (h *WebhookHandler) Receive(c *gin.Context) {
	ctx := c.Request.Context()

	var event model.InboundEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		h.log.Error("Failed to decode webhook body", zap.Error(err))

		c.JSON(http.StatusInternalServerError, ResponseWithMessage{
			Status:  StatusErr,
			Message: err.Error(),
		})

		return
	}

	result, err := h.svc.Process(ctx, event)
	if err != nil {
		h.log.Error("Failed to process webhook event", zap.Error(err))

		c.JSON(http.StatusInternalServerError, ResponseWithMessage{
			Status:  StatusErr,
			Message: err.Error(),
		})

		return
	}

	c.JSON(http.StatusOK, result)
}
