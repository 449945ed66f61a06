package route

import (
	"github.com/gin-gonic/gin"
)

type WebhookHandler interface {
	Receive(c *gin.Context)
}

func RegisterWebhook(g *gin.RouterGroup, h WebhookHandler) {
	g.POST("", h.Receive)
}
