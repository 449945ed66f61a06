package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RootHandler struct {
	service string
	version string
}

func NewRootHandler(service, version string) *RootHandler {
	return &RootHandler{
		service: service,
		version: version,
	}
}

type rootResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Index describes the service and its surface.
func (h *RootHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, rootResponse{
		Service: h.service,
		Version: h.version,
		Endpoints: map[string]string{
			"webhook": "POST /webhook",
			"health":  "GET /health",
		},
	})
}
