// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/infrastructure/services"
)

// writeRemoteError translates a remote-service error into an HTTP response.
// Transport failures surface as 502 so the frontend can offer a retry;
// rejections carry the upstream status and message through.
func writeRemoteError(c *gin.Context, err error) {
	var transport *services.TransportError
	if errors.As(err, &transport) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "Remote service unreachable",
			"retryable": true,
		})
		return
	}

	var rejected *services.RejectedError
	if errors.As(err, &rejected) {
		message := rejected.Message
		if message == "" {
			message = "The remote service rejected the request"
		}
		c.JSON(rejected.StatusCode, gin.H{
			"error": message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
