package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /health
//
// Reports gateway-credential presence and store reachability. No side
// effects; safe for load balancers and uptime monitors.
func Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	storeErr := svc.Store.Ping(ctx)
	store := gin.H{
		"ok":       storeErr == nil,
		"fallback": svc.Fallback,
	}
	if storeErr != nil {
		store["error"] = storeErr.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"env": gin.H{
			"hasKey":           cfg.RazorpayKeyID != "",
			"hasSecret":        cfg.RazorpayKeySecret != "",
			"webhookSecretSet": cfg.WebhookSecret != "",
		},
		"store": store,
	})
}

// GET /ping
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pong": true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}
