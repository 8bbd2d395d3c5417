package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/templetrust/sevaledger/utils"
)

// respondWire answers a gateway-facing route (/create-order, the webhook)
// with its exact wire shape, mapping the error taxonomy to HTTP codes.
// Anything that is not an AppError degrades to a generic 500.
func respondWire(c *gin.Context, err error) {
	appErr := utils.GetAppError(err)
	if appErr == nil {
		appErr = utils.NewAppError(http.StatusInternalServerError, "Internal server error", err)
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
