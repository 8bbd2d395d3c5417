package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/templetrust/sevaledger/models"
	"github.com/templetrust/sevaledger/utils"
)

// NotificationRequest is a broadcast message entered by an administrator.
type NotificationRequest struct {
	Message string `json:"message" binding:"required"`
}

// POST /v1/admin/notifications
func CreateNotification(c *gin.Context) {
	var req NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. Message is required", err.Error())
		return
	}

	notification := &models.Notification{Message: req.Message}
	if err := svc.AddNotification(c.Request.Context(), notification); err != nil {
		utils.LogError("Failed to record notification: %v", err)
		utils.InternalServerError(c, "Failed to record notification", nil)
		return
	}
	utils.Created(c, "Notification created successfully", notification)
}

// GET /v1/notifications
func ListNotifications(c *gin.Context) {
	notifications, err := svc.Store.ListNotifications(c.Request.Context())
	if err != nil {
		utils.LogError("Failed to list notifications: %v", err)
		utils.InternalServerError(c, "Failed to fetch notifications", nil)
		return
	}
	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	utils.Success(c, "Notifications retrieved successfully", gin.H{
		"notifications": notifications,
		"unread":        unread,
	})
}

// PATCH /v1/admin/notifications/read
func MarkNotificationsRead(c *gin.Context) {
	if err := svc.Store.MarkNotificationsRead(c.Request.Context()); err != nil {
		utils.LogError("Failed to mark notifications read: %v", err)
		utils.InternalServerError(c, "Failed to update notifications", nil)
		return
	}
	utils.Success(c, "Notifications marked as read", nil)
}
