package controllers

import (
	"github.com/gin-gonic/gin"

	"familybudget/internal/services"
	"familybudget/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

func (n *NotificationController) List(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	utils.RespondSuccess(c, n.notificationService.List(c.Request.Context(), user), "")
}

func (n *NotificationController) ListUnread(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	utils.RespondSuccess(c, n.notificationService.ListUnread(c.Request.Context(), user), "")
}

func (n *NotificationController) MarkRead(c *gin.Context) {
	n.setRead(c, true)
}

func (n *NotificationController) MarkUnread(c *gin.Context) {
	n.setRead(c, false)
}

func (n *NotificationController) setRead(c *gin.Context, read bool) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	notification, err := n.notificationService.SetRead(c.Request.Context(), user, id, read)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notification, "")
}

func (n *NotificationController) Delete(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := n.notificationService.Delete(c.Request.Context(), user, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification deleted")
}
