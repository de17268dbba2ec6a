package controllers

import (
	"github.com/chitralaya/chitralaya/app/services"
	"github.com/chitralaya/chitralaya/pkg/ctx"
	"github.com/chitralaya/chitralaya/pkg/ws"
)

type NotificationController struct {
	notifications *services.NotificationService
	hub           *ws.Hub
}

func NewNotificationController(notifications *services.NotificationService, hub *ws.Hub) *NotificationController {
	return &NotificationController{notifications: notifications, hub: hub}
}

type repaintNotificationRequest struct {
	ProductID uint `json:"productId" validate:"required"`
}

// CreateRepaint records a repaint-request notification directly, for
// flows that do not go through order placement.
func (n *NotificationController) CreateRepaint(c *ctx.Context) {
	var input repaintNotificationRequest
	if !c.BindJSON(&input) {
		return
	}

	notification, err := n.notifications.CreateRepaint(currentUserID(c), input.ProductID)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created("Notification created", notification)
}

func (n *NotificationController) List(c *ctx.Context) {
	var isRead *bool
	switch c.Query("isRead") {
	case "true":
		v := true
		isRead = &v
	case "false":
		v := false
		isRead = &v
	}

	notifications, p, err := n.notifications.List(isRead, c.QueryInt("page", 1), c.QueryInt("limit", 20))
	if err != nil {
		fail(c, err)
		return
	}

	c.Paginated(notifications, p)
}

func (n *NotificationController) UnreadCount(c *ctx.Context) {
	count, err := n.notifications.UnreadCount()
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(map[string]int64{"count": count})
}

// Get returns one notification; viewing marks it read.
func (n *NotificationController) Get(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	notification, err := n.notifications.Get(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(notification)
}

type notificationUpdateRequest struct {
	IsRead bool `json:"isRead"`
}

func (n *NotificationController) Update(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input notificationUpdateRequest
	if !c.BindJSON(&input) {
		return
	}

	notification, err := n.notifications.SetRead(id, input.IsRead)
	if err != nil {
		fail(c, err)
		return
	}

	c.SuccessMessage("Notification updated", notification)
}

// Stream upgrades to a websocket feed of newly created notifications.
func (n *NotificationController) Stream(c *ctx.Context) {
	n.hub.Upgrade(c.Writer, c.Request)
}
