package controllers

import (
	"github.com/fuzziecoder/Brocode-Spot-Update-App/pkg/resp"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/services"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/utils"
	"github.com/gin-gonic/gin"
)

type NotificationController struct{ Svc *services.NotificationService }

func NewNotificationController(s *services.NotificationService) *NotificationController {
	return &NotificationController{Svc: s}
}

// GET /notifications
func (h *NotificationController) Mine(c *gin.Context) {
	ns, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ns)
}

// PATCH /notifications/:id/read
func (h *NotificationController) MarkRead(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.MarkRead(id, utils.CurrentUserID(c)); err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"read": id})
}

// POST /admin/notifications
func (h *NotificationController) Create(c *gin.Context) {
	var body struct {
		UserID  uint   `json:"userId" binding:"required"`
		Title   string `json:"title" binding:"required"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	n, err := h.Svc.Notify(body.UserID, body.Title, body.Message)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, n)
}
