package controllers

import (
	"errors"
	"strconv"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/pkg/resp"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/services"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ChatController struct{ Svc *services.ChatService }

func NewChatController(s *services.ChatService) *ChatController { return &ChatController{Svc: s} }

// GET /chat/messages?limit=
func (h *ChatController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	msgs, err := h.Svc.Messages(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, msgs)
}

// POST /chat/messages
func (h *ChatController) Send(c *gin.Context) {
	var body struct {
		Body   string   `json:"body"`
		Images []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg, err := h.Svc.Send(utils.CurrentUserID(c), body.Body, body.Images)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, msg)
}

// POST /chat/messages/:id/reactions - toggle
func (h *ChatController) ToggleReaction(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		Symbol string `json:"symbol" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg, err := h.Svc.ToggleReaction(id, utils.CurrentUserID(c), body.Symbol)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "message not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, msg)
}
