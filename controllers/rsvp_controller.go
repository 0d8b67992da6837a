package controllers

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/pkg/resp"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/services"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RSVPController struct{ Svc *services.RSVPService }

func NewRSVPController(s *services.RSVPService) *RSVPController { return &RSVPController{Svc: s} }

// GET /invitations?spotId=
func (h *RSVPController) List(c *gin.Context) {
	spotID, ok := parseUintQuery(c, "spotId")
	if !ok {
		return
	}
	invs, err := h.Svc.ListBySpot(spotID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, invs)
}

// POST /invitations - RSVP ของตัวเอง
func (h *RSVPController) Upsert(c *gin.Context) {
	var body struct {
		SpotID uint   `json:"spotId" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	inv, err := h.Svc.Upsert(body.SpotID, utils.CurrentUserID(c), body.Status)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, inv)
}

// PATCH /invitations/:id
func (h *RSVPController) UpdateStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	inv, err := h.Svc.UpdateStatus(id, body.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "invitation not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, inv)
}
