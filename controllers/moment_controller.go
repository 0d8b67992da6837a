package controllers

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/pkg/resp"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/services"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MomentController struct{ Svc *services.MomentService }

func NewMomentController(s *services.MomentService) *MomentController {
	return &MomentController{Svc: s}
}

// GET /moments?spotId=
func (h *MomentController) List(c *gin.Context) {
	spotID, ok := parseUintQuery(c, "spotId")
	if !ok {
		return
	}
	ms, err := h.Svc.ListBySpot(spotID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ms)
}

// POST /moments
func (h *MomentController) Create(c *gin.Context) {
	var body struct {
		SpotID   uint   `json:"spotId" binding:"required"`
		ImageURL string `json:"imageUrl" binding:"required"`
		Caption  string `json:"caption"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m, err := h.Svc.Create(utils.CurrentUserID(c), body.SpotID, body.ImageURL, body.Caption)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, m)
}

// DELETE /moments/:id
func (h *MomentController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(id, utils.CurrentUserID(c), utils.IsAdmin(c)); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "moment not found")
		case err.Error() == "forbidden":
			resp.Forbidden(c, "not yours")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
