package controllers

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/pkg/resp"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/services"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SpotController struct{ Svc *services.SpotService }

func NewSpotController(s *services.SpotService) *SpotController { return &SpotController{Svc: s} }

// GET /spots/upcoming - ไม่มีก็ 200 data:null
func (h *SpotController) Upcoming(c *gin.Context) {
	spot, err := h.Svc.Upcoming()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, spot)
}

// GET /spots/past
func (h *SpotController) Past(c *gin.Context) {
	spots, err := h.Svc.Past()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, spots)
}

// GET /spots/:id
func (h *SpotController) Detail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	spot, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "spot not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, spot)
}

// POST /admin/spots
func (h *SpotController) Create(c *gin.Context) {
	var req services.CreateSpotIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	spot, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, spot)
}

// PATCH /admin/spots/:id
func (h *SpotController) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	spot, err := h.Svc.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "spot not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, spot)
}

// DELETE /admin/spots/:id
func (h *SpotController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "spot not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
