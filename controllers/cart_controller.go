package controllers

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/pkg/resp"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/services"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /drink-brands?category=
func (h *CartController) Brands(c *gin.Context) {
	brands, err := h.Svc.Brands(c.Query("category"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, brands)
}

// GET /selections?spotId= - ของตัวเอง พร้อมสรุปตะกร้า
func (h *CartController) Mine(c *gin.Context) {
	spotID, ok := parseUintQuery(c, "spotId")
	if !ok {
		return
	}
	lines, summary, err := h.Svc.UserSelections(spotID, utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"selections": lines, "summary": summary})
}

// GET /admin/selections?spotId= - ทุกคนของ spot
func (h *CartController) All(c *gin.Context) {
	spotID, ok := parseUintQuery(c, "spotId")
	if !ok {
		return
	}
	lines, err := h.Svc.AllSelections(spotID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, lines)
}

// POST /selections
func (h *CartController) Upsert(c *gin.Context) {
	var req services.UpsertSelectionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.Upsert(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, line)
}

// PATCH /selections/:id - qty <= 0 คือลบ line
func (h *CartController) UpdateQuantity(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), id, *body.Quantity); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "selection not found")
		case err.Error() == "forbidden":
			resp.Forbidden(c, "not your selection")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

// DELETE /selections/:id
func (h *CartController) Remove(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Remove(utils.CurrentUserID(c), id, utils.IsAdmin(c)); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "selection not found")
		case err.Error() == "forbidden":
			resp.Forbidden(c, "not your selection")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
