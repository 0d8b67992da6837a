package controllers

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/pkg/resp"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileController struct{ Repo *repository.ProfileRepository }

func NewProfileController(r *repository.ProfileRepository) *ProfileController {
	return &ProfileController{Repo: r}
}

// GET /profiles - รายชื่อสมาชิก (โชว์ mission count)
func (h *ProfileController) List(c *gin.Context) {
	profiles, err := h.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, profiles)
}

// GET /profiles/:id
func (h *ProfileController) Detail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	p, err := h.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "profile not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// PATCH /admin/profiles/:id/role
func (h *ProfileController) SetRole(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		Role string `json:"role" binding:"required,oneof=admin user guest"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Repo.Update(id, map[string]any{"role": body.Role}); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": id})
}
