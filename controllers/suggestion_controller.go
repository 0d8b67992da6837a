package controllers

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/pkg/resp"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/services"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SuggestionController struct{ Svc *services.SuggestionService }

func NewSuggestionController(s *services.SuggestionService) *SuggestionController {
	return &SuggestionController{Svc: s}
}

func (h *SuggestionController) handleDeleteErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case err.Error() == "forbidden":
		resp.Forbidden(c, "not yours")
	default:
		resp.ServerError(c, err)
	}
}

// ----- Drinks -----

// GET /drinks?spotId=
func (h *SuggestionController) ListDrinks(c *gin.Context) {
	spotID, ok := parseUintQuery(c, "spotId")
	if !ok {
		return
	}
	drinks, err := h.Svc.ListDrinks(spotID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, drinks)
}

// POST /drinks
func (h *SuggestionController) CreateDrink(c *gin.Context) {
	var req services.CreateSuggestionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := h.Svc.CreateDrink(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, d)
}

// POST /drinks/:id/vote - toggle: กดซ้ำ = ยกเลิกโหวต
func (h *SuggestionController) VoteDrink(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	d, err := h.Svc.VoteForDrink(id, utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "drink not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}

// PATCH /admin/drinks/:id/price
func (h *SuggestionController) SetDrinkPrice(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		Price *int64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetDrinkPrice(id, *body.Price); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

// DELETE /drinks/:id
func (h *SuggestionController) DeleteDrink(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteDrink(id, utils.CurrentUserID(c), utils.IsAdmin(c)); err != nil {
		h.handleDeleteErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ----- Foods -----

// GET /foods?spotId=
func (h *SuggestionController) ListFoods(c *gin.Context) {
	spotID, ok := parseUintQuery(c, "spotId")
	if !ok {
		return
	}
	foods, err := h.Svc.ListFoods(spotID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, foods)
}

// POST /foods
func (h *SuggestionController) CreateFood(c *gin.Context) {
	var req services.CreateSuggestionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	f, err := h.Svc.CreateFood(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, f)
}

// PATCH /admin/foods/:id/price
func (h *SuggestionController) SetFoodPrice(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		Price *int64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetFoodPrice(id, *body.Price); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

// DELETE /foods/:id
func (h *SuggestionController) DeleteFood(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteFood(id, utils.CurrentUserID(c), utils.IsAdmin(c)); err != nil {
		h.handleDeleteErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ----- Cigarettes -----

// GET /cigarettes?spotId=
func (h *SuggestionController) ListCigarettes(c *gin.Context) {
	spotID, ok := parseUintQuery(c, "spotId")
	if !ok {
		return
	}
	cigs, err := h.Svc.ListCigarettes(spotID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cigs)
}

// POST /cigarettes
func (h *SuggestionController) CreateCigarette(c *gin.Context) {
	var req services.CreateSuggestionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cg, err := h.Svc.CreateCigarette(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cg)
}

// DELETE /cigarettes/:id
func (h *SuggestionController) DeleteCigarette(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteCigarette(id, utils.CurrentUserID(c), utils.IsAdmin(c)); err != nil {
		h.handleDeleteErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
