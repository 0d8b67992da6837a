package controllers

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/pkg/resp"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/services"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AttendanceController struct{ Svc *services.AttendanceService }

func NewAttendanceController(s *services.AttendanceService) *AttendanceController {
	return &AttendanceController{Svc: s}
}

// GET /attendance?spotId= - ยังไม่บันทึกก็ 200 data:null
func (h *AttendanceController) Mine(c *gin.Context) {
	spotID, ok := parseUintQuery(c, "spotId")
	if !ok {
		return
	}
	a, err := h.Svc.Get(spotID, utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, a)
}

// GET /admin/attendance?spotId=
func (h *AttendanceController) ListBySpot(c *gin.Context) {
	spotID, ok := parseUintQuery(c, "spotId")
	if !ok {
		return
	}
	rows, err := h.Svc.ListBySpot(spotID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// POST /attendance
func (h *AttendanceController) Upsert(c *gin.Context) {
	var body struct {
		SpotID   uint  `json:"spotId" binding:"required"`
		Attended *bool `json:"attended" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	a, err := h.Svc.Upsert(body.SpotID, utils.CurrentUserID(c), *body.Attended)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "spot not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, a)
}
