package controllers

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/pkg/resp"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

// GET /payments?spotId=
func (h *PaymentController) List(c *gin.Context) {
	spotID, ok := parseUintQuery(c, "spotId")
	if !ok {
		return
	}
	pays, err := h.Svc.ListBySpot(spotID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pays)
}

// POST /admin/payments - upsert ตรง ๆ (เครื่องมือ admin)
func (h *PaymentController) Upsert(c *gin.Context) {
	var body struct {
		SpotID uint   `json:"spotId" binding:"required"`
		UserID uint   `json:"userId" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.Upsert(body.SpotID, body.UserID, body.Status)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, p)
}

// PATCH /admin/payments/:id/paid
func (h *PaymentController) MarkPaid(c *gin.Context) {
	h.mark(c, true)
}

// PATCH /admin/payments/:id/unpaid
func (h *PaymentController) MarkUnpaid(c *gin.Context) {
	h.mark(c, false)
}

func (h *PaymentController) mark(c *gin.Context, paid bool) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var p any
	var err error
	if paid {
		p, err = h.Svc.MarkPaid(id)
	} else {
		p, err = h.Svc.MarkUnpaid(id)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "payment not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}
