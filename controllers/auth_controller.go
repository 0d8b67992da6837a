package controllers

import (
	"github.com/fuzziecoder/Brocode-Spot-Update-App/pkg/resp"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/services"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/utils"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := a.Svc.Register(req.Username, req.Email, req.Password, req.FullName, req.PhoneNumber)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.Created(c, gin.H{
		"id": p.ID, "username": p.Username, "email": p.Email,
		"fullName": p.FullName, "role": p.Role,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, p, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	resp.OK(c, gin.H{"token": token, "profile": p})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	p, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "profile not found")
		return
	}
	resp.OK(c, p)
}

// PATCH /auth/me - identity fields เท่านั้น
func (a *AuthController) UpdateMe(c *gin.Context) {
	var body struct {
		Username    *string `json:"username"`
		FullName    *string `json:"fullName"`
		PhoneNumber *string `json:"phoneNumber"`
		AvatarURL   *string `json:"avatarUrl"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if body.Username != nil {
		updates["username"] = *body.Username
	}
	if body.FullName != nil {
		updates["full_name"] = *body.FullName
	}
	if body.PhoneNumber != nil {
		updates["phone_number"] = *body.PhoneNumber
	}
	if body.AvatarURL != nil {
		updates["avatar_url"] = *body.AvatarURL
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	p, err := a.Svc.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, p)
}
