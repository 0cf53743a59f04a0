package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/service"
	"github.com/posline/pos-report-service/pkg/response"
)

type AuthHandler struct {
	svc service.AuthService
	cfg config.DatabaseConfig
}

func NewAuthHandler(svc service.AuthService, cfg config.DatabaseConfig) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

func (h *AuthHandler) Register(r *gin.RouterGroup) {
	r.POST("/login", h.login)
	r.POST("/password", h.updatePassword)
	r.PUT("/profile", h.updateProfile)
	r.PATCH("/profile", h.updateProfile)
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (h *AuthHandler) login(c *gin.Context) {
	creds, err := resolveCredentials(c, h.cfg)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req loginRequest
	_ = c.ShouldBind(&req) // empty fields are reported by the service
	result, err := h.svc.Login(c.Request.Context(), creds, req.Email, req.Password)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteSuccess(c, "Login successful", result)
}

type passwordRequest struct {
	UserID            int64  `json:"user_id" form:"user_id"`
	CurrentPassword   string `json:"current_password" form:"current_password"`
	NewPassword       string `json:"new_password" form:"new_password"`
	RetypeNewPassword string `json:"retype_new_password" form:"retype_new_password"`
}

func (h *AuthHandler) updatePassword(c *gin.Context) {
	creds, err := resolveCredentials(c, h.cfg)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req passwordRequest
	_ = c.ShouldBind(&req)
	in := service.PasswordUpdate{
		UserID:            headerOrBodyUserID(c, req.UserID),
		CurrentPassword:   req.CurrentPassword,
		NewPassword:       req.NewPassword,
		RetypeNewPassword: req.RetypeNewPassword,
	}
	result, err := h.svc.UpdatePassword(c.Request.Context(), creds, in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteSuccess(c, "Password updated successfully", result)
}

type profileRequest struct {
	UserID int64  `json:"user_id" form:"user_id"`
	Name   string `json:"name" form:"name"`
	Email  string `json:"email" form:"email"`
}

func (h *AuthHandler) updateProfile(c *gin.Context) {
	creds, err := resolveCredentials(c, h.cfg)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req profileRequest
	_ = c.ShouldBind(&req)
	in := service.ProfileUpdate{
		UserID: headerOrBodyUserID(c, req.UserID),
		Name:   req.Name,
		Email:  req.Email,
	}
	user, err := h.svc.UpdateProfile(c.Request.Context(), creds, in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteSuccess(c, "Profile updated successfully", gin.H{"user": user})
}
