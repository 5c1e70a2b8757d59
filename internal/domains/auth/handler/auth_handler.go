package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"club-backend/internal/domains/auth"
	"club-backend/internal/shared/middleware"
	"club-backend/internal/shared/response"
	"club-backend/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type AuthHandler struct {
	service auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{
		service: svc,
	}
}

// ========== LOGIN: POST /api/v1/auth/login ==========
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		var vErrs validation.Errors
		switch {
		case errors.As(err, &vErrs):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		case errors.Is(err, auth.ErrInvalidCredentials):
			response.Unauthorized(c, "invalid email or password")
		default:
			logger.Error("login failed", err)
			response.InternalServerError(c, "login failed")
		}
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== ME: GET /api/v1/auth/me ==========
// Chạy sau AuthMiddleware, identity lấy từ token claims
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, auth.MeResponse{
		Email: middleware.GetEditorEmail(c),
		Name:  middleware.GetEditorName(c),
	})
}
