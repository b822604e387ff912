package api

import (
	"errors"
	"net/http"

	reqdto "hotel-admin/internal/handler/dto/request"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/cookie"
	"hotel-admin/internal/pkg/jwt"
	"hotel-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	jwtService  *jwt.Service
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtService *jwt.Service, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		jwtService:  jwtService,
		cookieCfg:   cookieCfg,
	}
}

// @Summary Staff login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToCredentials()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	token, staffRM, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrStaffNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, usecase.ErrStaffInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, token, h.jwtService.TokenDuration())

	response := resdto.LoginResponse{
		AccessToken: token,
		Staff:       staffRM,
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Staff logout
// @Description Logout current staff session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current staff
// @Description Get current authenticated staff information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} readmodel.AuthorizedStaffRM
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Staff not authenticated",
		})
		return
	}

	staffRM, err := h.authUseCase.GetCurrentStaff(c.Request.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Staff not found",
			})
		case errors.Is(err, usecase.ErrStaffInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, staffRM)
}
