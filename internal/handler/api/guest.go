package api

import (
	"errors"
	"net/http"

	reqdto "hotel-admin/internal/handler/dto/request"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestUseCase usecase.GuestUseCase
}

func NewGuestHandler(guestUseCase usecase.GuestUseCase) *GuestHandler {
	return &GuestHandler{
		guestUseCase: guestUseCase,
	}
}

// @Summary Create guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GuestRequest true "Guest request"
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /guests [post]
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req reqdto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	guestRM, err := h.guestUseCase.CreateGuest(c.Request.Context(), req.ToParams())
	if err != nil {
		respondGuestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGuestRM(guestRM))
}

// @Summary Update guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param request body reqdto.GuestRequest true "Guest request"
// @Success 200 {object} resdto.GuestResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /guests/{id} [put]
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	guestRM, err := h.guestUseCase.UpdateGuest(c.Request.Context(), id, req.ToParams())
	if err != nil {
		respondGuestError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestRM(guestRM))
}

// @Summary Get guest
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [get]
func (h *GuestHandler) GetGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	guestRM, err := h.guestUseCase.GetGuest(c.Request.Context(), id)
	if err != nil {
		respondGuestError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestRM(guestRM))
}

// @Summary List guests
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.GuestResponse
// @Router /guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	list, err := h.guestUseCase.ListGuests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestRMs(list))
}

// @Summary Delete guest
// @Description Fails while bookings still reference the guest
// @Tags guests
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /guests/{id} [delete]
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.guestUseCase.DeleteGuest(c.Request.Context(), id); err != nil {
		respondGuestError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondGuestError(c *gin.Context, err error) {
	var verr *usecase.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, usecase.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Guest not found",
		})
	case errors.Is(err, usecase.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A guest with this email address already exists",
		})
	case errors.Is(err, usecase.ErrGuestHasBookings):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Guest is referenced by existing bookings",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
