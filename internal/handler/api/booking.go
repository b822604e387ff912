package api

import (
	"errors"
	"net/http"

	reqdto "hotel-admin/internal/handler/dto/request"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Create a new booking for an existing or new guest
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingRM, err := h.bookingUseCase.CreateBooking(c.Request.Context(), req.ToParams())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingRM(bookingRM))
}

// @Summary Update booking
// @Description Reschedule or edit a booking; the price is recomputed
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingRM, err := h.bookingUseCase.UpdateBooking(c.Request.Context(), id, req.ToParams())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

// @Summary Cancel booking
// @Description Cancel a booking; its period no longer blocks the room
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	bookingRM, err := h.bookingUseCase.CancelBooking(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

// @Summary Delete booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.bookingUseCase.DeleteBooking(c.Request.Context(), id); err != nil {
		respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	bookingRM, err := h.bookingUseCase.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	list, err := h.bookingUseCase.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListRMs(list))
}

// @Summary Booking summary
// @Description Aggregate count, nights and revenue over active bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SummaryResponse
// @Router /bookings/summary [get]
func (h *BookingHandler) GetSummary(c *gin.Context) {
	summary, err := h.bookingUseCase.GetSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSummaryRM(summary))
}

func respondBookingError(c *gin.Context, err error) {
	var verr *usecase.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, usecase.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, usecase.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Guest not found",
		})
	case errors.Is(err, usecase.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, usecase.ErrRoomUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room is not available for the requested period",
		})
	case errors.Is(err, usecase.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A guest with this email address already exists",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
