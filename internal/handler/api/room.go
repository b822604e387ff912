package api

import (
	"errors"
	"net/http"

	reqdto "hotel-admin/internal/handler/dto/request"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomUseCase usecase.RoomUseCase
}

func NewRoomHandler(roomUseCase usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{
		roomUseCase: roomUseCase,
	}
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RoomRequest true "Room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	roomRM, err := h.roomUseCase.CreateRoom(c.Request.Context(), req.ToParams())
	if err != nil {
		respondRoomError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomRM(roomRM))
}

// @Summary Update room
// @Description Rate changes never reprice existing bookings
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.RoomRequest true "Room request"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	roomRM, err := h.roomUseCase.UpdateRoom(c.Request.Context(), id, req.ToParams())
	if err != nil {
		respondRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRM(roomRM))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	roomRM, err := h.roomUseCase.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRM(roomRM))
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	list, err := h.roomUseCase.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRMs(list))
}

// @Summary Delete room
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.roomUseCase.DeleteRoom(c.Request.Context(), id); err != nil {
		respondRoomError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondRoomError(c *gin.Context, err error) {
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
	case errors.Is(err, usecase.ErrDuplicateRoom):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A room with this number already exists",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
