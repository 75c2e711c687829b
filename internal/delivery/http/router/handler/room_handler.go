// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"mycomart/internal/delivery/http/response"
	"mycomart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RoomHandler holds dependencies for grow-room handlers.
type RoomHandler struct {
	uc     usecase.RoomUsecase
	logger *slog.Logger
}

// NewRoomHandler is the constructor for RoomHandler, injected by Fx.
func NewRoomHandler(uc usecase.RoomUsecase, logger *slog.Logger) *RoomHandler {
	return &RoomHandler{
		uc:     uc,
		logger: logger,
	}
}

func roomID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// List returns every registered grow room.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.uc.ListRooms(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rooms, "")
}

// Get returns one room with its current reading and history.
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := roomID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room id")
	}

	detail, err := h.uc.GetRoom(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// Create registers a new grow room.
func (h *RoomHandler) Create(c echo.Context) error {
	var input *usecase.CreateRoomInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}

	room, err := h.uc.CreateRoom(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, room, "Room created")
}

// Delete removes a room.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := roomID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room id")
	}

	if err := h.uc.DeleteRoom(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Room deleted")
}

// Sensors returns the room's live reading plus history window.
func (h *RoomHandler) Sensors(c echo.Context) error {
	id, err := roomID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room id")
	}

	detail, err := h.uc.GetRoom(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"current": detail.Current,
		"history": detail.History,
	}, "")
}
