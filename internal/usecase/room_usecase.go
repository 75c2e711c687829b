// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mycomart/internal/domain/entity"
	"mycomart/internal/domain/service"
)

// CreateRoomInput is the form submitted to register a grow room.
type CreateRoomInput struct {
	Name     string `json:"name" validate:"required"`
	KitID    string `json:"kit_id" validate:"required"`
	Mushroom string `json:"mushroom" validate:"required"`
}

// RoomDetail is a room joined with its sensor data for the detail view.
type RoomDetail struct {
	Room    *entity.Room             `json:"room"`
	Current *entity.SensorSnapshot   `json:"current"`
	History []*entity.SensorSnapshot `json:"history"` // Hourly, oldest first.
}

// RoomUsecase manages grow rooms and their telemetry.
type RoomUsecase interface {
	ListRooms(ctx context.Context) ([]*entity.Room, error)

	// GetRoom returns the room with its current reading and trailing
	// history window.
	GetRoom(ctx context.Context, roomID int64) (*RoomDetail, error)

	CreateRoom(ctx context.Context, input *CreateRoomInput) (*entity.Room, error)
	DeleteRoom(ctx context.Context, roomID int64) error

	// WatchRoom starts periodic sensor delivery for a mounted room view.
	// The subscription must be stopped when the view unmounts.
	WatchRoom(ctx context.Context, roomID int64, deliver func(*entity.SensorSnapshot, error)) (service.PollSubscription, error)
}
