package service

import (
	"context"

	"mycomart/internal/domain/entity"
)

// PollSubscription is one live polling loop. Stop is idempotent; after Stop
// returns no further deliveries fire.
type PollSubscription interface {
	Stop()
}

// TelemetryPoller drives periodic sensor refresh for a mounted room view:
// an immediate reading, then one per configured interval, until stopped.
type TelemetryPoller interface {
	Start(ctx context.Context, roomID int64, deliver func(*entity.SensorSnapshot, error)) PollSubscription
}

// TelemetrySource is the pluggable feed of grow-room environment readings.
// One implementation simulates readings with a clamped random walk (the
// stand-in the dashboards shipped with); another polls the IoT backend. Views
// depend only on this interface.
type TelemetrySource interface {
	// Snapshot returns the current reading for a room.
	Snapshot(ctx context.Context, roomID int64) (*entity.SensorSnapshot, error)

	// History returns hourly readings for the trailing window, oldest first.
	History(ctx context.Context, roomID int64, hours int) ([]*entity.SensorSnapshot, error)
}
