package telemetry

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"mycomart/internal/domain/entity"
	"mycomart/internal/domain/repository"
	"mycomart/internal/domain/service"
)

// backendSource reads live sensors from the IoT backend. The backend only
// serves the latest reading per room, so History is synthesized around the
// live value with the same clamped walk the dashboards always charted.
type backendSource struct {
	roomAPI repository.RoomAPI
	logger  *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBackendSource is the constructor for backendSource.
func NewBackendSource(roomAPI repository.RoomAPI, logger *slog.Logger) service.TelemetrySource {
	return &backendSource{
		roomAPI: roomAPI,
		logger:  logger,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Snapshot returns the backend's latest reading for the room.
func (s *backendSource) Snapshot(ctx context.Context, roomID int64) (*entity.SensorSnapshot, error) {
	return s.roomAPI.GetSensors(ctx, roomID)
}

// History anchors a synthesized hourly series on the live reading, oldest
// first, ending at the current value.
func (s *backendSource) History(ctx context.Context, roomID int64, hours int) ([]*entity.SensorSnapshot, error) {
	latest, err := s.roomAPI.GetSensors(ctx, roomID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	walk := roomState{
		temperature: latest.Temperature,
		humidity:    latest.Humidity,
		co2:         latest.CO2,
		light:       latest.Light,
	}
	sim := &simulatedSource{rng: s.rng}

	series := make([]*entity.SensorSnapshot, hours)
	series[hours-1] = latest
	for i := hours - 2; i >= 0; i-- {
		sim.drift(&walk)
		series[i] = snapshotOf(&walk, latest.Time.Add(-time.Duration(hours-1-i)*time.Hour))
	}

	return series, nil
}
