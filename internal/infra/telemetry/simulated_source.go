// Package telemetry provides grow-room sensor feeds: a simulated clamped
// random walk for development and a backend-polling source for production.
package telemetry

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"mycomart/internal/domain/entity"
	"mycomart/internal/domain/service"
)

// Environment bounds for the simulated walk. Oyster and shiitake rooms sit in
// the same comfort band, so one set of clamps covers all rooms.
const (
	tempMin = 20.0
	tempMax = 25.0

	humidityMin = 60.0
	humidityMax = 90.0

	co2Min = 600.0
	co2Max = 1500.0

	lightMin = 800.0
	lightMax = 1500.0
)

type roomState struct {
	temperature float64
	humidity    float64
	co2         float64
	light       float64
}

// simulatedSource generates readings as a per-room random walk. Each call
// drifts the previous reading a little and clamps it back into range, so the
// charts look like a real room instead of white noise.
type simulatedSource struct {
	logger *slog.Logger

	mu    sync.Mutex
	rooms map[int64]*roomState
	rng   *rand.Rand
}

// NewSimulatedSource is the constructor for simulatedSource.
func NewSimulatedSource(logger *slog.Logger) service.TelemetrySource {
	return &simulatedSource{
		logger: logger,
		rooms:  make(map[int64]*roomState),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}

	return v
}

func (s *simulatedSource) stateFor(roomID int64) *roomState {
	state, ok := s.rooms[roomID]
	if !ok {
		state = &roomState{
			temperature: tempMin + s.rng.Float64()*(tempMax-tempMin),
			humidity:    humidityMin + s.rng.Float64()*(humidityMax-humidityMin),
			co2:         co2Min + s.rng.Float64()*(co2Max-co2Min),
			light:       lightMin + s.rng.Float64()*(lightMax-lightMin),
		}
		s.rooms[roomID] = state
	}

	return state
}

func (s *simulatedSource) drift(state *roomState) {
	state.temperature = clamp(state.temperature+(s.rng.Float64()-0.5), tempMin, tempMax)
	state.humidity = clamp(state.humidity+(s.rng.Float64()-0.5)*4, humidityMin, humidityMax)
	state.co2 = clamp(state.co2+(s.rng.Float64()-0.5)*60, co2Min, co2Max)
	state.light = clamp(state.light+(s.rng.Float64()-0.5)*80, lightMin, lightMax)
}

func snapshotOf(state *roomState, at time.Time) *entity.SensorSnapshot {
	return &entity.SensorSnapshot{
		Time:        at,
		Temperature: state.temperature,
		Humidity:    state.humidity,
		CO2:         state.co2,
		Light:       state.light,
	}
}

// Snapshot drifts the room's walk one step and returns the new reading.
func (s *simulatedSource) Snapshot(_ context.Context, roomID int64) (*entity.SensorSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.stateFor(roomID)
	s.drift(state)

	return snapshotOf(state, time.Now()), nil
}

// History synthesizes an hourly series for the trailing window, oldest first.
// The series ends at the room's current state so the last chart point matches
// the live reading.
func (s *simulatedSource) History(_ context.Context, roomID int64, hours int) ([]*entity.SensorSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.stateFor(roomID)

	// Walk an independent copy backwards so History never perturbs the live
	// state.
	walk := *state
	now := time.Now()

	series := make([]*entity.SensorSnapshot, hours)
	for i := hours - 1; i >= 0; i-- {
		series[i] = snapshotOf(&walk, now.Add(-time.Duration(hours-1-i)*time.Hour))
		s.drift(&walk)
	}

	return series, nil
}
