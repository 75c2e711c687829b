package telemetry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSimulatedSource_SnapshotStaysWithinBounds(t *testing.T) {
	source := NewSimulatedSource(testLogger())
	ctx := context.Background()

	// Enough drift steps to hit the clamps on every channel.
	for i := 0; i < 500; i++ {
		snapshot, err := source.Snapshot(ctx, 3)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, snapshot.Temperature, tempMin)
		assert.LessOrEqual(t, snapshot.Temperature, tempMax)
		assert.GreaterOrEqual(t, snapshot.Humidity, humidityMin)
		assert.LessOrEqual(t, snapshot.Humidity, humidityMax)
		assert.GreaterOrEqual(t, snapshot.CO2, co2Min)
		assert.LessOrEqual(t, snapshot.CO2, co2Max)
		assert.GreaterOrEqual(t, snapshot.Light, lightMin)
		assert.LessOrEqual(t, snapshot.Light, lightMax)
	}
}

func TestSimulatedSource_RoomsWalkIndependently(t *testing.T) {
	source := NewSimulatedSource(testLogger())
	ctx := context.Background()

	a, err := source.Snapshot(ctx, 1)
	require.NoError(t, err)
	b, err := source.Snapshot(ctx, 2)
	require.NoError(t, err)

	// Two fresh rooms starting at the same reading is as good as impossible.
	assert.NotEqual(t, a.Temperature, b.Temperature)
}

func TestSimulatedSource_HistoryEndsAtLiveState(t *testing.T) {
	source := NewSimulatedSource(testLogger())
	ctx := context.Background()

	first, err := source.History(ctx, 3, 24)
	require.NoError(t, err)
	require.Len(t, first, 24)

	// Hourly, oldest first.
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Time.Before(first[i].Time))
	}

	// History walks a copy, so a second call still ends at the same live
	// reading.
	second, err := source.History(ctx, 3, 24)
	require.NoError(t, err)
	assert.Equal(t, first[23].Temperature, second[23].Temperature)
	assert.Equal(t, first[23].CO2, second[23].CO2)
}

func TestSimulatedSource_HistoryValuesWithinBounds(t *testing.T) {
	source := NewSimulatedSource(testLogger())

	series, err := source.History(context.Background(), 3, 48)
	require.NoError(t, err)

	for _, point := range series {
		assert.GreaterOrEqual(t, point.Temperature, tempMin)
		assert.LessOrEqual(t, point.Temperature, tempMax)
		assert.GreaterOrEqual(t, point.Humidity, humidityMin)
		assert.LessOrEqual(t, point.Humidity, humidityMax)
	}
}
