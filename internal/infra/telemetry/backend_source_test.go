package telemetry

import (
	"context"
	"testing"
	"time"

	"mycomart/internal/domain/entity"
	mockRepo "mycomart/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendSource_SnapshotDelegatesToBackend(t *testing.T) {
	roomAPI := mockRepo.NewMockRoomAPI(t)
	source := NewBackendSource(roomAPI, testLogger())
	ctx := context.Background()

	latest := &entity.SensorSnapshot{Time: time.Now(), Temperature: 23.1}
	roomAPI.EXPECT().GetSensors(ctx, int64(3)).Return(latest, nil)

	got, err := source.Snapshot(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, latest, got)
}

func TestBackendSource_HistoryAnchorsOnLiveReading(t *testing.T) {
	roomAPI := mockRepo.NewMockRoomAPI(t)
	source := NewBackendSource(roomAPI, testLogger())
	ctx := context.Background()

	latest := &entity.SensorSnapshot{
		Time:        time.Now(),
		Temperature: 23.1,
		Humidity:    75,
		CO2:         900,
		Light:       1100,
	}
	roomAPI.EXPECT().GetSensors(ctx, int64(3)).Return(latest, nil)

	series, err := source.History(ctx, 3, 24)
	require.NoError(t, err)
	require.Len(t, series, 24)

	// The newest point is the live reading itself.
	assert.Equal(t, latest, series[23])

	for i := 1; i < len(series); i++ {
		assert.True(t, series[i-1].Time.Before(series[i].Time))
	}
}

func TestBackendSource_HistoryPropagatesBackendError(t *testing.T) {
	roomAPI := mockRepo.NewMockRoomAPI(t)
	source := NewBackendSource(roomAPI, testLogger())
	ctx := context.Background()

	roomAPI.EXPECT().GetSensors(ctx, int64(3)).Return(nil, errors.New("kit offline"))

	_, err := source.History(ctx, 3, 24)
	assert.Error(t, err)
}
