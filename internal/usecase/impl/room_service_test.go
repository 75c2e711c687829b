package impl

import (
	"context"
	"testing"
	"time"

	"mycomart/config"
	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"
	mockRepo "mycomart/internal/mocks/repository"
	mockSvc "mycomart/internal/mocks/service"
	"mycomart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type roomServiceMocks struct {
	roomAPI *mockRepo.MockRoomAPI
	source  *mockSvc.MockTelemetrySource
	poller  *mockSvc.MockTelemetryPoller
}

func newRoomService(t *testing.T) (*roomServiceMocks, usecase.RoomUsecase) {
	m := &roomServiceMocks{
		roomAPI: mockRepo.NewMockRoomAPI(t),
		source:  mockSvc.NewMockTelemetrySource(t),
		poller:  mockSvc.NewMockTelemetryPoller(t),
	}

	cfg := &config.Config{
		Telemetry: &config.TelemetryConfig{HistoryHours: 24},
	}
	svc := NewRoomService(m.roomAPI, m.source, m.poller, cfg, testLogger())

	return m, svc
}

func sampleRoom() *entity.Room {
	return &entity.Room{ID: 3, Name: "Fruiting Room A", KitID: "KIT-0042", Mushroom: "oyster"}
}

func TestRoomService_GetRoom_JoinsTelemetry(t *testing.T) {
	m, svc := newRoomService(t)
	ctx := context.Background()

	current := &entity.SensorSnapshot{Time: time.Now(), Temperature: 22.5, Humidity: 78}
	history := []*entity.SensorSnapshot{
		{Time: current.Time.Add(-time.Hour), Temperature: 21.8},
		current,
	}

	m.roomAPI.EXPECT().GetRoom(ctx, int64(3)).Return(sampleRoom(), nil)
	m.source.EXPECT().Snapshot(ctx, int64(3)).Return(current, nil)
	m.source.EXPECT().History(ctx, int64(3), 24).Return(history, nil)

	detail, err := svc.GetRoom(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Fruiting Room A", detail.Room.Name)
	assert.Equal(t, current, detail.Current)
	assert.Len(t, detail.History, 2)
}

func TestRoomService_GetRoom_NotFound(t *testing.T) {
	m, svc := newRoomService(t)
	ctx := context.Background()

	m.roomAPI.EXPECT().GetRoom(ctx, int64(99)).Return(nil, domainerrors.ErrRoomNotFound)

	_, err := svc.GetRoom(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
}

func TestRoomService_CreateRoom(t *testing.T) {
	m, svc := newRoomService(t)
	ctx := context.Background()

	m.roomAPI.EXPECT().
		CreateRoom(ctx, mock.MatchedBy(func(r *entity.Room) bool {
			return r.Name == "Fruiting Room A" && r.KitID == "KIT-0042" && r.Mushroom == "oyster"
		})).
		Return(sampleRoom(), nil)

	room, err := svc.CreateRoom(ctx, &usecase.CreateRoomInput{
		Name:     "Fruiting Room A",
		KitID:    "KIT-0042",
		Mushroom: "oyster",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), room.ID)
}

func TestRoomService_CreateRoom_RejectsIncompleteForm(t *testing.T) {
	_, svc := newRoomService(t)

	_, err := svc.CreateRoom(context.Background(), &usecase.CreateRoomInput{Name: "Fruiting Room A"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRoomService_CreateRoom_DuplicateKitID(t *testing.T) {
	m, svc := newRoomService(t)
	ctx := context.Background()

	m.roomAPI.EXPECT().
		CreateRoom(ctx, mock.Anything).
		Return(nil, domainerrors.ErrDuplicateKitID.WithDetails("kit KIT-0042 already registered"))

	_, err := svc.CreateRoom(ctx, &usecase.CreateRoomInput{
		Name:     "Fruiting Room B",
		KitID:    "KIT-0042",
		Mushroom: "shiitake",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateKitID)
}

func TestRoomService_WatchRoom_VerifiesRoomBeforePolling(t *testing.T) {
	m, svc := newRoomService(t)
	ctx := context.Background()

	deliver := func(*entity.SensorSnapshot, error) {}
	sub := mockSvc.NewMockPollSubscription(t)

	m.roomAPI.EXPECT().GetRoom(ctx, int64(3)).Return(sampleRoom(), nil)
	m.poller.EXPECT().Start(ctx, int64(3), mock.AnythingOfType("func(*entity.SensorSnapshot, error)")).Return(sub)

	got, err := svc.WatchRoom(ctx, 3, deliver)
	require.NoError(t, err)
	assert.Equal(t, sub, got)
}

func TestRoomService_WatchRoom_UnknownRoomNeverPolls(t *testing.T) {
	m, svc := newRoomService(t)
	ctx := context.Background()

	m.roomAPI.EXPECT().GetRoom(ctx, int64(99)).Return(nil, domainerrors.ErrRoomNotFound)
	// No poller expectation: a missing room must not start a loop.

	_, err := svc.WatchRoom(ctx, 99, func(*entity.SensorSnapshot, error) {})
	assert.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
}
