// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"mycomart/config"
	deliverycontext "mycomart/internal/delivery/context"
	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/repository"
	"mycomart/internal/domain/service"
	"mycomart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// roomService implements the RoomUsecase interface.
type roomService struct {
	roomAPI  repository.RoomAPI
	source   service.TelemetrySource
	poller   service.TelemetryPoller
	cfg      *config.Config
	validate *validator.Validate
	logger   *slog.Logger
}

// NewRoomService is the constructor for roomService.
func NewRoomService(
	roomAPI repository.RoomAPI,
	source service.TelemetrySource,
	poller service.TelemetryPoller,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RoomUsecase {
	return &roomService{
		roomAPI:  roomAPI,
		source:   source,
		poller:   poller,
		cfg:      cfg,
		validate: validator.New(),
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *roomService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *roomService) ListRooms(ctx context.Context) ([]*entity.Room, error) {
	rooms, err := srv.roomAPI.ListRooms(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list rooms", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list rooms")
	}

	return rooms, nil
}

// GetRoom returns the room joined with its current reading and history.
func (srv *roomService) GetRoom(ctx context.Context, roomID int64) (*usecase.RoomDetail, error) {
	// 1. The room record itself
	room, err := srv.roomAPI.GetRoom(ctx, roomID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get room")
	}

	// 2. Live reading
	current, err := srv.source.Snapshot(ctx, roomID)
	if err != nil {
		srv.log(ctx).Error("Failed to read sensors", slog.Int64("room_id", roomID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to read sensors")
	}

	// 3. Trailing window for the charts
	history, err := srv.source.History(ctx, roomID, srv.cfg.Telemetry.HistoryHours)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sensor history")
	}

	return &usecase.RoomDetail{
		Room:    room,
		Current: current,
		History: history,
	}, nil
}

// CreateRoom registers a new grow room.
func (srv *roomService) CreateRoom(ctx context.Context, input *usecase.CreateRoomInput) (*entity.Room, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	room, err := srv.roomAPI.CreateRoom(ctx, &entity.Room{
		Name:     input.Name,
		KitID:    input.KitID,
		Mushroom: input.Mushroom,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create room",
			slog.String("kit_id", input.KitID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to create room")
	}

	srv.log(ctx).Info("Room created",
		slog.Int64("room_id", room.ID),
		slog.String("kit_id", room.KitID),
	)

	return room, nil
}

func (srv *roomService) DeleteRoom(ctx context.Context, roomID int64) error {
	if err := srv.roomAPI.DeleteRoom(ctx, roomID); err != nil {
		srv.log(ctx).Error("Failed to delete room", slog.Int64("room_id", roomID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete room")
	}

	srv.log(ctx).Info("Room deleted", slog.Int64("room_id", roomID))

	return nil
}

// WatchRoom starts periodic sensor delivery for a mounted room view.
func (srv *roomService) WatchRoom(ctx context.Context, roomID int64, deliver func(*entity.SensorSnapshot, error)) (service.PollSubscription, error) {
	// Reject watches on rooms that do not exist before spinning a loop
	if _, err := srv.roomAPI.GetRoom(ctx, roomID); err != nil {
		return nil, errors.Wrap(err, "failed to get room")
	}

	srv.log(ctx).Debug("Starting sensor watch", slog.Int64("room_id", roomID))

	return srv.poller.Start(ctx, roomID, deliver), nil
}
