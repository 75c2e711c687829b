package api

import (
	"context"
	"net/http"
	"strconv"

	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/repository"

	"github.com/pkg/errors"
)

// roomAPI implements repository.RoomAPI against the backend's grow-room
// endpoints.
type roomAPI struct {
	client *Client
}

// NewRoomAPI is the constructor for roomAPI.
func NewRoomAPI(client *Client) repository.RoomAPI {
	return &roomAPI{client: client}
}

// ListRooms returns every registered grow room.
func (a *roomAPI) ListRooms(ctx context.Context) ([]*entity.Room, error) {
	var payload []entity.Room
	if err := a.client.doJSON(ctx, http.MethodGet, "/api/rooms/", nil, &payload); err != nil {
		return nil, err
	}

	rooms := make([]*entity.Room, len(payload))
	for i := range payload {
		rooms[i] = &payload[i]
	}

	return rooms, nil
}

// GetRoom returns one room record.
func (a *roomAPI) GetRoom(ctx context.Context, roomID int64) (*entity.Room, error) {
	var room entity.Room
	path := "/api/rooms/" + strconv.FormatInt(roomID, 10) + "/"
	if err := a.client.doJSON(ctx, http.MethodGet, path, nil, &room); err != nil {
		var backendErr *domainerrors.BackendError
		if errors.As(err, &backendErr) && backendErr.HTTPCode() == http.StatusNotFound {
			return nil, domainerrors.ErrRoomNotFound
		}

		return nil, err
	}

	return &room, nil
}

type createRoomRequest struct {
	Name     string `json:"name"`
	KitID    string `json:"kit_id"`
	Mushroom string `json:"mushroom"`
}

// CreateRoom registers a new room. A kit id already bound to another room is
// rejected by the backend with 409.
func (a *roomAPI) CreateRoom(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	var created entity.Room
	err := a.client.doJSON(ctx, http.MethodPost, "/api/rooms/", createRoomRequest{
		Name:     room.Name,
		KitID:    room.KitID,
		Mushroom: room.Mushroom,
	}, &created)
	if err != nil {
		var backendErr *domainerrors.BackendError
		if errors.As(err, &backendErr) && backendErr.HTTPCode() == http.StatusConflict {
			return nil, domainerrors.ErrDuplicateKitID.WithDetails(backendErr.Message())
		}

		return nil, err
	}

	return &created, nil
}

// DeleteRoom removes a room and its sensor binding.
func (a *roomAPI) DeleteRoom(ctx context.Context, roomID int64) error {
	path := "/api/rooms/" + strconv.FormatInt(roomID, 10) + "/"
	if err := a.client.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		var backendErr *domainerrors.BackendError
		if errors.As(err, &backendErr) && backendErr.HTTPCode() == http.StatusNotFound {
			return domainerrors.ErrRoomNotFound
		}

		return err
	}

	return nil
}

// GetSensors returns the latest sensor reading for a room.
func (a *roomAPI) GetSensors(ctx context.Context, roomID int64) (*entity.SensorSnapshot, error) {
	var snapshot entity.SensorSnapshot
	path := "/api/rooms/" + strconv.FormatInt(roomID, 10) + "/sensors/"
	if err := a.client.doJSON(ctx, http.MethodGet, path, nil, &snapshot); err != nil {
		var backendErr *domainerrors.BackendError
		if errors.As(err, &backendErr) && backendErr.HTTPCode() == http.StatusNotFound {
			return nil, domainerrors.ErrRoomNotFound
		}

		return nil, err
	}

	return &snapshot, nil
}
