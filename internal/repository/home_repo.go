package repository

import (
	"context"
	"errors"

	"smarthome-api/api"
)

// ErrNotFound is reported when a referenced entity, or a referenced
// parent, does not exist. It is the only store outcome handlers are
// allowed to branch on; every other error is backend detail.
var ErrNotFound = errors.New("not found")

// HomeRepository is the typed store for the house/rooms/devices tree.
// Inputs are assumed well-formed (identifier syntax is validated at the
// HTTP boundary). Device operations are scoped by both room id and
// device id: a device living under a different room is indistinguishable
// from one that does not exist.
type HomeRepository interface {
	GetHouse(ctx context.Context) (*api.House, error)

	ListRooms(ctx context.Context) ([]api.Room, error)
	CreateRoom(ctx context.Context, newRoom api.NewRoom) (*api.Room, error)
	GetRoom(ctx context.Context, roomID string) (*api.Room, error)
	UpdateRoom(ctx context.Context, roomID string, newRoom api.NewRoom) (*api.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error

	ListDevices(ctx context.Context, roomID string) ([]api.Device, error)
	CreateDevice(ctx context.Context, roomID string, newDevice api.NewDevice) (*api.Device, error)
	GetDevice(ctx context.Context, roomID, deviceID string) (*api.Device, error)
	UpdateDevice(ctx context.Context, roomID, deviceID string, newDevice api.NewDevice) (*api.Device, error)
	DeleteDevice(ctx context.Context, roomID, deviceID string) error

	GetReport(ctx context.Context) (*api.Report, error)
}
