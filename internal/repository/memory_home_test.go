package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-api/api"
)

func TestCreateRoomRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHomeRepository("Home")

	created, err := repo.CreateRoom(ctx, api.NewRoom{Name: "Kitchen"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetRoom(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUnknownRoomIDReportsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHomeRepository("Home")
	unknown := uuid.NewString()

	_, err := repo.GetRoom(ctx, unknown)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.UpdateRoom(ctx, unknown, api.NewRoom{Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.DeleteRoom(ctx, unknown), ErrNotFound)
}

func TestUpdateRoomChangesOnlyName(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHomeRepository("Home")

	created, err := repo.CreateRoom(ctx, api.NewRoom{Name: "Kitchen"})
	require.NoError(t, err)

	updated, err := repo.UpdateRoom(ctx, created.ID, api.NewRoom{Name: "Pantry"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Pantry", updated.Name)
}

func TestListRoomsInCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHomeRepository("Home")

	rooms, err := repo.ListRooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)

	names := []string{"Kitchen", "Bedroom", "Garage"}
	for _, name := range names {
		_, err := repo.CreateRoom(ctx, api.NewRoom{Name: name})
		require.NoError(t, err)
	}

	rooms, err = repo.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	for i, name := range names {
		assert.Equal(t, name, rooms[i].Name)
	}
}

func TestDeleteRoomCascadesToDevices(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHomeRepository("Home")

	room, err := repo.CreateRoom(ctx, api.NewRoom{Name: "Kitchen"})
	require.NoError(t, err)
	device, err := repo.CreateDevice(ctx, room.ID, api.NewDevice{Name: "Fridge"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRoom(ctx, room.ID))

	_, err = repo.GetDevice(ctx, room.ID, device.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	report, err := repo.GetReport(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.DeviceCount)
}

func TestCreateDeviceRequiresExistingRoom(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHomeRepository("Home")

	_, err := repo.CreateDevice(ctx, uuid.NewString(), api.NewDevice{Name: "Fridge"})
	assert.ErrorIs(t, err, ErrNotFound)

	// no orphan inserted
	report, err := repo.GetReport(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.DeviceCount)
}

func TestListDevicesIsScopedToRoom(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHomeRepository("Home")

	room1, err := repo.CreateRoom(ctx, api.NewRoom{Name: "Kitchen"})
	require.NoError(t, err)
	room2, err := repo.CreateRoom(ctx, api.NewRoom{Name: "Bedroom"})
	require.NoError(t, err)

	_, err = repo.CreateDevice(ctx, room1.ID, api.NewDevice{Name: "Fridge"})
	require.NoError(t, err)
	tv, err := repo.CreateDevice(ctx, room2.ID, api.NewDevice{Name: "TV"})
	require.NoError(t, err)

	devices, err := repo.ListDevices(ctx, room1.ID)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "Fridge", devices[0].Name)
	for _, d := range devices {
		assert.Equal(t, room1.ID, d.RoomID)
	}

	// a device under another room is indistinguishable from a missing one
	_, err = repo.GetDevice(ctx, room1.ID, tv.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.UpdateDevice(ctx, room1.ID, tv.ID, api.NewDevice{Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteDevice(ctx, room1.ID, tv.ID), ErrNotFound)
}

func TestUpdateDeviceKeepsIdentityAndParent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHomeRepository("Home")

	room, err := repo.CreateRoom(ctx, api.NewRoom{Name: "Kitchen"})
	require.NoError(t, err)
	device, err := repo.CreateDevice(ctx, room.ID, api.NewDevice{Name: "Fridge"})
	require.NoError(t, err)

	updated, err := repo.UpdateDevice(ctx, room.ID, device.ID, api.NewDevice{Name: "Fridge v2"})
	require.NoError(t, err)
	assert.Equal(t, device.ID, updated.ID)
	assert.Equal(t, room.ID, updated.RoomID)
	assert.Equal(t, "Fridge v2", updated.Name)
}

func TestGetHouseAndReport(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHomeRepository("Dacha")

	house, err := repo.GetHouse(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dacha", house.Name)

	room, err := repo.CreateRoom(ctx, api.NewRoom{Name: "Kitchen"})
	require.NoError(t, err)
	_, err = repo.CreateDevice(ctx, room.ID, api.NewDevice{Name: "Fridge"})
	require.NoError(t, err)

	report, err := repo.GetReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, &api.Report{HouseName: "Dacha", RoomCount: 1, DeviceCount: 1}, report)
}

func TestGetHouseNotSeeded(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHomeRepository("")

	_, err := repo.GetHouse(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetReport(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
