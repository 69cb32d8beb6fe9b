package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"smarthome-api/api"
)

// MemoryHomeRepository is an in-memory HomeRepository used when the DB
// is disabled or unreachable, and by handler/client tests.
// - IDs are uuids, never reused
// - insertion order is preserved so lists come back in creation order
// - every mutation holds the write lock for its whole check+mutate, so
//   the atomicity contract matches the Postgres implementation
type MemoryHomeRepository struct {
	mu sync.RWMutex

	houseName string

	rooms     map[string]api.Room
	roomOrder []string

	devices     map[string]api.Device
	deviceOrder []string
}

func NewMemoryHomeRepository(houseName string) *MemoryHomeRepository {
	return &MemoryHomeRepository{
		houseName: houseName,
		rooms:     map[string]api.Room{},
		devices:   map[string]api.Device{},
	}
}

func (r *MemoryHomeRepository) GetHouse(_ context.Context) (*api.House, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.houseName == "" {
		return nil, ErrNotFound
	}
	return &api.House{Name: r.houseName}, nil
}

func (r *MemoryHomeRepository) ListRooms(_ context.Context) ([]api.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]api.Room, 0, len(r.roomOrder))
	for _, id := range r.roomOrder {
		out = append(out, r.rooms[id])
	}
	return out, nil
}

func (r *MemoryHomeRepository) CreateRoom(_ context.Context, newRoom api.NewRoom) (*api.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := api.Room{ID: uuid.NewString(), Name: newRoom.Name}
	r.rooms[room.ID] = room
	r.roomOrder = append(r.roomOrder, room.ID)
	return &room, nil
}

func (r *MemoryHomeRepository) GetRoom(_ context.Context, roomID string) (*api.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

func (r *MemoryHomeRepository) UpdateRoom(_ context.Context, roomID string, newRoom api.NewRoom) (*api.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil, ErrNotFound
	}
	room.Name = newRoom.Name
	r.rooms[roomID] = room
	return &room, nil
}

func (r *MemoryHomeRepository) DeleteRoom(_ context.Context, roomID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[roomID]; !ok {
		return ErrNotFound
	}
	delete(r.rooms, roomID)
	r.roomOrder = remove(r.roomOrder, roomID)

	// cascade: drop every device scoped to the room
	for id, device := range r.devices {
		if device.RoomID == roomID {
			delete(r.devices, id)
			r.deviceOrder = remove(r.deviceOrder, id)
		}
	}
	return nil
}

func (r *MemoryHomeRepository) ListDevices(_ context.Context, roomID string) ([]api.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []api.Device{}
	for _, id := range r.deviceOrder {
		if device := r.devices[id]; device.RoomID == roomID {
			out = append(out, device)
		}
	}
	return out, nil
}

func (r *MemoryHomeRepository) CreateDevice(_ context.Context, roomID string, newDevice api.NewDevice) (*api.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[roomID]; !ok {
		return nil, ErrNotFound
	}
	device := api.Device{ID: uuid.NewString(), RoomID: roomID, Name: newDevice.Name}
	r.devices[device.ID] = device
	r.deviceOrder = append(r.deviceOrder, device.ID)
	return &device, nil
}

func (r *MemoryHomeRepository) GetDevice(_ context.Context, roomID, deviceID string) (*api.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	device, ok := r.devices[deviceID]
	if !ok || device.RoomID != roomID {
		return nil, ErrNotFound
	}
	return &device, nil
}

func (r *MemoryHomeRepository) UpdateDevice(_ context.Context, roomID, deviceID string, newDevice api.NewDevice) (*api.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	device, ok := r.devices[deviceID]
	if !ok || device.RoomID != roomID {
		return nil, ErrNotFound
	}
	device.Name = newDevice.Name
	r.devices[deviceID] = device
	return &device, nil
}

func (r *MemoryHomeRepository) DeleteDevice(_ context.Context, roomID, deviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	device, ok := r.devices[deviceID]
	if !ok || device.RoomID != roomID {
		return ErrNotFound
	}
	delete(r.devices, deviceID)
	r.deviceOrder = remove(r.deviceOrder, deviceID)
	return nil
}

func (r *MemoryHomeRepository) GetReport(_ context.Context) (*api.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.houseName == "" {
		return nil, ErrNotFound
	}
	return &api.Report{
		HouseName:   r.houseName,
		RoomCount:   len(r.rooms),
		DeviceCount: len(r.devices),
	}, nil
}

func remove(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
