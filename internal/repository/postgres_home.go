package repository

import (
	"context"
	"database/sql"
	"fmt"

	"smarthome-api/api"
)

// PostgresHomeRepository implements HomeRepository over a pooled
// *sql.DB.
//
// Every existence-check-then-mutate pair is a single conditional
// statement (UPDATE/DELETE with RETURNING or affected-rows, INSERT ...
// SELECT WHERE EXISTS), so the check and the mutation are never split by
// an observable gap. Room deletion cascades to devices through the
// devices.room_id foreign key (ON DELETE CASCADE in schema.sql).
type PostgresHomeRepository struct {
	db *sql.DB
}

func NewPostgresHomeRepository(db *sql.DB) *PostgresHomeRepository {
	return &PostgresHomeRepository{db: db}
}

func (r *PostgresHomeRepository) GetHouse(ctx context.Context) (*api.House, error) {
	var h api.House
	err := r.db.QueryRowContext(ctx, `SELECT name FROM houses LIMIT 1`).Scan(&h.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get house: %w", err)
	}
	return &h, nil
}

func (r *PostgresHomeRepository) ListRooms(ctx context.Context) ([]api.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id::text, name FROM rooms ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	out := []api.Room{}
	for rows.Next() {
		var room api.Room
		if err := rows.Scan(&room.ID, &room.Name); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

func (r *PostgresHomeRepository) CreateRoom(ctx context.Context, newRoom api.NewRoom) (*api.Room, error) {
	var room api.Room
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO rooms (name) VALUES ($1) RETURNING id::text, name`,
		newRoom.Name,
	).Scan(&room.ID, &room.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

func (r *PostgresHomeRepository) GetRoom(ctx context.Context, roomID string) (*api.Room, error) {
	var room api.Room
	err := r.db.QueryRowContext(ctx,
		`SELECT id::text, name FROM rooms WHERE id = $1`,
		roomID,
	).Scan(&room.ID, &room.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return &room, nil
}

func (r *PostgresHomeRepository) UpdateRoom(ctx context.Context, roomID string, newRoom api.NewRoom) (*api.Room, error) {
	var room api.Room
	err := r.db.QueryRowContext(ctx,
		`UPDATE rooms SET name = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING id::text, name`,
		roomID, newRoom.Name,
	).Scan(&room.ID, &room.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return &room, nil
}

func (r *PostgresHomeRepository) DeleteRoom(ctx context.Context, roomID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, roomID)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresHomeRepository) ListDevices(ctx context.Context, roomID string) ([]api.Device, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id::text, room_id::text, name FROM devices
		 WHERE room_id = $1
		 ORDER BY created_at, id`,
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	out := []api.Device{}
	for rows.Next() {
		var device api.Device
		if err := rows.Scan(&device.ID, &device.RoomID, &device.Name); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		out = append(out, device)
	}
	return out, rows.Err()
}

// CreateDevice inserts only when the parent room exists; the guard and
// the insert are one statement, so a concurrent room deletion can never
// leave an orphan device behind.
func (r *PostgresHomeRepository) CreateDevice(ctx context.Context, roomID string, newDevice api.NewDevice) (*api.Device, error) {
	var device api.Device
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO devices (room_id, name)
		 SELECT $1, $2 WHERE EXISTS (SELECT 1 FROM rooms WHERE id = $1)
		 RETURNING id::text, room_id::text, name`,
		roomID, newDevice.Name,
	).Scan(&device.ID, &device.RoomID, &device.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create device: %w", err)
	}
	return &device, nil
}

func (r *PostgresHomeRepository) GetDevice(ctx context.Context, roomID, deviceID string) (*api.Device, error) {
	var device api.Device
	err := r.db.QueryRowContext(ctx,
		`SELECT id::text, room_id::text, name FROM devices
		 WHERE room_id = $1 AND id = $2`,
		roomID, deviceID,
	).Scan(&device.ID, &device.RoomID, &device.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	return &device, nil
}

func (r *PostgresHomeRepository) UpdateDevice(ctx context.Context, roomID, deviceID string, newDevice api.NewDevice) (*api.Device, error) {
	var device api.Device
	err := r.db.QueryRowContext(ctx,
		`UPDATE devices SET name = $3, updated_at = now()
		 WHERE room_id = $1 AND id = $2
		 RETURNING id::text, room_id::text, name`,
		roomID, deviceID, newDevice.Name,
	).Scan(&device.ID, &device.RoomID, &device.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update device: %w", err)
	}
	return &device, nil
}

func (r *PostgresHomeRepository) DeleteDevice(ctx context.Context, roomID, deviceID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM devices WHERE room_id = $1 AND id = $2`,
		roomID, deviceID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresHomeRepository) GetReport(ctx context.Context) (*api.Report, error) {
	var report api.Report
	err := r.db.QueryRowContext(ctx,
		`SELECT h.name,
		        (SELECT count(*) FROM rooms),
		        (SELECT count(*) FROM devices)
		 FROM houses h
		 LIMIT 1`,
	).Scan(&report.HouseName, &report.RoomCount, &report.DeviceCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to build report: %w", err)
	}
	return &report, nil
}
