// Package api defines the wire format shared by the server and the client.
// Field names and shapes are stable contract; both sides decode with
// encoding/json, so unknown fields are ignored for forward compatibility.
package api

import "errors"

// House is the singleton top-level resource. Exactly one row exists
// (seeded with the schema); this API only reads it.
type House struct {
	Name string `json:"name"`
}

// Room is a named container of devices. ID is server-generated on
// creation and immutable.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Device is a leaf resource scoped to exactly one room. RoomID is set
// from the request path at creation and never changes; a device cannot
// be re-parented.
type Device struct {
	ID     string `json:"id"`
	RoomID string `json:"room_id"`
	Name   string `json:"name"`
}

// NewRoom is the creation/update payload for a room. It carries only the
// mutable fields, never the identifier.
type NewRoom struct {
	Name string `json:"name"`
}

// NewDevice is the creation/update payload for a device.
type NewDevice struct {
	Name string `json:"name"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Error string `json:"error"`
}

// Report is an aggregate summary of the whole house.
type Report struct {
	HouseName   string `json:"house_name"`
	RoomCount   int    `json:"room_count"`
	DeviceCount int    `json:"device_count"`
}

var errNameRequired = errors.New("name is required")

// Validate reports whether the payload carries all required fields.
func (n NewRoom) Validate() error {
	if n.Name == "" {
		return errNameRequired
	}
	return nil
}

// Validate reports whether the payload carries all required fields.
func (n NewDevice) Validate() error {
	if n.Name == "" {
		return errNameRequired
	}
	return nil
}
