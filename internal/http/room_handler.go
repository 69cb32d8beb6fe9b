package httpapi

import (
	"net/http"
	"strings"

	"smarthome-api/api"
)

// RoomsSubtree dispatches everything under /rooms/: a single room,
// its device collection, or a single device. PATCH and PUT share the
// full-replace update semantics (the payload always carries the whole
// mutable field set).
func (h *HomeHandler) RoomsSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/rooms/")
	parts := strings.Split(rest, "/")

	// an empty segment (trailing slash) is an unknown path, not a
	// malformed identifier
	if parts[0] == "" || parts[len(parts)-1] == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch {
	case len(parts) == 1:
		roomID, ok := h.pathID(w, parts[0], "room id")
		if !ok {
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.GetRoom(w, r, roomID)
		case http.MethodPatch, http.MethodPut:
			h.UpdateRoom(w, r, roomID)
		case http.MethodDelete:
			h.DeleteRoom(w, r, roomID)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}

	case len(parts) == 2 && parts[1] == "devices":
		roomID, ok := h.pathID(w, parts[0], "room id")
		if !ok {
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.ListDevices(w, r, roomID)
		case http.MethodPost:
			h.CreateDevice(w, r, roomID)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}

	case len(parts) == 3 && parts[1] == "devices":
		roomID, ok := h.pathID(w, parts[0], "room id")
		if !ok {
			return
		}
		deviceID, ok := h.pathID(w, parts[2], "device id")
		if !ok {
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.GetDevice(w, r, roomID, deviceID)
		case http.MethodPatch, http.MethodPut:
			h.UpdateDevice(w, r, roomID, deviceID)
		case http.MethodDelete:
			h.DeleteDevice(w, r, roomID, deviceID)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}

	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (h *HomeHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.repo.ListRooms(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *HomeHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var payload api.NewRoom
	if !h.decodePayload(w, r, &payload) {
		return
	}
	room, err := h.repo.CreateRoom(r.Context(), payload)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *HomeHandler) GetRoom(w http.ResponseWriter, r *http.Request, roomID string) {
	room, err := h.repo.GetRoom(r.Context(), roomID)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *HomeHandler) UpdateRoom(w http.ResponseWriter, r *http.Request, roomID string) {
	var payload api.NewRoom
	if !h.decodePayload(w, r, &payload) {
		return
	}
	room, err := h.repo.UpdateRoom(r.Context(), roomID, payload)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *HomeHandler) DeleteRoom(w http.ResponseWriter, r *http.Request, roomID string) {
	if err := h.repo.DeleteRoom(r.Context(), roomID); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
