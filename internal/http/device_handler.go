package httpapi

import (
	"net/http"

	"smarthome-api/api"
)

// Device operations are always scoped by the room id taken from the
// path. "Device under a different room" and "device id unknown" both
// come back from the store as ErrNotFound, so nothing about other
// rooms' contents leaks through a 404.

func (h *HomeHandler) ListDevices(w http.ResponseWriter, r *http.Request, roomID string) {
	devices, err := h.repo.ListDevices(r.Context(), roomID)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, devices)
}

func (h *HomeHandler) CreateDevice(w http.ResponseWriter, r *http.Request, roomID string) {
	var payload api.NewDevice
	if !h.decodePayload(w, r, &payload) {
		return
	}
	device, err := h.repo.CreateDevice(r.Context(), roomID, payload)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, device)
}

func (h *HomeHandler) GetDevice(w http.ResponseWriter, r *http.Request, roomID, deviceID string) {
	device, err := h.repo.GetDevice(r.Context(), roomID, deviceID)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, device)
}

func (h *HomeHandler) UpdateDevice(w http.ResponseWriter, r *http.Request, roomID, deviceID string) {
	var payload api.NewDevice
	if !h.decodePayload(w, r, &payload) {
		return
	}
	device, err := h.repo.UpdateDevice(r.Context(), roomID, deviceID, payload)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, device)
}

func (h *HomeHandler) DeleteDevice(w http.ResponseWriter, r *http.Request, roomID, deviceID string) {
	if err := h.repo.DeleteDevice(r.Context(), roomID, deviceID); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
