package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smarthome-api/api"
	"smarthome-api/internal/repository"
)

func newTestRouter(houseName string) *Router {
	logger := zap.NewNop()
	repo := repository.NewMemoryHomeRepository(houseName)
	router := NewRouter(logger)
	router.RegisterHomeRoutes(NewHomeHandler(repo, logger))
	return router
}

func doJSON(t *testing.T, router *Router, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetHouse(t *testing.T) {
	router := newTestRouter("Dacha")

	w := doJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, api.House{Name: "Dacha"}, decode[api.House](t, w))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestRoomDeviceLifecycle(t *testing.T) {
	router := newTestRouter("Home")

	// create Kitchen
	w := doJSON(t, router, http.MethodPost, "/rooms", api.NewRoom{Name: "Kitchen"})
	require.Equal(t, http.StatusCreated, w.Code)
	kitchen := decode[api.Room](t, w)
	require.NotEmpty(t, kitchen.ID)
	assert.Equal(t, "Kitchen", kitchen.Name)

	// create Fridge under Kitchen
	w = doJSON(t, router, http.MethodPost, "/rooms/"+kitchen.ID+"/devices", api.NewDevice{Name: "Fridge"})
	require.Equal(t, http.StatusCreated, w.Code)
	fridge := decode[api.Device](t, w)
	assert.Equal(t, kitchen.ID, fridge.RoomID)

	// list devices: exactly the fridge
	w = doJSON(t, router, http.MethodGet, "/rooms/"+kitchen.ID+"/devices", nil)
	require.Equal(t, http.StatusOK, w.Code)
	devices := decode[[]api.Device](t, w)
	require.Len(t, devices, 1)
	assert.Equal(t, fridge, devices[0])

	// full-replace update, same id and parent
	w = doJSON(t, router, http.MethodPatch, "/rooms/"+kitchen.ID+"/devices/"+fridge.ID, api.NewDevice{Name: "Fridge v2"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[api.Device](t, w)
	assert.Equal(t, fridge.ID, updated.ID)
	assert.Equal(t, kitchen.ID, updated.RoomID)
	assert.Equal(t, "Fridge v2", updated.Name)

	// PUT behaves the same as PATCH
	w = doJSON(t, router, http.MethodPut, "/rooms/"+kitchen.ID, api.NewRoom{Name: "Kitchen v2"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Kitchen v2", decode[api.Room](t, w).Name)

	// delete the room, then its device is gone
	w = doJSON(t, router, http.MethodDelete, "/rooms/"+kitchen.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = doJSON(t, router, http.MethodGet, "/rooms/"+kitchen.ID+"/devices/"+fridge.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownRoomReturns404WithErrorBody(t *testing.T) {
	router := newTestRouter("Home")

	w := doJSON(t, router, http.MethodGet, "/rooms/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode[api.Error](t, w)
	assert.NotEmpty(t, body.Error)
}

func TestMalformedIdentifierReturns400(t *testing.T) {
	router := newTestRouter("Home")

	for _, path := range []string{
		"/rooms/not-a-uuid",
		"/rooms/not-a-uuid/devices",
		"/rooms/" + uuid.NewString() + "/devices/nope",
	} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
		assert.NotEmpty(t, decode[api.Error](t, w).Error)
	}
}

func TestMalformedPayloadReturns400(t *testing.T) {
	router := newTestRouter("Home")

	// invalid JSON
	req := httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing required field
	w = doJSON(t, router, http.MethodPost, "/rooms", map[string]any{"label": "Kitchen"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDeviceUnderMissingRoomReturns404(t *testing.T) {
	router := newTestRouter("Home")

	w := doJSON(t, router, http.MethodPost, "/rooms/"+uuid.NewString()+"/devices", api.NewDevice{Name: "Fridge"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCrossRoomDeviceLookupReturns404(t *testing.T) {
	router := newTestRouter("Home")

	w := doJSON(t, router, http.MethodPost, "/rooms", api.NewRoom{Name: "Kitchen"})
	kitchen := decode[api.Room](t, w)
	w = doJSON(t, router, http.MethodPost, "/rooms", api.NewRoom{Name: "Bedroom"})
	bedroom := decode[api.Room](t, w)

	w = doJSON(t, router, http.MethodPost, "/rooms/"+kitchen.ID+"/devices", api.NewDevice{Name: "Fridge"})
	fridge := decode[api.Device](t, w)

	// fridge exists, but not under bedroom
	w = doJSON(t, router, http.MethodGet, "/rooms/"+bedroom.ID+"/devices/"+fridge.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter("Home")

	w := doJSON(t, router, http.MethodDelete, "/", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/rooms", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestUnknownPathReturns404(t *testing.T) {
	router := newTestRouter("Home")

	w := doJSON(t, router, http.MethodGet, "/houses", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/rooms/"+uuid.NewString()+"/gadgets", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// trailing-slash shapes are unknown paths, not malformed ids
	for _, path := range []string{
		"/rooms/",
		"/rooms/" + uuid.NewString() + "/",
		"/rooms/" + uuid.NewString() + "/devices/",
	} {
		w = doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "path %s", path)
	}
}

func TestGetReport(t *testing.T) {
	router := newTestRouter("Home")

	w := doJSON(t, router, http.MethodPost, "/rooms", api.NewRoom{Name: "Kitchen"})
	kitchen := decode[api.Room](t, w)
	doJSON(t, router, http.MethodPost, "/rooms/"+kitchen.ID+"/devices", api.NewDevice{Name: "Fridge"})

	w = doJSON(t, router, http.MethodGet, "/report", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, api.Report{HouseName: "Home", RoomCount: 1, DeviceCount: 1}, decode[api.Report](t, w))
}
