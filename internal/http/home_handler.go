package httpapi

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smarthome-api/internal/repository"
)

// HomeHandler serves the house/rooms/devices resource tree. It owns
// identifier validation and the hierarchy rules (device operations are
// scoped to the room named in the path); everything else is delegated
// to the repository.
type HomeHandler struct {
	repo   repository.HomeRepository
	logger *zap.Logger
}

func NewHomeHandler(repo repository.HomeRepository, logger *zap.Logger) *HomeHandler {
	return &HomeHandler{
		repo:   repo,
		logger: logger,
	}
}

// GetHouse returns the singleton house.
func (h *HomeHandler) GetHouse(w http.ResponseWriter, r *http.Request) {
	house, err := h.repo.GetHouse(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, house)
}

// GetReport returns an aggregate summary of the house.
func (h *HomeHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.repo.GetReport(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// pathID validates a path segment as a UUID before it reaches the
// store. The canonical textual form is returned so lookups never depend
// on the caller's formatting.
func (h *HomeHandler) pathID(w http.ResponseWriter, segment, what string) (string, bool) {
	id, err := uuid.Parse(segment)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed "+what)
		return "", false
	}
	return id.String(), true
}

// respondStoreError maps store outcomes to the wire contract: absence
// is 404, anything else is an opaque 500 with the cause kept in the log
// only.
func (h *HomeHandler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	h.logger.Error("store call failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

type validatable interface {
	Validate() error
}

// decodePayload reads and validates a JSON request body, answering 400
// on malformed JSON or missing required fields.
func (h *HomeHandler) decodePayload(w http.ResponseWriter, r *http.Request, out validatable) bool {
	if err := readBodyJSON(r, 1<<20, out); err != nil {
		writeError(w, http.StatusBadRequest, "malformed payload")
		return false
	}
	if err := out.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
