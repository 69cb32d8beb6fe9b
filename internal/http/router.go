package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux (no third-party
// routing dependency needed for a surface this small).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterHomeRoutes wires the house/rooms/devices surface.
func (r *Router) RegisterHomeRoutes(h *HomeHandler) {
	// house (the "/" pattern also catches unknown paths)
	r.Handle("/", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		if req.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.GetHouse(w, req)
	})

	r.Handle("/report", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.GetReport(w, req)
	})

	r.Handle("/rooms", func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			h.ListRooms(w, req)
		case http.MethodPost:
			h.CreateRoom(w, req)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	})

	// /rooms/{id}[/devices[/{device_id}]]
	r.Handle("/rooms/", h.RoomsSubtree)
}
