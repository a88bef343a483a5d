package flagadmin

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Saastronomical/flagkit/pkg/audit"
	"github.com/Saastronomical/flagkit/pkg/feature"
)

// Registry is the flag management surface the admin API exposes.
type Registry interface {
	SnapshotAll() map[string]feature.Flag
	Flag(name string) (feature.Flag, error)
	UpdateFlag(name string, updates ...feature.FlagUpdate)
	ExportAuditLog() []audit.Record
	StatusReport() string
}

type handler struct {
	registry Registry
	logger   *slog.Logger
}

// Option configures the admin router.
type Option func(*handler)

// WithLogger sets a custom logger. The default discards all logs.
func WithLogger(logger *slog.Logger) Option {
	return func(h *handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Router mounts the flag admin API:
//
//	GET   /flags         current state of every flag
//	GET   /flags/{name}  one flag definition
//	PATCH /flags/{name}  partial update (enabled, rollout_percentage, target_users)
//	GET   /audit         evaluation history, oldest first
//	GET   /status        plain-text flag summary
func Router(registry Registry, opts ...Option) chi.Router {
	h := &handler{
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Get("/flags", h.listFlags)
	r.Get("/flags/{name}", h.getFlag)
	r.Patch("/flags/{name}", h.updateFlag)
	r.Get("/audit", h.exportAudit)
	r.Get("/status", h.status)
	return r
}

func (h *handler) listFlags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.SnapshotAll())
}

func (h *handler) getFlag(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	flag, err := h.registry.Flag(name)
	if err != nil {
		if errors.Is(err, feature.ErrFlagNotFound) {
			writeError(w, http.StatusNotFound, "flag not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, flag)
}

// updateRequest is a partial flag mutation. Pointer fields distinguish
// "leave unchanged" from zero values.
type updateRequest struct {
	Enabled           *bool     `json:"enabled"`
	RolloutPercentage *int      `json:"rollout_percentage"`
	TargetUsers       *[]string `json:"target_users"`
}

func (h *handler) updateFlag(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.registry.Flag(name); err != nil {
		writeError(w, http.StatusNotFound, "flag not found")
		return
	}

	var updates []feature.FlagUpdate
	if req.Enabled != nil {
		updates = append(updates, feature.SetEnabled(*req.Enabled))
	}
	if req.RolloutPercentage != nil {
		updates = append(updates, feature.SetRolloutPercentage(*req.RolloutPercentage))
	}
	if req.TargetUsers != nil {
		updates = append(updates, feature.SetTargetUsers(*req.TargetUsers))
	}
	h.registry.UpdateFlag(name, updates...)

	h.logger.Info("admin updated feature flag", "flag", name)

	flag, err := h.registry.Flag(name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, flag)
}

func (h *handler) exportAudit(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.ExportAuditLog())
}

func (h *handler) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.registry.StatusReport()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
