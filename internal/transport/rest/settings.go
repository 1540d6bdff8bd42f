package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

type settingService interface {
	List(ctx context.Context) ([]domain.Setting, error)
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Set(ctx context.Context, key, value string) (*domain.Setting, error)
}

// SettingHandler serves user-level settings. Secret values are always
// returned masked.
type SettingHandler struct {
	settings settingService
	log      *slog.Logger
}

// NewSettingHandler creates a SettingHandler.
func NewSettingHandler(settings settingService, log *slog.Logger) *SettingHandler {
	return &SettingHandler{settings: settings, log: log}
}

// List handles GET /api/settings.
func (h *SettingHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.settings.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make([]settingResponse, len(list))
	for i := range list {
		out[i] = toSettingResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/settings/{key}.
func (h *SettingHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingResponse(s))
}

type setSettingRequest struct {
	Value *string `json:"value"`
}

// Set handles PUT /api/settings/{key}.
func (h *SettingHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setSettingRequest
	if _, err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if req.Value == nil {
		handleError(w, r, h.log, domain.NewValidationError("value", "required"))
		return
	}

	s, err := h.settings.Set(r.Context(), r.PathValue("key"), *req.Value)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingResponse(s))
}
