package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/jobtracker-backend/internal/domain"
	"github.com/heartmarshall/jobtracker-backend/internal/service/profile"
)

type profileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, input profile.ProfileInput) (*domain.Profile, error)
}

// ProfileHandler serves the single applicant profile.
type ProfileHandler struct {
	profiles profileService
	log      *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profiles profileService, log *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Get(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

type profileRequest struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	Headline    *string `json:"headline"`
	LinkedInURL *string `json:"linkedin_url"`
}

// Upsert handles POST /api/profile. Absent fields keep their value; email
// and linkedin_url are cleared by "" or null.
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	raw, err := decodeJSON(w, r, &req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	nullToEmpty(raw, "email", &req.Email)
	nullToEmpty(raw, "linkedin_url", &req.LinkedInURL)

	p, err := h.profiles.Upsert(r.Context(), profile.ProfileInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Headline:    req.Headline,
		LinkedInURL: req.LinkedInURL,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}
