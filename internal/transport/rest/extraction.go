package rest

import (
	"context"
	"log/slog"
	"mime"
	"net/http"

	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

type extractionService interface {
	ParseURL(ctx context.Context, rawURL string) (*domain.JobPosting, error)
}

// ExtractionHandler turns a job posting URL into prefilled application fields.
type ExtractionHandler struct {
	extraction extractionService
	log        *slog.Logger
}

// NewExtractionHandler creates an ExtractionHandler.
func NewExtractionHandler(extraction extractionService, log *slog.Logger) *ExtractionHandler {
	return &ExtractionHandler{extraction: extraction, log: log}
}

type parseURLRequest struct {
	URL string `json:"url"`
}

// ParseURL handles POST /api/applications/parse-url. The url is read from a
// JSON body or from a form field of the same name.
func (h *ExtractionHandler) ParseURL(w http.ResponseWriter, r *http.Request) {
	var target string

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req parseURLRequest
		if _, err := decodeJSON(w, r, &req); err != nil {
			handleError(w, r, h.log, err)
			return
		}
		target = req.URL
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
		target = r.FormValue("url")
	}

	posting, err := h.extraction.ParseURL(r.Context(), target)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, posting)
}
