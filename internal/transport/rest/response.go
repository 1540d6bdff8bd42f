package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// maxJSONBody caps JSON request bodies.
const maxJSONBody = 1 << 20

// User-facing messages for extraction outcomes.
const (
	msgCredentialMissing = "Anthropic API key not configured. Please set your API key in Settings."
	msgCredentialInvalid = "Invalid Anthropic API key. Please check your API key in Settings."
	msgExtractionEmpty   = "Unable to extract job details from the provided URL. This might be because the page uses JavaScript to load content dynamically, or the page structure is not recognized. Please try manually entering the job details or use a different URL."
	msgExtractionFailed  = "An error occurred while parsing the job URL. Please try again."
)

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps a service error to an HTTP response. Only validation
// errors expose their text; everything unexpected is logged and hidden.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrCredentialMissing):
		writeError(w, http.StatusBadRequest, msgCredentialMissing)
	case errors.Is(err, domain.ErrCredentialInvalid):
		writeError(w, http.StatusBadRequest, msgCredentialInvalid)
	case errors.Is(err, domain.ErrExtractionEmpty):
		writeError(w, http.StatusUnprocessableEntity, msgExtractionEmpty)
	case errors.Is(err, domain.ErrExtractionFailed):
		writeError(w, http.StatusBadGateway, msgExtractionFailed)
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a size-capped JSON body into v. The raw fields are
// returned too so callers can tell an explicit null from an absent key.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, domain.NewValidationError("body", "invalid JSON object")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return nil, domain.NewValidationError("body", "invalid field type")
	}
	return raw, nil
}

// nullToEmpty turns an explicit JSON null for key into a pointer to "", so
// clearable fields can be cleared either way.
func nullToEmpty(raw map[string]json.RawMessage, key string, field **string) {
	if v, ok := raw[key]; ok && string(v) == "null" && *field == nil {
		empty := ""
		*field = &empty
	}
}
