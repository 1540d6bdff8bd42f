package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// dateLayouts are the accepted forms of date_applied, tried in order.
// Values without a zone are taken as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a valid UUID")
	}
	return id, nil
}

// queryInt reads an optional integer query parameter. A missing or empty
// value yields nil, so an explicit 0 stays distinguishable.
func queryInt(r *http.Request, name string, errs []domain.FieldError) (*int, []domain.FieldError) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, errs
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, append(errs, domain.FieldError{Field: name, Message: "must be an integer"})
	}
	return &n, errs
}

func valueOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// queryString returns nil for a missing or blank parameter.
func queryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

func optionalEnum[T ~string](value *string) *T {
	if value == nil {
		return nil
	}
	v := T(*value)
	return &v
}
