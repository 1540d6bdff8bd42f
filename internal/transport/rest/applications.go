package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
	"github.com/heartmarshall/jobtracker-backend/internal/service/application"
)

// multipartMemory is how much of a multipart body is held in memory before
// parts spill to temporary files.
const multipartMemory = 8 << 20

type applicationService interface {
	CreateApplication(ctx context.Context, input application.CreateApplicationInput) (*domain.Application, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	UpdateApplication(ctx context.Context, input application.UpdateApplicationInput) (*domain.Application, error)
	DeleteApplication(ctx context.Context, id uuid.UUID) error
	ListApplications(ctx context.Context, input application.ListInput) ([]domain.Application, error)
	RecentApplications(ctx context.Context, n int) ([]domain.Application, error)
	SearchApplications(ctx context.Context, query string) ([]domain.Application, error)
	CompanyInfo(ctx context.Context, companyName string) (*domain.CompanyInfo, error)
	History(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditRecord, error)
	OpenResume(ctx context.Context, id uuid.UUID) (*application.Download, error)
	OpenCoverLetter(ctx context.Context, id uuid.UUID) (*application.Download, error)
}

// ApplicationHandler serves the application CRUD, query and document endpoints.
type ApplicationHandler struct {
	apps      applicationService
	maxUpload int64
	log       *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler. maxUpload caps the
// size of a create request including both documents.
func NewApplicationHandler(apps applicationService, maxUpload int64, log *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{apps: apps, maxUpload: maxUpload, log: log}
}

// Create handles POST /api/applications (multipart form).
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUpload {
		handleError(w, r, h.log, &http.MaxBytesError{Limit: h.maxUpload})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(w, r, h.log, err)
			return
		}
		handleError(w, r, h.log, domain.NewValidationError("body", "expected multipart/form-data"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	input, closeFiles, err := h.createInput(r)
	defer closeFiles()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	app, err := h.apps.CreateApplication(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

func (h *ApplicationHandler) createInput(r *http.Request) (application.CreateApplicationInput, func(), error) {
	var (
		errs   []domain.FieldError
		opened []multipart.File
	)
	closeFiles := func() {
		for _, f := range opened {
			f.Close() //nolint:errcheck
		}
	}

	input := application.CreateApplicationInput{
		CompanyName: r.FormValue("company_name"),
		JobTitle:    r.FormValue("job_title"),
		JobID:       r.FormValue("job_id"),
		JobURL:      r.FormValue("job_url"),
		Status:      domain.ApplicationStatus(strings.TrimSpace(r.FormValue("status"))),
		Priority:    domain.Priority(strings.TrimSpace(r.FormValue("priority"))),
		EmailUsed:   r.FormValue("email_used"),
		Source:      domain.Source(strings.TrimSpace(r.FormValue("source"))),
	}
	if v, ok := r.MultipartForm.Value["portal_url"]; ok && len(v) > 0 {
		input.PortalURL = &v[0]
	}
	if v, ok := r.MultipartForm.Value["notes"]; ok && len(v) > 0 {
		input.Notes = &v[0]
	}

	if raw := r.FormValue("date_applied"); strings.TrimSpace(raw) != "" {
		t, ok := parseDate(raw)
		if !ok {
			errs = append(errs, domain.FieldError{Field: "date_applied", Message: "must be a date or date-time"})
		}
		input.DateApplied = t
	}

	for field, dst := range map[string]**application.File{
		"resume":       &input.Resume,
		"cover_letter": &input.CoverLetter,
	} {
		f, header, err := r.FormFile(field)
		switch {
		case errors.Is(err, http.ErrMissingFile):
			continue
		case err != nil:
			errs = append(errs, domain.FieldError{Field: field, Message: "unreadable file part"})
			continue
		}
		opened = append(opened, f)
		// Browsers send an empty part for an untouched file input.
		if header.Filename == "" {
			continue
		}
		*dst = &application.File{Name: header.Filename, Content: f}
	}

	if len(errs) > 0 {
		return input, closeFiles, domain.NewValidationErrors(errs)
	}
	return input, closeFiles, nil
}

// List handles GET /api/applications.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	var errs []domain.FieldError
	input := application.ListInput{
		CompanyName: queryString(r, "company_name"),
		EmailUsed:   queryString(r, "email_used"),
		Status:      optionalEnum[domain.ApplicationStatus](queryString(r, "status")),
		Priority:    optionalEnum[domain.Priority](queryString(r, "priority")),
		Source:      optionalEnum[domain.Source](queryString(r, "source")),
	}
	var skip *int
	skip, errs = queryInt(r, "skip", errs)
	input.Skip = valueOr(skip, 0)
	input.Limit, errs = queryInt(r, "limit", errs)
	if len(errs) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	apps, err := h.apps.ListApplications(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationList(apps))
}

// Recent handles GET /api/applications/recent.
func (h *ApplicationHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, errs := queryInt(r, "limit", nil)
	if len(errs) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	apps, err := h.apps.RecentApplications(r.Context(), valueOr(limit, application.DefaultRecentLimit))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationList(apps))
}

// Search handles GET /api/applications/search?q=.
func (h *ApplicationHandler) Search(w http.ResponseWriter, r *http.Request) {
	apps, err := h.apps.SearchApplications(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationList(apps))
}

// CompanyInfo handles GET /api/applications/company-info. The body is null
// when the company has no applications yet.
func (h *ApplicationHandler) CompanyInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.apps.CompanyInfo(r.Context(), r.URL.Query().Get("company_name"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if info == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, companyInfoResponse{PortalURL: info.PortalURL, Source: info.Source.String()})
}

// Get handles GET /api/applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	app, err := h.apps.GetApplication(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

type updateApplicationRequest struct {
	CompanyName *string `json:"company_name"`
	JobTitle    *string `json:"job_title"`
	JobID       *string `json:"job_id"`
	JobURL      *string `json:"job_url"`
	PortalURL   *string `json:"portal_url"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DateApplied *string `json:"date_applied"`
	EmailUsed   *string `json:"email_used"`
	Source      *string `json:"source"`
	Notes       *string `json:"notes"`
}

// Update handles PUT /api/applications/{id} with a partial JSON body.
// Absent fields are left alone; portal_url and notes are cleared by "" or null.
func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateApplicationRequest
	raw, err := decodeJSON(w, r, &req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	nullToEmpty(raw, "portal_url", &req.PortalURL)
	nullToEmpty(raw, "notes", &req.Notes)

	input := application.UpdateApplicationInput{
		ID:          id,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		JobID:       req.JobID,
		JobURL:      req.JobURL,
		PortalURL:   req.PortalURL,
		Status:      optionalEnum[domain.ApplicationStatus](req.Status),
		Priority:    optionalEnum[domain.Priority](req.Priority),
		EmailUsed:   req.EmailUsed,
		Source:      optionalEnum[domain.Source](req.Source),
		Notes:       req.Notes,
	}
	if req.DateApplied != nil {
		t, ok := parseDate(*req.DateApplied)
		if !ok {
			handleError(w, r, h.log, domain.NewValidationError("date_applied", "must be a date or date-time"))
			return
		}
		input.DateApplied = &t
	}

	app, err := h.apps.UpdateApplication(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Delete handles DELETE /api/applications/{id}.
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.apps.DeleteApplication(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Application deleted successfully"})
}

// History handles GET /api/applications/{id}/history.
func (h *ApplicationHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	limit, errs := queryInt(r, "limit", nil)
	if len(errs) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	records, err := h.apps.History(r.Context(), id, valueOr(limit, application.DefaultHistorySize))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditList(records))
}

// Resume handles GET /api/applications/{id}/resume.
func (h *ApplicationHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, h.apps.OpenResume)
}

// CoverLetter handles GET /api/applications/{id}/cover-letter.
func (h *ApplicationHandler) CoverLetter(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, h.apps.OpenCoverLetter)
}

func (h *ApplicationHandler) download(w http.ResponseWriter, r *http.Request, open func(context.Context, uuid.UUID) (*application.Download, error)) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := open(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	defer d.Body.Close()

	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": d.Filename}))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, d.Body); err != nil {
		h.log.WarnContext(r.Context(), "download interrupted",
			slog.String("id", id.String()),
			slog.String("error", err.Error()),
		)
	}
}
