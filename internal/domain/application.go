package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application is one tracked job application.
type Application struct {
	ID                  uuid.UUID
	CompanyName         string
	JobTitle            string
	JobID               string
	JobURL              string
	PortalURL           *string
	Status              ApplicationStatus
	Priority            Priority
	DateApplied         time.Time
	EmailUsed           string
	ResumeFilename      string
	ResumeFilePath      string
	CoverLetterFilename *string
	CoverLetterFilePath *string
	Source              Source
	Notes               *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasCoverLetter reports whether a cover letter is attached.
func (a *Application) HasCoverLetter() bool {
	return a.CoverLetterFilePath != nil && *a.CoverLetterFilePath != ""
}

// AttachmentPaths returns the storage paths referenced by the application.
func (a *Application) AttachmentPaths() []string {
	paths := []string{a.ResumeFilePath}
	if a.HasCoverLetter() {
		paths = append(paths, *a.CoverLetterFilePath)
	}
	return paths
}

// Attachment is a stored document: the name the user uploaded and the
// handle under which the store keeps it.
type Attachment struct {
	OriginalName string
	StoragePath  string
}

// ApplicationUpdateParams holds the columns of a partial update.
// A nil field is left untouched. For PortalURL and Notes a pointer to ""
// clears the column.
type ApplicationUpdateParams struct {
	CompanyName *string
	JobTitle    *string
	JobID       *string
	JobURL      *string
	PortalURL   *string
	Status      *ApplicationStatus
	Priority    *Priority
	DateApplied *time.Time
	EmailUsed   *string
	Source      *Source
	Notes       *string
}

// IsEmpty reports whether no field is supplied.
func (p ApplicationUpdateParams) IsEmpty() bool {
	return p.CompanyName == nil && p.JobTitle == nil && p.JobID == nil &&
		p.JobURL == nil && p.PortalURL == nil && p.Status == nil &&
		p.Priority == nil && p.DateApplied == nil && p.EmailUsed == nil &&
		p.Source == nil && p.Notes == nil
}

// CompanyInfo is what a previous application to a company tells us about
// where to apply next time.
type CompanyInfo struct {
	PortalURL *string
	Source    Source
}

// StatusSourceCount is one cell of the status x source histogram.
type StatusSourceCount struct {
	Status ApplicationStatus
	Source Source
	Count  int
}

// AnalyticsSummary aggregates the whole application set.
type AnalyticsSummary struct {
	Total       int
	ByStatus    map[ApplicationStatus]int
	BySource    map[Source]int
	SuccessRate float64
}
