package rest

import (
	"time"

	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

type applicationResponse struct {
	ID                  string    `json:"id"`
	CompanyName         string    `json:"company_name"`
	JobTitle            string    `json:"job_title"`
	JobID               string    `json:"job_id"`
	JobURL              string    `json:"job_url"`
	PortalURL           *string   `json:"portal_url"`
	Status              string    `json:"status"`
	Priority            string    `json:"priority"`
	DateApplied         time.Time `json:"date_applied"`
	EmailUsed           string    `json:"email_used"`
	ResumeFilename      string    `json:"resume_filename"`
	CoverLetterFilename *string   `json:"cover_letter_filename"`
	Source              string    `json:"source"`
	Notes               *string   `json:"notes"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:                  a.ID.String(),
		CompanyName:         a.CompanyName,
		JobTitle:            a.JobTitle,
		JobID:               a.JobID,
		JobURL:              a.JobURL,
		PortalURL:           a.PortalURL,
		Status:              a.Status.String(),
		Priority:            a.Priority.String(),
		DateApplied:         a.DateApplied,
		EmailUsed:           a.EmailUsed,
		ResumeFilename:      a.ResumeFilename,
		CoverLetterFilename: a.CoverLetterFilename,
		Source:              a.Source.String(),
		Notes:               a.Notes,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func toApplicationList(apps []domain.Application) []applicationResponse {
	out := make([]applicationResponse, len(apps))
	for i := range apps {
		out[i] = toApplicationResponse(&apps[i])
	}
	return out
}

type companyInfoResponse struct {
	PortalURL *string `json:"portal_url"`
	Source    string  `json:"source"`
}

type summaryResponse struct {
	TotalApplications    int            `json:"total_applications"`
	ApplicationsByStatus map[string]int `json:"applications_by_status"`
	ApplicationsBySource map[string]int `json:"applications_by_source"`
	SuccessRate          float64        `json:"success_rate"`
}

func toSummaryResponse(s *domain.AnalyticsSummary) summaryResponse {
	resp := summaryResponse{
		TotalApplications:    s.Total,
		ApplicationsByStatus: make(map[string]int, len(s.ByStatus)),
		ApplicationsBySource: make(map[string]int, len(s.BySource)),
		SuccessRate:          s.SuccessRate,
	}
	for k, v := range s.ByStatus {
		resp.ApplicationsByStatus[k.String()] = v
	}
	for k, v := range s.BySource {
		resp.ApplicationsBySource[k.String()] = v
	}
	return resp
}

type auditRecordResponse struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"created_at"`
}

func toAuditList(records []domain.AuditRecord) []auditRecordResponse {
	out := make([]auditRecordResponse, len(records))
	for i, r := range records {
		out[i] = auditRecordResponse{
			ID:        r.ID.String(),
			Action:    r.Action.String(),
			Changes:   r.Changes,
			CreatedAt: r.CreatedAt,
		}
	}
	return out
}

type profileResponse struct {
	ID          int        `json:"id"`
	FullName    string     `json:"full_name"`
	Email       *string    `json:"email"`
	Headline    string     `json:"headline"`
	LinkedInURL *string    `json:"linkedin_url"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	resp := profileResponse{
		ID:          p.ID,
		FullName:    p.FullName,
		Email:       p.Email,
		Headline:    p.Headline,
		LinkedInURL: p.LinkedInURL,
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = &p.UpdatedAt
	}
	return resp
}

type settingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toSettingResponse(s *domain.Setting) settingResponse {
	return settingResponse{Key: s.Key, Value: s.Value, UpdatedAt: s.UpdatedAt}
}
