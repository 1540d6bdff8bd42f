package domain

// JobPosting holds the fields extracted from a job posting page, ready to
// prefill a new application. Empty strings mean the field was not found.
type JobPosting struct {
	CompanyName string `json:"company_name"`
	JobTitle    string `json:"job_title"`
	JobID       string `json:"job_id"`
	JobURL      string `json:"job_url"`
	PortalURL   string `json:"portal_url"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// IsEmpty reports whether the posting lacks the fields that identify it.
func (p JobPosting) IsEmpty() bool {
	return p.CompanyName == "" && p.JobTitle == ""
}
