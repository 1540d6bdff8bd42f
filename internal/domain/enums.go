package domain

// ApplicationStatus is the stage an application has reached.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusScreening ApplicationStatus = "screening"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
	StatusWithdrawn ApplicationStatus = "withdrawn"
)

// AllStatuses returns every status in display order. Analytics iterates this
// list, not the values present in storage.
func AllStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		StatusApplied, StatusScreening, StatusInterview, StatusOffer,
		StatusAccepted, StatusRejected, StatusWithdrawn,
	}
}

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInterview, StatusOffer,
		StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// IsProgressed reports whether the status counts towards the success rate.
func (s ApplicationStatus) IsProgressed() bool {
	return s == StatusInterview || s == StatusOffer
}

// Priority is the user's own ranking of an application.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Source is the channel through which the application was submitted.
type Source string

const (
	SourceCompanyWebsite Source = "company_website"
	SourceLinkedIn       Source = "linkedin"
	SourceIndeed         Source = "indeed"
	SourceGlassdoor      Source = "glassdoor"
	SourceReferral       Source = "referral"
	SourceJobBoard       Source = "job_board"
	SourceRecruiter      Source = "recruiter"
	SourceOther          Source = "other"
)

func AllSources() []Source {
	return []Source{
		SourceCompanyWebsite, SourceLinkedIn, SourceIndeed, SourceGlassdoor,
		SourceReferral, SourceJobBoard, SourceRecruiter, SourceOther,
	}
}

func (s Source) String() string { return string(s) }

func (s Source) IsValid() bool {
	switch s {
	case SourceCompanyWebsite, SourceLinkedIn, SourceIndeed, SourceGlassdoor,
		SourceReferral, SourceJobBoard, SourceRecruiter, SourceOther:
		return true
	}
	return false
}

// AttachmentCategory selects the storage area of an uploaded document.
type AttachmentCategory string

const (
	AttachmentResume      AttachmentCategory = "resume"
	AttachmentCoverLetter AttachmentCategory = "cover_letter"
)

func (c AttachmentCategory) String() string { return string(c) }

func (c AttachmentCategory) IsValid() bool {
	switch c {
	case AttachmentResume, AttachmentCoverLetter:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeApplication EntityType = "APPLICATION"
	EntityTypeProfile     EntityType = "PROFILE"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeApplication, EntityTypeProfile:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
