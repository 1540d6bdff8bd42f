package domain

import "time"

// Setting is one key/value pair of user-level configuration stored in the
// database (as opposed to process configuration).
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// ProfileID is the fixed primary key of the single profile row.
const ProfileID = 1

// Profile describes the person applying.
type Profile struct {
	ID          int
	FullName    string
	Email       *string
	Headline    string
	LinkedInURL *string
	UpdatedAt   time.Time
}

// DefaultProfile is returned when no profile has been saved yet.
func DefaultProfile() Profile {
	return Profile{ID: ProfileID}
}

// ProfileFields holds the columns of a partial profile write. Nil fields are
// left untouched; for Email and LinkedInURL a pointer to "" stores NULL.
type ProfileFields struct {
	FullName    *string
	Email       *string
	Headline    *string
	LinkedInURL *string
}
