package domain

// ApplicationFilter contains filtering/pagination parameters for listing
// applications. Nil fields are not applied.
type ApplicationFilter struct {
	// CompanyName and EmailUsed match as case-insensitive substrings.
	CompanyName *string
	EmailUsed   *string

	Status   *ApplicationStatus
	Priority *Priority
	Source   *Source

	Skip  int
	Limit int
}
