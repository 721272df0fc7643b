package models

// UserFilter narrows user listings. Zero values are ignored.
type UserFilter struct {
	OrganizationID   uint
	OrganizationName string
	// WorkDate keeps users with any attendance record created on that day.
	WorkDate    string
	SearchTerms []string
}

// WorkTimeFilter narrows attendance listings. Zero values are ignored.
// FromDate is inclusive and ToDate exclusive, both in WorkDateLayout.
type WorkTimeFilter struct {
	OrganizationID   uint
	OrganizationName string
	UserID           uint
	WorkDate         string
	FromDate         string
	ToDate           string
}
