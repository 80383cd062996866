package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
)

// Valid reports whether the role is one of the two supported roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAlumni
}

// RequestStatus is the lifecycle state of a mentorship request.
// Pending transitions exactly once, to Accepted or Rejected.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestAccepted RequestStatus = "Accepted"
	RequestRejected RequestStatus = "Rejected"
)

// ValidResponse reports whether the status is an allowed response to a
// pending request.
func (s RequestStatus) ValidResponse() bool {
	return s == RequestAccepted || s == RequestRejected
}

// ApplicationStatus is the state of a job application.
type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "Applied"
	ApplicationShortlisted ApplicationStatus = "Shortlisted"
	ApplicationHired       ApplicationStatus = "Hired"
	ApplicationRejected    ApplicationStatus = "Rejected"
)

// Valid reports whether the status belongs to the four-value enum.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationApplied, ApplicationShortlisted, ApplicationHired, ApplicationRejected:
		return true
	}
	return false
}
