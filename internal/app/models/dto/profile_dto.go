package dto

import "time"

// StudentProfileResponse is the joined users+students self-profile view.
type StudentProfileResponse struct {
	UserID             int64  `json:"user_id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	EnrollmentYear     int    `json:"enrollment_year"`
	Degree             string `json:"degree"`
	Department         string `json:"department"`
	ExpectedGraduation int    `json:"expected_graduation"`
}

// UpdateStudentProfileRequest is a partial update; nil fields keep their
// prior values.
type UpdateStudentProfileRequest struct {
	Name               *string `json:"name"`
	Phone              *string `json:"phone"`
	Degree             *string `json:"degree"`
	Department         *string `json:"department"`
	EnrollmentYear     *int    `json:"enrollment_year"`
	ExpectedGraduation *int    `json:"expected_graduation"`
}

// AlumniProfileResponse is the joined users+alumni self-profile view.
type AlumniProfileResponse struct {
	UserID          int64     `json:"user_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	GraduationYear  int       `json:"graduation_year"`
	Degree          string    `json:"degree"`
	Department      string    `json:"department"`
	CurrentPosition string    `json:"current_position"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	CreatedAt       time.Time `json:"created_at"`
}

// UpdateAlumniProfileRequest is a partial update; nil fields keep their
// prior values.
type UpdateAlumniProfileRequest struct {
	Name            *string `json:"name"`
	Phone           *string `json:"phone"`
	GraduationYear  *int    `json:"graduation_year"`
	Degree          *string `json:"degree"`
	Department      *string `json:"department"`
	CurrentPosition *string `json:"current_position"`
	Company         *string `json:"company"`
	Location        *string `json:"location"`
}
