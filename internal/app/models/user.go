package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Password  string    `json:"-" db:"password"` // Hashed, excluded from JSON
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StudentProfile defines the student model based on the 'students' table.
// Exactly one row exists per student user, created atomically at signup.
type StudentProfile struct {
	UserID             int64  `json:"user_id" db:"user_id"`
	EnrollmentYear     int    `json:"enrollment_year" db:"enrollment_year"`
	Degree             string `json:"degree" db:"degree"`
	Department         string `json:"department" db:"department"`
	ExpectedGraduation int    `json:"expected_graduation" db:"expected_graduation"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}

// AlumniProfile defines the alumni model based on the 'alumni' table.
// Exactly one row exists per alumni user, created atomically at signup.
type AlumniProfile struct {
	UserID          int64  `json:"user_id" db:"user_id"`
	GraduationYear  int    `json:"graduation_year" db:"graduation_year"`
	Degree          string `json:"degree" db:"degree"`
	Department      string `json:"department" db:"department"`
	CurrentPosition string `json:"current_position" db:"current_position"`
	Company         string `json:"company" db:"company"`
	Location        string `json:"location" db:"location"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}
