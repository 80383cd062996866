package dto

// SignupExtra carries the role-specific profile fields of a signup payload.
// Which fields are required depends on the declared role and is validated in
// the auth service before the transaction starts.
type SignupExtra struct {
	// Student fields
	EnrollmentYear     int `json:"enrollment_year"`
	ExpectedGraduation int `json:"expected_graduation"`

	// Alumni fields
	GraduationYear  int    `json:"graduation_year"`
	CurrentPosition string `json:"current_position"`
	Company         string `json:"company"`
	Location        string `json:"location"`

	// Shared
	Degree     string `json:"degree"`
	Department string `json:"department"`
}

// SignupRequest is the payload for POST /signup.
type SignupRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Phone    string      `json:"phone"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     string      `json:"role" binding:"required,oneof=student alumni"`
	Extra    SignupExtra `json:"extra"`
}

// SigninRequest is the payload for POST /signin.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthUser is the safe user payload returned by signup and signin.
type AuthUser struct {
	UserID    int64  `json:"user_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// SigninResponse carries the issued credential alongside the user payload.
type SigninResponse struct {
	User      AuthUser `json:"user"`
	Token     string   `json:"token"`
	ExpiresIn int      `json:"expiresIn"`
}
