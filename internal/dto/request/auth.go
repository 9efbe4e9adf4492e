package request

// SignupRequest is the normalized signup command. At least one of UserID
// and Email must be present; UserID defaults to Email when absent.
type SignupRequest struct {
	UserID   string `json:"userId" validate:"required_without=Email"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// LoginRequest carries credentials as given. Blank values are not a
// validation error: they are trimmed and compared normally, producing a
// not-found or wrong-password outcome instead.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
