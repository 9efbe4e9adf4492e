package response

type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginResponse is the body for every login outcome. Failed credentials
// still travel as HTTP 200 with Success=false; only store failures become
// 5xx responses.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	User    string `json:"user,omitempty"`
}
