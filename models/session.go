package models

// Session roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Session is the recorded identity of a logged-in client. It is created on
// successful login and destroyed on logout or expiry.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
