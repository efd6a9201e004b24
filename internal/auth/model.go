package auth

// User is the authenticated customer profile as returned by the backend.
type User struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Session is the gate's externally visible state. Exactly one of three
// shapes holds: anonymous (no user), registered user, or table-scoped guest.
type Session struct {
	User            *User
	IsAuthenticated bool
	IsGuest         bool
}

// Result is what UI callers receive from login-style operations instead of
// an error: a flag plus a display-ready message.
type Result struct {
	Success bool
	User    *User
	Error   string
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}
