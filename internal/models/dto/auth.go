package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInfo is the public projection of a user returned by auth endpoints.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// AuthData is the payload of a successful register or login response.
type AuthData struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
