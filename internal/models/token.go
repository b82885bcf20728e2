package models

// AuthResponse is what a successful login returns to the front-end.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Role     Role   `json:"role"`
}
