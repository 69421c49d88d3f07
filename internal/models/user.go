package models

// User represents a row in the users table. Password holds the bcrypt hash
// once the row is persisted and is never serialized.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// AuthRequest is the JSON body for POST /auth/register and /auth/login.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by both auth endpoints on success.
type AuthResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// UpdateUserRequest is the JSON body for PUT /users/{id}. Both fields are
// optional; a present password is re-hashed before storage.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}
