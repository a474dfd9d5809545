package api

// User describes one user record as returned by the directory API.
// The API owns these records; the client only holds cached copies.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
	Image     string `json:"image"`
	Role      string `json:"role"`
}

// FullName returns the display name used in notifications and list rows.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Credentials carries a login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse mirrors the /auth/login payload: the profile fields plus
// the token pair.
type LoginResponse struct {
	User
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// UserListResponse mirrors the envelope returned by /users and /users/search.
type UserListResponse struct {
	Users []User `json:"users"`
}

// NewUser carries the fields for a create request. The server assigns the id.
type NewUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

// UserPatch carries a partial update for PUT /users/<id>. Zero-valued fields
// are omitted so the server keeps the existing values.
type UserPatch struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Age       int    `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
}
