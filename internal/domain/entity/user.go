package entity

// User is the current session's account. The storefront keeps at most one user
// record at a time; an absent record means nobody is logged in.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`

	// PasswordHash is the bcrypt hash captured at registration. It is empty
	// for users fabricated by the mock login flow and is never serialized
	// into API responses.
	PasswordHash string `json:"passwordHash,omitempty"`
}
