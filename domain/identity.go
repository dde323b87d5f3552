package domain

// Identity is the resolved caller attached to a request after the
// authentication gate has verified the bearer token and confirmed the
// account still exists.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
