package domain

// User represents the authenticated user in the remote workspace.
// Users are resolved fresh on every invocation and never cached locally.
type User struct {
	ID    string
	Email string
	Name  string
}

// IsValid checks if the user has valid data.
func (u User) IsValid() bool {
	return u.ID != ""
}

// String returns a display name for the user.
func (u User) String() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
