package models

import (
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
	RoleCoach  Role = "coach"
	RoleParent Role = "parent"
)

// User carries identity and credentials. Password holds the bcrypt hash
// once the user has passed through the service layer.
type User struct {
	ID        *int32 `json:"id,omitempty"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
}

// NewUser validates before any instance is handed out. Repositories
// reconstructing a user from a row go through the same path, so the
// invariants hold for fresh and reloaded entities alike.
func NewUser(u User) (*User, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return &u, nil
}

func (u User) Validate() error {
	if u.Username == "" {
		return pkgerrors.ErrUserUsernameRequired
	}
	if u.FirstName == "" {
		return pkgerrors.ErrUserFirstNameRequired
	}
	if u.LastName == "" {
		return pkgerrors.ErrUserLastNameRequired
	}
	if u.Email == "" {
		return pkgerrors.ErrUserEmailRequired
	}
	if u.Password == "" {
		return pkgerrors.ErrUserPasswordRequired
	}
	if u.Role == "" {
		return pkgerrors.ErrUserRoleRequired
	}
	return nil
}

func (u *User) Equals(other *User) bool {
	if other == nil {
		return false
	}
	return idEqual(u.ID, other.ID) &&
		u.Username == other.Username &&
		u.FirstName == other.FirstName &&
		u.LastName == other.LastName &&
		u.Email == other.Email &&
		u.Password == other.Password &&
		u.Role == other.Role
}

func idEqual(a, b *int32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
