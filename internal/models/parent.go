package models

import (
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

// Parent wraps a User with a declared sex.
type Parent struct {
	ID   *int32 `json:"id,omitempty"`
	User *User  `json:"user"`
	Sex  string `json:"sex"`
}

func NewParent(p Parent) (*Parent, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p Parent) Validate() error {
	if p.User == nil {
		return pkgerrors.ErrParentUserRequired
	}
	if p.Sex == "" {
		return pkgerrors.ErrParentSexRequired
	}
	return nil
}

func (p *Parent) Equals(other *Parent) bool {
	if other == nil {
		return false
	}
	return idEqual(p.ID, other.ID) &&
		p.User.Equals(other.User) &&
		p.Sex == other.Sex
}
