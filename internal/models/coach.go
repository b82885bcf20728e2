package models

import (
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

// Coach wraps a User with a rating and years of experience.
type Coach struct {
	ID         *int32 `json:"id,omitempty"`
	User       *User  `json:"user"`
	Rating     int32  `json:"rating"`
	Experience int32  `json:"experience"`
}

func NewCoach(c Coach) (*Coach, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects zero rating and experience as missing. That mirrors
// what the API has always done for absent numeric fields; legitimate
// zeroes are indistinguishable from omitted ones at this boundary.
func (c Coach) Validate() error {
	if c.User == nil {
		return pkgerrors.ErrCoachUserRequired
	}
	if c.Rating == 0 {
		return pkgerrors.ErrCoachRatingRequired
	}
	if c.Experience == 0 {
		return pkgerrors.ErrCoachExperienceRequired
	}
	return nil
}

func (c *Coach) Equals(other *Coach) bool {
	if other == nil {
		return false
	}
	return idEqual(c.ID, other.ID) &&
		c.User.Equals(other.User) &&
		c.Rating == other.Rating &&
		c.Experience == other.Experience
}
