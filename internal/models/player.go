package models

import (
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

// Player wraps a User with an age and a field position.
type Player struct {
	ID       *int32 `json:"id,omitempty"`
	User     *User  `json:"user"`
	Age      int32  `json:"age"`
	Position string `json:"position"`
}

func NewPlayer(p Player) (*Player, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p Player) Validate() error {
	if p.User == nil {
		return pkgerrors.ErrPlayerUserRequired
	}
	if p.Age == 0 {
		return pkgerrors.ErrPlayerAgeRequired
	}
	if p.Position == "" {
		return pkgerrors.ErrPlayerPositionRequired
	}
	return nil
}

func (p *Player) Equals(other *Player) bool {
	if other == nil {
		return false
	}
	return idEqual(p.ID, other.ID) &&
		p.User.Equals(other.User) &&
		p.Age == other.Age &&
		p.Position == other.Position
}
