package models

import (
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

// Team owns a coach reference and a roster of players for display.
// The store stays authoritative for both relations; a Team instance is
// a read-through reconstruction, never the source of truth.
type Team struct {
	ID       *int32   `json:"id,omitempty"`
	TeamName string   `json:"teamName"`
	Location string   `json:"location"`
	Coach    *Coach   `json:"coach"`
	Players  []Player `json:"players"`
}

func NewTeam(t Team) (*Team, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks name and location only. The roster may be empty and
// the coach reference is checked by the association rules, not here.
func (t Team) Validate() error {
	if t.TeamName == "" {
		return pkgerrors.ErrTeamNameRequired
	}
	if t.Location == "" {
		return pkgerrors.ErrTeamLocationRequired
	}
	return nil
}

func (t *Team) Equals(other *Team) bool {
	if other == nil {
		return false
	}
	if !idEqual(t.ID, other.ID) ||
		t.TeamName != other.TeamName ||
		t.Location != other.Location ||
		!t.Coach.Equals(other.Coach) {
		return false
	}
	if len(t.Players) != len(other.Players) {
		return false
	}
	for i := range t.Players {
		if !t.Players[i].Equals(&other.Players[i]) {
			return false
		}
	}
	return true
}
