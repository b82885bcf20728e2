package models

import (
	"time"

	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

// Match holds the participating teams. Two teams per match is a
// front-end convention; the model only requires that the collection is
// present.
type Match struct {
	ID       *int32    `json:"id,omitempty"`
	Teams    []Team    `json:"teams"`
	DateTime time.Time `json:"dateTime"`
	Location string    `json:"location"`
}

func NewMatch(m Match) (*Match, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m Match) Validate() error {
	if m.Teams == nil {
		return pkgerrors.ErrMatchTeamsRequired
	}
	if m.DateTime.IsZero() {
		return pkgerrors.ErrMatchDateTimeRequired
	}
	if m.Location == "" {
		return pkgerrors.ErrMatchLocationRequired
	}
	return nil
}

func (m *Match) Equals(other *Match) bool {
	if other == nil {
		return false
	}
	if !idEqual(m.ID, other.ID) ||
		!m.DateTime.Equal(other.DateTime) ||
		m.Location != other.Location {
		return false
	}
	if len(m.Teams) != len(other.Teams) {
		return false
	}
	for i := range m.Teams {
		if !m.Teams[i].Equals(&other.Teams[i]) {
			return false
		}
	}
	return true
}
