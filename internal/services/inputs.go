package service

import "github.com/honeynil/sportteams-service/internal/models"

// EntityRef carries just an id when a request body references an
// existing record instead of embedding it.
type EntityRef struct {
	ID *int32 `json:"id"`
}

type UserInput struct {
	Username  string      `json:"username"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Role      models.Role `json:"role"`
}

type CoachInput struct {
	UserID     *int32 `json:"userId"`
	Rating     int32  `json:"rating"`
	Experience int32  `json:"experience"`
}

type PlayerInput struct {
	UserID   *int32 `json:"userId"`
	Age      int32  `json:"age"`
	Position string `json:"position"`
}

type ParentInput struct {
	UserID *int32 `json:"userId"`
	Sex    string `json:"sex"`
}

type TeamInput struct {
	TeamName string      `json:"teamName"`
	Location string      `json:"location"`
	Coach    EntityRef   `json:"coach"`
	Players  []EntityRef `json:"players"`
}
