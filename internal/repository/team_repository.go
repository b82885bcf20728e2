package repository

import (
	"context"

	"github.com/honeynil/sportteams-service/internal/models"
)

type TeamRepository interface {
	GetAll(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id int32) (*models.Team, error)
	// Create persists the team row and its roster rows in a single
	// transaction; either everything lands or nothing does.
	Create(ctx context.Context, team *models.Team) (*models.Team, error)
	Update(ctx context.Context, id int32, teamName, location string) (*models.Team, error)
	// JoinTeam and LeaveTeam toggle roster membership and return the
	// reloaded team. Re-joining or re-leaving is a no-op at the store.
	JoinTeam(ctx context.Context, teamID, playerID int32) (*models.Team, error)
	LeaveTeam(ctx context.Context, teamID, playerID int32) (*models.Team, error)
}
