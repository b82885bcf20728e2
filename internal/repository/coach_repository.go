package repository

import (
	"context"

	"github.com/honeynil/sportteams-service/internal/models"
)

type CoachRepository interface {
	GetAll(ctx context.Context) ([]models.Coach, error)
	GetByID(ctx context.Context, id int32) (*models.Coach, error)
	// Create attaches the coach row to the user referenced by
	// coach.User.ID and returns the reloaded entity.
	Create(ctx context.Context, coach *models.Coach) (*models.Coach, error)
}
