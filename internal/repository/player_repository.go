package repository

import (
	"context"

	"github.com/honeynil/sportteams-service/internal/models"
)

type PlayerRepository interface {
	GetAll(ctx context.Context) ([]models.Player, error)
	GetByID(ctx context.Context, id int32) (*models.Player, error)
	Create(ctx context.Context, player *models.Player) (*models.Player, error)
}
