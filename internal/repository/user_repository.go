package repository

import (
	"context"

	"github.com/honeynil/sportteams-service/internal/models"
)

type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByID returns (nil, nil) when no user has the given id.
	GetByID(ctx context.Context, id int32) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
