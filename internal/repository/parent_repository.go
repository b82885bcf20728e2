package repository

import (
	"context"

	"github.com/honeynil/sportteams-service/internal/models"
)

type ParentRepository interface {
	GetAll(ctx context.Context) ([]models.Parent, error)
	GetByID(ctx context.Context, id int32) (*models.Parent, error)
	Create(ctx context.Context, parent *models.Parent) (*models.Parent, error)
}
