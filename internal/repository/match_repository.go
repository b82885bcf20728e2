package repository

import (
	"context"
	"time"

	"github.com/honeynil/sportteams-service/internal/models"
)

type MatchRepository interface {
	GetAll(ctx context.Context) ([]models.Match, error)
	GetByID(ctx context.Context, id int32) (*models.Match, error)
	Create(ctx context.Context, teamIDs []int32, dateTime time.Time, location string) (*models.Match, error)
}
