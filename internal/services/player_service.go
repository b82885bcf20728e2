package service

import (
	"context"
	"log/slog"

	"github.com/honeynil/sportteams-service/internal/models"
	"github.com/honeynil/sportteams-service/internal/repository"
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

type PlayerService interface {
	GetAllPlayers(ctx context.Context) ([]models.Player, error)
	GetPlayerByID(ctx context.Context, id int32) (*models.Player, error)
	CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error)
}

type playerService struct {
	playerRepo repository.PlayerRepository
	userRepo   repository.UserRepository
}

func NewPlayerService(playerRepo repository.PlayerRepository, userRepo repository.UserRepository) *playerService {
	return &playerService{playerRepo: playerRepo, userRepo: userRepo}
}

func (s *playerService) GetAllPlayers(ctx context.Context) ([]models.Player, error) {
	return s.playerRepo.GetAll(ctx)
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int32) (*models.Player, error) {
	return s.playerRepo.GetByID(ctx, id)
}

func (s *playerService) CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error) {
	tracer := otel.Tracer("sportteams-service")
	ctx, span := tracer.Start(ctx, "CreatePlayer")
	defer span.End()

	if input.UserID == nil {
		span.SetStatus(codes.Error, "user missing")
		return nil, pkgerrors.ErrUserNotFound
	}
	user, err := s.userRepo.GetByID(ctx, *input.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if user == nil {
		span.SetStatus(codes.Error, "user not found")
		return nil, pkgerrors.ErrUserNotFound
	}

	player, err := models.NewPlayer(models.Player{
		User:     user,
		Age:      input.Age,
		Position: input.Position,
	})
	if err != nil {
		span.SetStatus(codes.Error, "invalid player")
		return nil, err
	}

	created, err := s.playerRepo.Create(ctx, player)
	if err != nil {
		span.RecordError(err)
		slog.Error("failed to create player", "user_id", *input.UserID, "error", err)
		return nil, err
	}

	slog.Info("player created", "player_id", *created.ID, "user_id", *input.UserID)
	return created, nil
}
