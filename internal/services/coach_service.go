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

type CoachService interface {
	GetAllCoaches(ctx context.Context) ([]models.Coach, error)
	GetCoachByID(ctx context.Context, id int32) (*models.Coach, error)
	CreateCoach(ctx context.Context, input CoachInput) (*models.Coach, error)
}

type coachService struct {
	coachRepo repository.CoachRepository
	userRepo  repository.UserRepository
}

func NewCoachService(coachRepo repository.CoachRepository, userRepo repository.UserRepository) *coachService {
	return &coachService{coachRepo: coachRepo, userRepo: userRepo}
}

func (s *coachService) GetAllCoaches(ctx context.Context) ([]models.Coach, error) {
	return s.coachRepo.GetAll(ctx)
}

func (s *coachService) GetCoachByID(ctx context.Context, id int32) (*models.Coach, error) {
	return s.coachRepo.GetByID(ctx, id)
}

// CreateCoach attaches a coach profile to an existing user.
func (s *coachService) CreateCoach(ctx context.Context, input CoachInput) (*models.Coach, error) {
	tracer := otel.Tracer("sportteams-service")
	ctx, span := tracer.Start(ctx, "CreateCoach")
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

	coach, err := models.NewCoach(models.Coach{
		User:       user,
		Rating:     input.Rating,
		Experience: input.Experience,
	})
	if err != nil {
		span.SetStatus(codes.Error, "invalid coach")
		return nil, err
	}

	created, err := s.coachRepo.Create(ctx, coach)
	if err != nil {
		span.RecordError(err)
		slog.Error("failed to create coach", "user_id", *input.UserID, "error", err)
		return nil, err
	}

	slog.Info("coach created", "coach_id", *created.ID, "user_id", *input.UserID)
	return created, nil
}
