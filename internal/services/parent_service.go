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

type ParentService interface {
	GetAllParents(ctx context.Context) ([]models.Parent, error)
	GetParentByID(ctx context.Context, id int32) (*models.Parent, error)
	CreateParent(ctx context.Context, input ParentInput) (*models.Parent, error)
}

type parentService struct {
	parentRepo repository.ParentRepository
	userRepo   repository.UserRepository
}

func NewParentService(parentRepo repository.ParentRepository, userRepo repository.UserRepository) *parentService {
	return &parentService{parentRepo: parentRepo, userRepo: userRepo}
}

func (s *parentService) GetAllParents(ctx context.Context) ([]models.Parent, error) {
	return s.parentRepo.GetAll(ctx)
}

func (s *parentService) GetParentByID(ctx context.Context, id int32) (*models.Parent, error) {
	return s.parentRepo.GetByID(ctx, id)
}

func (s *parentService) CreateParent(ctx context.Context, input ParentInput) (*models.Parent, error) {
	tracer := otel.Tracer("sportteams-service")
	ctx, span := tracer.Start(ctx, "CreateParent")
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

	parent, err := models.NewParent(models.Parent{
		User: user,
		Sex:  input.Sex,
	})
	if err != nil {
		span.SetStatus(codes.Error, "invalid parent")
		return nil, err
	}

	created, err := s.parentRepo.Create(ctx, parent)
	if err != nil {
		span.RecordError(err)
		slog.Error("failed to create parent", "user_id", *input.UserID, "error", err)
		return nil, err
	}

	slog.Info("parent created", "parent_id", *created.ID, "user_id", *input.UserID)
	return created, nil
}
