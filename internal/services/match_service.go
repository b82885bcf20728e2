package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/honeynil/sportteams-service/internal/infrastructure/kafka"
	"github.com/honeynil/sportteams-service/internal/models"
	"github.com/honeynil/sportteams-service/internal/repository"
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

type MatchService interface {
	GetAllMatches(ctx context.Context) ([]models.Match, error)
	GetMatchByID(ctx context.Context, id int32) (*models.Match, error)
	CreateMatch(ctx context.Context, teamIDs []int32, dateTime time.Time, location string) (*models.Match, error)
}

type matchService struct {
	matchRepo repository.MatchRepository
	producer  kafka.KafkaProducer
}

func NewMatchService(matchRepo repository.MatchRepository, producer kafka.KafkaProducer) *matchService {
	return &matchService{matchRepo: matchRepo, producer: producer}
}

func (s *matchService) GetAllMatches(ctx context.Context) ([]models.Match, error) {
	return s.matchRepo.GetAll(ctx)
}

func (s *matchService) GetMatchByID(ctx context.Context, id int32) (*models.Match, error) {
	return s.matchRepo.GetByID(ctx, id)
}

// CreateMatch attaches every id in teamIDs as given. How many teams a
// match has is a front-end convention, so no cardinality or duplicate
// check happens here; a dangling team id is rejected by the store's
// foreign keys.
func (s *matchService) CreateMatch(ctx context.Context, teamIDs []int32, dateTime time.Time, location string) (*models.Match, error) {
	tracer := otel.Tracer("sportteams-service")
	ctx, span := tracer.Start(ctx, "CreateMatch")
	defer span.End()

	if teamIDs == nil {
		span.SetStatus(codes.Error, "teams missing")
		return nil, pkgerrors.ErrMatchTeamsRequired
	}
	if dateTime.IsZero() {
		span.SetStatus(codes.Error, "date missing")
		return nil, pkgerrors.ErrMatchDateTimeRequired
	}
	if location == "" {
		span.SetStatus(codes.Error, "location missing")
		return nil, pkgerrors.ErrMatchLocationRequired
	}

	match, err := s.matchRepo.Create(ctx, teamIDs, dateTime, location)
	if err != nil {
		span.RecordError(err)
		slog.Error("failed to create match", "team_ids", teamIDs, "error", err)
		return nil, err
	}

	publishEvent(s.producer, "teams", int64(*match.ID), map[string]interface{}{
		"event_id":   uuid.NewString(),
		"event_type": "match_scheduled",
		"match_id":   *match.ID,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	})

	slog.Info("match scheduled", "match_id", *match.ID, "location", location)
	return match, nil
}
