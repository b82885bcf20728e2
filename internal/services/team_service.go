package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	stderrors "errors"

	"github.com/google/uuid"
	"github.com/honeynil/sportteams-service/internal/infrastructure/kafka"
	"github.com/honeynil/sportteams-service/internal/infrastructure/redis"
	"github.com/honeynil/sportteams-service/internal/models"
	"github.com/honeynil/sportteams-service/internal/repository"
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

const teamCacheTTL = 5 * time.Minute

type TeamService interface {
	GetAllTeams(ctx context.Context) ([]models.Team, error)
	GetTeamByID(ctx context.Context, id int32) (*models.Team, error)
	CreateTeam(ctx context.Context, input TeamInput) (*models.Team, error)
	UpdateTeam(ctx context.Context, id int32, teamName, location string) (*models.Team, error)
	JoinTeam(ctx context.Context, teamID, playerID int32) (*models.Team, error)
	LeaveTeam(ctx context.Context, teamID, playerID int32) (*models.Team, error)
}

type teamService struct {
	teamRepo    repository.TeamRepository
	coachRepo   repository.CoachRepository
	playerRepo  repository.PlayerRepository
	redisClient redis.RedisClient
	producer    kafka.KafkaProducer
}

func NewTeamService(
	teamRepo repository.TeamRepository,
	coachRepo repository.CoachRepository,
	playerRepo repository.PlayerRepository,
	redisClient redis.RedisClient,
	producer kafka.KafkaProducer,
) *teamService {
	return &teamService{
		teamRepo:    teamRepo,
		coachRepo:   coachRepo,
		playerRepo:  playerRepo,
		redisClient: redisClient,
		producer:    producer,
	}
}

func (s *teamService) GetAllTeams(ctx context.Context) ([]models.Team, error) {
	return s.teamRepo.GetAll(ctx)
}

// GetTeamByID serves reads through the team cache. The cached entry was
// validated when it was stored, and roster mutations drop it via the
// teams-topic consumer, so a hit is at worst one event behind.
func (s *teamService) GetTeamByID(ctx context.Context, id int32) (*models.Team, error) {
	tracer := otel.Tracer("sportteams-service")
	ctx, span := tracer.Start(ctx, "GetTeamByID")
	defer span.End()

	cacheKey := fmt.Sprintf("team:%d", id)
	cached, err := s.redisClient.Get(ctx, cacheKey)
	if err == nil {
		var team models.Team
		if err := json.Unmarshal([]byte(cached), &team); err != nil {
			slog.Error("failed to unmarshal cached team", "team_id", id, "error", err)
		} else {
			return &team, nil
		}
	} else if !stderrors.Is(err, redis.ErrKeyNotFound) {
		slog.Error("failed to read team cache", "team_id", id, "error", err)
	}

	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if team == nil {
		return nil, nil
	}

	teamBytes, err := json.Marshal(team)
	if err != nil {
		slog.Error("failed to marshal team for cache", "team_id", id, "error", err)
	} else if err := s.redisClient.Set(ctx, cacheKey, string(teamBytes), teamCacheTTL); err != nil {
		slog.Error("failed to cache team", "team_id", id, "error", err)
	}
	return team, nil
}

// CreateTeam resolves the coach and every requested player before a
// single row is written. If any player id does not resolve, the whole
// operation fails and nothing is persisted.
func (s *teamService) CreateTeam(ctx context.Context, input TeamInput) (*models.Team, error) {
	tracer := otel.Tracer("sportteams-service")
	ctx, span := tracer.Start(ctx, "CreateTeam")
	defer span.End()

	if input.Coach.ID == nil {
		span.SetStatus(codes.Error, "coach id missing")
		return nil, pkgerrors.ErrCoachIDRequired
	}

	coach, err := s.coachRepo.GetByID(ctx, *input.Coach.ID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if coach == nil {
		span.SetStatus(codes.Error, "coach not found")
		return nil, pkgerrors.ErrCoachNotFound
	}

	players := []models.Player{}
	for _, ref := range input.Players {
		if ref.ID == nil {
			span.SetStatus(codes.Error, "player id missing")
			return nil, pkgerrors.ErrPlayersNotFound
		}
		player, err := s.playerRepo.GetByID(ctx, *ref.ID)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if player == nil {
			span.SetStatus(codes.Error, "player not found")
			slog.Warn("team creation references unknown player", "player_id", *ref.ID)
			return nil, pkgerrors.ErrPlayersNotFound
		}
		players = append(players, *player)
	}

	team, err := models.NewTeam(models.Team{
		TeamName: input.TeamName,
		Location: input.Location,
		Coach:    coach,
		Players:  players,
	})
	if err != nil {
		span.SetStatus(codes.Error, "invalid team")
		return nil, err
	}

	created, err := s.teamRepo.Create(ctx, team)
	if err != nil {
		span.RecordError(err)
		slog.Error("failed to create team", "team_name", input.TeamName, "error", err)
		return nil, err
	}

	publishEvent(s.producer, "teams", int64(*created.ID), map[string]interface{}{
		"event_id":   uuid.NewString(),
		"event_type": "team_created",
		"team_id":    *created.ID,
		"team_name":  created.TeamName,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	})

	slog.Info("team created", "team_id", *created.ID, "team_name", created.TeamName)
	return created, nil
}

// UpdateTeam changes name and location only; coach and roster moves go
// through the dedicated association operations.
func (s *teamService) UpdateTeam(ctx context.Context, id int32, teamName, location string) (*models.Team, error) {
	tracer := otel.Tracer("sportteams-service")
	ctx, span := tracer.Start(ctx, "UpdateTeam")
	defer span.End()

	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if team == nil {
		span.SetStatus(codes.Error, "team not found")
		return nil, pkgerrors.ErrTeamNotFound
	}

	updated, err := s.teamRepo.Update(ctx, id, teamName, location)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	publishEvent(s.producer, "teams", int64(id), map[string]interface{}{
		"event_id":   uuid.NewString(),
		"event_type": "team_updated",
		"team_id":    id,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	})

	slog.Info("team updated", "team_id", id)
	return updated, nil
}

// JoinTeam checks the team first, then the player, so a missing team is
// always reported as such even when the player is missing too.
func (s *teamService) JoinTeam(ctx context.Context, teamID, playerID int32) (*models.Team, error) {
	tracer := otel.Tracer("sportteams-service")
	ctx, span := tracer.Start(ctx, "JoinTeam")
	defer span.End()

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if team == nil {
		span.SetStatus(codes.Error, "team not found")
		return nil, pkgerrors.ErrTeamNotFound
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if player == nil {
		span.SetStatus(codes.Error, "player not found")
		return nil, pkgerrors.ErrPlayerNotFound
	}

	joined, err := s.teamRepo.JoinTeam(ctx, teamID, playerID)
	if err != nil {
		span.RecordError(err)
		slog.Error("failed to join team", "team_id", teamID, "player_id", playerID, "error", err)
		return nil, err
	}

	publishEvent(s.producer, "teams", int64(teamID), map[string]interface{}{
		"event_id":   uuid.NewString(),
		"event_type": "player_joined_team",
		"team_id":    teamID,
		"player_id":  playerID,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	})

	slog.Info("player joined team", "team_id", teamID, "player_id", playerID)
	return joined, nil
}

func (s *teamService) LeaveTeam(ctx context.Context, teamID, playerID int32) (*models.Team, error) {
	tracer := otel.Tracer("sportteams-service")
	ctx, span := tracer.Start(ctx, "LeaveTeam")
	defer span.End()

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if team == nil {
		span.SetStatus(codes.Error, "team not found")
		return nil, pkgerrors.ErrTeamNotFound
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if player == nil {
		span.SetStatus(codes.Error, "player not found")
		return nil, pkgerrors.ErrPlayerNotFound
	}

	left, err := s.teamRepo.LeaveTeam(ctx, teamID, playerID)
	if err != nil {
		span.RecordError(err)
		slog.Error("failed to leave team", "team_id", teamID, "player_id", playerID, "error", err)
		return nil, err
	}

	publishEvent(s.producer, "teams", int64(teamID), map[string]interface{}{
		"event_id":   uuid.NewString(),
		"event_type": "player_left_team",
		"team_id":    teamID,
		"player_id":  playerID,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	})

	slog.Info("player left team", "team_id", teamID, "player_id", playerID)
	return left, nil
}
