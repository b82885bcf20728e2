package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/honeynil/sportteams-service/internal/infrastructure/kafka"
	"github.com/honeynil/sportteams-service/internal/infrastructure/redis"
	"github.com/honeynil/sportteams-service/internal/models"
	"github.com/honeynil/sportteams-service/internal/repository"
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int32) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	Signup(ctx context.Context, input UserInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
}

type userService struct {
	userRepo    repository.UserRepository
	redisClient redis.RedisClient
	producer    kafka.KafkaProducer
	jwtSecret   string
}

func NewUserService(userRepo repository.UserRepository, redisClient redis.RedisClient, producer kafka.KafkaProducer, jwtSecret string) *userService {
	return &userService{
		userRepo:    userRepo,
		redisClient: redisClient,
		producer:    producer,
		jwtSecret:   jwtSecret,
	}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *userService) GetUserByID(ctx context.Context, id int32) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

func (s *userService) Signup(ctx context.Context, input UserInput) (*models.User, error) {
	tracer := otel.Tracer("sportteams-service")
	ctx, span := tracer.Start(ctx, "Signup")
	defer span.End()

	// Validate before hashing so a missing password is reported as a
	// validation failure, not turned into a hash of the empty string.
	if _, err := models.NewUser(models.User{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Role:      input.Role,
	}); err != nil {
		span.SetStatus(codes.Error, "invalid user input")
		return nil, err
	}

	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "user check failed")
		return nil, err
	}
	if existing != nil {
		span.SetStatus(codes.Error, "username already registered")
		slog.Warn("username already registered", "username", input.Username, "existing_id", existing.ID)
		return nil, pkgerrors.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "password hashing failed")
		slog.Error("failed to hash password", "username", input.Username, "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := models.NewUser(models.User{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hash),
		Role:      input.Role,
	})
	if err != nil {
		span.SetStatus(codes.Error, "invalid user")
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "user creation failed")
		slog.Error("failed to create user", "username", input.Username, "error", err)
		return nil, err
	}

	publishEvent(s.producer, "users", int64(*created.ID), map[string]interface{}{
		"event_id":   uuid.NewString(),
		"event_type": "user_registered",
		"user_id":    *created.ID,
		"username":   created.Username,
		"role":       created.Role,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	})

	slog.Info("user registered", "user_id", *created.ID, "username", created.Username)
	return created, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	tracer := otel.Tracer("sportteams-service")
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		slog.Error("failed to look up user", "username", username, "error", err)
		return nil, pkgerrors.ErrInvalidCredentials
	}
	if user == nil {
		slog.Warn("login for unknown username", "username", username)
		return nil, pkgerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		slog.Warn("invalid password", "username", username)
		return nil, pkgerrors.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": *user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		span.RecordError(err)
		slog.Error("failed to generate JWT", "error", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.redisClient.Set(ctx, fmt.Sprintf("user:%d:token", *user.ID), tokenString, time.Hour); err != nil {
		slog.Error("failed to store JWT", "user_id", *user.ID, "error", err)
	}

	slog.Info("user logged in", "username", username, "user_id", *user.ID)
	return &models.AuthResponse{
		Token:    tokenString,
		Username: user.Username,
		Fullname: user.FirstName + " " + user.LastName,
		Role:     user.Role,
	}, nil
}
