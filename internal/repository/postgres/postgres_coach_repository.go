package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/honeynil/sportteams-service/internal/models"
)

type PostgresCoachRepository struct {
	db *sql.DB
}

func NewPostgresCoachRepository(db *sql.DB) *PostgresCoachRepository {
	return &PostgresCoachRepository{db: db}
}

func (r *PostgresCoachRepository) GetAll(ctx context.Context) ([]models.Coach, error) {
	query := `
		SELECT ` + coachColumns + `
		FROM coaches c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageErr("coaches.get_all", err)
	}
	defer rows.Close()

	coaches := []models.Coach{}
	for rows.Next() {
		coach, err := scanCoach(rows)
		if err != nil {
			return nil, storageErr("coaches.get_all", err)
		}
		coaches = append(coaches, *coach)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("coaches.get_all", err)
	}
	return coaches, nil
}

func (r *PostgresCoachRepository) GetByID(ctx context.Context, id int32) (*models.Coach, error) {
	query := `
		SELECT ` + coachColumns + `
		FROM coaches c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`

	coach, err := scanCoach(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("coaches.get_by_id", err)
	}
	return coach, nil
}

func (r *PostgresCoachRepository) Create(ctx context.Context, coach *models.Coach) (*models.Coach, error) {
	query := `
		INSERT INTO coaches (user_id, rating, experience)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int32
	err := r.db.QueryRowContext(ctx, query, coach.User.ID, coach.Rating, coach.Experience).Scan(&id)
	if err != nil {
		return nil, storageErr("coaches.create", err)
	}
	return r.GetByID(ctx, id)
}
