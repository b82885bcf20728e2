package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/honeynil/sportteams-service/internal/models"
)

type PostgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) GetAll(ctx context.Context) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM matches ORDER BY id`)
	if err != nil {
		return nil, storageErr("matches.get_all", err)
	}
	defer rows.Close()

	ids := []int32{}
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, storageErr("matches.get_all", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("matches.get_all", err)
	}

	matches := []models.Match{}
	for _, id := range ids {
		match, err := r.loadMatch(ctx, id)
		if err != nil {
			return nil, storageErr("matches.get_all", err)
		}
		matches = append(matches, *match)
	}
	return matches, nil
}

func (r *PostgresMatchRepository) GetByID(ctx context.Context, id int32) (*models.Match, error) {
	match, err := r.loadMatch(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("matches.get_by_id", err)
	}
	return match, nil
}

func (r *PostgresMatchRepository) Create(ctx context.Context, teamIDs []int32, dateTime time.Time, location string) (*models.Match, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("matches.create", err)
	}

	var id int32
	err = tx.QueryRowContext(ctx, `
		INSERT INTO matches (date_time, location)
		VALUES ($1, $2)
		RETURNING id`,
		dateTime, location,
	).Scan(&id)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return nil, storageErr("matches.create", fmt.Errorf("rollback failed: %v (original: %w)", rbErr, err))
		}
		return nil, storageErr("matches.create", err)
	}

	for _, teamID := range teamIDs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO match_teams (match_id, team_id)
			VALUES ($1, $2)`,
			id, teamID,
		)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return nil, storageErr("matches.create", fmt.Errorf("rollback failed: %v (original: %w)", rbErr, err))
			}
			return nil, storageErr("matches.create", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("matches.create", err)
	}
	return r.GetByID(ctx, id)
}

// loadMatch reloads a match with every participating team eagerly
// joined, teams in team-id order (stable for a given query).
func (r *PostgresMatchRepository) loadMatch(ctx context.Context, id int32) (*models.Match, error) {
	var m models.Match
	var mid int32
	err := r.db.QueryRowContext(ctx, `
		SELECT id, date_time, location FROM matches WHERE id = $1`, id,
	).Scan(&mid, &m.DateTime, &m.Location)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT team_id FROM match_teams WHERE match_id = $1 ORDER BY team_id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teamIDs := []int32{}
	for rows.Next() {
		var teamID int32
		if err := rows.Scan(&teamID); err != nil {
			return nil, err
		}
		teamIDs = append(teamIDs, teamID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	teams := []models.Team{}
	for _, teamID := range teamIDs {
		team, err := loadTeamByID(ctx, r.db, teamID)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}

	m.ID = &mid
	m.Teams = teams
	return models.NewMatch(m)
}
