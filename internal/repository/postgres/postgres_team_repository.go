package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/honeynil/sportteams-service/internal/models"
)

type PostgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) *PostgresTeamRepository {
	return &PostgresTeamRepository{db: db}
}

func (r *PostgresTeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM teams ORDER BY id`)
	if err != nil {
		return nil, storageErr("teams.get_all", err)
	}
	defer rows.Close()

	ids := []int32{}
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, storageErr("teams.get_all", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("teams.get_all", err)
	}

	teams := []models.Team{}
	for _, id := range ids {
		team, err := loadTeamByID(ctx, r.db, id)
		if err != nil {
			return nil, storageErr("teams.get_all", err)
		}
		teams = append(teams, *team)
	}
	return teams, nil
}

func (r *PostgresTeamRepository) GetByID(ctx context.Context, id int32) (*models.Team, error) {
	team, err := loadTeamByID(ctx, r.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("teams.get_by_id", err)
	}
	return team, nil
}

// Create writes the team row and its initial roster in one transaction.
// A failing roster insert rolls everything back so no partial team is
// ever persisted.
func (r *PostgresTeamRepository) Create(ctx context.Context, team *models.Team) (*models.Team, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("teams.create", err)
	}

	var id int32
	err = tx.QueryRowContext(ctx, `
		INSERT INTO teams (team_name, location, coach_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		team.TeamName, team.Location, team.Coach.ID,
	).Scan(&id)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return nil, storageErr("teams.create", fmt.Errorf("rollback failed: %v (original: %w)", rbErr, err))
		}
		return nil, storageErr("teams.create", err)
	}

	for _, player := range team.Players {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO team_players (team_id, player_id)
			VALUES ($1, $2)`,
			id, player.ID,
		)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return nil, storageErr("teams.create", fmt.Errorf("rollback failed: %v (original: %w)", rbErr, err))
			}
			return nil, storageErr("teams.create", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("teams.create", err)
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresTeamRepository) Update(ctx context.Context, id int32, teamName, location string) (*models.Team, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE teams
		SET team_name = $2, location = $3
		WHERE id = $1`,
		id, teamName, location,
	)
	if err != nil {
		return nil, storageErr("teams.update", err)
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresTeamRepository) JoinTeam(ctx context.Context, teamID, playerID int32) (*models.Team, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO team_players (team_id, player_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		teamID, playerID,
	)
	if err != nil {
		return nil, storageErr("teams.join", err)
	}
	return r.GetByID(ctx, teamID)
}

func (r *PostgresTeamRepository) LeaveTeam(ctx context.Context, teamID, playerID int32) (*models.Team, error) {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM team_players
		WHERE team_id = $1 AND player_id = $2`,
		teamID, playerID,
	)
	if err != nil {
		return nil, storageErr("teams.leave", err)
	}
	return r.GetByID(ctx, teamID)
}
