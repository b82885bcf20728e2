package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/honeynil/sportteams-service/internal/models"
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

// querier is satisfied by *sql.DB and *sql.Tx so the entity loaders can
// run inside or outside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// storageErr logs the driver error and returns the uniform storage
// failure. Nothing about the underlying store crosses this boundary.
func storageErr(op string, err error) error {
	slog.Error("storage failure", "op", op, "error", err)
	return pkgerrors.ErrStorage
}

const userColumns = `u.id, u.username, u.first_name, u.last_name, u.email, u.password, u.role`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	var id int32
	if err := row.Scan(&id, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.Role); err != nil {
		return nil, err
	}
	u.ID = &id
	return models.NewUser(u)
}

const coachColumns = `c.id, c.rating, c.experience, ` + userColumns

func scanCoach(row interface{ Scan(...any) error }) (*models.Coach, error) {
	var c models.Coach
	var cid, uid int32
	var u models.User
	if err := row.Scan(&cid, &c.Rating, &c.Experience,
		&uid, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.Role); err != nil {
		return nil, err
	}
	u.ID = &uid
	user, err := models.NewUser(u)
	if err != nil {
		return nil, err
	}
	c.ID = &cid
	c.User = user
	return models.NewCoach(c)
}

const playerColumns = `p.id, p.age, p.position, ` + userColumns

func scanPlayer(row interface{ Scan(...any) error }) (*models.Player, error) {
	var p models.Player
	var pid, uid int32
	var u models.User
	if err := row.Scan(&pid, &p.Age, &p.Position,
		&uid, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.Role); err != nil {
		return nil, err
	}
	u.ID = &uid
	user, err := models.NewUser(u)
	if err != nil {
		return nil, err
	}
	p.ID = &pid
	p.User = user
	return models.NewPlayer(p)
}

// loadTeamByID reloads a team with its coach and roster eagerly joined.
// Returns (nil, sql.ErrNoRows) when the team does not exist so callers
// can translate the miss themselves.
func loadTeamByID(ctx context.Context, q querier, id int32) (*models.Team, error) {
	query := `
		SELECT t.id, t.team_name, t.location, ` + coachColumns + `
		FROM teams t
		JOIN coaches c ON c.id = t.coach_id
		JOIN users u ON u.id = c.user_id
		WHERE t.id = $1`

	var t models.Team
	var tid, cid, uid int32
	var c models.Coach
	var u models.User
	err := q.QueryRowContext(ctx, query, id).Scan(
		&tid, &t.TeamName, &t.Location,
		&cid, &c.Rating, &c.Experience,
		&uid, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.Role,
	)
	if err != nil {
		return nil, err
	}
	u.ID = &uid
	user, err := models.NewUser(u)
	if err != nil {
		return nil, err
	}
	c.ID = &cid
	c.User = user
	coach, err := models.NewCoach(c)
	if err != nil {
		return nil, err
	}

	players, err := loadRoster(ctx, q, tid)
	if err != nil {
		return nil, err
	}

	t.ID = &tid
	t.Coach = coach
	t.Players = players
	return models.NewTeam(t)
}

func loadRoster(ctx context.Context, q querier, teamID int32) ([]models.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM team_players tp
		JOIN players p ON p.id = tp.player_id
		JOIN users u ON u.id = p.user_id
		WHERE tp.team_id = $1
		ORDER BY p.id`

	rows, err := q.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *player)
	}
	return players, rows.Err()
}
