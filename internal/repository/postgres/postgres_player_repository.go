package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/honeynil/sportteams-service/internal/models"
)

type PostgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) *PostgresPlayerRepository {
	return &PostgresPlayerRepository{db: db}
}

func (r *PostgresPlayerRepository) GetAll(ctx context.Context) ([]models.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageErr("players.get_all", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, storageErr("players.get_all", err)
		}
		players = append(players, *player)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("players.get_all", err)
	}
	return players, nil
}

func (r *PostgresPlayerRepository) GetByID(ctx context.Context, id int32) (*models.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`

	player, err := scanPlayer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("players.get_by_id", err)
	}
	return player, nil
}

func (r *PostgresPlayerRepository) Create(ctx context.Context, player *models.Player) (*models.Player, error) {
	query := `
		INSERT INTO players (user_id, age, position)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int32
	err := r.db.QueryRowContext(ctx, query, player.User.ID, player.Age, player.Position).Scan(&id)
	if err != nil {
		return nil, storageErr("players.create", err)
	}
	return r.GetByID(ctx, id)
}
