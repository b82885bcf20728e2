package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/honeynil/sportteams-service/internal/models"
)

type PostgresParentRepository struct {
	db *sql.DB
}

func NewPostgresParentRepository(db *sql.DB) *PostgresParentRepository {
	return &PostgresParentRepository{db: db}
}

const parentColumns = `pa.id, pa.sex, ` + userColumns

func scanParent(row interface{ Scan(...any) error }) (*models.Parent, error) {
	var p models.Parent
	var pid, uid int32
	var u models.User
	if err := row.Scan(&pid, &p.Sex,
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
	return models.NewParent(p)
}

func (r *PostgresParentRepository) GetAll(ctx context.Context) ([]models.Parent, error) {
	query := `
		SELECT ` + parentColumns + `
		FROM parents pa
		JOIN users u ON u.id = pa.user_id
		ORDER BY pa.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageErr("parents.get_all", err)
	}
	defer rows.Close()

	parents := []models.Parent{}
	for rows.Next() {
		parent, err := scanParent(rows)
		if err != nil {
			return nil, storageErr("parents.get_all", err)
		}
		parents = append(parents, *parent)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("parents.get_all", err)
	}
	return parents, nil
}

func (r *PostgresParentRepository) GetByID(ctx context.Context, id int32) (*models.Parent, error) {
	query := `
		SELECT ` + parentColumns + `
		FROM parents pa
		JOIN users u ON u.id = pa.user_id
		WHERE pa.id = $1`

	parent, err := scanParent(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("parents.get_by_id", err)
	}
	return parent, nil
}

func (r *PostgresParentRepository) Create(ctx context.Context, parent *models.Parent) (*models.Parent, error) {
	query := `
		INSERT INTO parents (user_id, sex)
		VALUES ($1, $2)
		RETURNING id`

	var id int32
	err := r.db.QueryRowContext(ctx, query, parent.User.ID, parent.Sex).Scan(&id)
	if err != nil {
		return nil, storageErr("parents.create", err)
	}
	return r.GetByID(ctx, id)
}
