package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/honeynil/sportteams-service/internal/models"
	repository "github.com/honeynil/sportteams-service/internal/repository/postgres"
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var teamCols = []string{
	"id", "team_name", "location",
	"coach_id", "rating", "experience",
	"user_id", "username", "first_name", "last_name", "email", "password", "role",
}

var rosterCols = []string{
	"id", "age", "position",
	"user_id", "username", "first_name", "last_name", "email", "password", "role",
}

func teamRow(teamID int32, name string) []driverValue {
	return []driverValue{
		teamID, name, "Riverside",
		int32(1), int32(8), int32(12),
		int32(10), "coach1", "Carol", "Smith", "coach1@example.com", "hash", "coach",
	}
}

func rosterRow(playerID int32, username string) []driverValue {
	return []driverValue{
		playerID, int32(17), "striker",
		playerID + 100, username, "John", "Smith", username + "@example.com", "hash", "player",
	}
}

func expectTeamReload(mock sqlmock.Sqlmock, teamID int32, name string, roster ...[]driverValue) {
	mock.ExpectQuery(regexp.QuoteMeta(`FROM teams t`)).
		WithArgs(teamID).
		WillReturnRows(sqlmock.NewRows(teamCols).AddRow(teamRow(teamID, name)...))
	rows := sqlmock.NewRows(rosterCols)
	for _, r := range roster {
		rows.AddRow(r...)
	}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM team_players tp`)).
		WithArgs(teamID).
		WillReturnRows(rows)
}

func TestPostgresTeamRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresTeamRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		teamID := int32(1)
		expectTeamReload(mock, teamID, "Falcons", rosterRow(1, "player1"), rosterRow(2, "player2"))

		team, err := repo.GetByID(ctx, teamID)
		assert.NoError(t, err)
		assert.NotNil(t, team)
		assert.Equal(t, teamID, *team.ID)
		assert.Equal(t, "Falcons", team.TeamName)
		assert.Equal(t, "coach1", team.Coach.User.Username)
		assert.Len(t, team.Players, 2)
		assert.Equal(t, "player1", team.Players[0].User.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		teamID := int32(99)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM teams t`)).
			WithArgs(teamID).
			WillReturnError(sql.ErrNoRows)

		team, err := repo.GetByID(ctx, teamID)
		assert.Nil(t, team)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		teamID := int32(1)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM teams t`)).
			WithArgs(teamID).
			WillReturnError(fmt.Errorf("connection reset"))

		team, err := repo.GetByID(ctx, teamID)
		assert.Nil(t, team)
		assert.ErrorIs(t, err, pkgerrors.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresTeamRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresTeamRepository(db)
	ctx := context.Background()

	coachID := int32(1)
	playerID := int32(2)
	newTeam := func(players []models.Player) *models.Team {
		userID := int32(10)
		coach := &models.Coach{
			ID: &coachID,
			User: &models.User{
				ID: &userID, Username: "coach1", FirstName: "Carol", LastName: "Smith",
				Email: "coach1@example.com", Password: "hash", Role: models.RoleCoach,
			},
			Rating: 8, Experience: 12,
		}
		team, err := models.NewTeam(models.Team{
			TeamName: "Falcons",
			Location: "Riverside",
			Coach:    coach,
			Players:  players,
		})
		assert.NoError(t, err)
		return team
	}
	rosterPlayer := func() models.Player {
		pid := int32(2)
		uid := int32(102)
		return models.Player{
			ID: &pid,
			User: &models.User{
				ID: &uid, Username: "player1", FirstName: "John", LastName: "Smith",
				Email: "player1@example.com", Password: "hash", Role: models.RolePlayer,
			},
			Age: 17, Position: "striker",
		}
	}

	t.Run("Success", func(t *testing.T) {
		teamID := int32(5)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO teams`)).
			WithArgs("Falcons", "Riverside", coachID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(teamID))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_players`)).
			WithArgs(teamID, playerID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		expectTeamReload(mock, teamID, "Falcons", rosterRow(playerID, "player1"))

		created, err := repo.Create(ctx, newTeam([]models.Player{rosterPlayer()}))
		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, teamID, *created.ID)
		assert.Len(t, created.Players, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RosterInsertFailureRollsBack", func(t *testing.T) {
		teamID := int32(5)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO teams`)).
			WithArgs("Falcons", "Riverside", coachID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(teamID))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_players`)).
			WithArgs(teamID, playerID).
			WillReturnError(fmt.Errorf("foreign key violation"))
		mock.ExpectRollback()

		created, err := repo.Create(ctx, newTeam([]models.Player{rosterPlayer()}))
		assert.Nil(t, created)
		assert.ErrorIs(t, err, pkgerrors.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("TeamInsertFailureRollsBack", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO teams`)).
			WithArgs("Falcons", "Riverside", coachID).
			WillReturnError(fmt.Errorf("connection reset"))
		mock.ExpectRollback()

		created, err := repo.Create(ctx, newTeam([]models.Player{}))
		assert.Nil(t, created)
		assert.ErrorIs(t, err, pkgerrors.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CommitError", func(t *testing.T) {
		teamID := int32(5)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO teams`)).
			WithArgs("Falcons", "Riverside", coachID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(teamID))
		mock.ExpectCommit().WillReturnError(fmt.Errorf("commit error"))

		created, err := repo.Create(ctx, newTeam([]models.Player{}))
		assert.Nil(t, created)
		assert.ErrorIs(t, err, pkgerrors.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresTeamRepository_JoinTeam(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresTeamRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		teamID := int32(1)
		playerID := int32(2)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_players`)).
			WithArgs(teamID, playerID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		expectTeamReload(mock, teamID, "Falcons", rosterRow(playerID, "player1"))

		team, err := repo.JoinTeam(ctx, teamID, playerID)
		assert.NoError(t, err)
		assert.NotNil(t, team)
		assert.Len(t, team.Players, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyMember", func(t *testing.T) {
		teamID := int32(1)
		playerID := int32(2)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_players`)).
			WithArgs(teamID, playerID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		expectTeamReload(mock, teamID, "Falcons", rosterRow(playerID, "player1"))

		team, err := repo.JoinTeam(ctx, teamID, playerID)
		assert.NoError(t, err)
		assert.NotNil(t, team)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresTeamRepository_LeaveTeam(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresTeamRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		teamID := int32(1)
		playerID := int32(2)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM team_players`)).
			WithArgs(teamID, playerID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		expectTeamReload(mock, teamID, "Falcons")

		team, err := repo.LeaveTeam(ctx, teamID, playerID)
		assert.NoError(t, err)
		assert.NotNil(t, team)
		assert.Empty(t, team.Players)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresTeamRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresTeamRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		teamID := int32(1)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE teams`)).
			WithArgs(teamID, "Hawks", "Hillside").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM teams t`)).
			WithArgs(teamID).
			WillReturnRows(sqlmock.NewRows(teamCols).AddRow(
				teamID, "Hawks", "Hillside",
				int32(1), int32(8), int32(12),
				int32(10), "coach1", "Carol", "Smith", "coach1@example.com", "hash", "coach",
			))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM team_players tp`)).
			WithArgs(teamID).
			WillReturnRows(sqlmock.NewRows(rosterCols))

		team, err := repo.Update(ctx, teamID, "Hawks", "Hillside")
		assert.NoError(t, err)
		assert.Equal(t, "Hawks", team.TeamName)
		assert.Equal(t, "Hillside", team.Location)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		teamID := int32(1)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE teams`)).
			WithArgs(teamID, "Hawks", "Hillside").
			WillReturnError(fmt.Errorf("connection reset"))

		team, err := repo.Update(ctx, teamID, "Hawks", "Hillside")
		assert.Nil(t, team)
		assert.ErrorIs(t, err, pkgerrors.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
