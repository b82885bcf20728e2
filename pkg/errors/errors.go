package errors

import "errors"

// Validation errors raised by the model constructors. Each one names the
// attribute that was missing so callers can tell which field was rejected.
var (
	ErrUserUsernameRequired  = errors.New("user must have a username")
	ErrUserFirstNameRequired = errors.New("user must have a first name")
	ErrUserLastNameRequired  = errors.New("user must have a last name")
	ErrUserEmailRequired     = errors.New("user must have an email")
	ErrUserPasswordRequired  = errors.New("user must have a password")
	ErrUserRoleRequired      = errors.New("user must have a role")

	ErrCoachUserRequired       = errors.New("coach must have a user")
	ErrCoachRatingRequired     = errors.New("coach must have a rating")
	ErrCoachExperienceRequired = errors.New("coach must have an experience")

	ErrPlayerUserRequired     = errors.New("player must have a user")
	ErrPlayerAgeRequired      = errors.New("player must have an age")
	ErrPlayerPositionRequired = errors.New("player must have a position")

	ErrParentUserRequired = errors.New("parent must have a user")
	ErrParentSexRequired  = errors.New("parent must have a gender")

	ErrTeamNameRequired     = errors.New("team must have a name")
	ErrTeamLocationRequired = errors.New("team must have a location")

	ErrMatchTeamsRequired    = errors.New("match must have teams")
	ErrMatchDateTimeRequired = errors.New("match must have a date and time")
	ErrMatchLocationRequired = errors.New("match must have a location")
)

// Association and lookup errors surfaced by the service layer.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCoachNotFound   = errors.New("coach not found")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrParentNotFound  = errors.New("parent not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrPlayersNotFound = errors.New("one or more players not found")
	ErrCoachIDRequired = errors.New("coach id is required")
)

var (
	ErrUsernameExists     = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStorage replaces any driver error at the repository boundary so
	// storage internals never leak past it. The cause is only logged.
	ErrStorage = errors.New("database error, see server log for details")
)
