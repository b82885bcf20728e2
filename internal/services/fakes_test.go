package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/honeynil/sportteams-service/internal/infrastructure/redis"
	"github.com/honeynil/sportteams-service/internal/models"
)

// fakeUserRepo serves users from in-memory maps. Lookup misses come back
// as (nil, nil) the way the real repository reports them.
type fakeUserRepo struct {
	byID       map[int32]*models.User
	byUsername map[string]*models.User
	created    []*models.User
	nextID     int32
	err        error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       map[int32]*models.User{},
		byUsername: map[string]*models.User{},
		nextID:     1,
	}
}

func (f *fakeUserRepo) add(user *models.User) *models.User {
	id := f.nextID
	f.nextID++
	u := *user
	u.ID = &id
	f.byID[id] = &u
	f.byUsername[u.Username] = &u
	return &u
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	users := []models.User{}
	for _, u := range f.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int32) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUsername[username], nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := f.add(user)
	f.created = append(f.created, created)
	return created, nil
}

type fakeCoachRepo struct {
	byID    map[int32]*models.Coach
	created []*models.Coach
	nextID  int32
	err     error
}

func newFakeCoachRepo() *fakeCoachRepo {
	return &fakeCoachRepo{byID: map[int32]*models.Coach{}, nextID: 1}
}

func (f *fakeCoachRepo) add(coach *models.Coach) *models.Coach {
	id := f.nextID
	f.nextID++
	c := *coach
	c.ID = &id
	f.byID[id] = &c
	return &c
}

func (f *fakeCoachRepo) GetAll(ctx context.Context) ([]models.Coach, error) {
	if f.err != nil {
		return nil, f.err
	}
	coaches := []models.Coach{}
	for _, c := range f.byID {
		coaches = append(coaches, *c)
	}
	return coaches, nil
}

func (f *fakeCoachRepo) GetByID(ctx context.Context, id int32) (*models.Coach, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeCoachRepo) Create(ctx context.Context, coach *models.Coach) (*models.Coach, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := f.add(coach)
	f.created = append(f.created, created)
	return created, nil
}

type fakePlayerRepo struct {
	byID       map[int32]*models.Player
	created    []*models.Player
	getByIDIDs []int32
	nextID     int32
	err        error
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{byID: map[int32]*models.Player{}, nextID: 1}
}

func (f *fakePlayerRepo) add(player *models.Player) *models.Player {
	id := f.nextID
	f.nextID++
	p := *player
	p.ID = &id
	f.byID[id] = &p
	return &p
}

func (f *fakePlayerRepo) GetAll(ctx context.Context) ([]models.Player, error) {
	if f.err != nil {
		return nil, f.err
	}
	players := []models.Player{}
	for _, p := range f.byID {
		players = append(players, *p)
	}
	return players, nil
}

func (f *fakePlayerRepo) GetByID(ctx context.Context, id int32) (*models.Player, error) {
	f.getByIDIDs = append(f.getByIDIDs, id)
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakePlayerRepo) Create(ctx context.Context, player *models.Player) (*models.Player, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := f.add(player)
	f.created = append(f.created, created)
	return created, nil
}

type fakeParentRepo struct {
	byID    map[int32]*models.Parent
	created []*models.Parent
	nextID  int32
	err     error
}

func newFakeParentRepo() *fakeParentRepo {
	return &fakeParentRepo{byID: map[int32]*models.Parent{}, nextID: 1}
}

func (f *fakeParentRepo) GetAll(ctx context.Context) ([]models.Parent, error) {
	if f.err != nil {
		return nil, f.err
	}
	parents := []models.Parent{}
	for _, p := range f.byID {
		parents = append(parents, *p)
	}
	return parents, nil
}

func (f *fakeParentRepo) GetByID(ctx context.Context, id int32) (*models.Parent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeParentRepo) Create(ctx context.Context, parent *models.Parent) (*models.Parent, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := f.nextID
	f.nextID++
	p := *parent
	p.ID = &id
	f.byID[id] = &p
	f.created = append(f.created, &p)
	return &p, nil
}

type fakeTeamRepo struct {
	byID        map[int32]*models.Team
	created     []*models.Team
	joinCalls   [][2]int32
	leaveCalls  [][2]int32
	updateCalls int
	nextID      int32
	err         error
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{byID: map[int32]*models.Team{}, nextID: 1}
}

func (f *fakeTeamRepo) add(team *models.Team) *models.Team {
	id := f.nextID
	f.nextID++
	t := *team
	t.ID = &id
	f.byID[id] = &t
	return &t
}

func (f *fakeTeamRepo) GetAll(ctx context.Context) ([]models.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	teams := []models.Team{}
	for _, t := range f.byID {
		teams = append(teams, *t)
	}
	return teams, nil
}

func (f *fakeTeamRepo) GetByID(ctx context.Context, id int32) (*models.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *models.Team) (*models.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := f.add(team)
	f.created = append(f.created, created)
	return created, nil
}

func (f *fakeTeamRepo) Update(ctx context.Context, id int32, teamName, location string) (*models.Team, error) {
	f.updateCalls++
	if f.err != nil {
		return nil, f.err
	}
	team := f.byID[id]
	team.TeamName = teamName
	team.Location = location
	return team, nil
}

func (f *fakeTeamRepo) JoinTeam(ctx context.Context, teamID, playerID int32) (*models.Team, error) {
	f.joinCalls = append(f.joinCalls, [2]int32{teamID, playerID})
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[teamID], nil
}

func (f *fakeTeamRepo) LeaveTeam(ctx context.Context, teamID, playerID int32) (*models.Team, error) {
	f.leaveCalls = append(f.leaveCalls, [2]int32{teamID, playerID})
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[teamID], nil
}

type fakeMatchRepo struct {
	byID        map[int32]*models.Match
	createCalls int
	lastTeamIDs []int32
	nextID      int32
	err         error
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{byID: map[int32]*models.Match{}, nextID: 1}
}

func (f *fakeMatchRepo) GetAll(ctx context.Context) ([]models.Match, error) {
	if f.err != nil {
		return nil, f.err
	}
	matches := []models.Match{}
	for _, m := range f.byID {
		matches = append(matches, *m)
	}
	return matches, nil
}

func (f *fakeMatchRepo) GetByID(ctx context.Context, id int32) (*models.Match, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeMatchRepo) Create(ctx context.Context, teamIDs []int32, dateTime time.Time, location string) (*models.Match, error) {
	f.createCalls++
	f.lastTeamIDs = teamIDs
	if f.err != nil {
		return nil, f.err
	}
	id := f.nextID
	f.nextID++
	match := &models.Match{
		ID:       &id,
		Teams:    []models.Team{},
		DateTime: dateTime,
		Location: location,
	}
	f.byID[id] = match
	return match, nil
}

// fakeRedis is an in-memory stand-in for the token and team caches.
type fakeRedis struct {
	mu    sync.Mutex
	store map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: map[string]string{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.store[key]
	if !ok {
		return "", redis.ErrKeyNotFound
	}
	return val, nil
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = value.(string)
	return nil
}

func (f *fakeRedis) Del(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, key)
	return nil
}

func (f *fakeRedis) Close() error { return nil }

func (f *fakeRedis) get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.store[key]
	return val, ok
}

// fakeProducer swallows events. Publishing is fire-and-forget from a
// goroutine, so it has to be safe for concurrent use; tests do not
// assert on it.
type fakeProducer struct {
	mu sync.Mutex
}

func (f *fakeProducer) Send(ctx context.Context, topic string, key int64, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return nil
}

func (f *fakeProducer) Close() error { return nil }
