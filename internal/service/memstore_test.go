package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"clubhub/internal/authz"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/repository"
	"clubhub/internal/session"
	"clubhub/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory document store backing the club, event and role
// repositories in scenario and property tests.
type memStore struct {
	mu     sync.Mutex
	clubs  map[primitive.ObjectID]models.Club
	events map[primitive.ObjectID]models.Event
	roles  map[string]models.ClubRole
}

func newMemStore() *memStore {
	return &memStore{
		clubs:  map[primitive.ObjectID]models.Club{},
		events: map[primitive.ObjectID]models.Event{},
		roles:  map[string]models.ClubRole{},
	}
}

func roleKey(clubID primitive.ObjectID, email string) string {
	return clubID.Hex() + "|" + email
}

type memClubs struct{ *memStore }
type memEvents struct{ *memStore }
type memRoles struct{ *memStore }

var (
	_ repository.ClubRepository     = memClubs{}
	_ repository.EventRepository    = memEvents{}
	_ repository.ClubRoleRepository = memRoles{}
)

func (m memClubs) Create(_ context.Context, club *models.Club) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.clubs {
		if c.Name == club.Name {
			return apperrors.ErrClubNameTaken
		}
	}
	club.ID = primitive.NewObjectID()
	club.CreatedAt = time.Now()
	club.UpdatedAt = club.CreatedAt
	m.clubs[club.ID] = *club
	return nil
}

func (m memClubs) FindByID(_ context.Context, id primitive.ObjectID) (*models.Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clubs[id]
	if !ok {
		return nil, apperrors.ErrClubNotFound
	}
	return &c, nil
}

func (m memClubs) FindByName(_ context.Context, name string) (*models.Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.clubs {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, apperrors.ErrClubNotFound
}

func (m memClubs) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Club{}
	for _, id := range ids {
		if c, ok := m.clubs[id]; ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m memClubs) List(_ context.Context, page, limit int) ([]models.Club, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]models.Club, 0, len(m.clubs))
	for _, c := range m.clubs {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	offset := models.Offset(page, limit)
	if offset >= int64(len(all)) {
		return []models.Club{}, len(all), nil
	}
	start := int(offset)
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], len(all), nil
}

func (m memClubs) Search(_ context.Context, query string) ([]models.Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := strings.ToLower(query)
	out := []models.Club{}
	for _, c := range m.clubs {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m memClubs) Update(_ context.Context, club *models.Club) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.clubs[club.ID]
	if !ok {
		return apperrors.ErrClubNotFound
	}
	stored.Description = club.Description
	stored.Interests = club.Interests
	stored.UpdatedAt = time.Now()
	m.clubs[club.ID] = stored
	return nil
}

func (m memClubs) SetImageKey(_ context.Context, id primitive.ObjectID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.clubs[id]
	if !ok {
		return apperrors.ErrClubNotFound
	}
	stored.ImageKey = key
	m.clubs[id] = stored
	return nil
}

func (m memClubs) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clubs[id]; !ok {
		return apperrors.ErrClubNotFound
	}
	delete(m.clubs, id)
	return nil
}

func (m memEvents) Create(_ context.Context, event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	m.events[event.ID] = *event
	return nil
}

func (m memEvents) FindByID(_ context.Context, id primitive.ObjectID) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return &e, nil
}

func (m memEvents) FindByClubID(_ context.Context, clubID primitive.ObjectID) ([]models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Event{}
	for _, e := range m.events {
		if e.ClubID == clubID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m memEvents) Update(_ context.Context, event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.events[event.ID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	event.ClubID = stored.ClubID
	event.UpdatedAt = time.Now()
	m.events[event.ID] = *event
	return nil
}

func (m memEvents) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(m.events, id)
	return nil
}

func (m memEvents) DeleteAllByClubID(_ context.Context, clubID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.events {
		if e.ClubID == clubID {
			delete(m.events, id)
		}
	}
	return nil
}

func (m memRoles) Create(_ context.Context, role *models.ClubRole) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := roleKey(role.ClubID, role.Email)
	if _, ok := m.roles[key]; ok {
		return apperrors.ErrAlreadyMember
	}
	role.ID = primitive.NewObjectID()
	role.JoinedAt = time.Now()
	m.roles[key] = *role
	return nil
}

func (m memRoles) FindByClubAndEmail(_ context.Context, clubID primitive.ObjectID, email string) (*models.ClubRole, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.roles[roleKey(clubID, email)]
	if !ok {
		return nil, apperrors.ErrNotClubMember
	}
	return &r, nil
}

func (m memRoles) FindByClubID(_ context.Context, clubID primitive.ObjectID) ([]models.ClubRole, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.ClubRole{}
	for _, r := range m.roles {
		if r.ClubID == clubID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m memRoles) FindByEmail(_ context.Context, email string) ([]models.ClubRole, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.ClubRole{}
	for _, r := range m.roles {
		if r.Email == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m memRoles) CountByClubAndRole(_ context.Context, clubID primitive.ObjectID, role string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.roles {
		if r.ClubID == clubID && r.Role == role {
			n++
		}
	}
	return n, nil
}

func (m memRoles) UpdateRole(_ context.Context, clubID primitive.ObjectID, email, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := roleKey(clubID, email)
	r, ok := m.roles[key]
	if !ok {
		return apperrors.ErrMemberNotFound
	}
	r.Role = role
	m.roles[key] = r
	return nil
}

func (m memRoles) Delete(_ context.Context, clubID primitive.ObjectID, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := roleKey(clubID, email)
	if _, ok := m.roles[key]; !ok {
		return apperrors.ErrMemberNotFound
	}
	delete(m.roles, key)
	return nil
}

func (m memRoles) DeleteAllByClubID(_ context.Context, clubID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, r := range m.roles {
		if r.ClubID == clubID {
			delete(m.roles, key)
		}
	}
	return nil
}

// fakeStorage hands out deterministic URLs and records deletions.
type fakeStorage struct {
	mu      sync.Mutex
	deleted []string
}

var _ storage.Storage = (*fakeStorage)(nil)

func (f *fakeStorage) GetPresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://storage.test/" + key, nil
}

func (f *fakeStorage) GetPresignedPutURL(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	return "https://storage.test/upload/" + key, nil
}

func (f *fakeStorage) PutObject(context.Context, string, io.Reader, string) error {
	return nil
}

func (f *fakeStorage) DeleteObject(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return nil
}

// app wires the club, event and membership services over a memStore with the
// real role resolver and admin gate.
type app struct {
	store      *memStore
	clubs      *ClubService
	events     *EventService
	membership *MembershipService
}

func newApp() *app {
	store := newMemStore()
	clubRepo := memClubs{store}
	roleRepo := memRoles{store}
	eventRepo := memEvents{store}
	gate := NewAdminGate(authz.NewLocalAuthorizer(clubRepo, roleRepo))

	return &app{
		store: store,
		clubs: NewClubService(ClubServiceConfig{
			ClubRepo:       clubRepo,
			RoleRepo:       roleRepo,
			EventRepo:      eventRepo,
			Storage:        &fakeStorage{},
			Gate:           gate,
			ImageURLExpiry: 15 * time.Minute,
		}),
		events:     NewEventService(clubRepo, eventRepo, gate),
		membership: NewMembershipService(clubRepo, roleRepo, gate),
	}
}

// seedClub creates a club owned by admin and adds each member with the member role.
func (a *app) seedClub(name, admin string, members ...string) (*models.Club, error) {
	ctx := context.Background()
	club, err := a.clubs.CreateClub(ctx, signedIn(admin), &models.CreateClubRequest{Name: name})
	if err != nil {
		return nil, fmt.Errorf("create club %q: %w", name, err)
	}
	for _, m := range members {
		if _, err := a.membership.JoinClub(ctx, signedIn(m), name); err != nil {
			return nil, fmt.Errorf("join %q as %s: %w", name, m, err)
		}
	}
	return club, nil
}

func (a *app) eventCount() int {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return len(a.store.events)
}

func signedIn(email string) *session.Session {
	return &session.Session{LoggedIn: true, Email: email}
}
