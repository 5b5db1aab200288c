// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"clubhub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func shortID() string {
	return primitive.NewObjectID().Hex()[16:]
}

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			FirstName: "Test",
			LastName:  "User",
			Email:     fmt.Sprintf("test-%s@example.com", shortID()),
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.user.FirstName = first
	b.user.LastName = last
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(hash string) *UserBuilder {
	b.user.Password = hash
	return b
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Club Fixtures =====

// ClubBuilder provides fluent API for building test clubs.
type ClubBuilder struct {
	club models.Club
}

// NewClub creates a new ClubBuilder with a unique name.
func NewClub() *ClubBuilder {
	return &ClubBuilder{
		club: models.Club{
			ID:          primitive.NewObjectID(),
			Name:        "Club-" + shortID(),
			Description: "A test club",
			Interests:   []string{},
			CreatedBy:   "founder@example.com",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (b *ClubBuilder) WithName(name string) *ClubBuilder {
	b.club.Name = name
	return b
}

func (b *ClubBuilder) WithDescription(description string) *ClubBuilder {
	b.club.Description = description
	return b
}

func (b *ClubBuilder) WithInterests(interests ...string) *ClubBuilder {
	b.club.Interests = interests
	return b
}

func (b *ClubBuilder) CreatedBy(email string) *ClubBuilder {
	b.club.CreatedBy = email
	return b
}

func (b *ClubBuilder) BuildPtr() *models.Club {
	return &b.club
}

// ===== Event Fixtures =====

// EventBuilder provides fluent API for building test events.
type EventBuilder struct {
	event models.Event
}

// NewEvent creates a new EventBuilder dated one week ahead.
func NewEvent() *EventBuilder {
	return &EventBuilder{
		event: models.Event{
			ID:          primitive.NewObjectID(),
			ClubID:      primitive.NewObjectID(),
			Title:       "Test Event",
			Description: "A test event",
			Date:        time.Now().UTC().Add(7 * 24 * time.Hour).Truncate(time.Second),
			Location:    "Room 101",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (b *EventBuilder) ForClub(clubID primitive.ObjectID) *EventBuilder {
	b.event.ClubID = clubID
	return b
}

func (b *EventBuilder) WithTitle(title string) *EventBuilder {
	b.event.Title = title
	return b
}

func (b *EventBuilder) On(date time.Time) *EventBuilder {
	b.event.Date = date.UTC()
	return b
}

func (b *EventBuilder) BuildPtr() *models.Event {
	return &b.event
}

// ===== Club Role Fixtures =====

// ClubRoleBuilder provides fluent API for building test memberships.
type ClubRoleBuilder struct {
	role models.ClubRole
}

// NewClubRole creates a new ClubRoleBuilder for a member.
func NewClubRole() *ClubRoleBuilder {
	return &ClubRoleBuilder{
		role: models.ClubRole{
			ID:       primitive.NewObjectID(),
			ClubID:   primitive.NewObjectID(),
			Email:    fmt.Sprintf("member-%s@example.com", shortID()),
			Role:     models.RoleMember,
			JoinedAt: time.Now(),
		},
	}
}

func (b *ClubRoleBuilder) ForClub(clubID primitive.ObjectID) *ClubRoleBuilder {
	b.role.ClubID = clubID
	return b
}

func (b *ClubRoleBuilder) WithEmail(email string) *ClubRoleBuilder {
	b.role.Email = email
	return b
}

func (b *ClubRoleBuilder) AsAdmin() *ClubRoleBuilder {
	b.role.Role = models.RoleAdmin
	return b
}

func (b *ClubRoleBuilder) AsMember() *ClubRoleBuilder {
	b.role.Role = models.RoleMember
	return b
}

func (b *ClubRoleBuilder) BuildPtr() *models.ClubRole {
	return &b.role
}
