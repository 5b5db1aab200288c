package service

import (
	"context"

	"clubhub/internal/models"
	"clubhub/internal/session"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetMe(ctx context.Context, sess *session.Session) (*models.User, error)
}

// ClubServicer defines the interface for club operations.
type ClubServicer interface {
	CreateClub(ctx context.Context, sess *session.Session, req *models.CreateClubRequest) (*models.Club, error)
	ListClubs(ctx context.Context, sess *session.Session, page, limit int) (*models.ClubListResponse, error)
	SearchClubs(ctx context.Context, query string) ([]models.Club, error)
	GetClub(ctx context.Context, name string) (*models.Club, error)
	UpdateClub(ctx context.Context, sess *session.Session, name string, req *models.UpdateClubRequest) (*models.Club, error)
	DeleteClub(ctx context.Context, sess *session.Session, name string) error
	RequestImageUpload(ctx context.Context, sess *session.Session, name string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error)
}

// EventServicer defines the interface for club event operations.
type EventServicer interface {
	CreateEvent(ctx context.Context, sess *session.Session, clubName string, req *models.CreateEventRequest) (*models.Event, error)
	ListEvents(ctx context.Context, clubName string) (*models.EventListResponse, error)
	GetEvent(ctx context.Context, clubName, eventID string) (*models.Event, error)
	UpdateEvent(ctx context.Context, sess *session.Session, clubName, eventID string, req *models.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, sess *session.Session, clubName, eventID string) error
}

// MembershipServicer defines the interface for club membership operations.
type MembershipServicer interface {
	JoinClub(ctx context.Context, sess *session.Session, clubName string) (*models.ClubRole, error)
	LeaveClub(ctx context.Context, sess *session.Session, clubName string) error
	GetMyRole(ctx context.Context, sess *session.Session, clubName string) (*models.RoleResponse, error)
	ListMembers(ctx context.Context, sess *session.Session, clubName string) (*models.MemberListResponse, error)
	UpdateMemberRole(ctx context.Context, sess *session.Session, clubName, email string, req *models.UpdateRoleRequest) (*models.ClubRole, error)
	ListMyClubs(ctx context.Context, sess *session.Session) ([]models.ClubWithRole, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer       = (*AuthService)(nil)
	_ UserServicer       = (*UserService)(nil)
	_ ClubServicer       = (*ClubService)(nil)
	_ EventServicer      = (*EventService)(nil)
	_ MembershipServicer = (*MembershipService)(nil)
)
