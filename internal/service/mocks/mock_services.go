// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"clubhub/internal/models"
	"clubhub/internal/session"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetMeFunc func(ctx context.Context, sess *session.Session) (*models.User, error)
}

func (m *MockUserService) GetMe(ctx context.Context, sess *session.Session) (*models.User, error) {
	if m.GetMeFunc != nil {
		return m.GetMeFunc(ctx, sess)
	}
	return nil, nil
}

// MockClubService is a mock implementation of ClubServicer.
type MockClubService struct {
	CreateClubFunc         func(ctx context.Context, sess *session.Session, req *models.CreateClubRequest) (*models.Club, error)
	ListClubsFunc          func(ctx context.Context, sess *session.Session, page, limit int) (*models.ClubListResponse, error)
	SearchClubsFunc        func(ctx context.Context, query string) ([]models.Club, error)
	GetClubFunc            func(ctx context.Context, name string) (*models.Club, error)
	UpdateClubFunc         func(ctx context.Context, sess *session.Session, name string, req *models.UpdateClubRequest) (*models.Club, error)
	DeleteClubFunc         func(ctx context.Context, sess *session.Session, name string) error
	RequestImageUploadFunc func(ctx context.Context, sess *session.Session, name string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error)
}

func (m *MockClubService) CreateClub(ctx context.Context, sess *session.Session, req *models.CreateClubRequest) (*models.Club, error) {
	if m.CreateClubFunc != nil {
		return m.CreateClubFunc(ctx, sess, req)
	}
	return nil, nil
}

func (m *MockClubService) ListClubs(ctx context.Context, sess *session.Session, page, limit int) (*models.ClubListResponse, error) {
	if m.ListClubsFunc != nil {
		return m.ListClubsFunc(ctx, sess, page, limit)
	}
	return nil, nil
}

func (m *MockClubService) SearchClubs(ctx context.Context, query string) ([]models.Club, error) {
	if m.SearchClubsFunc != nil {
		return m.SearchClubsFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockClubService) GetClub(ctx context.Context, name string) (*models.Club, error) {
	if m.GetClubFunc != nil {
		return m.GetClubFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockClubService) UpdateClub(ctx context.Context, sess *session.Session, name string, req *models.UpdateClubRequest) (*models.Club, error) {
	if m.UpdateClubFunc != nil {
		return m.UpdateClubFunc(ctx, sess, name, req)
	}
	return nil, nil
}

func (m *MockClubService) DeleteClub(ctx context.Context, sess *session.Session, name string) error {
	if m.DeleteClubFunc != nil {
		return m.DeleteClubFunc(ctx, sess, name)
	}
	return nil
}

func (m *MockClubService) RequestImageUpload(ctx context.Context, sess *session.Session, name string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error) {
	if m.RequestImageUploadFunc != nil {
		return m.RequestImageUploadFunc(ctx, sess, name, req)
	}
	return nil, nil
}

// MockEventService is a mock implementation of EventServicer.
type MockEventService struct {
	CreateEventFunc func(ctx context.Context, sess *session.Session, clubName string, req *models.CreateEventRequest) (*models.Event, error)
	ListEventsFunc  func(ctx context.Context, clubName string) (*models.EventListResponse, error)
	GetEventFunc    func(ctx context.Context, clubName, eventID string) (*models.Event, error)
	UpdateEventFunc func(ctx context.Context, sess *session.Session, clubName, eventID string, req *models.UpdateEventRequest) (*models.Event, error)
	DeleteEventFunc func(ctx context.Context, sess *session.Session, clubName, eventID string) error
}

func (m *MockEventService) CreateEvent(ctx context.Context, sess *session.Session, clubName string, req *models.CreateEventRequest) (*models.Event, error) {
	if m.CreateEventFunc != nil {
		return m.CreateEventFunc(ctx, sess, clubName, req)
	}
	return nil, nil
}

func (m *MockEventService) ListEvents(ctx context.Context, clubName string) (*models.EventListResponse, error) {
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc(ctx, clubName)
	}
	return nil, nil
}

func (m *MockEventService) GetEvent(ctx context.Context, clubName, eventID string) (*models.Event, error) {
	if m.GetEventFunc != nil {
		return m.GetEventFunc(ctx, clubName, eventID)
	}
	return nil, nil
}

func (m *MockEventService) UpdateEvent(ctx context.Context, sess *session.Session, clubName, eventID string, req *models.UpdateEventRequest) (*models.Event, error) {
	if m.UpdateEventFunc != nil {
		return m.UpdateEventFunc(ctx, sess, clubName, eventID, req)
	}
	return nil, nil
}

func (m *MockEventService) DeleteEvent(ctx context.Context, sess *session.Session, clubName, eventID string) error {
	if m.DeleteEventFunc != nil {
		return m.DeleteEventFunc(ctx, sess, clubName, eventID)
	}
	return nil
}

// MockMembershipService is a mock implementation of MembershipServicer.
type MockMembershipService struct {
	JoinClubFunc         func(ctx context.Context, sess *session.Session, clubName string) (*models.ClubRole, error)
	LeaveClubFunc        func(ctx context.Context, sess *session.Session, clubName string) error
	GetMyRoleFunc        func(ctx context.Context, sess *session.Session, clubName string) (*models.RoleResponse, error)
	ListMembersFunc      func(ctx context.Context, sess *session.Session, clubName string) (*models.MemberListResponse, error)
	UpdateMemberRoleFunc func(ctx context.Context, sess *session.Session, clubName, email string, req *models.UpdateRoleRequest) (*models.ClubRole, error)
	ListMyClubsFunc      func(ctx context.Context, sess *session.Session) ([]models.ClubWithRole, error)
}

func (m *MockMembershipService) JoinClub(ctx context.Context, sess *session.Session, clubName string) (*models.ClubRole, error) {
	if m.JoinClubFunc != nil {
		return m.JoinClubFunc(ctx, sess, clubName)
	}
	return nil, nil
}

func (m *MockMembershipService) LeaveClub(ctx context.Context, sess *session.Session, clubName string) error {
	if m.LeaveClubFunc != nil {
		return m.LeaveClubFunc(ctx, sess, clubName)
	}
	return nil
}

func (m *MockMembershipService) GetMyRole(ctx context.Context, sess *session.Session, clubName string) (*models.RoleResponse, error) {
	if m.GetMyRoleFunc != nil {
		return m.GetMyRoleFunc(ctx, sess, clubName)
	}
	return nil, nil
}

func (m *MockMembershipService) ListMembers(ctx context.Context, sess *session.Session, clubName string) (*models.MemberListResponse, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, sess, clubName)
	}
	return nil, nil
}

func (m *MockMembershipService) UpdateMemberRole(ctx context.Context, sess *session.Session, clubName, email string, req *models.UpdateRoleRequest) (*models.ClubRole, error) {
	if m.UpdateMemberRoleFunc != nil {
		return m.UpdateMemberRoleFunc(ctx, sess, clubName, email, req)
	}
	return nil, nil
}

func (m *MockMembershipService) ListMyClubs(ctx context.Context, sess *session.Session) ([]models.ClubWithRole, error) {
	if m.ListMyClubsFunc != nil {
		return m.ListMyClubsFunc(ctx, sess)
	}
	return nil, nil
}
