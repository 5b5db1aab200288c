package service

import (
	"context"
	"errors"
	"strings"

	"clubhub/internal/authz"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/repository"
	"clubhub/internal/session"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventService handles business logic for club events.
type EventService struct {
	clubRepo  repository.ClubRepository
	eventRepo repository.EventRepository
	gate      *AdminGate
}

// NewEventService creates a new EventService.
func NewEventService(clubRepo repository.ClubRepository, eventRepo repository.EventRepository, gate *AdminGate) *EventService {
	return &EventService{
		clubRepo:  clubRepo,
		eventRepo: eventRepo,
		gate:      gate,
	}
}

// CreateEvent creates an event in the named club.
func (s *EventService) CreateEvent(ctx context.Context, sess *session.Session, clubName string, req *models.CreateEventRequest) (*models.Event, error) {
	club, err := s.clubRepo.FindByName(ctx, clubName)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Authorize(ctx, sess, club.Name, authz.ActionEventCreate); err != nil {
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	event := &models.Event{
		ClubID:      club.ID,
		Title:       strings.TrimSpace(req.Title),
		Description: sanitizeDescription(req.Description),
		Date:        req.Date.UTC(),
		Location:    strings.TrimSpace(req.Location),
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// ListEvents returns the events of the named club ordered by date.
func (s *EventService) ListEvents(ctx context.Context, clubName string) (*models.EventListResponse, error) {
	club, err := s.clubRepo.FindByName(ctx, clubName)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.FindByClubID(ctx, club.ID)
	if err != nil {
		return nil, err
	}

	return &models.EventListResponse{Items: events}, nil
}

// GetEvent retrieves an event of the named club.
func (s *EventService) GetEvent(ctx context.Context, clubName, eventID string) (*models.Event, error) {
	event, _, err := s.resolveEvent(ctx, clubName, eventID)
	return event, err
}

// UpdateEvent updates an event. Authorization uses the event's own club.
func (s *EventService) UpdateEvent(ctx context.Context, sess *session.Session, clubName, eventID string, req *models.UpdateEventRequest) (*models.Event, error) {
	event, club, err := s.resolveEvent(ctx, clubName, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Authorize(ctx, sess, club.Name, authz.ActionEventUpdate); err != nil {
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		event.Description = sanitizeDescription(*req.Description)
	}
	if req.Date != nil {
		event.Date = req.Date.UTC()
	}
	if req.Location != nil {
		event.Location = strings.TrimSpace(*req.Location)
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent deletes an event. Authorization uses the event's own club.
func (s *EventService) DeleteEvent(ctx context.Context, sess *session.Session, clubName, eventID string) error {
	event, club, err := s.resolveEvent(ctx, clubName, eventID)
	if err != nil {
		return err
	}

	if err := s.gate.Authorize(ctx, sess, club.Name, authz.ActionEventDelete); err != nil {
		return err
	}

	return s.eventRepo.Delete(ctx, event.ID)
}

// resolveEvent loads an event and the club it belongs to. An event whose
// club is not the one named in the request does not exist for that request.
func (s *EventService) resolveEvent(ctx context.Context, clubName, eventID string) (*models.Event, *models.Club, error) {
	id, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, nil, apperrors.ErrEventNotFound
	}

	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	club, err := s.clubRepo.FindByID(ctx, event.ClubID)
	if err != nil {
		if errors.Is(err, apperrors.ErrClubNotFound) {
			return nil, nil, apperrors.ErrEventNotFound
		}
		return nil, nil, err
	}

	if club.Name != clubName {
		return nil, nil, apperrors.ErrEventNotFound.Describe("event %s does not belong to %q", eventID, clubName)
	}

	return event, club, nil
}
