package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clubhub/internal/authz"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/repository"
	"clubhub/internal/session"
	"clubhub/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxClubPageSize = 50

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// ImageCleaner deletes storage objects in the background.
type ImageCleaner interface {
	ScheduleDelete(key string) error
}

// ClubService handles business logic for club operations.
type ClubService struct {
	clubRepo       repository.ClubRepository
	roleRepo       repository.ClubRoleRepository
	eventRepo      repository.EventRepository
	storage        storage.Storage
	cleaner        ImageCleaner
	gate           *AdminGate
	imageURLExpiry time.Duration
	log            *zap.Logger
}

// ClubServiceConfig holds configuration for ClubService.
type ClubServiceConfig struct {
	ClubRepo       repository.ClubRepository
	RoleRepo       repository.ClubRoleRepository
	EventRepo      repository.EventRepository
	Storage        storage.Storage
	ImageCleaner   ImageCleaner // optional; images are deleted inline without it
	Gate           *AdminGate
	ImageURLExpiry time.Duration
	Logger         *zap.Logger
}

// NewClubService creates a new ClubService.
func NewClubService(cfg ClubServiceConfig) *ClubService {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &ClubService{
		clubRepo:       cfg.ClubRepo,
		roleRepo:       cfg.RoleRepo,
		eventRepo:      cfg.EventRepo,
		storage:        cfg.Storage,
		cleaner:        cfg.ImageCleaner,
		gate:           cfg.Gate,
		imageURLExpiry: cfg.ImageURLExpiry,
		log:            log,
	}
}

// CreateClub creates a club and records the creator as its first admin.
func (s *ClubService) CreateClub(ctx context.Context, sess *session.Session, req *models.CreateClubRequest) (*models.Club, error) {
	if err := requireSignIn(sess); err != nil {
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	_, err := s.clubRepo.FindByName(ctx, name)
	if err == nil {
		return nil, apperrors.ErrClubNameTaken.Describe("a club named %q already exists", name)
	}
	if !errors.Is(err, apperrors.ErrClubNotFound) {
		return nil, err
	}

	club := &models.Club{
		Name:        name,
		Description: sanitizeDescription(req.Description),
		Interests:   cleanInterests(req.Interests),
		CreatedBy:   sess.Email,
	}
	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}

	admin := &models.ClubRole{
		ClubID: club.ID,
		Email:  sess.Email,
		Role:   models.RoleAdmin,
	}
	if err := s.roleRepo.Create(ctx, admin); err != nil {
		// Rollback club creation on failure
		if delErr := s.clubRepo.Delete(ctx, club.ID); delErr != nil {
			s.log.Error("failed to roll back club creation", zap.String("club", club.Name), zap.Error(delErr))
		}
		return nil, err
	}

	return club, nil
}

// ListClubs returns a page of clubs, marking the ones the session's user has joined.
func (s *ClubService) ListClubs(ctx context.Context, sess *session.Session, page, limit int) (*models.ClubListResponse, error) {
	p := models.NewPagination(page, limit, 0, maxClubPageSize)

	clubs, total, err := s.clubRepo.List(ctx, p.Page, p.Limit)
	if err != nil {
		return nil, err
	}

	joined := map[string]bool{}
	if sess.SignedIn() {
		roles, err := s.roleRepo.FindByEmail(ctx, sess.Email)
		if err != nil {
			return nil, err
		}
		for _, role := range roles {
			joined[role.ClubID.Hex()] = true
		}
	}

	items := make([]models.ClubSummary, 0, len(clubs))
	for _, club := range clubs {
		items = append(items, models.ClubSummary{
			Club:     club,
			IsJoined: joined[club.ID.Hex()],
		})
	}

	return &models.ClubListResponse{
		Items:      items,
		Pagination: models.NewPagination(p.Page, p.Limit, total, maxClubPageSize),
	}, nil
}

// SearchClubs finds clubs whose name or interests contain query.
func (s *ClubService) SearchClubs(ctx context.Context, query string) ([]models.Club, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.BadRequest(errors.New("search query is required"))
	}
	return s.clubRepo.Search(ctx, query)
}

// GetClub retrieves a club by name with a download URL for its image, if any.
func (s *ClubService) GetClub(ctx context.Context, name string) (*models.Club, error) {
	club, err := s.clubRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	s.attachImageURL(ctx, club)
	return club, nil
}

// UpdateClub updates a club's description and interests.
func (s *ClubService) UpdateClub(ctx context.Context, sess *session.Session, name string, req *models.UpdateClubRequest) (*models.Club, error) {
	club, err := s.clubRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Authorize(ctx, sess, club.Name, authz.ActionClubUpdate); err != nil {
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if req.Description != nil {
		club.Description = sanitizeDescription(*req.Description)
	}
	if req.Interests != nil {
		club.Interests = cleanInterests(*req.Interests)
	}

	if err := s.clubRepo.Update(ctx, club); err != nil {
		return nil, err
	}

	s.attachImageURL(ctx, club)
	return club, nil
}

// DeleteClub deletes a club together with its events and memberships.
func (s *ClubService) DeleteClub(ctx context.Context, sess *session.Session, name string) error {
	club, err := s.clubRepo.FindByName(ctx, name)
	if err != nil {
		return err
	}

	if err := s.gate.Authorize(ctx, sess, club.Name, authz.ActionClubDelete); err != nil {
		return err
	}

	if err := s.eventRepo.DeleteAllByClubID(ctx, club.ID); err != nil {
		return err
	}
	if err := s.roleRepo.DeleteAllByClubID(ctx, club.ID); err != nil {
		return err
	}
	if err := s.clubRepo.Delete(ctx, club.ID); err != nil {
		return err
	}

	if club.ImageKey != "" {
		s.removeImage(ctx, club.ImageKey)
	}

	return nil
}

// RequestImageUpload issues a pre-signed upload URL for a new club image and
// records its key on the club.
func (s *ClubService) RequestImageUpload(ctx context.Context, sess *session.Session, name string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error) {
	club, err := s.clubRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Authorize(ctx, sess, club.Name, authz.ActionClubImage); err != nil {
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ext, ok := imageExtensions[req.ContentType]
	if !ok {
		return nil, apperrors.BadRequest(fmt.Errorf("unsupported content type %q", req.ContentType))
	}

	key := fmt.Sprintf("clubs/%s/%s%s", club.ID.Hex(), uuid.NewString(), ext)
	uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, req.ContentType, s.imageURLExpiry)
	if err != nil {
		return nil, err
	}

	if err := s.clubRepo.SetImageKey(ctx, club.ID, key); err != nil {
		return nil, err
	}

	if club.ImageKey != "" {
		s.removeImage(ctx, club.ImageKey)
	}

	return &models.ImageUploadResponse{
		UploadURL: uploadURL,
		ImageKey:  key,
		ExpiresIn: int(s.imageURLExpiry.Seconds()),
	}, nil
}

// removeImage hands key to the background cleaner, deleting inline when
// there is none or its queue rejects the job.
func (s *ClubService) removeImage(ctx context.Context, key string) {
	if s.cleaner != nil {
		err := s.cleaner.ScheduleDelete(key)
		if err == nil {
			return
		}
		s.log.Warn("cleanup queue rejected image", zap.String("key", key), zap.Error(err))
	}

	if err := s.storage.DeleteObject(ctx, key); err != nil {
		s.log.Warn("failed to delete club image", zap.String("key", key), zap.Error(err))
	}
}

// attachImageURL fills ImageURL; a storage failure leaves it empty.
func (s *ClubService) attachImageURL(ctx context.Context, club *models.Club) {
	if club.ImageKey == "" {
		return
	}

	url, err := s.storage.GetPresignedURL(ctx, club.ImageKey, s.imageURLExpiry)
	if err != nil {
		s.log.Warn("failed to presign club image", zap.String("key", club.ImageKey), zap.Error(err))
		return
	}
	club.ImageURL = url
}
