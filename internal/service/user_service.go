package service

import (
	"context"
	"time"

	"clubhub/internal/cache"
	"clubhub/internal/models"
	"clubhub/internal/repository"
	"clubhub/internal/session"
)

const userCacheTTL = 15 * time.Minute

// UserService handles business logic for user profiles.
type UserService struct {
	repo  repository.UserRepository
	cache cache.Cache
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, cache cache.Cache) *UserService {
	return &UserService{
		repo:  repo,
		cache: cache,
	}
}

// GetMe retrieves the session user's profile (with caching).
func (s *UserService) GetMe(ctx context.Context, sess *session.Session) (*models.User, error) {
	if err := requireSignIn(sess); err != nil {
		return nil, err
	}

	// Try cache first
	cacheKey := cache.UserCacheKey(sess.Email)
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err == nil && found {
		return &user, nil
	}

	dbUser, err := s.repo.FindByEmail(ctx, sess.Email)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, dbUser, userCacheTTL)

	return dbUser, nil
}
