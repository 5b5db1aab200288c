package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"log"
	"time"

	"clubhub/internal/config"
	"clubhub/internal/database"
	"clubhub/internal/logger"
	"clubhub/internal/models"
	"clubhub/internal/repository"
	"clubhub/internal/storage"
	"clubhub/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// 1x1 transparent PNG used as the placeholder club image.
const placeholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type seedUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type seedClub struct {
	Name        string
	Description string
	Interests   []string
	Admin       string
	Members     []string
	Image       bool
	Events      []seedEvent
}

type seedEvent struct {
	Title       string
	Description string
	InDays      int
	Location    string
}

var users = []seedUser{
	{FirstName: "Alice", LastName: "Johnson", Email: "alice@example.com", Password: "password123"},
	{FirstName: "Bob", LastName: "Smith", Email: "bob@example.com", Password: "password456"},
	{FirstName: "Carol", LastName: "Diaz", Email: "carol@example.com", Password: "password789"},
}

var clubs = []seedClub{
	{
		Name:        "Chess",
		Description: "Weekly casual and rated games. All levels welcome.",
		Interests:   []string{"strategy", "games"},
		Admin:       "alice@example.com",
		Members:     []string{"bob@example.com"},
		Image:       true,
		Events: []seedEvent{
			{Title: "Spring Tournament", Description: "Swiss format, five rounds.", InDays: 14, Location: "Student Center, Room 204"},
			{Title: "Openings Workshop", Description: "Bring a board.", InDays: 3, Location: "Library Hall"},
		},
	},
	{
		Name:        "Robotics",
		Description: "Build and program robots for regional competitions.",
		Interests:   []string{"engineering", "programming"},
		Admin:       "bob@example.com",
		Events: []seedEvent{
			{Title: "Kickoff Meeting", Description: "Team assignments for the season.", InDays: 7, Location: "Engineering Lab 2"},
		},
	},
	{
		Name:        "Hiking",
		Description: "Day trips to the trails around campus.",
		Interests:   []string{"outdoors", "fitness"},
		Admin:       "carol@example.com",
		Members:     []string{"alice@example.com"},
	},
}

func main() {
	// Load config
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	zl.Info("starting seed")

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase, zl)
	defer mongoDB.Close()

	// Connect to S3/MinIO
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL, zl)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		zl.Fatal("failed to ensure indexes", zap.Error(err))
	}
	if err := s3Client.EnsureBucket(ctx); err != nil {
		zl.Warn("bucket unavailable, club images will be skipped", zap.Error(err))
		s3Client = nil
	}

	clearCollections(ctx, mongoDB.Database, zl)
	seedUsers(ctx, repository.NewUserRepository(mongoDB.Database), zl)
	seedClubs(ctx, mongoDB.Database, s3Client, zl)

	zl.Info("seed completed successfully")
}

func clearCollections(ctx context.Context, db *mongo.Database, zl *zap.Logger) {
	for _, name := range []string{
		database.UsersCollection,
		database.ClubsCollection,
		database.EventsCollection,
		database.ClubRolesCollection,
	} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			zl.Fatal("failed to clear collection", zap.String("collection", name), zap.Error(err))
		}
	}
}

func seedUsers(ctx context.Context, repo repository.UserRepository, zl *zap.Logger) {
	for _, u := range users {
		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			zl.Fatal("failed to hash password", zap.Error(err))
		}

		user := &models.User{
			Email:     u.Email,
			Password:  hash,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		}
		if err := repo.Create(ctx, user); err != nil {
			zl.Fatal("failed to seed user", zap.String("email", u.Email), zap.Error(err))
		}
	}

	zl.Info("seeded users", zap.Int("count", len(users)))
}

func seedClubs(ctx context.Context, db *mongo.Database, s3Client *storage.S3Client, zl *zap.Logger) {
	clubRepo := repository.NewClubRepository(db)
	roleRepo := repository.NewClubRoleRepository(db)
	eventRepo := repository.NewEventRepository(db)

	now := time.Now().UTC().Truncate(time.Hour)
	events := 0

	for _, sc := range clubs {
		club := &models.Club{
			Name:        sc.Name,
			Description: sc.Description,
			Interests:   sc.Interests,
			CreatedBy:   sc.Admin,
		}
		if err := clubRepo.Create(ctx, club); err != nil {
			zl.Fatal("failed to seed club", zap.String("club", sc.Name), zap.Error(err))
		}

		roles := []*models.ClubRole{{ClubID: club.ID, Email: sc.Admin, Role: models.RoleAdmin}}
		for _, email := range sc.Members {
			roles = append(roles, &models.ClubRole{ClubID: club.ID, Email: email, Role: models.RoleMember})
		}
		for _, role := range roles {
			if err := roleRepo.Create(ctx, role); err != nil {
				zl.Fatal("failed to seed club role", zap.String("club", sc.Name), zap.String("email", role.Email), zap.Error(err))
			}
		}

		for _, se := range sc.Events {
			event := &models.Event{
				ClubID:      club.ID,
				Title:       se.Title,
				Description: se.Description,
				Date:        now.AddDate(0, 0, se.InDays),
				Location:    se.Location,
			}
			if err := eventRepo.Create(ctx, event); err != nil {
				zl.Fatal("failed to seed event", zap.String("event", se.Title), zap.Error(err))
			}
			events++
		}

		if sc.Image && s3Client != nil {
			uploadPlaceholderImage(ctx, s3Client, clubRepo, club, zl)
		}
	}

	zl.Info("seeded clubs", zap.Int("clubs", len(clubs)), zap.Int("events", events))
}

// uploadPlaceholderImage uploads a placeholder image and records its key on the club.
func uploadPlaceholderImage(ctx context.Context, s3Client *storage.S3Client, clubRepo repository.ClubRepository, club *models.Club, zl *zap.Logger) {
	image, err := base64.StdEncoding.DecodeString(placeholderPNG)
	if err != nil {
		zl.Warn("failed to decode placeholder image", zap.Error(err))
		return
	}

	key := "clubs/" + club.ID.Hex() + "/placeholder.png"
	if err := s3Client.PutObject(ctx, key, bytes.NewReader(image), "image/png"); err != nil {
		zl.Warn("failed to upload club image", zap.String("key", key), zap.Error(err))
		return
	}
	if err := clubRepo.SetImageKey(ctx, club.ID, key); err != nil {
		zl.Warn("failed to record club image", zap.String("club", club.Name), zap.Error(err))
		return
	}

	zl.Info("uploaded placeholder image", zap.String("club", club.Name), zap.String("key", key))
}
