package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"clubhub/internal/database"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxSearchResults caps directory search responses.
const maxSearchResults = 50

// ClubRepository defines the interface for club data operations.
type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Club, error)
	FindByName(ctx context.Context, name string) (*models.Club, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Club, error)
	List(ctx context.Context, page, limit int) ([]models.Club, int, error)
	Search(ctx context.Context, query string) ([]models.Club, error)
	Update(ctx context.Context, club *models.Club) error
	SetImageKey(ctx context.Context, id primitive.ObjectID, key string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// clubRepository implements ClubRepository using MongoDB.
type clubRepository struct {
	collection *mongo.Collection
}

// NewClubRepository creates a new ClubRepository.
func NewClubRepository(db *mongo.Database) ClubRepository {
	return &clubRepository{
		collection: db.Collection(database.ClubsCollection),
	}
}

// Create inserts a new club. A taken name is reported as ErrClubNameTaken.
func (r *clubRepository) Create(ctx context.Context, club *models.Club) error {
	club.ID = primitive.NewObjectID()
	club.CreatedAt = time.Now()
	club.UpdatedAt = club.CreatedAt
	if club.Interests == nil {
		club.Interests = []string{}
	}

	_, err := r.collection.InsertOne(ctx, club)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrClubNameTaken
		}
		return storeError(err)
	}
	return nil
}

// FindByID retrieves a club by ID.
func (r *clubRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Club, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByName retrieves a club by its exact name.
func (r *clubRepository) FindByName(ctx context.Context, name string) (*models.Club, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *clubRepository) findOne(ctx context.Context, filter bson.M) (*models.Club, error) {
	var club models.Club
	err := r.collection.FindOne(ctx, filter).Decode(&club)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, err
	}

	return &club, nil
}

// FindByIDs returns the clubs with the given IDs, sorted by name.
func (r *clubRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Club, error) {
	if len(ids) == 0 {
		return []models.Club{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
}

// List returns a page of clubs, newest first, and the total club count.
func (r *clubRepository) List(ctx context.Context, page, limit int) ([]models.Club, int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(models.Offset(page, limit)).
		SetLimit(int64(limit))

	clubs, err := r.find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}

	return clubs, int(total), nil
}

// Search matches clubs whose name or interests contain query, case-insensitively.
// The query is matched literally.
func (r *clubRepository) Search(ctx context.Context, query string) ([]models.Club, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"interests": pattern},
		},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(maxSearchResults)

	return r.find(ctx, filter, opts)
}

func (r *clubRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Club, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clubs []models.Club
	if err := cursor.All(ctx, &clubs); err != nil {
		return nil, err
	}

	if clubs == nil {
		clubs = []models.Club{}
	}

	return clubs, nil
}

// Update writes a club's editable fields.
func (r *clubRepository) Update(ctx context.Context, club *models.Club) error {
	club.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"description": club.Description,
			"interests":   club.Interests,
			"updatedAt":   club.UpdatedAt,
		},
	}

	return r.updateOne(ctx, club.ID, update)
}

// SetImageKey records the object key of the club's image.
func (r *clubRepository) SetImageKey(ctx context.Context, id primitive.ObjectID, key string) error {
	update := bson.M{
		"$set": bson.M{
			"imageKey":  key,
			"updatedAt": time.Now(),
		},
	}

	return r.updateOne(ctx, id, update)
}

func (r *clubRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return storeError(err)
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrClubNotFound
	}

	return nil
}

// Delete removes a club document.
func (r *clubRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeError(err)
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrClubNotFound
	}

	return nil
}
