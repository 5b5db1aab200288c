package repository

import (
	"context"
	"errors"
	"time"

	"clubhub/internal/database"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventRepository defines the interface for event data operations.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	FindByClubID(ctx context.Context, clubID primitive.ObjectID) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAllByClubID(ctx context.Context, clubID primitive.ObjectID) error
}

// eventRepository implements EventRepository using MongoDB.
type eventRepository struct {
	collection *mongo.Collection
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) EventRepository {
	return &eventRepository{
		collection: db.Collection(database.EventsCollection),
	}
}

// Create inserts a new event.
func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt

	_, err := r.collection.InsertOne(ctx, event)
	return storeError(err)
}

// FindByID retrieves an event by ID.
func (r *eventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

// FindByClubID returns a club's events ordered by date.
func (r *eventRepository) FindByClubID(ctx context.Context, clubID primitive.ObjectID) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"club": clubID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	if events == nil {
		events = []models.Event{}
	}

	return events, nil
}

// Update writes an event's editable fields. The owning club never changes.
func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"title":       event.Title,
			"description": event.Description,
			"date":        event.Date,
			"location":    event.Location,
			"updatedAt":   event.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": event.ID}, update)
	if err != nil {
		return storeError(err)
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event.
func (r *eventRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeError(err)
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// DeleteAllByClubID removes all events of a club (used when deleting a club).
func (r *eventRepository) DeleteAllByClubID(ctx context.Context, clubID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"club": clubID})
	return storeError(err)
}
