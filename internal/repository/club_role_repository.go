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

// ClubRoleRepository defines the interface for club membership data operations.
type ClubRoleRepository interface {
	Create(ctx context.Context, role *models.ClubRole) error
	FindByClubAndEmail(ctx context.Context, clubID primitive.ObjectID, email string) (*models.ClubRole, error)
	FindByClubID(ctx context.Context, clubID primitive.ObjectID) ([]models.ClubRole, error)
	FindByEmail(ctx context.Context, email string) ([]models.ClubRole, error)
	CountByClubAndRole(ctx context.Context, clubID primitive.ObjectID, role string) (int, error)
	UpdateRole(ctx context.Context, clubID primitive.ObjectID, email, role string) error
	Delete(ctx context.Context, clubID primitive.ObjectID, email string) error
	DeleteAllByClubID(ctx context.Context, clubID primitive.ObjectID) error
}

// clubRoleRepository implements ClubRoleRepository using MongoDB.
type clubRoleRepository struct {
	collection *mongo.Collection
}

// NewClubRoleRepository creates a new ClubRoleRepository.
func NewClubRoleRepository(db *mongo.Database) ClubRoleRepository {
	return &clubRoleRepository{
		collection: db.Collection(database.ClubRolesCollection),
	}
}

// Create inserts a membership. A second role for the same (club, email) is ErrAlreadyMember.
func (r *clubRoleRepository) Create(ctx context.Context, role *models.ClubRole) error {
	role.ID = primitive.NewObjectID()
	role.Email = NormalizeEmail(role.Email)
	role.JoinedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, role)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrAlreadyMember
		}
		return storeError(err)
	}
	return nil
}

// FindByClubAndEmail returns a user's membership in a club.
func (r *clubRoleRepository) FindByClubAndEmail(ctx context.Context, clubID primitive.ObjectID, email string) (*models.ClubRole, error) {
	filter := bson.M{
		"clubId": clubID,
		"email":  NormalizeEmail(email),
	}

	var role models.ClubRole
	err := r.collection.FindOne(ctx, filter).Decode(&role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotClubMember
		}
		return nil, err
	}

	return &role, nil
}

// FindByClubID returns all members of a club, oldest first.
func (r *clubRoleRepository) FindByClubID(ctx context.Context, clubID primitive.ObjectID) ([]models.ClubRole, error) {
	return r.find(ctx, bson.M{"clubId": clubID})
}

// FindByEmail returns all memberships of a user.
func (r *clubRoleRepository) FindByEmail(ctx context.Context, email string) ([]models.ClubRole, error) {
	return r.find(ctx, bson.M{"email": NormalizeEmail(email)})
}

func (r *clubRoleRepository) find(ctx context.Context, filter bson.M) ([]models.ClubRole, error) {
	opts := options.Find().SetSort(bson.D{{Key: "joinedAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var roles []models.ClubRole
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, err
	}

	if roles == nil {
		roles = []models.ClubRole{}
	}

	return roles, nil
}

// CountByClubAndRole returns how many members of a club hold role.
func (r *clubRoleRepository) CountByClubAndRole(ctx context.Context, clubID primitive.ObjectID, role string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"clubId": clubID, "role": role})
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// UpdateRole changes a member's role.
func (r *clubRoleRepository) UpdateRole(ctx context.Context, clubID primitive.ObjectID, email, role string) error {
	filter := bson.M{
		"clubId": clubID,
		"email":  NormalizeEmail(email),
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return storeError(err)
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}

// Delete removes a membership.
func (r *clubRoleRepository) Delete(ctx context.Context, clubID primitive.ObjectID, email string) error {
	filter := bson.M{
		"clubId": clubID,
		"email":  NormalizeEmail(email),
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return storeError(err)
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}

// DeleteAllByClubID removes all memberships of a club (used when deleting a club).
func (r *clubRoleRepository) DeleteAllByClubID(ctx context.Context, clubID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"clubId": clubID})
	return storeError(err)
}
