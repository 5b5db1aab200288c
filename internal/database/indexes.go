package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec describes one index on a collection.
type IndexSpec struct {
	Collection string
	Keys       bson.D
	Unique     bool
}

// Indexes lists every index the application relies on.
// Unique indexes back the one-club-per-name and one-role-per-(club, email) rules.
var Indexes = []IndexSpec{
	{Collection: UsersCollection, Keys: bson.D{{Key: "email", Value: 1}}, Unique: true},

	{Collection: ClubsCollection, Keys: bson.D{{Key: "name", Value: 1}}, Unique: true},
	{Collection: ClubsCollection, Keys: bson.D{{Key: "interests", Value: 1}}},
	{Collection: ClubsCollection, Keys: bson.D{{Key: "createdAt", Value: -1}}},

	{Collection: ClubRolesCollection, Keys: bson.D{{Key: "clubId", Value: 1}, {Key: "email", Value: 1}}, Unique: true},
	{Collection: ClubRolesCollection, Keys: bson.D{{Key: "email", Value: 1}}},

	{Collection: EventsCollection, Keys: bson.D{{Key: "club", Value: 1}, {Key: "date", Value: 1}}},
}

// EnsureIndexes creates all indexes. Existing identical indexes are left alone.
// It returns the names of the created indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	names := make([]string, 0, len(Indexes))
	for _, idx := range Indexes {
		model := mongo.IndexModel{Keys: idx.Keys}
		if idx.Unique {
			model.Options = options.Index().SetUnique(true)
		}

		name, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			return names, fmt.Errorf("create index on %s: %w", idx.Collection, err)
		}
		names = append(names, idx.Collection+"."+name)
	}
	return names, nil
}
