package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Club represents a club in the directory. Name is the unique lookup key.
type Club struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name        string             `json:"name" bson:"name" example:"Chess"`
	Description string             `json:"description" bson:"description" example:"Weekly casual and rated games"`
	ImageKey    string             `json:"-" bson:"imageKey,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"-" example:"https://example.com/clubs/chess.png"`
	Interests   []string           `json:"interests" bson:"interests" example:"strategy,games"`
	CreatedBy   string             `json:"createdBy" bson:"createdBy" example:"user@example.com"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// ClubSummary is a club list entry marked with the caller's membership.
type ClubSummary struct {
	Club
	IsJoined bool `json:"isJoined" example:"true"`
}

// ClubWithRole is a club together with the caller's role in it.
type ClubWithRole struct {
	Club
	Role string `json:"role" example:"admin"`
}

// CreateClubRequest is the payload for creating a club.
type CreateClubRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=100,clubname" example:"Chess"`
	Description string   `json:"description" binding:"omitempty,max=2000" example:"Weekly casual and rated games"`
	Interests   []string `json:"interests" binding:"omitempty,max=10,dive,min=1,max=40" example:"strategy,games"`
}

// UpdateClubRequest is the payload for updating a club.
// The name is the club's key and cannot be changed.
type UpdateClubRequest struct {
	Description *string   `json:"description" binding:"omitempty,max=2000" example:"Updated description"`
	Interests   *[]string `json:"interests" binding:"omitempty,max=10,dive,min=1,max=40" example:"strategy"`
}

// ClubListResponse is the response for listing clubs.
type ClubListResponse struct {
	Items      []ClubSummary `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

// ImageUploadRequest is the payload for requesting a club image upload URL.
type ImageUploadRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=image/png image/jpeg image/webp" example:"image/png"`
}

// ImageUploadResponse carries the presigned upload URL for a club image.
type ImageUploadResponse struct {
	UploadURL string `json:"uploadUrl" example:"https://storage.example.com/clubs/chess.png?X-Amz-Signature=..."`
	ImageKey  string `json:"imageKey" example:"clubs/507f1f77bcf86cd799439011/5b1c.png"`
	ExpiresIn int    `json:"expiresIn" example:"900"`
}
