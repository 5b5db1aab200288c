package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event belongs to exactly one club, referenced by ClubID.
type Event struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439021"`
	ClubID      primitive.ObjectID `json:"club" bson:"club" example:"507f1f77bcf86cd799439011"`
	Title       string             `json:"title" bson:"title" example:"Spring Tournament"`
	Description string             `json:"description" bson:"description" example:"Swiss format, five rounds"`
	Date        time.Time          `json:"date" bson:"date" example:"2024-04-20T14:00:00Z"`
	Location    string             `json:"location" bson:"location" example:"Student Center, Room 204"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,min=1,max=200" example:"Spring Tournament"`
	Description string    `json:"description" binding:"omitempty,max=2000" example:"Swiss format, five rounds"`
	Date        time.Time `json:"date" binding:"required" example:"2024-04-20T14:00:00Z"`
	Location    string    `json:"location" binding:"omitempty,max=200" example:"Student Center, Room 204"`
}

// UpdateEventRequest is the payload for updating an event.
type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=200" example:"Spring Open"`
	Description *string    `json:"description" binding:"omitempty,max=2000" example:"Updated description"`
	Date        *time.Time `json:"date" example:"2024-04-21T14:00:00Z"`
	Location    *string    `json:"location" binding:"omitempty,max=200" example:"Library Hall"`
}

// EventListResponse is the response for listing a club's events.
type EventListResponse struct {
	Items []Event `json:"items"`
}
