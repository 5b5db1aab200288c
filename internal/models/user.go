// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user. Email is the identity used by sessions and roles.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email     string             `json:"email" bson:"email" example:"user@example.com"`
	Password  string             `json:"-" bson:"password"` // "-" = never include in JSON response
	FirstName string             `json:"firstName" bson:"firstName" example:"Ada"`
	LastName  string             `json:"lastName" bson:"lastName" example:"Lovelace"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=100" example:"Ada"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100" example:"Lovelace"`
	Email     string `json:"email" binding:"required,email" example:"user@example.com"`
	Password  string `json:"password" binding:"required,min=6" example:"secret123"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse is the response after successful login.
type AuthResponse struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresIn   int    `json:"expiresIn" example:"86400"`
	User        User   `json:"user"`
}

// SessionStatusResponse reports whether the caller is signed in.
type SessionStatusResponse struct {
	LoggedInStatus bool   `json:"loggedInStatus" example:"true"`
	Email          string `json:"email,omitempty" example:"user@example.com"`
}
