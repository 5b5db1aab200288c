package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Club role constants.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// IsValidRole reports whether role is a known club role.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMember
}

// ClubRole records a user's membership in a club. There is at most one per (club, email).
type ClubRole struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439031"`
	ClubID   primitive.ObjectID `json:"clubId" bson:"clubId" example:"507f1f77bcf86cd799439011"`
	Email    string             `json:"email" bson:"email" example:"user@example.com"`
	Role     string             `json:"role" bson:"role" example:"member"`
	JoinedAt time.Time          `json:"joinedAt" bson:"joinedAt" example:"2024-01-15T09:30:00Z"`
}

// RoleResponse is the caller's role in a club.
type RoleResponse struct {
	Club string `json:"club" example:"Chess"`
	Role string `json:"role" example:"admin"`
}

// UpdateRoleRequest is the payload for changing a member's role.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin member" example:"admin"`
}

// MemberListResponse is the response for listing club members.
type MemberListResponse struct {
	Items []ClubRole `json:"items"`
}
