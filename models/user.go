package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account that can authenticate against the API. The
// password field holds a bcrypt hash and is never serialized.
type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	IsAdmin  bool               `json:"isAdmin" bson:"isAdmin"`
}

// RegisterRequest is the payload for creating a User.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=255"`
}

// LoginRequest is the payload for exchanging credentials for a token.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
