package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tenant is a contact person for a school location.
type Tenant struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone" bson:"phone"`
}

// TenantRequest is the payload for creating or replacing a Tenant.
type TenantRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=255"`
	LastName  string `json:"lastName" binding:"required,min=2,max=255"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=5,max=50"`
}
