package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Person is a pizza eater. Location is a free-text label, not a
// reference to a Location record.
type Person struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FirstName      string             `json:"firstName" bson:"firstName"`
	LastName       string             `json:"lastName" bson:"lastName"`
	Location       string             `json:"location" bson:"location"`
	Class          string             `json:"class" bson:"class"`
	NumberOfSlices float64            `json:"numberOfSlices" bson:"numberOfSlices"`
}

// PersonRequest is the payload for creating or replacing a Person.
type PersonRequest struct {
	FirstName      string   `json:"firstName" binding:"required,min=2,max=255"`
	LastName       string   `json:"lastName" binding:"required,min=2,max=255"`
	Location       string   `json:"location" binding:"required,min=5,max=255"`
	Class          string   `json:"class" binding:"required,min=1,max=255"`
	NumberOfSlices *float64 `json:"numberOfSlices" binding:"required,gte=0"`
}
