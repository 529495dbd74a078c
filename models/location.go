package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Location is a pickup location and the school classes it serves.
type Location struct {
	ID      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Label   string             `json:"label" bson:"label"`
	Classes []string           `json:"classes" bson:"classes"`
}

// LocationSnapshot is the reduced copy of a Location embedded in a Term
// at creation time. It is frozen: later edits to the source Location do
// not propagate.
type LocationSnapshot struct {
	Label   string   `json:"label" bson:"label"`
	Classes []string `json:"classes" bson:"classes"`
}

// Snapshot returns the frozen copy of l to embed elsewhere.
func (l *Location) Snapshot() LocationSnapshot {
	classes := make([]string, len(l.Classes))
	copy(classes, l.Classes)
	return LocationSnapshot{Label: l.Label, Classes: classes}
}

// LocationRequest is the payload for creating or replacing a Location.
type LocationRequest struct {
	Label   string   `json:"label" binding:"required,min=5,max=255"`
	Classes []string `json:"classes" binding:"dive,max=255"`
}
