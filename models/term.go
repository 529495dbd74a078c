package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Term is a billing period: the days pizza is served, the price per
// slice, and frozen copies of the locations it applies to.
type Term struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Label         string             `json:"label" bson:"label"`
	PricePerSlice float64            `json:"pricePerSlice" bson:"pricePerSlice"`
	Dates         []time.Time        `json:"dates" bson:"dates"`
	Locations     []LocationSnapshot `json:"locations" bson:"locations"`
}

// NumberOfDays is derived from the stored dates on every read, never
// persisted.
func (t *Term) NumberOfDays() int {
	return len(t.Dates)
}

// TermSnapshot is the reduced copy of a Term embedded in an Order:
// locations and dates are dropped, numberOfDays is frozen in.
type TermSnapshot struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	Label         string             `json:"label" bson:"label"`
	PricePerSlice float64            `json:"pricePerSlice" bson:"pricePerSlice"`
	NumberOfDays  int                `json:"numberOfDays" bson:"numberOfDays"`
}

// Snapshot returns the reduced frozen copy of t to embed in an Order.
func (t *Term) Snapshot() TermSnapshot {
	return TermSnapshot{
		ID:            t.ID,
		Label:         t.Label,
		PricePerSlice: t.PricePerSlice,
		NumberOfDays:  t.NumberOfDays(),
	}
}

// TermRequest is the payload for creating or replacing a Term. Dates are
// ISO calendar days; locations are ids of existing Location records,
// snapshotted at composition time.
type TermRequest struct {
	Label         string   `json:"label" binding:"required,min=5,max=255"`
	PricePerSlice *float64 `json:"pricePerSlice" binding:"required,gte=0"`
	Dates         []string `json:"dates" binding:"dive,datetime=2006-01-02"`
	Locations     []string `json:"locations"`
}

// TermResponse carries a Term plus its derived day count.
type TermResponse struct {
	Term
	NumberOfDays int `json:"numberOfDays"`
}

// NewTermResponse attaches the derived day count to a stored Term.
func NewTermResponse(t *Term) *TermResponse {
	return &TermResponse{Term: *t, NumberOfDays: t.NumberOfDays()}
}
