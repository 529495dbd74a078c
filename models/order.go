package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order is the composed aggregate: a contact email, frozen copies of the
// persons being ordered for, a reduced frozen copy of the billing term,
// and the payment reference generated once at creation. Deleting the
// source Term or Persons afterwards does not affect a stored Order.
type Order struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email            string             `json:"email" bson:"email"`
	Persons          []Person           `json:"persons" bson:"persons"`
	Term             TermSnapshot       `json:"term" bson:"term"`
	PaymentReference string             `json:"paymentReference" bson:"paymentReference"`
}

// TotalNumberOfSlices sums the slice counts of the embedded persons.
// A person decoded without the field contributes zero.
func (o *Order) TotalNumberOfSlices() float64 {
	var total float64
	for _, p := range o.Persons {
		total += p.NumberOfSlices
	}
	return total
}

// AmountPayable is total slices times billing days times price per
// slice, recomputed from the stored snapshot on every read.
func (o *Order) AmountPayable() float64 {
	return o.TotalNumberOfSlices() * float64(o.Term.NumberOfDays) * o.Term.PricePerSlice
}

// OrderRequest is the payload for creating or replacing an Order.
// Persons and TermID are ids of existing records; they are resolved and
// snapshotted at composition time.
type OrderRequest struct {
	Email   string   `json:"email" binding:"required,email"`
	Persons []string `json:"persons"`
	TermID  string   `json:"termId" binding:"required"`
}

// OrderResponse carries a stored Order plus its derived values.
type OrderResponse struct {
	Order
	TotalNumberOfSlices float64 `json:"totalNumberOfSlices"`
	AmountPayable       float64 `json:"amountPayable"`
}

// NewOrderResponse attaches fresh derived values to a stored Order. The
// payment reference is part of the stored record and is not touched.
func NewOrderResponse(o *Order) *OrderResponse {
	return &OrderResponse{
		Order:               *o,
		TotalNumberOfSlices: o.TotalNumberOfSlices(),
		AmountPayable:       o.AmountPayable(),
	}
}
