package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/norvalex/pizza-form/models"
)

func TestOrder_TotalNumberOfSlices(t *testing.T) {
	order := &models.Order{
		Persons: []models.Person{
			{NumberOfSlices: 2},
			{NumberOfSlices: 3},
			{NumberOfSlices: 1},
		},
	}
	assert.Equal(t, float64(6), order.TotalNumberOfSlices())
}

func TestOrder_TotalNumberOfSlices_MissingCountsAsZero(t *testing.T) {
	// A person decoded without the field carries the zero value.
	order := &models.Order{
		Persons: []models.Person{
			{NumberOfSlices: 5},
			{FirstName: "Anna"},
		},
	}
	assert.Equal(t, float64(5), order.TotalNumberOfSlices())
}

func TestOrder_TotalNumberOfSlices_NoPersons(t *testing.T) {
	order := &models.Order{}
	assert.Equal(t, float64(0), order.TotalNumberOfSlices())
}

func TestOrder_AmountPayable(t *testing.T) {
	order := &models.Order{
		Persons: []models.Person{
			{NumberOfSlices: 2},
			{NumberOfSlices: 3},
			{NumberOfSlices: 1},
		},
		Term: models.TermSnapshot{NumberOfDays: 5, PricePerSlice: 10},
	}
	assert.Equal(t, float64(300), order.AmountPayable())
}

func TestNewOrderResponse_AttachesDerivedValuesOnly(t *testing.T) {
	order := &models.Order{
		Persons:          []models.Person{{NumberOfSlices: 4}, {NumberOfSlices: 6}},
		Term:             models.TermSnapshot{NumberOfDays: 3, PricePerSlice: 2},
		PaymentReference: "PIZZA-AB12-CD34",
	}

	resp := models.NewOrderResponse(order)
	assert.Equal(t, float64(10), resp.TotalNumberOfSlices)
	assert.Equal(t, float64(60), resp.AmountPayable)
	assert.Equal(t, "PIZZA-AB12-CD34", resp.PaymentReference)
}

func TestTerm_NumberOfDays(t *testing.T) {
	term := &models.Term{
		Dates: []time.Time{
			time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC),
		},
	}
	assert.Equal(t, 2, term.NumberOfDays())

	assert.Equal(t, 0, (&models.Term{}).NumberOfDays())
}

func TestTerm_SnapshotDropsDatesAndLocations(t *testing.T) {
	term := &models.Term{
		Label:         "Spring term",
		PricePerSlice: 2.5,
		Dates: []time.Time{
			time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		Locations: []models.LocationSnapshot{{Label: "Hilversum", Classes: []string{"1A"}}},
	}

	snap := term.Snapshot()
	assert.Equal(t, "Spring term", snap.Label)
	assert.Equal(t, 2.5, snap.PricePerSlice)
	assert.Equal(t, 1, snap.NumberOfDays)
}

func TestLocation_SnapshotIsACopy(t *testing.T) {
	location := &models.Location{Label: "Hilversum", Classes: []string{"1A", "2B"}}
	snap := location.Snapshot()

	location.Classes[0] = "changed"
	assert.Equal(t, []string{"1A", "2B"}, snap.Classes)
}
