package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/norvalex/pizza-form/models"
	"github.com/norvalex/pizza-form/services"
)

type termFixture struct {
	terms     *mockTermRepo
	locations *mockLocationRepo
	svc       services.TermService
}

func newTermFixture() *termFixture {
	f := &termFixture{
		terms:     newMockTermRepo(),
		locations: newMockLocationRepo(),
	}
	f.svc = services.NewTermService(f.terms, f.locations, zap.NewNop())
	return f
}

func price(v float64) *float64 { return &v }

func TestCreateTerm_SnapshotsLocations(t *testing.T) {
	f := newTermFixture()
	loc1 := f.locations.add(models.Location{Label: "Hilversum North", Classes: []string{"1A", "2B"}})
	loc2 := f.locations.add(models.Location{Label: "Hilversum South", Classes: []string{"3C"}})

	term, svcErr := f.svc.CreateTerm(context.Background(), &models.TermRequest{
		Label:         "Spring term",
		PricePerSlice: price(2.5),
		Dates:         []string{"2023-01-09", "2023-01-16", "2023-01-23"},
		Locations:     []string{loc1.Hex(), loc2.Hex()},
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, 3, term.NumberOfDays)
	assert.Len(t, term.Locations, 2)
	assert.Equal(t, "Hilversum North", term.Locations[0].Label)
	assert.Equal(t, []string{"1A", "2B"}, term.Locations[0].Classes)
	assert.Equal(t, "Hilversum South", term.Locations[1].Label)
}

func TestCreateTerm_LocationNotFoundCommitsNothing(t *testing.T) {
	f := newTermFixture()
	loc1 := f.locations.add(models.Location{Label: "Hilversum North", Classes: []string{"1A"}})

	_, svcErr := f.svc.CreateTerm(context.Background(), &models.TermRequest{
		Label:         "Spring term",
		PricePerSlice: price(1),
		Dates:         []string{"2023-01-09"},
		Locations:     []string{loc1.Hex(), primitive.NewObjectID().Hex()},
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Location not found", svcErr.Message)
	assert.Empty(t, f.terms.terms)
}

func TestCreateTerm_RejectsBadDate(t *testing.T) {
	f := newTermFixture()
	loc1 := f.locations.add(models.Location{Label: "Hilversum North", Classes: []string{"1A"}})

	_, svcErr := f.svc.CreateTerm(context.Background(), &models.TermRequest{
		Label:         "Spring term",
		PricePerSlice: price(1),
		Dates:         []string{"09-01-2023"},
		Locations:     []string{loc1.Hex()},
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Empty(t, f.terms.terms)
}

func TestGetTerm_NumberOfDaysRecomputedFromStoredDates(t *testing.T) {
	f := newTermFixture()
	loc1 := f.locations.add(models.Location{Label: "Hilversum North", Classes: []string{"1A"}})

	created, svcErr := f.svc.CreateTerm(context.Background(), &models.TermRequest{
		Label:         "Spring term",
		PricePerSlice: price(1),
		Dates:         []string{"2023-01-09", "2023-01-16"},
		Locations:     []string{loc1.Hex()},
	})
	assert.Nil(t, svcErr)

	reread, svcErr := f.svc.GetTerm(context.Background(), created.Term.ID)
	assert.Nil(t, svcErr)
	assert.Equal(t, len(reread.Dates), reread.NumberOfDays)
	assert.Equal(t, 2, reread.NumberOfDays)
}

func TestGetTerm_SnapshotFrozenAfterLocationChanges(t *testing.T) {
	f := newTermFixture()
	locID := f.locations.add(models.Location{Label: "Hilversum North", Classes: []string{"1A", "2B"}})

	created, svcErr := f.svc.CreateTerm(context.Background(), &models.TermRequest{
		Label:         "Spring term",
		PricePerSlice: price(1),
		Dates:         []string{"2023-01-09"},
		Locations:     []string{locID.Hex()},
	})
	assert.Nil(t, svcErr)

	// Edit and then delete the source location.
	f.locations.add(models.Location{ID: locID, Label: "Renamed campus", Classes: []string{"9Z"}})
	delete(f.locations.locations, locID)

	reread, svcErr := f.svc.GetTerm(context.Background(), created.Term.ID)
	assert.Nil(t, svcErr)
	assert.Equal(t, "Hilversum North", reread.Locations[0].Label)
	assert.Equal(t, []string{"1A", "2B"}, reread.Locations[0].Classes)
}

func TestDeleteTerm_NotFound(t *testing.T) {
	f := newTermFixture()

	_, svcErr := f.svc.DeleteTerm(context.Background(), primitive.NewObjectID())
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}
