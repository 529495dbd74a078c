package services_test

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/norvalex/pizza-form/models"
)

// Map-backed repository doubles. They hand out copies so stored
// documents stay frozen when callers mutate what they got back.

type mockLocationRepo struct {
	locations map[primitive.ObjectID]models.Location
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[primitive.ObjectID]models.Location)}
}

func (m *mockLocationRepo) add(location models.Location) primitive.ObjectID {
	if location.ID.IsZero() {
		location.ID = primitive.NewObjectID()
	}
	m.locations[location.ID] = location
	return location.ID
}

func (m *mockLocationRepo) FindAll(_ context.Context) ([]models.Location, error) {
	result := []models.Location{}
	for _, l := range m.locations {
		result = append(result, l)
	}
	return result, nil
}

func (m *mockLocationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Location, error) {
	l, ok := m.locations[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &l, nil
}

func (m *mockLocationRepo) Create(_ context.Context, location *models.Location) (*models.Location, error) {
	location.ID = m.add(*location)
	return location, nil
}

func (m *mockLocationRepo) Update(_ context.Context, id primitive.ObjectID, location *models.Location) (*models.Location, error) {
	if _, ok := m.locations[id]; !ok {
		return nil, mongo.ErrNoDocuments
	}
	location.ID = id
	m.locations[id] = *location
	updated := *location
	return &updated, nil
}

func (m *mockLocationRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.Location, error) {
	l, ok := m.locations[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(m.locations, id)
	return &l, nil
}

type mockTermRepo struct {
	terms map[primitive.ObjectID]models.Term
}

func newMockTermRepo() *mockTermRepo {
	return &mockTermRepo{terms: make(map[primitive.ObjectID]models.Term)}
}

func (m *mockTermRepo) add(term models.Term) primitive.ObjectID {
	if term.ID.IsZero() {
		term.ID = primitive.NewObjectID()
	}
	m.terms[term.ID] = term
	return term.ID
}

func (m *mockTermRepo) FindAll(_ context.Context) ([]models.Term, error) {
	result := []models.Term{}
	for _, t := range m.terms {
		result = append(result, t)
	}
	return result, nil
}

func (m *mockTermRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Term, error) {
	t, ok := m.terms[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &t, nil
}

func (m *mockTermRepo) Create(_ context.Context, term *models.Term) (*models.Term, error) {
	term.ID = m.add(*term)
	return term, nil
}

func (m *mockTermRepo) Update(_ context.Context, id primitive.ObjectID, term *models.Term) (*models.Term, error) {
	if _, ok := m.terms[id]; !ok {
		return nil, mongo.ErrNoDocuments
	}
	term.ID = id
	m.terms[id] = *term
	updated := *term
	return &updated, nil
}

func (m *mockTermRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.Term, error) {
	t, ok := m.terms[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(m.terms, id)
	return &t, nil
}

type mockPersonRepo struct {
	persons map[primitive.ObjectID]models.Person
}

func newMockPersonRepo() *mockPersonRepo {
	return &mockPersonRepo{persons: make(map[primitive.ObjectID]models.Person)}
}

func (m *mockPersonRepo) add(person models.Person) primitive.ObjectID {
	if person.ID.IsZero() {
		person.ID = primitive.NewObjectID()
	}
	m.persons[person.ID] = person
	return person.ID
}

func (m *mockPersonRepo) FindAll(_ context.Context) ([]models.Person, error) {
	result := []models.Person{}
	for _, p := range m.persons {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockPersonRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Person, error) {
	p, ok := m.persons[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

func (m *mockPersonRepo) Create(_ context.Context, person *models.Person) (*models.Person, error) {
	person.ID = m.add(*person)
	return person, nil
}

func (m *mockPersonRepo) Update(_ context.Context, id primitive.ObjectID, person *models.Person) (*models.Person, error) {
	if _, ok := m.persons[id]; !ok {
		return nil, mongo.ErrNoDocuments
	}
	person.ID = id
	m.persons[id] = *person
	updated := *person
	return &updated, nil
}

func (m *mockPersonRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.Person, error) {
	p, ok := m.persons[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(m.persons, id)
	return &p, nil
}

type mockOrderRepo struct {
	orders map[primitive.ObjectID]models.Order
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[primitive.ObjectID]models.Order)}
}

func (m *mockOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	result := []models.Order{}
	for _, o := range m.orders {
		result = append(result, o)
	}
	return result, nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &o, nil
}

func (m *mockOrderRepo) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	order.ID = primitive.NewObjectID()
	m.orders[order.ID] = *order
	return order, nil
}

func (m *mockOrderRepo) Update(_ context.Context, id primitive.ObjectID, order *models.Order) (*models.Order, error) {
	if _, ok := m.orders[id]; !ok {
		return nil, mongo.ErrNoDocuments
	}
	order.ID = id
	m.orders[id] = *order
	updated := *order
	return &updated, nil
}

func (m *mockOrderRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(m.orders, id)
	return &o, nil
}
