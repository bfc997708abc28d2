// Package fakedata generates reproducible fake user records for examples and tests.
package fakedata

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// User is a fake person.
type User struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// Generator produces Users from a seeded faker; the same seed gives the
// same users. A Generator is not safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
}

// New returns a Generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(uint64(seed))}
}

// User returns the next fake user.
func (g *Generator) User() (User, error) {
	id, err := uuid.Parse(g.faker.UUID())
	if err != nil {
		return User{}, fmt.Errorf("fakedata: generate id: %w", err)
	}

	return User{
		ID:    id,
		Name:  g.faker.Name(),
		Email: g.faker.Email(),
	}, nil
}

// Users returns n fake users.
func (g *Generator) Users(n int) ([]User, error) {
	if n < 0 {
		return nil, fmt.Errorf("fakedata: negative user count %d", n)
	}
	users := make([]User, n)
	for i := range users {
		u, err := g.User()
		if err != nil {
			return nil, err
		}
		users[i] = u
	}
	return users, nil
}
