// Package namegen implements the name/genre generator port on top of
// gofakeit. Services depend only on the port; tests substitute fixed values.
package namegen

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/hamstery/hamstery-api/internal/core/domain"
)

type Generator struct {
	faker *gofakeit.Faker
}

// New returns a Generator backed by a cryptographically seeded source.
func New() *Generator {
	return &Generator{faker: gofakeit.New(0)}
}

// NewSeeded returns a Generator with a fixed seed for reproducible output.
func NewSeeded(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

func (g *Generator) FirstName() string {
	return g.faker.FirstName()
}

func (g *Generator) Genre() string {
	if g.faker.Bool() {
		return domain.GenreMale
	}
	return domain.GenreFemale
}
