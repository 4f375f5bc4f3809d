package namegen

import (
	"testing"

	"github.com/hamstery/hamstery-api/internal/core/domain"
)

func TestGenerator_FirstName(t *testing.T) {
	g := New()
	for i := 0; i < 10; i++ {
		if g.FirstName() == "" {
			t.Fatalf("empty name generated")
		}
	}
}

func TestGenerator_Genre(t *testing.T) {
	g := New()
	for i := 0; i < 20; i++ {
		genre := g.Genre()
		if genre != domain.GenreMale && genre != domain.GenreFemale {
			t.Fatalf("unexpected genre %q", genre)
		}
	}
}

func TestGenerator_SeededIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 5; i++ {
		if an, bn := a.FirstName(), b.FirstName(); an != bn {
			t.Fatalf("seeded generators diverged: %q vs %q", an, bn)
		}
	}
}
