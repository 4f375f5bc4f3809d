package domain

const (
	GenreMale   = "male"
	GenreFemale = "female"
)

const (
	// MaxHunger is the ceiling for the hunger gauge; feeding refills to it.
	MaxHunger = 100
	// MaxAge is the age beyond which a hamster retires.
	MaxAge = 500
	// SalePayout is the fixed amount credited when a hamster is sold,
	// regardless of its age, hunger, or active flag.
	SalePayout = 300
	// MinNameLen is the minimum accepted hamster name length.
	MinNameLen = 2
	// StarterLitterSize is the number of hamsters provisioned with a new account.
	StarterLitterSize = 4
)

// StarterGenres is the genre multiset of a starter litter.
var StarterGenres = [StarterLitterSize]string{GenreMale, GenreMale, GenreFemale, GenreFemale}

// Hamster is the core aggregate. Hunger sits in [0, MaxHunger] except
// transiently below zero during a sleep step, right before the retirement
// rule fires. Active is terminal: once false it is never set back to true.
type Hamster struct {
	ID      string `json:"id"`
	OwnerID string `json:"-"`
	Name    string `json:"name"`
	Genre   string `json:"genre"`
	Age     int    `json:"age"`
	Hunger  int    `json:"hunger"`
	Active  bool   `json:"active"`
}

// FeedCost returns the gold needed to refill hunger to MaxHunger.
func (h *Hamster) FeedCost() int {
	return MaxHunger - h.Hunger
}

// Sleep ages the hamster by days and drains hunger accordingly. An inactive
// hamster is left untouched. Crossing MaxAge or dropping hunger below zero
// retires the hamster permanently.
func (h *Hamster) Sleep(days int) {
	if !h.Active {
		return
	}
	h.Age += days
	h.Hunger -= days
	if h.Age > MaxAge || h.Hunger < 0 {
		h.Active = false
	}
}

// ValidName reports whether name is acceptable for a rename.
func ValidName(name string) bool {
	return len(name) >= MinNameLen
}
