package ports

// NameGenerator supplies random display names and genres for newly created
// hamsters. It is injected so tests can substitute deterministic values.
type NameGenerator interface {
	FirstName() string
	// Genre returns domain.GenreMale or domain.GenreFemale, chosen
	// independently of any parent (no genetic inheritance).
	Genre() string
}
