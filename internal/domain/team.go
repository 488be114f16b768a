package domain

// Team is a sports franchise whose seats the group holds licenses for.
type Team struct {
	ID   string
	Name string
}
