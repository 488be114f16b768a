package domain

// TicketHolder is a member of the season-ticket group. Holders are never
// hard-deleted; ownership and payment history keeps referencing them.
type TicketHolder struct {
	ID    string
	Name  string
	Email *string
	Notes *string
}
