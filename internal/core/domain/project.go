package domain

import "time"

// DateLayout is the calendar date format used for obra dates.
const DateLayout = "2006-01-02"

type Project struct {
	ID               uint64
	Name             string
	Client           string
	StartDate        time.Time
	ExpectedDelivery time.Time
	Responsible      string
	Notes            *string
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProjectDraft carries the fields of a new obra. The client is referenced by
// name only and the dates are not checked against each other.
type ProjectDraft struct {
	Name             string
	Client           string
	StartDate        time.Time
	ExpectedDelivery time.Time
	Responsible      string
	Notes            *string
	Status           Status
}

// InitialStatus returns the draft status, falling back to Orçamento.
func (d ProjectDraft) InitialStatus() Status {
	if d.Status.IsValid() {
		return d.Status
	}
	return StatusOrcamento
}
