package domain

import "fmt"

// Status is the lifecycle stage shared by obras and their tasks.
type Status string

const (
	StatusOrcamento  Status = "Orçamento"
	StatusExecucao   Status = "Execução"
	StatusFinalizada Status = "Finalizada"
)

// statusCycle is the fixed ordering; it also drives the board columns.
var statusCycle = [...]Status{StatusOrcamento, StatusExecucao, StatusFinalizada}

// Statuses returns the three statuses in cycle order.
func Statuses() []Status {
	out := make([]Status, len(statusCycle))
	copy(out, statusCycle[:])
	return out
}

func (s Status) index() int {
	for i, candidate := range statusCycle {
		if candidate == s {
			return i
		}
	}
	return -1
}

// IsValid reports whether s is one of the three known statuses.
func (s Status) IsValid() bool {
	return s.index() >= 0
}

// Next returns the status that follows s in the cycle, wrapping after Finalizada.
// An unknown status moves to the first one, like an index of -1 would.
func (s Status) Next() Status {
	return statusCycle[(s.index()+1)%len(statusCycle)]
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts raw input into a Status.
func ParseStatus(raw string) (Status, error) {
	status := Status(raw)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return status, nil
}
