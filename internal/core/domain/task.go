package domain

import "time"

type Task struct {
	ID        uint64
	ProjectID uint64
	Title     string
	Status    Status
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TaskDraft struct {
	Title  string
	Status Status
	Notes  *string
}

// TaskPatch is a partial update; nil fields are left untouched.
type TaskPatch struct {
	Title  *string
	Status *Status
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Status == nil
}

// Apply returns a copy of t with the patched fields replaced.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}
