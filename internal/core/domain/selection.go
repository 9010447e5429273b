package domain

// Selection holds the currently selected obra, if any.
type Selection struct {
	ProjectID *uint64
}

func (s Selection) IsEmpty() bool {
	return s.ProjectID == nil
}

// Is reports whether id is the selected obra.
func (s Selection) Is(id uint64) bool {
	return s.ProjectID != nil && *s.ProjectID == id
}
