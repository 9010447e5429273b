package domain

// Column is one Kanban column: the tasks sharing a status, in source order.
type Column struct {
	Status Status
	Tasks  []Task
}

// Board is the per-obra task board. It is derived on every read and never stored.
type Board struct {
	ProjectID uint64
	Columns   []Column
}

// NewBoard partitions tasks into one column per status, in cycle order.
// Tasks with an unknown status are not placed on the board.
func NewBoard(projectID uint64, tasks []Task) Board {
	columns := make([]Column, 0, len(statusCycle))
	for _, status := range statusCycle {
		column := Column{Status: status, Tasks: []Task{}}
		for _, task := range tasks {
			if task.Status == status {
				column.Tasks = append(column.Tasks, task)
			}
		}
		columns = append(columns, column)
	}
	return Board{ProjectID: projectID, Columns: columns}
}

// Column returns the tasks in the given status column.
func (b Board) Column(status Status) []Task {
	for _, column := range b.Columns {
		if column.Status == status {
			return column.Tasks
		}
	}
	return []Task{}
}

// Len counts the tasks across all columns.
func (b Board) Len() int {
	total := 0
	for _, column := range b.Columns {
		total += len(column.Tasks)
	}
	return total
}
