package dto

type BoardColumn struct {
	Status string     `json:"status"`
	Label  string     `json:"label"`
	Tasks  []TaskItem `json:"tasks"`
}

type Board struct {
	ObraID  uint64        `json:"obra_id"`
	Columns []BoardColumn `json:"columns"`
}

type Selection struct {
	ObraID *uint64 `json:"obra_id"`
	Board  *Board  `json:"board,omitempty"`
}

type SelectionRequest struct {
	ObraID *uint64 `json:"obra_id" binding:"omitempty,gt=0"`
}
