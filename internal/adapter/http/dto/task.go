package dto

type TaskItem struct {
	ID        uint64  `json:"id"`
	ObraID    uint64  `json:"obra_id"`
	Title     string  `json:"title"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title  string  `json:"title" binding:"required,max=255"`
	Status *string `json:"status" binding:"omitempty,oneof=Orçamento Execução Finalizada"`
	Notes  *string `json:"notes" binding:"omitempty,max=65535"`
}

type UpdateTaskRequest struct {
	Title  *string `json:"title" binding:"omitempty,max=255"`
	Status *string `json:"status" binding:"omitempty,oneof=Orçamento Execução Finalizada"`
}
