package dto

type ObraItem struct {
	ID               uint64  `json:"id"`
	Name             string  `json:"name"`
	Client           string  `json:"client"`
	StartDate        string  `json:"start_date"`
	ExpectedDelivery string  `json:"expected_delivery"`
	Responsible      string  `json:"responsible"`
	Notes            *string `json:"notes,omitempty"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type CreateObraRequest struct {
	Name             string  `json:"name" binding:"required,max=255"`
	Client           string  `json:"client" binding:"required,max=255"`
	StartDate        string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	ExpectedDelivery string  `json:"expected_delivery" binding:"required,datetime=2006-01-02"`
	Responsible      string  `json:"responsible" binding:"max=255"`
	Notes            *string `json:"notes" binding:"omitempty,max=65535"`
	Status           *string `json:"status" binding:"omitempty,oneof=Orçamento Execução Finalizada"`
}
