package dto

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// UpdateCustomerRequest edición de cliente.
type UpdateCustomerRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// CustomerResponse respuesta de cliente.
type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Status      string `json:"status"`
	PortalToken string `json:"portal_token,omitempty"`
	CreatedAt   string `json:"created_at"`
}
