package dto

// CreateAppointmentRequest alta de cita.
type CreateAppointmentRequest struct {
	CustomerID  string `json:"customer_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:mm
	Type        string `json:"type"` // servico | compromisso | outro
}

// UpdateAppointmentRequest edición de cita.
type UpdateAppointmentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Type        *string `json:"type"`
	Status      *string `json:"status"`
}

// AppointmentResponse respuesta de cita.
type AppointmentResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Status      string `json:"status"`
}
