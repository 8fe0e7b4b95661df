package dto

// CreateIdeaRequest alta de idea de video.
type CreateIdeaRequest struct {
	CustomerID  string `json:"customer_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"` // alta | media | baixa
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// UpdateIdeaRequest edición de idea. Editar la idea nunca toca la tarea ligada.
type UpdateIdeaRequest struct {
	CustomerID  *string `json:"customer_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
}

// IdeaResponse respuesta de idea.
type IdeaResponse struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id,omitempty"`
	TaskID       string `json:"task_id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
	ShareEnabled bool   `json:"share_enabled"`
	ShareURL     string `json:"share_url,omitempty"`
}
