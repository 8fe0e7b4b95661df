package dto

// CreateTaskRequest alta de tarjeta Kanban.
type CreateTaskRequest struct {
	CustomerID  string   `json:"customer_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Column      string   `json:"column"` // todo | inprogress | done
	Tags        []string `json:"tags"`
	Deadline    string   `json:"deadline"` // YYYY-MM-DD, vacío = sin plazo
}

// MoveTaskRequest cambio de columna.
type MoveTaskRequest struct {
	Column string `json:"column"`
}

// TaskResponse respuesta de tarea.
type TaskResponse struct {
	ID          string   `json:"id"`
	CustomerID  string   `json:"customer_id,omitempty"`
	IdeaID      string   `json:"idea_id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Column      string   `json:"column"`
	Tags        []string `json:"tags"`
	Deadline    string   `json:"deadline,omitempty"`
	CompletedAt string   `json:"completed_at,omitempty"`
}
