package entity

import "time"

// Columnas del tablero Kanban.
const (
	TaskTodo       = "todo"
	TaskInProgress = "inprogress"
	TaskDone       = "done"
)

// Task representa una tarjeta del Kanban. IdeaID la liga opcionalmente a la
// idea de video que la originó; mover la tarea de columna refleja el estado en
// la idea (nunca al revés).
type Task struct {
	ID          string
	UserID      string
	CustomerID  string // opcional
	IdeaID      string // idea de video ligada (vacío = ninguna)
	Title       string
	Description string
	Column      string // todo | inprogress | done
	Tags        []string
	Deadline    *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
}
