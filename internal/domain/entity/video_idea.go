package entity

import "time"

// Estados de una idea de video. Se espejan desde la columna de la tarea ligada:
// todo -> pendente, inprogress -> processando, done -> concluido.
const (
	IdeaPending    = "pendente"
	IdeaProcessing = "processando"
	IdeaCompleted  = "concluido"
)

// VideoIdea representa una idea de contenido. TaskID la liga a la tarea creada
// al promoverla; una idea con TaskID no vacío no puede promoverse de nuevo.
type VideoIdea struct {
	ID           string
	UserID       string
	CustomerID   string // opcional
	TaskID       string // tarea ligada (vacío = no promovida)
	Title        string
	Description  string
	Category     string
	Priority     string // alta | media | baixa
	Status       string
	Notes        string
	ShareToken   string // token público para compartir la idea
	ShareEnabled bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
