package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestor-api/internal/application/dto"
	"github.com/jhoicas/gestor-api/internal/application/ports"
	appsync "github.com/jhoicas/gestor-api/internal/application/sync"
	"github.com/jhoicas/gestor-api/internal/domain"
	"github.com/jhoicas/gestor-api/internal/domain/entity"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

// TaskUseCase casos de uso del tablero Kanban.
type TaskUseCase struct {
	taskRepo  repository.TaskRepository
	snapshots *SnapshotLoader
	executor  *appsync.Executor
	notifier  ports.ChangeNotifier
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(
	taskRepo repository.TaskRepository,
	snapshots *SnapshotLoader,
	executor *appsync.Executor,
	notifier ports.ChangeNotifier,
) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo, snapshots: snapshots, executor: executor, notifier: notifier}
}

// Create agrega una tarjeta al tablero.
func (uc *TaskUseCase) Create(ctx context.Context, userID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	column := in.Column
	if column == "" {
		column = entity.TaskTodo
	}
	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		CustomerID:  in.CustomerID,
		Title:       in.Title,
		Description: in.Description,
		Column:      column,
		Tags:        in.Tags,
		CreatedAt:   now,
	}
	if in.Deadline != "" {
		d, err := parseDate(in.Deadline)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		task.Deadline = &d
	}
	if column == entity.TaskDone {
		task.CompletedAt = &now
	}
	if err := uc.taskRepo.Create(task); err != nil {
		return nil, err
	}
	uc.notify(ctx, "tasks")
	return toTaskResponse(task), nil
}

// Move cambia la tarjeta de columna y espeja el estado en la idea ligada
// (todo→pendente, inprogress→processando, done→concluido). El espejo es solo
// tarea→idea.
func (uc *TaskUseCase) Move(ctx context.Context, userID, id, column string) (*dto.TaskResponse, error) {
	switch column {
	case entity.TaskTodo, entity.TaskInProgress, entity.TaskDone:
	default:
		return nil, domain.ErrInvalidInput
	}
	task, err := uc.taskRepo.GetByID(id)
	if err != nil || task == nil {
		return nil, domain.ErrNotFound
	}
	if task.UserID != userID {
		return nil, domain.ErrForbidden
	}

	task.Column = column
	if column == entity.TaskDone {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	if err := uc.taskRepo.Update(task); err != nil {
		return nil, err
	}

	if snap, err := uc.snapshots.Load(userID); err == nil {
		_ = uc.executor.Apply(appsync.TaskMoved(snap, task, column))
	}
	uc.notify(ctx, "tasks", "video_ideas")
	return toTaskResponse(task), nil
}

// List lista las tarjetas de la cuenta.
func (uc *TaskUseCase) List(userID string) ([]*dto.TaskResponse, error) {
	tasks, err := uc.taskRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

// Delete borra la tarjeta. La idea ligada (si la hay) conserva su estado y su
// TaskID queda colgante; el propagador lo tolera (lookup sin match = no-op).
func (uc *TaskUseCase) Delete(ctx context.Context, userID, id string) error {
	task, err := uc.taskRepo.GetByID(id)
	if err != nil || task == nil {
		return domain.ErrNotFound
	}
	if task.UserID != userID {
		return domain.ErrForbidden
	}
	if err := uc.taskRepo.Delete(id); err != nil {
		return err
	}
	uc.notify(ctx, "tasks")
	return nil
}

func (uc *TaskUseCase) notify(ctx context.Context, tables ...string) {
	if uc.notifier == nil {
		return
	}
	for _, t := range tables {
		uc.notifier.Notify(ctx, t)
	}
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	resp := &dto.TaskResponse{
		ID:          t.ID,
		CustomerID:  t.CustomerID,
		IdeaID:      t.IdeaID,
		Title:       t.Title,
		Description: t.Description,
		Column:      t.Column,
		Tags:        t.Tags,
	}
	if t.Deadline != nil {
		resp.Deadline = t.Deadline.Format("2006-01-02")
	}
	if t.CompletedAt != nil {
		resp.CompletedAt = t.CompletedAt.Format(time.RFC3339)
	}
	return resp
}
