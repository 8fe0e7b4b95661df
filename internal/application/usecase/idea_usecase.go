package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestor-api/internal/application/dto"
	"github.com/jhoicas/gestor-api/internal/application/ports"
	appsync "github.com/jhoicas/gestor-api/internal/application/sync"
	"github.com/jhoicas/gestor-api/internal/domain"
	"github.com/jhoicas/gestor-api/internal/domain/entity"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

// IdeaUseCase casos de uso de ideas de video.
type IdeaUseCase struct {
	ideaRepo  repository.IdeaRepository
	snapshots *SnapshotLoader
	executor  *appsync.Executor
	notifier  ports.ChangeNotifier
	shareBase string // base pública para URLs de ideas compartidas
}

// NewIdeaUseCase construye el caso de uso.
func NewIdeaUseCase(
	ideaRepo repository.IdeaRepository,
	snapshots *SnapshotLoader,
	executor *appsync.Executor,
	notifier ports.ChangeNotifier,
	shareBase string,
) *IdeaUseCase {
	return &IdeaUseCase{ideaRepo: ideaRepo, snapshots: snapshots, executor: executor, notifier: notifier, shareBase: shareBase}
}

// Create agrega una idea.
func (uc *IdeaUseCase) Create(ctx context.Context, userID string, in dto.CreateIdeaRequest) (*dto.IdeaResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.IdeaPending
	}
	idea := &entity.VideoIdea{
		ID:          uuid.New().String(),
		UserID:      userID,
		CustomerID:  in.CustomerID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Priority:    in.Priority,
		Status:      status,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.ideaRepo.Create(idea); err != nil {
		return nil, err
	}
	uc.notify(ctx, "video_ideas")
	return uc.toResponse(idea), nil
}

// Update edita la idea. Nunca empuja nada hacia la tarea ligada: el espejo de
// estado corre únicamente en la dirección tarea→idea.
func (uc *IdeaUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateIdeaRequest) (*dto.IdeaResponse, error) {
	idea, err := uc.ideaRepo.GetByID(id)
	if err != nil || idea == nil {
		return nil, domain.ErrNotFound
	}
	if idea.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if in.CustomerID != nil {
		idea.CustomerID = *in.CustomerID
	}
	if in.Title != nil {
		idea.Title = *in.Title
	}
	if in.Description != nil {
		idea.Description = *in.Description
	}
	if in.Category != nil {
		idea.Category = *in.Category
	}
	if in.Priority != nil {
		idea.Priority = *in.Priority
	}
	if in.Status != nil {
		idea.Status = *in.Status
	}
	if in.Notes != nil {
		idea.Notes = *in.Notes
	}
	idea.UpdatedAt = time.Now()

	if err := uc.ideaRepo.Update(idea); err != nil {
		return nil, err
	}
	uc.notify(ctx, "video_ideas")
	return uc.toResponse(idea), nil
}

// Promote convierte la idea en tarea: una sola tarea prellenada desde la idea,
// idea en pendente apuntando a ella. Una idea ya promovida devuelve
// ErrAlreadyPromoted (operación de un solo disparo).
func (uc *IdeaUseCase) Promote(ctx context.Context, userID, id string) (*dto.TaskResponse, error) {
	idea, err := uc.ideaRepo.GetByID(id)
	if err != nil || idea == nil {
		return nil, domain.ErrNotFound
	}
	if idea.UserID != userID {
		return nil, domain.ErrForbidden
	}

	snap, err := uc.snapshots.Load(userID)
	if err != nil {
		return nil, err
	}
	taskID := uuid.New().String()
	effects, err := appsync.PromoteIdea(snap, idea, taskID, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.executor.Apply(effects); err != nil {
		return nil, err
	}

	uc.notify(ctx, "video_ideas", "tasks")
	for _, ef := range effects {
		if ins, ok := ef.(appsync.InsertTask); ok {
			return toTaskResponse(ins.Task), nil
		}
	}
	return nil, domain.ErrConflict
}

// ToggleShare habilita o deshabilita el enlace público de la idea. Devuelve la
// URL pública cuando queda habilitado, "" cuando queda deshabilitado.
func (uc *IdeaUseCase) ToggleShare(ctx context.Context, userID, id string) (string, error) {
	idea, err := uc.ideaRepo.GetByID(id)
	if err != nil || idea == nil {
		return "", domain.ErrNotFound
	}
	if idea.UserID != userID {
		return "", domain.ErrForbidden
	}

	if idea.ShareEnabled {
		idea.ShareEnabled = false
	} else {
		if idea.ShareToken == "" {
			idea.ShareToken = shareToken(idea.ID)
		}
		idea.ShareEnabled = true
	}
	idea.UpdatedAt = time.Now()
	if err := uc.ideaRepo.Update(idea); err != nil {
		return "", err
	}
	uc.notify(ctx, "video_ideas")

	if !idea.ShareEnabled {
		return "", nil
	}
	return fmt.Sprintf("%s/p/ideas/%s", uc.shareBase, idea.ShareToken), nil
}

// GetShared resuelve una idea compartida por token público (sin auth).
func (uc *IdeaUseCase) GetShared(token string) (*dto.IdeaResponse, error) {
	idea, err := uc.ideaRepo.GetByShareToken(token)
	if err != nil || idea == nil || !idea.ShareEnabled {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(idea), nil
}

// List lista las ideas de la cuenta.
func (uc *IdeaUseCase) List(userID string) ([]*dto.IdeaResponse, error) {
	ideas, err := uc.ideaRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.IdeaResponse, 0, len(ideas))
	for _, i := range ideas {
		out = append(out, uc.toResponse(i))
	}
	return out, nil
}

// Delete borra la idea. La tarea ligada (si existe) se conserva.
func (uc *IdeaUseCase) Delete(ctx context.Context, userID, id string) error {
	idea, err := uc.ideaRepo.GetByID(id)
	if err != nil || idea == nil {
		return domain.ErrNotFound
	}
	if idea.UserID != userID {
		return domain.ErrForbidden
	}
	if err := uc.ideaRepo.Delete(id); err != nil {
		return err
	}
	uc.notify(ctx, "video_ideas")
	return nil
}

func (uc *IdeaUseCase) notify(ctx context.Context, tables ...string) {
	if uc.notifier == nil {
		return
	}
	for _, t := range tables {
		uc.notifier.Notify(ctx, t)
	}
}

func (uc *IdeaUseCase) toResponse(i *entity.VideoIdea) *dto.IdeaResponse {
	resp := &dto.IdeaResponse{
		ID:           i.ID,
		CustomerID:   i.CustomerID,
		TaskID:       i.TaskID,
		Title:        i.Title,
		Description:  i.Description,
		Category:     i.Category,
		Priority:     i.Priority,
		Status:       i.Status,
		Notes:        i.Notes,
		ShareEnabled: i.ShareEnabled,
	}
	if i.ShareEnabled && i.ShareToken != "" {
		resp.ShareURL = fmt.Sprintf("%s/p/ideas/%s", uc.shareBase, i.ShareToken)
	}
	return resp
}

// shareToken genera un token legible: prefijo del ID + timestamp base36.
func shareToken(id string) string {
	prefix := id
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return prefix + "-" + strconv.FormatInt(time.Now().UnixMilli(), 36)
}
