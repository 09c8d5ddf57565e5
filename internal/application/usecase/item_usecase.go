package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// ItemUseCase casos de uso CRUD para artículos del inventario. La edición
// directa de cantidad es el camino de admin; los movimientos con libro pasan
// por inventory.RecordTransactionUseCase o por el coordinador de citas.
type ItemUseCase struct {
	repo    repository.ItemRepository
	logRepo repository.ActivityLogRepository
	log     *logger.Logger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, logRepo repository.ActivityLogRepository, log *logger.Logger) *ItemUseCase {
	return &ItemUseCase{repo: repo, logRepo: logRepo, log: log}
}

// Create crea un nuevo artículo. La cantidad inicial no puede ser negativa.
func (uc *ItemUseCase) Create(actor entity.Actor, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		Price:        in.Price,
		Location:     in.Location,
		SupplierID:   in.SupplierID,
		SupplierName: in.SupplierName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	uc.logActivity(item.Name, entity.ActionItemAdded, actor,
		fmt.Sprintf("Added %q with %d units", item.Name, item.Quantity))
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID. Devuelve nil si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update actualiza un artículo (incluida la cantidad absoluta, camino de
// edición directa que no genera fila en el libro).
func (uc *ItemUseCase) Update(id string, actor entity.Actor, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.ReorderLevel != nil {
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.SupplierID != nil {
		item.SupplierID = *in.SupplierID
	}
	if in.SupplierName != nil {
		item.SupplierName = *in.SupplierName
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	uc.logActivity(item.Name, entity.ActionItemEdited, actor,
		fmt.Sprintf("Edited %q", item.Name))
	return toItemResponse(item), nil
}

// List lista artículos con paginación.
func (uc *ItemUseCase) List(limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un artículo. No altera retroactivamente el libro.
func (uc *ItemUseCase) Delete(id string, actor entity.Actor) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.logActivity(item.Name, entity.ActionItemDeleted, actor,
		fmt.Sprintf("Deleted %q", item.Name))
	return nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		Quantity:     i.Quantity,
		ReorderLevel: i.ReorderLevel,
		Price:        i.Price,
		Location:     i.Location,
		SupplierID:   i.SupplierID,
		SupplierName: i.SupplierName,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// logActivity escribe una entrada de bitácora. Fire-and-forget: un fallo se
// registra en el log local y no afecta la operación principal.
func (uc *ItemUseCase) logActivity(itemName, action string, actor entity.Actor, details string) {
	entry := &entity.ActivityLogEntry{
		ID:        uuid.New().String(),
		ItemName:  itemName,
		Action:    action,
		UserID:    actor.ID,
		UserName:  actor.Name,
		UserRole:  actor.Role,
		Details:   details,
		Timestamp: time.Now(),
	}
	if err := uc.logRepo.Create(entry); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("action", action).Str("item", itemName).Msg("no se pudo escribir la bitácora")
	}
}
