package usecase

import (
	"time"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// LedgerUseCase lecturas del libro de transacciones y de la bitácora.
type LedgerUseCase struct {
	txnRepo repository.TransactionRepository
	logRepo repository.ActivityLogRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txnRepo repository.TransactionRepository, logRepo repository.ActivityLogRepository) *LedgerUseCase {
	return &LedgerUseCase{txnRepo: txnRepo, logRepo: logRepo}
}

// ListTransactions lista el libro con paginación (más recientes primero).
func (uc *LedgerUseCase) ListTransactions(limit, offset int) (*dto.TransactionListResponse, error) {
	list, err := uc.txnRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.TransactionResponse{
			ID:          t.ID,
			ItemID:      t.ItemID,
			ItemName:    t.ItemName,
			Direction:   t.Direction,
			Quantity:    t.Quantity,
			Reason:      t.Reason,
			UserID:      t.UserID,
			UserName:    t.UserName,
			UserRole:    t.UserRole,
			Timestamp:   t.Timestamp,
			StockBefore: t.StockBefore,
			StockAfter:  t.StockAfter,
		})
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListItemTransactions lista el historial de un artículo en orden cronológico,
// opcionalmente acotado por rango de fechas.
func (uc *LedgerUseCase) ListItemTransactions(itemID string, from, to *time.Time) ([]dto.TransactionResponse, error) {
	list, err := uc.txnRepo.ListByItem(itemID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.TransactionResponse{
			ID:          t.ID,
			ItemID:      t.ItemID,
			ItemName:    t.ItemName,
			Direction:   t.Direction,
			Quantity:    t.Quantity,
			Reason:      t.Reason,
			UserID:      t.UserID,
			UserName:    t.UserName,
			UserRole:    t.UserRole,
			Timestamp:   t.Timestamp,
			StockBefore: t.StockBefore,
			StockAfter:  t.StockAfter,
		})
	}
	return out, nil
}

// ListActivity lista la bitácora con paginación (más recientes primero).
func (uc *LedgerUseCase) ListActivity(limit, offset int) ([]dto.ActivityLogResponse, error) {
	list, err := uc.logRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityLogResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toActivityResponse(e))
	}
	return out, nil
}

func toActivityResponse(e *entity.ActivityLogEntry) dto.ActivityLogResponse {
	return dto.ActivityLogResponse{
		ID:        e.ID,
		ItemName:  e.ItemName,
		Action:    e.Action,
		UserID:    e.UserID,
		UserName:  e.UserName,
		UserRole:  e.UserRole,
		Details:   e.Details,
		Timestamp: e.Timestamp,
	}
}
