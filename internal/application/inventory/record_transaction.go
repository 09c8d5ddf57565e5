package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// RecordTransactionUseCase registra movimientos directos de stock (IN/OUT) de
// forma transaccional: bloqueo de fila (SELECT FOR UPDATE), ajuste de cantidad
// y fila inmutable en el libro, con Commit o Rollback.
type RecordTransactionUseCase struct {
	txRunner TxRunner
	logRepo  repository.ActivityLogRepository
	log      *logger.Logger

	// allowNegativeStock permite que una salida deje la cantidad por debajo de
	// cero (backorder). Por defecto está apagado y la salida falla con
	// ErrInsufficientStock.
	allowNegativeStock bool
}

// NewRecordTransactionUseCase construye el caso de uso.
func NewRecordTransactionUseCase(
	txRunner TxRunner,
	logRepo repository.ActivityLogRepository,
	log *logger.Logger,
	allowNegativeStock bool,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		txRunner:           txRunner,
		logRepo:            logRepo,
		log:                log,
		allowNegativeStock: allowNegativeStock,
	}
}

// Record aplica un movimiento directo: valida dirección y cantidad, bloquea la
// fila del artículo, verifica que la salida no deje stock negativo (salvo
// configuración explícita), actualiza la cantidad y escribe la fila del libro.
func (uc *RecordTransactionUseCase) Record(ctx context.Context, actor entity.Actor, in dto.RecordTransactionRequest) (*dto.TransactionResponse, error) {
	if in.ItemID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Direction != entity.DirectionIN && in.Direction != entity.DirectionOUT {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var txn *entity.Transaction

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txnRepo repository.TransactionRepository,
	) error {
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		before := item.Quantity
		after := before + in.Quantity
		if in.Direction == entity.DirectionOUT {
			after = before - in.Quantity
			if after < 0 && !uc.allowNegativeStock {
				return domain.ErrInsufficientStock
			}
		}
		if err := itemRepo.UpdateQuantity(item.ID, after); err != nil {
			return err
		}
		txn = &entity.Transaction{
			ID:          uuid.New().String(),
			ItemID:      item.ID,
			ItemName:    item.Name,
			Direction:   in.Direction,
			Quantity:    in.Quantity,
			Reason:      in.Reason,
			UserID:      actor.ID,
			UserName:    actor.Name,
			UserRole:    actor.Role,
			Timestamp:   now,
			StockBefore: before,
			StockAfter:  after,
		}
		return txnRepo.Create(txn)
	})
	if err != nil {
		return nil, err
	}

	// Bitácora fuera de la transacción: un fallo aquí no revierte el movimiento.
	entry := &entity.ActivityLogEntry{
		ID:        uuid.New().String(),
		ItemName:  txn.ItemName,
		Action:    entity.ActionTransaction,
		UserID:    actor.ID,
		UserName:  actor.Name,
		UserRole:  actor.Role,
		Details:   fmt.Sprintf("%s: %d units - %s", txn.Direction, txn.Quantity, txn.Reason),
		Timestamp: time.Now(),
	}
	if err := uc.logRepo.Create(entry); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("item", txn.ItemName).Msg("no se pudo escribir la bitácora")
	}

	return toTransactionResponse(txn), nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
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
	}
}
