package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// LedgerPDFGenerator puerto hacia la infraestructura de PDF (maroto).
type LedgerPDFGenerator interface {
	GenerateLedgerPDF(ctx context.Context, generatedAt time.Time, transactions []*entity.Transaction) ([]byte, error)
}

// LedgerReportUseCase genera el reporte PDF del libro de transacciones.
type LedgerReportUseCase struct {
	txnRepo   repository.TransactionRepository
	generator LedgerPDFGenerator
}

// NewLedgerReportUseCase construye el caso de uso.
func NewLedgerReportUseCase(txnRepo repository.TransactionRepository, generator LedgerPDFGenerator) *LedgerReportUseCase {
	return &LedgerReportUseCase{txnRepo: txnRepo, generator: generator}
}

// reportMaxRows tope de filas del reporte; suficiente para el corte mensual.
const reportMaxRows = 1000

// DownloadLedgerPDF recupera las transacciones más recientes y genera el PDF.
// Retorna (pdfBytes, filename, nil) si todo sale bien.
func (uc *LedgerReportUseCase) DownloadLedgerPDF(ctx context.Context) ([]byte, string, error) {
	txns, err := uc.txnRepo.List(reportMaxRows, 0)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar transacciones: %w", err)
	}
	now := time.Now()
	pdf, err := uc.generator.GenerateLedgerPDF(ctx, now, txns)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("stock-transactions-%s.pdf", now.Format("2006-01-02"))
	return pdf, filename, nil
}
