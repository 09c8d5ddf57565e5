// Package pdf implementa la generación del reporte imprimible del libro de
// transacciones de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de movimientos / unidades IN / unidades OUT │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Artículo | Dir | Cant | Stock | Usuario     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreports "github.com/jhoicas/bodega-api/internal/application/reports"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

var _ appreports.LedgerPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorIn      = &props.Color{Red: 0, Green: 120, Blue: 60}
	colorOut     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.LedgerPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLedgerPDF genera el PDF del libro de transacciones y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLedgerPDF(
	_ context.Context,
	generatedAt time.Time,
	transactions []*entity.Transaction,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Libro de Transacciones de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(transactions))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(transactions) {
		m.AddRows(r)
	}

	if len(transactions) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin movimientos registrados.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de corte (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("LIBRO DE TRANSACCIONES DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Movimientos de inventario más recientes", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado:", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

// summaryRow: conteo de movimientos y unidades acumuladas por dirección.
func summaryRow(transactions []*entity.Transaction) core.Row {
	var unitsIn, unitsOut int64
	for _, t := range transactions {
		switch t.Direction {
		case entity.DirectionIN:
			unitsIn += t.Quantity
		case entity.DirectionOUT:
			unitsOut += t.Quantity
		}
	}

	return row.New(12).Add(
		col.New(12).Add(
			text.New("RESUMEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Movimientos: %d   |   Entradas: %d unidades   |   Salidas: %d unidades",
				len(transactions), unitsIn, unitsOut,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Artículo", 3, align.Left),
		h("Dir", 1, align.Center),
		h("Cant.", 1, align.Right),
		h("Stock", 2, align.Right),
		h("Usuario", 3, align.Left),
	)
}

// tableRows: una fila por transacción, más una fila angosta con el motivo.
func tableRows(transactions []*entity.Transaction) []core.Row {
	result := make([]core.Row, 0, len(transactions)*2)
	for _, t := range transactions {
		dirColor := colorIn
		if t.Direction == entity.DirectionOUT {
			dirColor = colorOut
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				t.Timestamp.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				t.ItemName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				t.Direction,
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: dirColor},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", t.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d → %d", t.StockBefore, t.StockAfter),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				t.UserName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
		if t.Reason != "" {
			result = append(result, row.New(4).Add(
				col.New(2),
				col.New(10).Add(text.New(
					t.Reason,
					props.Text{Size: 7, Color: colorGray, Top: 0.5, Left: 1},
				)),
			))
		}
	}
	return result
}
