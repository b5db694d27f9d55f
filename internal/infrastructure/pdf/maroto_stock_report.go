// Package pdf genera el reporte de existencias en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Almacén | Cant | Mín | Estado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de filas y filas en alerta                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
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

	"github.com/andinosoft/erp-pyme/internal/application/inventory"
	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlerta  = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ inventory.GeneradorReporteStock = (*MarotoStockReport)(nil)

// MarotoStockReport implementa inventory.GeneradorReporteStock usando Maroto v2.
type MarotoStockReport struct{}

func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerarPDF arma el reporte de existencias y devuelve sus bytes.
func (g *MarotoStockReport) GenerarPDF(filas []repository.StockFila, generadoEn time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Existencias", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generadoEn))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(filas) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(resumenRow(filas))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generadoEn time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE EXISTENCIAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario por producto y almacén", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generadoEn.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Almacén", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Estado", 2, align.Center),
	)
}

func tableRows(filas []repository.StockFila) []core.Row {
	result := make([]core.Row, 0, len(filas))
	for _, f := range filas {
		estadoColor := colorGray
		if f.Estado != "NORMAL" {
			estadoColor = colorAlerta
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(f.CodigoProducto, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(f.NombreProducto, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(f.NombreAlmacen, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.FormatInt(f.Cantidad, 10),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.FormatInt(f.StockMinimo, 10),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(f.Estado,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: estadoColor})),
		))
	}
	return result
}

func resumenRow(filas []repository.StockFila) core.Row {
	enAlerta := 0
	for _, f := range filas {
		if f.Estado != "NORMAL" {
			enAlerta++
		}
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d productos listados, %d en alerta de stock", len(filas), enAlerta),
				props.Text{Size: 9, Top: 2, Color: colorGray}),
		),
	)
}
