// Package pdf genera el reporte imprimible del dashboard de inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación + filtros aplicados    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STATS: Total ítems │ Bajo stock │ Categorías                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS: ítems con cantidad <= umbral                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Categoría | Cantidad | Umbral | Estado      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/ports"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

var _ ports.ReportGenerator = (*MarotoReportGenerator)(nil)

const emptyTableMessage = "No inventory items found."

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 176, Green: 32, Blue: 32}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDashboardReport genera el PDF de la vista y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDashboardReport(
	_ context.Context,
	view *dto.DashboardViewDTO,
	meta dto.ReportMeta,
) ([]byte, error) {
	if view == nil {
		return nil, fmt.Errorf("pdf: vista nula")
	}
	title := meta.Title
	if title == "" {
		title = "Inventory Dashboard"
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, meta.GeneratedAt, view.Criteria))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statsRow(view.Stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(lowStockRows(view.LowStockItems)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(view.Items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(text.New(emptyTableMessage, props.Text{
			Size: 9, Align: align.Center, Top: 3, Color: colorGray,
		}))))
	} else {
		m.AddRows(tableDetailRows(view.Items)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title, generatedAt string, c entity.FilterCriteria) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Filtros: "+describeCriteria(c), props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+nonEmpty(generatedAt, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func statsRow(s entity.Stats) core.Row {
	card := func(label string, value int, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(strconv.Itoa(value), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 6, Color: color,
			}),
		)
	}
	return row.New(16).Add(
		card("Total Items", s.TotalItems, colorPrimary),
		card("Low Stock", s.LowStockCount, colorAlert),
		card("Categories", s.CategoryCount, colorPrimary),
	)
}

// lowStockRows panel de alertas; omite el detalle si no hay ítems bajo el umbral.
func lowStockRows(items []dto.ItemRowDTO) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New(
			fmt.Sprintf("LOW STOCK ALERTS (%d)", len(items)),
			props.Text{Style: fontstyle.Bold, Size: 9, Color: colorAlert, Top: 1},
		))),
	}
	for _, it := range items {
		rows = append(rows, row.New(5).Add(col.New(12).Add(text.New(
			fmt.Sprintf("%s (%s): %d / mín. %d", it.Name, it.Category, it.Quantity, it.MinThreshold),
			props.Text{Size: 8, Left: 3},
		))))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Name", 4, align.Left),
		h("Category", 3, align.Left),
		h("Quantity", 2, align.Right),
		h("Min", 1, align.Right),
		h("Status", 2, align.Center),
	)
}

func tableDetailRows(items []dto.ItemRowDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		statusColor := colorGray
		if it.Status == entity.StatusLowStock {
			statusColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(it.Category, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(it.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.Itoa(it.MinThreshold), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(it.StatusLabel, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: statusColor,
			})),
		))
	}
	return result
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func describeCriteria(c entity.FilterCriteria) string {
	parts := make([]string, 0, 3)
	if strings.TrimSpace(c.SearchText) != "" {
		parts = append(parts, fmt.Sprintf("búsqueda %q", c.SearchText))
	}
	if c.Category != "" && c.Category != entity.CategoryAll {
		parts = append(parts, "categoría "+c.Category)
	}
	if c.LowStockOnly {
		parts = append(parts, "solo bajo stock")
	}
	if len(parts) == 0 {
		return "ninguno"
	}
	return strings.Join(parts, ", ")
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
