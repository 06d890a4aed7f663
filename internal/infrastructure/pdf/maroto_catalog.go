// Package pdf genera la lista de precios del catálogo en PDF para compartir
// con clientes mayoristas por WhatsApp.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Distribuciones In-Nova  │  Fecha + contacto        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Mayorista | Detal | Stock    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: condición de mayorista + WhatsApp de pedidos       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/pricing"
)

var _ ports.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAccent  = &props.Color{Red: 198, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCatalogGenerator implementa CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct{}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator { return &MarotoCatalogGenerator{} }

// GenerateCatalogPDF genera la lista de precios y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(
	_ context.Context,
	products []entity.Product,
	settings entity.Settings,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de Precios In-Nova", true).
		WithAuthor("Distribuciones In-Nova", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(products) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRows(settings)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre comercial (izq) y fecha de emisión (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Distribuciones In-Nova", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Catálogo mayorista y detal", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LISTA DE PRECIOS", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 3, align.Left),
		h("Mayorista", 2, align.Right),
		h("Detal", 2, align.Right),
		h("Stock", 1, align.Center),
	)
}

// tableRows: una fila por producto; los agotados van en gris.
func tableRows(products []entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		nameColor := (*props.Color)(nil)
		stockText := strconv.Itoa(p.Stock)
		if p.Stock == 0 {
			nameColor = colorGray
			stockText = "Agotado"
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: nameColor},
			)),
			col.New(3).Add(text.New(
				p.Category,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(p.WholesalePrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(p.RetailPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				stockText,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// footerRows: condición de mayorista + canal de pedidos.
func footerRows(settings entity.Settings) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(
				fmt.Sprintf("Precio mayorista aplica desde %d unidades por producto.", pricing.WholesaleMinQty),
				props.Text{Style: fontstyle.Bold, Size: 8, Color: colorAccent, Top: 2},
			),
		)),
	}
	if settings.WhatsAppPhone != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(
				"Pedidos por WhatsApp: +"+settings.WhatsAppPhone,
				props.Text{Size: 8, Color: colorGray, Top: 1},
			),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un valor COP sin decimales.
// Ej: 25000 → "25.000", 1000000 → "1.000.000"
func formatMoney(v int64) string {
	s := strconv.FormatInt(v, 10)
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
