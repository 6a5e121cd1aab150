// Package pdf implementa la exportación del catálogo de productos como
// documento PDF usando Maroto v2: una sección por categoría con su tabla
// de productos.
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

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoCatalogGenerator implementa usecase.CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct{}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator { return &MarotoCatalogGenerator{} }

var _ usecase.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// GenerateCatalogPDF genera el PDF del catálogo y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(_ context.Context, sections []usecase.CatalogSection) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de productos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	total := 0
	for _, s := range sections {
		m.AddRows(categoryRow(s.Category.Name, len(s.Products)))
		if len(s.Products) == 0 {
			m.AddRows(emptyCategoryRow())
			continue
		}
		m.AddRows(tableHeaderRow())
		for _, r := range productRows(s) {
			m.AddRows(r)
		}
		total += len(s.Products)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(sections), total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del catálogo + fecha de generación.
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("CATÁLOGO DE PRODUCTOS", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// categoryRow: cabecera de sección con el nombre de la categoría.
func categoryRow(name string, count int) core.Row {
	return row.New(12).Add(
		col.New(9).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 4,
			}),
		),
		col.New(3).Add(
			text.New(strconv.Itoa(count)+" producto(s)", props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

func emptyCategoryRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Sin productos en esta categoría.", props.Text{
			Size: 8, Left: 2, Top: 1, Color: colorGray,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("ID", 1, align.Center),
		h("Nombre", 4, align.Left),
		h("Descripción", 5, align.Left),
		h("Imagen", 2, align.Left),
	)
}

// productRows: una fila por producto de la sección.
func productRows(s usecase.CatalogSection) []core.Row {
	result := make([]core.Row, 0, len(s.Products))
	for _, p := range s.Products {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				strconv.FormatInt(p.ID, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				p.Name,
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				p.Description,
				props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				p.ImageRef,
				props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// footerRow: resumen de categorías y productos exportados.
func footerRow(categories, products int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("%d categoría(s), %d producto(s) en total.", categories, products),
			props.Text{Size: 7, Color: colorGray, Top: 2},
		),
	))
}
