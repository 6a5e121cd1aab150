package pdf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/pdf"
)

func TestGenerateCatalogPDF_DocumentoNoVacio(t *testing.T) {
	g := pdf.NewMarotoCatalogGenerator()

	sections := []usecase.CatalogSection{
		{
			Category: entity.Category{ID: 1, Name: "Tools"},
			Products: []entity.Product{
				{ID: 1, Name: "Hammer", Description: "16 oz", ImageRef: "hammer.png", CategoryID: 1},
				{ID: 2, Name: "Saw", Description: "Hand saw", ImageRef: "saw.png", CategoryID: 1},
			},
		},
		{
			Category: entity.Category{ID: 2, Name: "Garden"},
			// Categoría sin productos: debe renderizar igual.
		},
	}

	doc, err := g.GenerateCatalogPDF(context.Background(), sections)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]), "la salida debe ser un PDF válido")
}

func TestGenerateCatalogPDF_SinSecciones(t *testing.T) {
	g := pdf.NewMarotoCatalogGenerator()

	doc, err := g.GenerateCatalogPDF(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, doc, "catálogo vacío: solo cabecera y resumen, pero documento válido")
}
