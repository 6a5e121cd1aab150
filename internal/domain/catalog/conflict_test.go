package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// CompareCategories
// ──────────────────────────────────────────────────────────────────────────────

func TestCompareCategories_NombreDistinto(t *testing.T) {
	current := &entity.Category{ID: 1, Name: "Herramientas", Version: "v-actual"}
	submitted := &entity.Category{ID: 1, Name: "Jardín", Version: "v-viejo"}

	report := catalog.CompareCategories(current, submitted)
	require.NotNil(t, report)

	assert.False(t, report.Deleted)
	assert.Equal(t, "v-actual", report.CurrentVersion,
		"el reporte debe traer el token vigente para poder reintentar")
	require.Len(t, report.Messages, 2, "un mensaje por campo divergente + cierre")
	assert.Equal(t, "Name current value: Herramientas", report.Messages[0])
	assert.Equal(t, catalog.MsgEditCanceled, report.Messages[1])
}

func TestCompareCategories_SinDiferencias_SoloCierre(t *testing.T) {
	// Versión vieja pero mismos valores: el conflicto existe igual (otro
	// usuario guardó), solo que ningún campo difiere.
	current := &entity.Category{ID: 1, Name: "Herramientas", Version: "v2"}
	submitted := &entity.Category{ID: 1, Name: "Herramientas", Version: "v1"}

	report := catalog.CompareCategories(current, submitted)
	require.NotNil(t, report)
	require.Len(t, report.Messages, 1)
	assert.Equal(t, catalog.MsgEditCanceled, report.Messages[0])
}

func TestCompareCategories_RegistroBorrado(t *testing.T) {
	submitted := &entity.Category{ID: 9, Name: "Herramientas", Version: "v1"}

	report := catalog.CompareCategories(nil, submitted)
	require.NotNil(t, report)

	assert.True(t, report.Deleted)
	assert.Empty(t, report.CurrentVersion)
	require.Len(t, report.Messages, 1, "registro borrado: un único mensaje, sin diff")
	assert.Equal(t, catalog.MsgRecordDeleted, report.Messages[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// CompareProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestCompareProducts_TodosLosCamposEnOrdenDeDeclaracion(t *testing.T) {
	current := &entity.Product{
		ID: 1, Name: "Martillo", Description: "16 oz", ImageRef: "martillo.png",
		CategoryID: 2, Version: "v-actual",
	}
	submitted := &entity.Product{
		ID: 1, Name: "Mazo", Description: "20 oz", ImageRef: "mazo.png",
		CategoryID: 3, Version: "v-viejo",
	}

	report := catalog.CompareProducts(current, submitted)
	require.NotNil(t, report)
	require.Len(t, report.Messages, 5)

	// Name, Description, Image, Category, cierre — siempre en ese orden.
	assert.Equal(t, "Name current value: Martillo", report.Messages[0])
	assert.Equal(t, "Description current value: 16 oz", report.Messages[1])
	assert.Equal(t, "Image current value: martillo.png", report.Messages[2])
	assert.Equal(t, "Category current value: 2", report.Messages[3])
	assert.Equal(t, catalog.MsgEditCanceled, report.Messages[4])
}

func TestCompareProducts_SoloCamposDivergentes(t *testing.T) {
	current := &entity.Product{
		ID: 1, Name: "Martillo", Description: "16 oz", ImageRef: "martillo.png",
		CategoryID: 2, Version: "v-actual",
	}
	submitted := &entity.Product{
		ID: 1, Name: "Martillo", Description: "20 oz", ImageRef: "martillo.png",
		CategoryID: 2, Version: "v-viejo",
	}

	report := catalog.CompareProducts(current, submitted)
	require.NotNil(t, report)
	require.Len(t, report.Messages, 2)
	assert.Equal(t, "Description current value: 16 oz", report.Messages[0])
	assert.Equal(t, catalog.MsgEditCanceled, report.Messages[1])
}

func TestCompareProducts_RegistroBorrado(t *testing.T) {
	submitted := &entity.Product{ID: 7, Name: "Martillo", Version: "v1"}

	report := catalog.CompareProducts(nil, submitted)
	require.NotNil(t, report)
	assert.True(t, report.Deleted)
	require.Len(t, report.Messages, 1)
	assert.Equal(t, catalog.MsgRecordDeleted, report.Messages[0])
}
