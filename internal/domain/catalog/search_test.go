package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
)

func TestApplyDefaults(t *testing.T) {
	p := catalog.SearchParams{Filter: "  taladro  "}
	p.ApplyDefaults()

	assert.Equal(t, "taladro", p.Filter, "el filtro se recorta")
	assert.Equal(t, catalog.SortByName, p.SortBy)
	assert.Equal(t, catalog.SortAscending, p.SortOrder)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, catalog.DefaultPageSize, p.PageSize)
}

func TestApplyDefaults_SortOrderDesconocido_CaeAAscendente(t *testing.T) {
	p := catalog.SearchParams{SortOrder: "sideways"}
	p.ApplyDefaults()
	assert.Equal(t, catalog.SortAscending, p.SortOrder)
}

func TestOffset(t *testing.T) {
	p := catalog.SearchParams{Page: 3, PageSize: 15}
	assert.Equal(t, 30, p.Offset())
}

func TestNewPageInfo_TotalPagesRedondeaHaciaArriba(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 15, 0},
		{1, 15, 1},
		{15, 15, 1},
		{16, 15, 2},
		{20, 15, 2},
		{45, 15, 3},
	}
	for _, tc := range cases {
		info := catalog.NewPageInfo(tc.total, 1, tc.pageSize)
		assert.Equal(t, tc.want, info.TotalPages,
			"total=%d pageSize=%d", tc.total, tc.pageSize)
	}
}

func TestPageInfo_HasPreviousHasNext(t *testing.T) {
	info := catalog.NewPageInfo(20, 1, 15) // 2 páginas
	assert.False(t, info.HasPrevious())
	assert.True(t, info.HasNext())

	info = catalog.NewPageInfo(20, 2, 15)
	assert.True(t, info.HasPrevious())
	assert.False(t, info.HasNext())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, catalog.NormalizeName("  Taladro  "), catalog.NormalizeName("taladro"),
		"recorte y minúsculas")
	assert.Equal(t, catalog.NormalizeName("Caf\u00e9"), catalog.NormalizeName("Cafe\u0301"),
		"forma precompuesta y descompuesta deben normalizar igual (NFC)")
	assert.NotEqual(t, catalog.NormalizeName("Taladro"), catalog.NormalizeName("Taladros"))
}
