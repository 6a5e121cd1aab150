package memory

import (
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
)

// containsFold replica el filtro ILIKE '%filter%': substring case-insensitive,
// filtro vacío empata con todo.
func containsFold(name, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

type pageSlice struct {
	start int
	size  int
}

// slicePage calcula el recorte [(page-1)*size, page*size) acotado al total.
func slicePage(total int, search catalog.SearchParams) pageSlice {
	start := search.Offset()
	if start >= total {
		return pageSlice{start: 0, size: 0}
	}
	size := search.PageSize
	if start+size > total {
		size = total - start
	}
	return pageSlice{start: start, size: size}
}
