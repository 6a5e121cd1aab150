package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
)

func newProductUC(t *testing.T) (*usecase.ProductUseCase, *dto.CategoryResponse) {
	t.Helper()
	store := memory.NewStore()
	catUC := usecase.NewCategoryUseCase(store.Categories())
	prodUC := usecase.NewProductUseCase(store.Products(), store.Categories())

	tools, err := catUC.Create(context.Background(), dto.CategoryRequest{Name: "Tools"})
	require.NoError(t, err)
	return prodUC, tools
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _ := newProductUC(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.ProductRequest{
		Name: "Hammer", Description: "16 oz", ImageRef: "hammer.png", CategoryID: 999,
	})
	assert.ErrorIs(t, err, domain.ErrCategoryMissing)
}

func TestProductCreate_NombreDuplicado(t *testing.T) {
	uc, tools := newProductUC(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.ProductRequest{
		Name: "Hammer", Description: "16 oz", ImageRef: "hammer.png", CategoryID: tools.ID,
	})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.ProductRequest{
		Name: " hammer ", Description: "otro", ImageRef: "otro.png", CategoryID: tools.ID,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — conflicto de versión
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_VersionVieja_ReportaCamposCambiados(t *testing.T) {
	uc, tools := newProductUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.ProductRequest{
		Name: "Hammer", Description: "16 oz", ImageRef: "hammer.png", CategoryID: tools.ID,
	})
	require.NoError(t, err)

	// Primer editor cambia descripción e imagen.
	first, report, err := uc.Update(ctx, created.ID, dto.ProductRequest{
		Name: "Hammer", Description: "20 oz", ImageRef: "hammer-v2.png",
		CategoryID: tools.ID, Version: created.Version,
	})
	require.NoError(t, err)
	require.Nil(t, report)

	// Segundo editor intenta guardar sobre el token original.
	_, report, err = uc.Update(ctx, created.ID, dto.ProductRequest{
		Name: "Hammer", Description: "18 oz", ImageRef: "hammer.png",
		CategoryID: tools.ID, Version: created.Version,
	})
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, first.Version, report.CurrentVersion)
	// Solo los campos que difieren del estado guardado, en orden de declaración.
	require.Len(t, report.Messages, 3)
	assert.Equal(t, "Description current value: 20 oz", report.Messages[0])
	assert.Equal(t, "Image current value: hammer-v2.png", report.Messages[1])
	assert.Equal(t, catalog.MsgEditCanceled, report.Messages[2])
}

func TestProductUpdate_IDInexistente_NotFound(t *testing.T) {
	uc, tools := newProductUC(t)
	_, _, err := uc.Update(context.Background(), 999, dto.ProductRequest{
		Name: "Hammer", Description: "16 oz", ImageRef: "hammer.png",
		CategoryID: tools.ID, Version: "v",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_CategoriaInexistente(t *testing.T) {
	uc, tools := newProductUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.ProductRequest{
		Name: "Hammer", Description: "16 oz", ImageRef: "hammer.png", CategoryID: tools.ID,
	})
	require.NoError(t, err)

	_, _, err = uc.Update(ctx, created.ID, dto.ProductRequest{
		Name: "Hammer", Description: "16 oz", ImageRef: "hammer.png",
		CategoryID: 999, Version: created.Version,
	})
	assert.ErrorIs(t, err, domain.ErrCategoryMissing)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: escrituras simultáneas con el mismo token
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_EscriturasConcurrentes_SoloUnaGana(t *testing.T) {
	uc, tools := newProductUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.ProductRequest{
		Name: "Hammer", Description: "16 oz", ImageRef: "hammer.png", CategoryID: tools.ID,
	})
	require.NoError(t, err)

	const writers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins, conflicts := 0, 0

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, report, err := uc.Update(ctx, created.ID, dto.ProductRequest{
				Name: "Hammer", Description: "retocado", ImageRef: "hammer.png",
				CategoryID: tools.ID, Version: created.Version,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil && report == nil:
				wins++
			case err == nil && report != nil:
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins, "exactamente una escritura debe ganar el CAS")
	assert.Equal(t, writers-1, conflicts, "el resto debe recibir reporte de conflicto")
}
