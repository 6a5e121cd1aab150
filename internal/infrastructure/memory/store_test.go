package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
)

func TestCategoryRepo_UpdateCAS_Concurrente(t *testing.T) {
	store := memory.NewStore()
	repo := store.Categories()
	ctx := context.Background()

	category := &entity.Category{Name: "Tools"}
	require.NoError(t, repo.Create(ctx, category))
	original := category.Version

	const writers = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report, err := repo.Update(ctx, &entity.Category{
				ID: category.ID, Name: "Renamed", Version: original,
			})
			assert.NoError(t, err)
			if err == nil && report == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins, "el CAS bajo mutex debe dejar pasar exactamente una escritura")

	current, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Renamed", current.Name)
	assert.NotEqual(t, original, current.Version)
}

func TestCategoryRepo_UpdateDeRegistroBorrado_ReporteDeleted(t *testing.T) {
	store := memory.NewStore()
	repo := store.Categories()
	ctx := context.Background()

	category := &entity.Category{Name: "Tools"}
	require.NoError(t, repo.Create(ctx, category))
	require.NoError(t, repo.Delete(ctx, category.ID))

	report, err := repo.Update(ctx, category)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.True(t, report.Deleted)
	require.Len(t, report.Messages, 1)
	assert.Equal(t, catalog.MsgRecordDeleted, report.Messages[0])
}

func TestProductRepo_FindProducts_OrdenYPagina(t *testing.T) {
	store := memory.NewStore()
	catRepo := store.Categories()
	prodRepo := store.Products()
	ctx := context.Background()

	tools := &entity.Category{Name: "Tools"}
	require.NoError(t, catRepo.Create(ctx, tools))

	names := []string{"Wrench", "Hammer", "Pliers", "Saw", "Drill"}
	for _, n := range names {
		p := &entity.Product{Name: n, Description: "d", ImageRef: "i.png", CategoryID: tools.ID}
		require.NoError(t, prodRepo.Create(ctx, p))
	}

	list, info, err := prodRepo.FindProducts(ctx, catalog.SearchParams{
		SortBy: catalog.SortByName, Page: 1, PageSize: 3,
	})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Drill", list[0].Name)
	assert.Equal(t, "Hammer", list[1].Name)
	assert.Equal(t, "Pliers", list[2].Name)
	assert.Equal(t, 5, info.TotalCount)
	assert.Equal(t, 2, info.TotalPages)

	list, _, err = prodRepo.FindProducts(ctx, catalog.SearchParams{
		SortBy: catalog.SortByName, Page: 2, PageSize: 3,
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Saw", list[0].Name)
	assert.Equal(t, "Wrench", list[1].Name)
}

func TestProductRepo_Delete_IDInexistente_NoOp(t *testing.T) {
	store := memory.NewStore()
	assert.NoError(t, store.Products().Delete(context.Background(), 42))
}

func TestUserRepo_UsernameUnico(t *testing.T) {
	store := memory.NewStore()
	repo := store.Users()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Username: "superuser"}))
	err := repo.Create(ctx, &entity.User{ID: "u2", Username: "superuser"})
	assert.Error(t, err)

	found, err := repo.FindByUsername(ctx, "superuser")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "u1", found.ID)
}
