// Seed inicial: crea el superusuario y un catálogo de ejemplo si la base
// está vacía. Idempotente: se puede correr varias veces sin duplicar datos.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const (
	superuserName     = "superuser"
	superuserPassword = "Superuser@12345!"
)

type seedProduct struct {
	name, description, image, category string
}

var seedCategories = []string{"Tools", "Garden", "Electronics"}

var seedProducts = []seedProduct{
	{"Hammer", "16 oz claw hammer", "hammer.png", "Tools"},
	{"Screwdriver Set", "6-piece magnetic set", "screwdriver.png", "Tools"},
	{"Garden Hose", "25 m expandable hose", "hose.png", "Garden"},
	{"Pruning Shears", "Bypass shears, 20 cm", "shears.png", "Garden"},
	{"LED Lamp", "Desk lamp, warm white", "lamp.png", "Electronics"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	// Superusuario
	existing, err := userRepo.FindByUsername(ctx, superuserName)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar superusuario")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(superuserPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de password")
		}
		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Username:     superuserName,
			Email:        "superuser@example.com",
			PasswordHash: string(hash),
			FirstName:    "Super",
			LastName:     "User",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Msg("crear superusuario")
		}
		log.Info().Str("username", superuserName).Msg("superusuario creado")
	}

	// Catálogo de ejemplo (solo si no hay categorías)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)

	list, err := categoryUC.List(ctx, dto.SearchRequest{PageSize: 1})
	if err != nil {
		log.Fatal().Err(err).Msg("consultar categorías")
	}
	if list.Page.TotalCount > 0 {
		log.Info().Msg("catálogo ya poblado, nada que hacer")
		return
	}

	categoryIDs := make(map[string]int64, len(seedCategories))
	for _, name := range seedCategories {
		out, err := categoryUC.Create(ctx, dto.CategoryRequest{Name: name})
		if err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("crear categoría")
		}
		categoryIDs[name] = out.ID
	}
	for _, p := range seedProducts {
		_, err := productUC.Create(ctx, dto.ProductRequest{
			Name:        p.name,
			Description: p.description,
			ImageRef:    p.image,
			CategoryID:  categoryIDs[p.category],
		})
		if err != nil {
			log.Fatal().Err(err).Str("product", p.name).Msg("crear producto")
		}
	}
	log.Info().
		Int("categories", len(seedCategories)).
		Int("products", len(seedProducts)).
		Msg("catálogo de ejemplo creado")
}
