package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

var productSortColumns = map[string]string{
	catalog.SortByID:          "id",
	catalog.SortByName:        "name",
	catalog.SortByDescription: "description",
	catalog.SortByImage:       "image_ref",
	catalog.SortByCategory:    "category_id",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// FindByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx,
		`SELECT id, name, description, image_ref, category_id, version
		 FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.ImageRef, &p.CategoryID, &p.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// FindProducts lista productos filtrados por substring del nombre
// (case-insensitive, vacío trae todo), ordenados y paginados.
func (r *ProductRepo) FindProducts(ctx context.Context, search catalog.SearchParams) ([]*entity.Product, catalog.PageInfo, error) {
	search.ApplyDefaults()

	const where = `WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`

	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products `+where, search.Filter).Scan(&total)
	if err != nil {
		return nil, catalog.PageInfo{}, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT id, name, description, image_ref, category_id, version FROM products ` +
		where + ` ` + orderByClause(productSortColumns, search) + ` LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, search.Filter, search.PageSize, search.Offset())
	if err != nil {
		return nil, catalog.PageInfo{}, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.ImageRef, &p.CategoryID, &p.Version); err != nil {
			return nil, catalog.PageInfo{}, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, catalog.PageInfo{}, fmt.Errorf("list products: %w", err)
	}
	return list, catalog.NewPageInfo(total, search.Page, search.PageSize), nil
}

// Create persiste un nuevo producto: asigna ID y el token de versión inicial.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	product.Description = strings.TrimSpace(product.Description)
	product.Version = uuid.NewString()
	err := r.q.QueryRow(ctx,
		`INSERT INTO products (name, description, image_ref, category_id, version)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		product.Name, product.Description, product.ImageRef, product.CategoryID, product.Version,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		// Carrera entre el canAdd del handler y el INSERT: la categoría
		// pudo borrarse en el medio.
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryMissing
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update aplica la escritura con compare-and-swap sobre el token de versión;
// mismo contrato que CategoryRepo.Update.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (*catalog.ConflictReport, error) {
	newVersion := uuid.NewString()
	tag, err := r.q.Exec(ctx,
		`UPDATE products
		 SET name = $2, description = $3, image_ref = $4, category_id = $5, version = $6
		 WHERE id = $1 AND version = $7`,
		product.ID, strings.TrimSpace(product.Name), strings.TrimSpace(product.Description),
		product.ImageRef, product.CategoryID, newVersion, product.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrCategoryMissing
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 1 {
		product.Version = newVersion
		return nil, nil
	}

	current, err := r.FindByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	return catalog.CompareProducts(current, product), nil
}

// Delete elimina un producto por ID; un ID inexistente es un no-op silencioso.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// NameExists verifica existencia por nombre normalizado (recortado, case-insensitive).
func (r *ProductRepo) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE lower(btrim(name)) = $1)`,
		catalog.NormalizeName(name),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product name exists: %w", err)
	}
	return exists, nil
}
