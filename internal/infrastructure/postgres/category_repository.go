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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// Allow-list de campos ordenables -> columna SQL. Un SortBy desconocido cae
// al orden natural (name).
var categorySortColumns = map[string]string{
	catalog.SortByID:   "id",
	catalog.SortByName: "name",
}

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL
// (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// FindByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx,
		`SELECT id, name, version FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// FindCategories lista categorías filtradas por substring del nombre
// (case-insensitive, vacío trae todo), ordenadas y paginadas.
func (r *CategoryRepo) FindCategories(ctx context.Context, search catalog.SearchParams) ([]*entity.Category, catalog.PageInfo, error) {
	search.ApplyDefaults()

	const where = `WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`

	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories `+where, search.Filter).Scan(&total)
	if err != nil {
		return nil, catalog.PageInfo{}, fmt.Errorf("count categories: %w", err)
	}

	query := `SELECT id, name, version FROM categories ` + where + ` ` +
		orderByClause(categorySortColumns, search) + ` LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, search.Filter, search.PageSize, search.Offset())
	if err != nil {
		return nil, catalog.PageInfo{}, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Version); err != nil {
			return nil, catalog.PageInfo{}, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, catalog.PageInfo{}, fmt.Errorf("list categories: %w", err)
	}
	return list, catalog.NewPageInfo(total, search.Page, search.PageSize), nil
}

// Create persiste una nueva categoría: asigna ID y el token de versión inicial.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	category.Version = uuid.NewString()
	err := r.q.QueryRow(ctx,
		`INSERT INTO categories (name, version) VALUES ($1, $2) RETURNING id`,
		category.Name, category.Version,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// Update aplica la escritura con compare-and-swap sobre el token de versión.
// El UPDATE con predicado de versión es una sola sentencia atómica: el bump
// de versión y el cambio de campos se aplican juntos o no se aplica nada.
// Si el CAS no afecta filas se relee el estado vigente y se devuelve el
// reporte de conflicto (registro borrado incluido) sin tocar la fila.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) (*catalog.ConflictReport, error) {
	newVersion := uuid.NewString()
	tag, err := r.q.Exec(ctx,
		`UPDATE categories SET name = $2, version = $3 WHERE id = $1 AND version = $4`,
		category.ID, strings.TrimSpace(category.Name), newVersion, category.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 1 {
		category.Version = newVersion
		return nil, nil
	}

	current, err := r.FindByID(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	return catalog.CompareCategories(current, category), nil
}

// Delete elimina una categoría por ID; un ID inexistente es un no-op silencioso.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		// El FK RESTRICT de products cubre la carrera entre el canDelete
		// del handler y este DELETE.
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// NameExists verifica existencia por nombre normalizado (recortado, case-insensitive).
func (r *CategoryRepo) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE lower(btrim(name)) = $1)`,
		catalog.NormalizeName(name),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("category name exists: %w", err)
	}
	return exists, nil
}

// InUse verifica si algún producto referencia la categoría.
func (r *CategoryRepo) InUse(ctx context.Context, id int64) (bool, error) {
	var inUse bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE category_id = $1)`, id,
	).Scan(&inUse)
	if err != nil {
		return false, fmt.Errorf("category in use: %w", err)
	}
	return inUse, nil
}

// orderByClause arma el ORDER BY desde la allow-list; desempate estable por id
// ascendente para que la paginación sea reproducible.
func orderByClause(columns map[string]string, search catalog.SearchParams) string {
	column, ok := columns[search.SortBy]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if search.SortOrder == catalog.SortDescending {
		direction = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s, id ASC", column, direction)
}
