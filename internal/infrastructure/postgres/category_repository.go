package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// categorySelect trae la categoría con el conteo agregado de sus productos.
const categorySelect = `
	SELECT c.id, c.nombre, c.descripcion, c.created_at, c.updated_at, COUNT(p.id)
	FROM categorias c
	LEFT JOIN productos p ON p.categoria_id = c.id`

// Create persiste una categoría nueva. Nombre duplicado sube como ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categorias (id, nombre, descripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID con su conteo de productos.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := categorySelect + ` WHERE c.id = $1 GROUP BY c.id`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.ProductCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetByIDWithProducts materializa la categoría y toda su colección de productos en
// un solo round-trip (left join). Cada producto trae la referencia al padre resuelta.
func (r *CategoryRepo) GetByIDWithProducts(ctx context.Context, id string) (*entity.Category, error) {
	query := `
		SELECT c.id, c.nombre, c.descripcion, c.created_at, c.updated_at,
		       p.id, p.nombre, p.precio, p.stock, p.activo, p.created_at, p.updated_at
		FROM categorias c
		LEFT JOIN productos p ON p.categoria_id = c.id
		WHERE c.id = $1
		ORDER BY p.created_at`
	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get category with products: %w", err)
	}
	defer rows.Close()

	var category *entity.Category
	for rows.Next() {
		var c entity.Category
		var prodID, prodName *string
		var prodPrice *decimal.Decimal
		var prodStock *int
		var prodActive *bool
		var prodCreated, prodUpdated *time.Time
		err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
			&prodID, &prodName, &prodPrice, &prodStock, &prodActive, &prodCreated, &prodUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category with products: %w", err)
		}
		if category == nil {
			c.Products = []entity.Product{}
			category = &c
		}
		// Sin productos el join deja las columnas de la derecha en NULL.
		if prodID != nil {
			category.Products = append(category.Products, entity.Product{
				ID:         *prodID,
				Name:       *prodName,
				Price:      *prodPrice,
				Stock:      *prodStock,
				Active:     *prodActive,
				CategoryID: category.ID,
				Category:   category,
				CreatedAt:  *prodCreated,
				UpdatedAt:  *prodUpdated,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get category with products: %w", err)
	}
	if category != nil {
		category.ProductCount = len(category.Products)
	}
	return category, nil
}

// List devuelve todas las categorías con su conteo de productos.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	query := categorySelect + ` GROUP BY c.id ORDER BY c.nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	list := []*entity.Category{}
	for rows.Next() {
		var c entity.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.ProductCount)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update sobrescribe nombre y descripción. Nombre duplicado sube como ErrDuplicate.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categorias SET nombre = $2, descripcion = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID. Con productos aún asociados el RESTRICT
// de la FK lo rechaza y se devuelve ErrIntegrity.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categorias WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
