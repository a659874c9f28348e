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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// productSelect trae el producto con su categoría resuelta en el mismo round-trip
// (join en vez de una consulta por fila).
const productSelect = `
	SELECT p.id, p.nombre, p.precio, p.stock, p.activo, p.categoria_id, p.created_at, p.updated_at,
	       c.id, c.nombre, c.descripcion, c.created_at, c.updated_at
	FROM productos p
	LEFT JOIN categorias c ON c.id = p.categoria_id`

type scanner interface {
	Scan(dest ...any) error
}

// scanProduct lee una fila de productSelect. Las columnas de la categoría son
// anulables: sin categoría, Product.Category queda en nil.
func scanProduct(row scanner) (*entity.Product, error) {
	var p entity.Product
	var categoryID, catID, catName, catDesc *string
	var catCreated, catUpdated *time.Time
	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.Active, &categoryID, &p.CreatedAt, &p.UpdatedAt,
		&catID, &catName, &catDesc, &catCreated, &catUpdated,
	)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	if catID != nil {
		p.Category = &entity.Category{
			ID:          *catID,
			Name:        *catName,
			Description: *catDesc,
			CreatedAt:   *catCreated,
			UpdatedAt:   *catUpdated,
		}
	}
	return &p, nil
}

func (r *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()
	list := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto. Una categoría inexistente sube como ErrIntegrity.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO productos (id, nombre, precio, stock, activo, categoria_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.Stock, product.Active,
		product.CategoryID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID sin resolver la categoría.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, nombre, precio, stock, activo, categoria_id, created_at, updated_at
		FROM productos WHERE id = $1`
	var p entity.Product
	var categoryID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.Active, &categoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	return &p, nil
}

// GetByIDWithCategory obtiene el producto con la categoría cargada en la misma consulta.
func (r *ProductRepo) GetByIDWithCategory(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product with category: %w", err)
	}
	return p, nil
}

// Update sobrescribe nombre, precio, stock y categoría. Activo no se toca por esta vía.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE productos SET nombre = $2, precio = $3, stock = $4, categoria_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.Stock, product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List devuelve todos los productos con su categoría resuelta.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.queryProducts(ctx, productSelect+` ORDER BY p.created_at`)
}

// SearchByName subcadena sin distinguir mayúsculas. Cadena vacía coincide con todas las filas.
func (r *ProductRepo) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	query := productSelect + ` WHERE p.nombre ILIKE '%' || $1 || '%' ORDER BY p.nombre`
	return r.queryProducts(ctx, query, name)
}

// SearchByPriceRange precio en [min, max] inclusivo.
func (r *ProductRepo) SearchByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]*entity.Product, error) {
	query := productSelect + ` WHERE p.precio BETWEEN $1 AND $2 ORDER BY p.precio`
	return r.queryProducts(ctx, query, min, max)
}

// SearchWithFilters conjunción solo de los filtros presentes: cada parámetro nil
// se vuelve NULL en SQL y su predicado se evalúa verdadero para toda fila.
func (r *ProductRepo) SearchWithFilters(ctx context.Context, name *string, minPrice, maxPrice *decimal.Decimal) ([]*entity.Product, error) {
	query := productSelect + `
	WHERE ($1::text IS NULL OR p.nombre ILIKE '%' || $1 || '%')
	  AND ($2::numeric IS NULL OR p.precio >= $2)
	  AND ($3::numeric IS NULL OR p.precio <= $3)
	ORDER BY p.nombre`
	return r.queryProducts(ctx, query, name, minPrice, maxPrice)
}

// ListLowStock productos con stock estrictamente menor al umbral.
func (r *ProductRepo) ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	return r.queryProducts(ctx, productSelect+` WHERE p.stock < $1 ORDER BY p.stock`, threshold)
}

// ListActive productos con el flag activo encendido.
func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	return r.queryProducts(ctx, productSelect+` WHERE p.activo ORDER BY p.created_at`)
}

// ListRecentActive los 10 productos activos más recientes.
func (r *ProductRepo) ListRecentActive(ctx context.Context) ([]*entity.Product, error) {
	return r.queryProducts(ctx, productSelect+` WHERE p.activo ORDER BY p.created_at DESC LIMIT 10`)
}

// ListByCategory página de productos de la categoría más el conteo total.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string, page repository.PageQuery) ([]*entity.Product, int64, error) {
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM productos WHERE categoria_id = $1`, categoryID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products by category: %w", err)
	}

	direction := "ASC"
	if page.Desc {
		direction = "DESC"
	}
	// page.OrderBy viene de la lista blanca de la capa de aplicación; nunca es entrada del usuario.
	query := fmt.Sprintf(`%s WHERE p.categoria_id = $1 ORDER BY p.%s %s LIMIT $2 OFFSET $3`,
		productSelect, page.OrderBy, direction)
	list, err := r.queryProducts(ctx, query, categoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListAvailableByCategory stock > 0 en la categoría con ese nombre, por precio ascendente.
func (r *ProductRepo) ListAvailableByCategory(ctx context.Context, categoryName string) ([]*entity.Product, error) {
	query := productSelect + ` WHERE c.nombre = $1 AND p.stock > 0 ORDER BY p.precio ASC`
	return r.queryProducts(ctx, query, categoryName)
}

// BulkUpdatePrices multiplica los precios de la categoría por factor en una sola
// sentencia set-based: no carga entidades y es atómica por sí misma. El round a
// dos decimales fija la escala de la columna NUMERIC(10,2).
func (r *ProductRepo) BulkUpdatePrices(ctx context.Context, categoryID string, factor decimal.Decimal) (int64, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE productos
		SET precio = round(precio * $2, 2), updated_at = now()
		WHERE categoria_id = $1`,
		categoryID, factor,
	)
	if err != nil {
		return 0, fmt.Errorf("bulk update prices: %w", err)
	}
	return cmd.RowsAffected(), nil
}
