package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// PageQuery paginación ya traducida a términos SQL (la capa de aplicación
// valida el campo de orden contra una lista blanca antes de construirla).
type PageQuery struct {
	Limit   int
	Offset  int
	OrderBy string // columna segura, ej. "created_at"
	Desc    bool
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos por ID devuelven (nil, nil) cuando no existe la fila; las búsquedas
// devuelven slice vacío, nunca error, cuando no hay coincidencias.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDWithCategory resuelve la categoría en el mismo round-trip (join, sin N+1).
	GetByIDWithCategory(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// List devuelve todos los productos con su categoría ya resuelta.
	List(ctx context.Context) ([]*entity.Product, error)
	// SearchByName busca por subcadena sin distinguir mayúsculas; cadena vacía coincide con todo.
	SearchByName(ctx context.Context, name string) ([]*entity.Product, error)
	// SearchByPriceRange rango inclusivo [min, max].
	SearchByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]*entity.Product, error)
	// SearchWithFilters conjunción solo de los filtros presentes; un filtro nil no excluye filas.
	SearchWithFilters(ctx context.Context, name *string, minPrice, maxPrice *decimal.Decimal) ([]*entity.Product, error)
	// ListLowStock productos con stock estrictamente menor al umbral.
	ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	ListActive(ctx context.Context) ([]*entity.Product, error)
	// ListRecentActive los 10 productos activos más recientes, descendente por creación.
	ListRecentActive(ctx context.Context) ([]*entity.Product, error)
	// ListByCategory página de productos de la categoría más el total de filas.
	ListByCategory(ctx context.Context, categoryID string, page PageQuery) ([]*entity.Product, int64, error)
	// ListAvailableByCategory productos con stock > 0 de la categoría con ese nombre,
	// ordenados por precio ascendente.
	ListAvailableByCategory(ctx context.Context, categoryName string) ([]*entity.Product, error)

	// BulkUpdatePrices multiplica el precio de todos los productos de la categoría por
	// factor en una sola sentencia (nunca carga entidades); devuelve filas afectadas.
	BulkUpdatePrices(ctx context.Context, categoryID string, factor decimal.Decimal) (int64, error)
}
