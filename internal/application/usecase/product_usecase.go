package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso de consulta y CRUD para productos.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	tx         TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, tx: tx}
}

// List devuelve todos los productos con su categoría resuelta en la misma consulta.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// GetByID obtiene un producto con su categoría cargada; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByIDWithCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(product)
	return &out, nil
}

// SearchByName busca por subcadena del nombre, sin distinguir mayúsculas.
func (uc *ProductUseCase) SearchByName(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	list, err := uc.products.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// SearchByPriceRange productos con precio en [min, max].
func (uc *ProductUseCase) SearchByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]dto.ProductResponse, error) {
	list, err := uc.products.SearchByPriceRange(ctx, min, max)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// SearchWithFilters conjunción solo de los filtros presentes: cada filtro nil
// no excluye ninguna fila. Con los tres en nil devuelve el conjunto completo.
func (uc *ProductUseCase) SearchWithFilters(ctx context.Context, name *string, minPrice, maxPrice *decimal.Decimal) ([]dto.ProductResponse, error) {
	list, err := uc.products.SearchWithFilters(ctx, name, minPrice, maxPrice)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// AvailableByCategory productos con stock > 0 de la categoría con ese nombre,
// ordenados por precio ascendente.
func (uc *ProductUseCase) AvailableByCategory(ctx context.Context, categoryName string) ([]dto.ProductResponse, error) {
	list, err := uc.products.ListAvailableByCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// LowStock productos con stock por debajo del umbral.
func (uc *ProductUseCase) LowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	list, err := uc.products.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// RecentActive los 10 productos activos más recientes, descendente por creación.
func (uc *ProductUseCase) RecentActive(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.ListRecentActive(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// PageByCategory página de productos de una categoría con total y metadatos.
func (uc *ProductUseCase) PageByCategory(ctx context.Context, categoryID string, page dto.PageRequest) (*dto.ProductPageResponse, error) {
	page.Defaults()
	column, desc := page.SortColumn()
	query := repository.PageQuery{
		Limit:   page.Size,
		Offset:  page.Page * page.Size,
		OrderBy: column,
		Desc:    desc,
	}
	list, total, err := uc.products.ListByCategory(ctx, categoryID, query)
	if err != nil {
		return nil, err
	}
	totalPages := int((total + int64(page.Size) - 1) / int64(page.Size))
	return &dto.ProductPageResponse{
		Items: toProductResponses(list),
		Page: dto.PageResponse{
			Page:       page.Page,
			Size:       page.Size,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// Create resuelve la categoría (ErrNotFound si el ID no existe), construye el
// producto con activo en true y lo persiste; todo dentro de una transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	var created *entity.Product
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		category, err := categories.GetByID(ctx, in.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		product := &entity.Product{
			ID:         uuid.New().String(),
			Name:       in.Name,
			Price:      in.Price,
			Stock:      in.Stock,
			Active:     true,
			CategoryID: category.ID,
			Category:   category,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		created = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(created)
	return &out, nil
}

// Update sobrescribe nombre, precio, stock y categoría (reemplazo completo).
// Falla con ErrNotFound —sin escribir nada— si el producto o la nueva categoría
// no existen. El flag activo y los timestamps de creación no se tocan por aquí.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		product, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		category, err := categories.GetByID(ctx, in.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		product.Name = in.Name
		product.Price = in.Price
		product.Stock = in.Stock
		product.CategoryID = category.ID
		product.Category = category
		product.UpdatedAt = time.Now()
		if err := products.Update(ctx, product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(updated)
	return &out, nil
}

// Delete elimina por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.products.Delete(ctx, id)
}

// BulkAdjustPrice multiplica el precio de todos los productos de la categoría por
// factor en una sola sentencia contra el almacén y devuelve las filas afectadas.
// El factor se aplica tal cual: cero o negativo es responsabilidad del llamador.
func (uc *ProductUseCase) BulkAdjustPrice(ctx context.Context, categoryID string, factor decimal.Decimal) (int64, error) {
	return uc.products.BulkUpdatePrices(ctx, categoryID, factor)
}
