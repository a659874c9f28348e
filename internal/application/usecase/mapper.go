package usecase

import (
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Mapeo entidad → DTO. Funciones puras, sin efectos.

// toProductResponse convierte un producto a su forma de transferencia.
// CategoriaNombre queda en nil cuando la referencia a la categoría no está
// resuelta; eso nunca es un error.
func toProductResponse(p *entity.Product) dto.ProductResponse {
	var categoryName *string
	if p.Category != nil {
		categoryName = &p.Category.Name
	}
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Stock:        p.Stock,
		Active:       p.Active,
		CategoryName: categoryName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items
}

// toCategoryResponse convierte una categoría a su forma de transferencia.
// TotalProducts viene del agregado COUNT de la consulta (cero si no hay relacionados).
func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		TotalProducts: c.ProductCount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// toCategoryWithProducts categoría más su colección completa de productos mapeados,
// cada uno con el nombre de la categoría padre.
func toCategoryWithProducts(c *entity.Category) dto.CategoryWithProductsResponse {
	products := make([]dto.ProductResponse, 0, len(c.Products))
	for i := range c.Products {
		products = append(products, toProductResponse(&c.Products[i]))
	}
	return dto.CategoryWithProductsResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Products:    products,
	}
}
