package dto

import "time"

// CategoryRequest entrada para crear o actualizar una categoría.
type CategoryRequest struct {
	Name        string `json:"nombre" validate:"required,min=1,max=100"`
	Description string `json:"descripcion"`
}

// CategoryResponse salida de una categoría. TotalProducts es el conteo agregado
// de productos relacionados (cero si no hay ninguno).
type CategoryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"nombre"`
	Description   string    `json:"descripcion"`
	TotalProducts int       `json:"totalProductos"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CategoryWithProductsResponse categoría con su colección completa de productos mapeados.
type CategoryWithProductsResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"nombre"`
	Description string            `json:"descripcion"`
	Products    []ProductResponse `json:"productos"`
}
