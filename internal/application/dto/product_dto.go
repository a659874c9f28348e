package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o actualizar un producto (reemplazo completo de campos).
// El flag activo no es modificable por esta vía: se fija en true al crear.
type ProductRequest struct {
	Name       string          `json:"nombre" validate:"required,min=1,max=200"`
	Price      decimal.Decimal `json:"precio"`
	Stock      int             `json:"stock"`
	CategoryID string          `json:"categoriaId" validate:"required"`
}

// ProductResponse salida de un producto. CategoryName es nil cuando la referencia a la
// categoría no está resuelta. Nombres JSON en español: formato de la API original.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"nombre"`
	Price        decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
	Active       bool            `json:"activo"`
	CategoryName *string         `json:"categoriaNombre"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductPageResponse página de productos con metadatos.
type ProductPageResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// BulkPriceResponse resultado del ajuste masivo de precios.
type BulkPriceResponse struct {
	Updated int64 `json:"actualizados"`
}
