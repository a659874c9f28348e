package dto

import "strings"

// PageRequest paginación para listados: número de página (base 0), tamaño y orden.
// Sort usa el formato "campo,direccion", ej. "precio,desc".
type PageRequest struct {
	Page int    `query:"page" validate:"min=0"`
	Size int    `query:"size" validate:"min=1,max=100"`
	Sort string `query:"sort"`
}

// Defaults aplica valores por defecto si Page/Size vienen fuera de rango.
func (p *PageRequest) Defaults() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = 20
	}
	if p.Size > 100 {
		p.Size = 100
	}
}

// sortColumns lista blanca campo JSON → columna SQL. Todo lo demás cae al orden por defecto.
var sortColumns = map[string]string{
	"nombre":    "nombre",
	"precio":    "precio",
	"stock":     "stock",
	"createdAt": "created_at",
}

// SortColumn devuelve la columna SQL validada y si la dirección es descendente.
// Sin sort (o con un campo desconocido) ordena por created_at descendente.
func (p PageRequest) SortColumn() (column string, desc bool) {
	field, dir, _ := strings.Cut(p.Sort, ",")
	col, ok := sortColumns[field]
	if !ok {
		return "created_at", true
	}
	return col, strings.EqualFold(dir, "desc")
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
