package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Price es NUMERIC(10,2); no se valida no-negatividad (responsabilidad del llamador).
// Category es la referencia resuelta (nil si la consulta no la cargó); CategoryID es la FK.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal
	Stock      int
	Active     bool
	CategoryID string
	Category   *Category // nil si la relación no fue cargada
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
