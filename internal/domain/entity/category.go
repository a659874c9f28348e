package entity

import "time"

// Category representa una categoría del catálogo. Nombre es único a nivel de base de datos.
// Products solo se materializa en las consultas con carga ansiosa (GetByIDWithProducts);
// ProductCount lo llenan las consultas con agregado COUNT, nunca se calcula en memoria.
type Category struct {
	ID           string
	Name         string
	Description  string
	Products     []Product // nil si la relación no fue cargada
	ProductCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
