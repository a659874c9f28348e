package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las lecturas llenan ProductCount con un agregado COUNT en la misma consulta.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// GetByIDWithProducts materializa la colección de productos en un solo round-trip;
	// cada producto trae la referencia a la categoría padre resuelta.
	GetByIDWithProducts(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	// Delete falla con ErrIntegrity si la categoría aún tiene productos (ON DELETE RESTRICT).
	Delete(ctx context.Context, id string) error
}
