package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	tx         TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, tx TxRunner) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, tx: tx}
}

// List devuelve todas las categorías mapeadas.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría por ID; ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// GetWithProducts carga la categoría con sus productos en un solo round-trip;
// ErrNotFound si no existe.
func (uc *CategoryUseCase) GetWithProducts(ctx context.Context, id string) (*dto.CategoryWithProductsResponse, error) {
	category, err := uc.categories.GetByIDWithProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	out := toCategoryWithProducts(category)
	return &out, nil
}

// Create persiste una categoría nueva. No pre-valida unicidad del nombre: un
// duplicado sube desde el almacén como ErrDuplicate.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// Update sobrescribe nombre y descripción (siempre ambos; no hay actualización
// parcial) dentro de una transacción. ErrNotFound si la categoría no existe.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	var updated *entity.Category
	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, categories repository.CategoryRepository) error {
		category, err := categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		category.Name = in.Name
		category.Description = in.Description
		category.UpdatedAt = time.Now()
		if err := categories.Update(ctx, category); err != nil {
			return err
		}
		updated = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(updated)
	return &out, nil
}

// Delete elimina por ID. Si la categoría aún tiene productos, el almacén lo
// rechaza (ON DELETE RESTRICT) y sube ErrIntegrity.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.categories.Delete(ctx, id)
}
