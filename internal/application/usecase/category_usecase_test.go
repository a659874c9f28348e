package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

func newCategoryUC() (*fakeStore, *CategoryUseCase) {
	s, _, categories, tx := newFakeStore()
	return s, NewCategoryUseCase(categories, tx)
}

func TestCategoryList_TotalProductos(t *testing.T) {
	s, uc := newCategoryUC()
	seedCatalog(s)

	got, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	counts := map[string]int{}
	for _, c := range got {
		counts[c.Name] = c.TotalProducts
	}
	assert.Equal(t, map[string]int{
		"Electronica": 4,
		"Hogar":       3,
		"Deportes":    3,
	}, counts)
}

func TestCategoryGetByID(t *testing.T) {
	s, uc := newCategoryUC()
	cat := s.addCategory("Hogar", "Articulos para el hogar")

	got, err := uc.GetByID(context.Background(), cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hogar", got.Name)
	assert.Equal(t, "Articulos para el hogar", got.Description)
	assert.Zero(t, got.TotalProducts)
}

func TestCategoryGetByID_NoExiste(t *testing.T) {
	_, uc := newCategoryUC()

	got, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
}

func TestCategoryGetWithProducts(t *testing.T) {
	s, uc := newCategoryUC()
	seedCatalog(s)
	deportes := s.categories[2]

	got, err := uc.GetWithProducts(context.Background(), deportes.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deportes", got.Name)
	require.Len(t, got.Products, 3)
	for _, p := range got.Products {
		require.NotNil(t, p.CategoryName)
		assert.Equal(t, "Deportes", *p.CategoryName)
	}
}

func TestCategoryGetWithProducts_NoExiste(t *testing.T) {
	_, uc := newCategoryUC()

	got, err := uc.GetWithProducts(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
}

func TestCategoryCreate(t *testing.T) {
	s, uc := newCategoryUC()

	got, err := uc.Create(context.Background(), dto.CategoryRequest{
		Name:        "Jardin",
		Description: "Herramientas de jardineria",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Jardin", got.Name)
	assert.Len(t, s.categories, 1)
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	s, uc := newCategoryUC()
	s.addCategory("Hogar", "")

	got, err := uc.Create(context.Background(), dto.CategoryRequest{Name: "Hogar"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Nil(t, got)
}

func TestCategoryUpdate(t *testing.T) {
	s, uc := newCategoryUC()
	cat := s.addCategory("Hogar", "vieja descripcion")

	got, err := uc.Update(context.Background(), cat.ID, dto.CategoryRequest{
		Name:        "Hogar y Cocina",
		Description: "",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hogar y Cocina", got.Name)
	// Reemplazo completo: la descripción vacía también se escribe.
	assert.Empty(t, got.Description)
	assert.Equal(t, "Hogar y Cocina", s.categories[0].Name)
}

func TestCategoryUpdate_NoExiste(t *testing.T) {
	_, uc := newCategoryUC()

	_, err := uc.Update(context.Background(), "no-existe", dto.CategoryRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete(t *testing.T) {
	s, uc := newCategoryUC()
	cat := s.addCategory("Efimera", "")

	require.NoError(t, uc.Delete(context.Background(), cat.ID))
	assert.Empty(t, s.categories)
}

func TestCategoryDelete_ConProductos(t *testing.T) {
	s, uc := newCategoryUC()
	seedCatalog(s)

	err := uc.Delete(context.Background(), s.categories[0].ID)
	assert.ErrorIs(t, err, domain.ErrIntegrity)
	assert.Len(t, s.categories, 3, "la categoría con productos no se borra")
}
