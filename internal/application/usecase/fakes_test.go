package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Replican la semántica de las
// consultas SQL (ILIKE, rangos inclusivos, orden, RESTRICT al borrar) para poder
// ejercitar la capa de servicio y el mapeo sin base de datos.

type fakeStore struct {
	categories []*entity.Category
	products   []*entity.Product
}

func newFakeStore() (*fakeStore, *fakeProductRepo, *fakeCategoryRepo, *fakeTxRunner) {
	s := &fakeStore{}
	return s, &fakeProductRepo{s: s}, &fakeCategoryRepo{s: s}, &fakeTxRunner{s: s}
}

// addCategory inserta una categoría de prueba y la devuelve.
func (s *fakeStore) addCategory(name, description string) *entity.Category {
	now := time.Now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.categories = append(s.categories, c)
	return c
}

// addProduct inserta un producto de prueba con la categoría resuelta y createdAt dado.
func (s *fakeStore) addProduct(name, price string, stock int, active bool, category *entity.Category, createdAt time.Time) *entity.Product {
	p := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Stock:     stock,
		Active:    active,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if category != nil {
		p.CategoryID = category.ID
		p.Category = category
	}
	s.products = append(s.products, p)
	return p
}

// seedCatalog carga el mismo juego de datos que el seeder de desarrollo:
// 3 categorías y 10 productos, con createdAt creciente en orden de inserción.
func seedCatalog(s *fakeStore) {
	base := time.Now().Add(-time.Hour)
	i := 0
	next := func() time.Time {
		i++
		return base.Add(time.Duration(i) * time.Minute)
	}

	electronica := s.addCategory("Electronica", "Dispositivos electronicos")
	s.addProduct("Laptop Pro 15", "1299.99", 25, true, electronica, next())
	s.addProduct("Monitor 4K 27\"", "449.99", 40, true, electronica, next())
	s.addProduct("Teclado Mecanico", "89.99", 100, true, electronica, next())
	s.addProduct("Mouse Ergonomico", "59.99", 150, true, electronica, next())

	hogar := s.addCategory("Hogar", "Articulos para el hogar")
	s.addProduct("Aspiradora Robot", "399.99", 15, true, hogar, next())
	s.addProduct("Cafetera Express", "199.99", 30, true, hogar, next())
	s.addProduct("Lampara LED Inteligente", "34.99", 200, true, hogar, next())

	deportes := s.addCategory("Deportes", "Equipamiento deportivo")
	s.addProduct("Bicicleta Montana", "599.99", 8, true, deportes, next())
	s.addProduct("Pesas Ajustables", "149.99", 45, true, deportes, next())
	s.addProduct("Banda de Resistencia Set", "24.99", 5, true, deportes, next())
}

// ── fakeTxRunner ──────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	s *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.CategoryRepository) error) error {
	return fn(&fakeProductRepo{s: r.s}, &fakeCategoryRepo{s: r.s})
}

// ── fakeProductRepo ───────────────────────────────────────────────────────────

type fakeProductRepo struct {
	s *fakeStore
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.products = append(r.s.products, product)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByIDWithCategory(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	for i, p := range r.s.products {
		if p.ID == product.ID {
			r.s.products[i] = product
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.s.products {
		if p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	list := append([]*entity.Product{}, r.s.products...)
	sortByCreatedAsc(list)
	return list, nil
}

func (r *fakeProductRepo) SearchByName(_ context.Context, name string) ([]*entity.Product, error) {
	list := r.filter(func(p *entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), strings.ToLower(name))
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeProductRepo) SearchByPriceRange(_ context.Context, min, max decimal.Decimal) ([]*entity.Product, error) {
	list := r.filter(func(p *entity.Product) bool {
		return p.Price.GreaterThanOrEqual(min) && p.Price.LessThanOrEqual(max)
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Price.LessThan(list[j].Price) })
	return list, nil
}

func (r *fakeProductRepo) SearchWithFilters(_ context.Context, name *string, minPrice, maxPrice *decimal.Decimal) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool {
		if name != nil && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(*name)) {
			return false
		}
		if minPrice != nil && p.Price.LessThan(*minPrice) {
			return false
		}
		if maxPrice != nil && p.Price.GreaterThan(*maxPrice) {
			return false
		}
		return true
	}), nil
}

func (r *fakeProductRepo) ListLowStock(_ context.Context, threshold int) ([]*entity.Product, error) {
	list := r.filter(func(p *entity.Product) bool { return p.Stock < threshold })
	sort.Slice(list, func(i, j int) bool { return list[i].Stock < list[j].Stock })
	return list, nil
}

func (r *fakeProductRepo) ListActive(_ context.Context) ([]*entity.Product, error) {
	list := r.filter(func(p *entity.Product) bool { return p.Active })
	sortByCreatedAsc(list)
	return list, nil
}

func (r *fakeProductRepo) ListRecentActive(_ context.Context) ([]*entity.Product, error) {
	list := r.filter(func(p *entity.Product) bool { return p.Active })
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if len(list) > 10 {
		list = list[:10]
	}
	return list, nil
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, categoryID string, page repository.PageQuery) ([]*entity.Product, int64, error) {
	list := r.filter(func(p *entity.Product) bool { return p.CategoryID == categoryID })
	total := int64(len(list))
	sort.Slice(list, func(i, j int) bool {
		var less bool
		switch page.OrderBy {
		case "precio":
			less = list[i].Price.LessThan(list[j].Price)
		case "nombre":
			less = list[i].Name < list[j].Name
		case "stock":
			less = list[i].Stock < list[j].Stock
		default:
			less = list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		if page.Desc {
			return !less
		}
		return less
	})
	if page.Offset >= len(list) {
		return []*entity.Product{}, total, nil
	}
	end := page.Offset + page.Limit
	if end > len(list) {
		end = len(list)
	}
	return list[page.Offset:end], total, nil
}

func (r *fakeProductRepo) ListAvailableByCategory(_ context.Context, categoryName string) ([]*entity.Product, error) {
	list := r.filter(func(p *entity.Product) bool {
		return p.Category != nil && p.Category.Name == categoryName && p.Stock > 0
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Price.LessThan(list[j].Price) })
	return list, nil
}

func (r *fakeProductRepo) BulkUpdatePrices(_ context.Context, categoryID string, factor decimal.Decimal) (int64, error) {
	var affected int64
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			p.Price = p.Price.Mul(factor).Round(2)
			p.UpdatedAt = time.Now()
			affected++
		}
	}
	return affected, nil
}

func (r *fakeProductRepo) filter(keep func(*entity.Product) bool) []*entity.Product {
	list := []*entity.Product{}
	for _, p := range r.s.products {
		if keep(p) {
			list = append(list, p)
		}
	}
	return list
}

func sortByCreatedAsc(list []*entity.Product) {
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
}

// ── fakeCategoryRepo ──────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	s *fakeStore
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	for _, c := range r.s.categories {
		if c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.categories = append(r.s.categories, category)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.ID == id {
			out := *c
			out.ProductCount = r.countProducts(id)
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByIDWithProducts(_ context.Context, id string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.ID != id {
			continue
		}
		out := *c
		out.Products = []entity.Product{}
		for _, p := range r.s.products {
			if p.CategoryID == id {
				prod := *p
				prod.Category = &out
				out.Products = append(out.Products, prod)
			}
		}
		out.ProductCount = len(out.Products)
		return &out, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	list := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out := *c
		out.ProductCount = r.countProducts(c.ID)
		list = append(list, &out)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	for i, c := range r.s.categories {
		if c.ID == category.ID {
			r.s.categories[i] = category
			return nil
		}
	}
	return nil
}

// Delete replica el ON DELETE RESTRICT del esquema.
func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if r.countProducts(id) > 0 {
		return domain.ErrIntegrity
	}
	for i, c := range r.s.categories {
		if c.ID == id {
			r.s.categories = append(r.s.categories[:i], r.s.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) countProducts(categoryID string) int {
	n := 0
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n
}
