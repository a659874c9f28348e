package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CatalogPDFGenerator puerto de generación del reporte PDF del catálogo.
// La implementación vive en infrastructure/pdf.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, categories []*entity.Category, products []*entity.Product) ([]byte, error)
}

// ReportUseCase arma el reporte imprimible del catálogo completo.
type ReportUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	generator  CatalogPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(products repository.ProductRepository, categories repository.CategoryRepository, generator CatalogPDFGenerator) *ReportUseCase {
	return &ReportUseCase{products: products, categories: categories, generator: generator}
}

// CatalogPDF carga categorías y productos (con la categoría resuelta) y delega
// el armado del documento al generador.
func (uc *ReportUseCase) CatalogPDF(ctx context.Context) ([]byte, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateCatalogPDF(ctx, categories, products)
}
