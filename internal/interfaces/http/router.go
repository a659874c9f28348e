package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	ReportUC   *usecase.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categorías
	categories := api.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/productos", categoryHandler.GetWithProducts)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Productos. Las rutas fijas van antes que /:id para que fiber no las capture.
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/buscar", productHandler.SearchByName)
	products.Get("/filtrar", productHandler.SearchWithFilters)
	products.Get("/precio", productHandler.SearchByPriceRange)
	products.Get("/stock-bajo", productHandler.LowStock)
	products.Get("/ultimos", productHandler.RecentActive)
	products.Get("/categoria/:categoriaId/paginado", productHandler.PageByCategory)
	products.Patch("/categoria/:categoriaId/precios", productHandler.BulkAdjustPrice)
	products.Get("/categoria/:nombre", productHandler.AvailableByCategory)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Reportes
	reports := api.Group("/reportes")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/catalogo", reportHandler.CatalogPDF)
}
