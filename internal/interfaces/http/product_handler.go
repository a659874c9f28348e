package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos (con categoría resuelta)
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// SearchByName godoc
// @Summary      Buscar productos por subcadena del nombre
// @Tags         productos
// @Produce      json
// @Param        nombre  query  string  true  "Subcadena (vacía coincide con todo)"
// @Success      200     {array}  dto.ProductResponse
// @Router       /api/productos/buscar [get]
func (h *ProductHandler) SearchByName(c *fiber.Ctx) error {
	out, err := h.uc.SearchByName(c.Context(), c.Query("nombre"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// SearchByPriceRange godoc
// @Summary      Buscar productos por rango de precio [min, max]
// @Tags         productos
// @Produce      json
// @Param        min  query  number  true  "Precio mínimo"
// @Param        max  query  number  true  "Precio máximo"
// @Success      200  {array}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/precio [get]
func (h *ProductHandler) SearchByPriceRange(c *fiber.Ctx) error {
	min, err := decimal.NewFromString(c.Query("min"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min inválido"})
	}
	max, err := decimal.NewFromString(c.Query("max"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "max inválido"})
	}
	out, err := h.uc.SearchByPriceRange(c.Context(), min, max)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// SearchWithFilters godoc
// @Summary      Búsqueda con filtros opcionales (conjunción de los presentes)
// @Tags         productos
// @Produce      json
// @Param        nombre     query  string  false  "Subcadena del nombre"
// @Param        minPrecio  query  number  false  "Precio mínimo"
// @Param        maxPrecio  query  number  false  "Precio máximo"
// @Success      200  {array}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/filtrar [get]
func (h *ProductHandler) SearchWithFilters(c *fiber.Ctx) error {
	var name *string
	if s := c.Query("nombre"); s != "" {
		name = &s
	}
	minPrice, err := optionalDecimal(c, "minPrecio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "minPrecio inválido"})
	}
	maxPrice, err := optionalDecimal(c, "maxPrecio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "maxPrecio inválido"})
	}
	out, err := h.uc.SearchWithFilters(c.Context(), name, minPrice, maxPrice)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// optionalDecimal parsea un query param numérico; ausente devuelve nil (filtro no-op).
func optionalDecimal(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// LowStock godoc
// @Summary      Productos con stock por debajo del umbral
// @Tags         productos
// @Produce      json
// @Param        cantidad  query  int  false  "Umbral"  default(10)
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/productos/stock-bajo [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context(), c.QueryInt("cantidad", 10))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// RecentActive godoc
// @Summary      Los 10 productos activos más recientes
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/productos/ultimos [get]
func (h *ProductHandler) RecentActive(c *fiber.Ctx) error {
	out, err := h.uc.RecentActive(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// AvailableByCategory godoc
// @Summary      Productos disponibles (stock > 0) por nombre de categoría, precio ascendente
// @Tags         productos
// @Produce      json
// @Param        nombre  path  string  true  "Nombre de la categoría"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/productos/categoria/{nombre} [get]
func (h *ProductHandler) AvailableByCategory(c *fiber.Ctx) error {
	out, err := h.uc.AvailableByCategory(c.Context(), c.Params("nombre"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// PageByCategory godoc
// @Summary      Productos de una categoría, paginados
// @Tags         productos
// @Produce      json
// @Param        categoriaId  path   string  true   "ID de la categoría"
// @Param        page         query  int     false  "Página (base 0)"  default(0)
// @Param        size         query  int     false  "Tamaño"           default(20)
// @Param        sort         query  string  false  "Orden campo,dir ej. precio,desc"
// @Success      200  {object}  dto.ProductPageResponse
// @Router       /api/productos/categoria/{categoriaId}/paginado [get]
func (h *ProductHandler) PageByCategory(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page: c.QueryInt("page", 0),
		Size: c.QueryInt("size", 20),
		Sort: c.Query("sort"),
	}
	out, err := h.uc.PageByCategory(c.Context(), c.Params("categoriaId"), page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse  "Categoría inexistente"
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.CategoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y categoriaId son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (reemplazo de nombre, precio, stock y categoría)
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos a sobrescribir"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.CategoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y categoriaId son requeridos"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkAdjustPrice godoc
// @Summary      Ajuste masivo de precios de una categoría (precio = precio * factor)
// @Description  Una sola sentencia set-based contra el almacén; el factor se aplica tal cual.
// @Tags         productos
// @Produce      json
// @Param        categoriaId  path   string  true  "ID de la categoría"
// @Param        factor       query  number  true  "Factor multiplicativo"
// @Success      200  {object}  dto.BulkPriceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/categoria/{categoriaId}/precios [patch]
func (h *ProductHandler) BulkAdjustPrice(c *fiber.Ctx) error {
	factor, err := decimal.NewFromString(c.Query("factor"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "factor inválido"})
	}
	updated, err := h.uc.BulkAdjustPrice(c.Context(), c.Params("categoriaId"), factor)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.BulkPriceResponse{Updated: updated})
}
