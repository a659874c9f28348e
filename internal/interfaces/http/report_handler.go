package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// ReportHandler sirve el reporte PDF del catálogo.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CatalogPDF godoc
// @Summary      Reporte PDF del catálogo completo
// @Tags         reportes
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reportes/catalogo [get]
func (h *ReportHandler) CatalogPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.CatalogPDF(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="catalogo.pdf"`)
	return c.Send(pdfBytes)
}
