package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ExportHandler maneja la exportación del catálogo (protegido).
type ExportHandler struct {
	uc  *usecase.ExportUseCase
	log *logger.Logger
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase, log *logger.Logger) *ExportHandler {
	return &ExportHandler{uc: uc, log: log}
}

// CatalogPDF godoc
// @Summary      Exportar el catálogo completo como PDF
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/products/export/pdf [get]
func (h *ExportHandler) CatalogPDF(c *fiber.Ctx) error {
	doc, err := h.uc.ProductCatalogPDF(c.Context())
	if err != nil {
		return catalogError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogo.pdf"`)
	return c.Send(doc)
}
