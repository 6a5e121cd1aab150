package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// catalogError mapea los errores de dominio del catálogo a HTTP con los
// mensajes de usuario fijos; cualquier otro error se loguea y responde 500
// genérico sin filtrar detalles internos.
func catalogError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: catalog.MsgRecordInvalid})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: catalog.MsgRecordNotExists})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: catalog.MsgRecordExists})
	case errors.Is(err, domain.ErrCategoryMissing):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CATEGORY_MISSING", Message: catalog.MsgCategoryMissing})
	case errors.Is(err, domain.ErrInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_USE", Message: catalog.MsgRecordInUse})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error procesando petición")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: catalog.MsgErrorProcessing})
	}
}

// conflictResponse arma el cuerpo 409 a partir del reporte de concurrencia.
func conflictResponse(c *fiber.Ctx, report *catalog.ConflictReport) error {
	return c.Status(fiber.StatusConflict).JSON(dto.ConflictResponse{
		Code:     "CONCURRENCY_CONFLICT",
		Messages: report.Messages,
		Version:  report.CurrentVersion,
	})
}
