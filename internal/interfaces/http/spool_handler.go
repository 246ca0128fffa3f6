package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/application/usecase"
	"github.com/jcamargo/filamentario-api/internal/domain/repository"
)

// SpoolHandler maneja las peticiones HTTP para los carretes (protegido).
// GET /api/spools despacha también la exportación (?export=csv|json) y
// POST /api/spools la importación masiva (?import=csv|json).
type SpoolHandler struct {
	uc     *usecase.SpoolUseCase
	batch  *usecase.BatchUseCase
	bulk   *usecase.ImportExportUseCase
	report *usecase.ReportUseCase
}

// NewSpoolHandler construye el handler.
func NewSpoolHandler(uc *usecase.SpoolUseCase, batch *usecase.BatchUseCase, bulk *usecase.ImportExportUseCase, report *usecase.ReportUseCase) *SpoolHandler {
	return &SpoolHandler{uc: uc, batch: batch, bulk: bulk, report: report}
}

func scopeFrom(c *fiber.Ctx) repository.Scope {
	return repository.Scope{OwnerID: GetOwnerID(c)}
}

// List godoc
// @Summary      Listar carretes (o exportar con ?export=csv|json)
// @Tags         spools
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Param        export  query  string  false  "Formato de exportación: csv o json"
// @Success      200     {object}  dto.SpoolListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/spools [get]
func (h *SpoolHandler) List(c *fiber.Ctx) error {
	scope := scopeFrom(c)
	switch c.Query("export") {
	case "csv":
		out, err := h.bulk.ExportCSV(scope)
		if err != nil {
			return mapDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="spools.csv"`)
		return c.SendString(out)
	case "json":
		out, err := h.bulk.ExportJSON(scope)
		if err != nil {
			return mapDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="spools.json"`)
		return c.Send(out)
	case "":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "export debe ser csv o json"})
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(scope, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear carrete (o importar lote con ?import=csv|json)
// @Tags         spools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        import  query  string  false  "Formato de importación: csv o json"
// @Param        body    body   dto.CreateSpoolRequest  true  "Datos del carrete"
// @Success      201     {object}  dto.SpoolResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/spools [post]
func (h *SpoolHandler) Create(c *fiber.Ctx) error {
	scope := scopeFrom(c)
	switch c.Query("import") {
	case "csv":
		var in dto.ImportCSVRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		out, err := h.bulk.ImportCSV(scope, in.CSVData)
		if err != nil {
			return mapDomainError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	case "json":
		var in dto.ImportJSONRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		out, err := h.bulk.ImportJSON(scope, in.JSONData)
		if err != nil {
			return mapDomainError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	case "":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "import debe ser csv o json"})
	}

	var in dto.CreateSpoolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(scope, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener carrete por ID
// @Tags         spools
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del carrete"
// @Success      200  {object}  dto.SpoolResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spools/{id} [get]
func (h *SpoolHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.GetByID(scopeFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "carrete no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar carrete (parcial)
// @Tags         spools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del carrete"
// @Param        body  body  dto.UpdateSpoolRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SpoolResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/spools/{id} [put]
func (h *SpoolHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	var in dto.UpdateSpoolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(scopeFrom(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "carrete no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar carrete (idempotente)
// @Tags         spools
// @Security     Bearer
// @Param        id  path  int  true  "ID del carrete"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/spools/{id} [delete]
func (h *SpoolHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if err := h.uc.Delete(scopeFrom(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BatchUpdate godoc
// @Summary      Aplicar el mismo patch a varios carretes
// @Tags         spools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchUpdateRequest  true  "ids + updates"
// @Success      200   {object}  dto.BatchUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/spools/batch [patch]
func (h *SpoolHandler) BatchUpdate(c *fiber.Ctx) error {
	var in dto.BatchUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.batch.Update(scopeFrom(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// BatchDelete godoc
// @Summary      Borrar varios carretes
// @Tags         spools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchDeleteRequest  true  "ids"
// @Success      200   {object}  dto.BatchDeleteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/spools/batch [delete]
func (h *SpoolHandler) BatchDelete(c *fiber.Ctx) error {
	var in dto.BatchDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.batch.Delete(scopeFrom(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Descargar reporte PDF del inventario
// @Tags         spools
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spools/report [get]
func (h *SpoolHandler) Report(c *fiber.Ctx) error {
	out, err := h.report.InventoryPDF(scopeFrom(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(out)
}
