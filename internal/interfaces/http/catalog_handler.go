package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/application/usecase"
	"github.com/jcamargo/filamentario-api/internal/domain/entity"
)

// CatalogHandler maneja los cinco catálogos compartidos. El kind se resuelve
// del segmento plural de la ruta (/api/manufacturers, /api/materials, ...).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func catalogKind(c *fiber.Ctx) (entity.CatalogKind, bool) {
	parts := strings.Split(strings.Trim(c.Path(), "/"), "/")
	if len(parts) < 2 {
		return "", false
	}
	return entity.ParseCatalogKind(parts[1])
}

// List godoc
// @Summary      Listar valores de un catálogo
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /api/{catalog} [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	kind, ok := catalogKind(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "catálogo desconocido"})
	}
	out, err := h.uc.List(kind)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear valor de catálogo (o importar lote con ?import=csv)
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        import  query  string  false  "Formato de importación: csv"
// @Param        body    body   dto.CreateCatalogItemRequest  true  "Datos del valor"
// @Success      201     {object}  dto.CatalogItemResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/{catalog} [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	kind, ok := catalogKind(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "catálogo desconocido"})
	}
	switch c.Query("import") {
	case "csv":
		var in dto.ImportCSVRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		out, err := h.uc.ImportCSV(kind, in.CSVData)
		if err != nil {
			return mapDomainError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	case "":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "import debe ser csv"})
	}

	var in dto.CreateCatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(kind, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar valor de catálogo
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del valor"
// @Param        body  body  dto.UpdateCatalogItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CatalogItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/{catalog}/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	kind, ok := catalogKind(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "catálogo desconocido"})
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	var in dto.UpdateCatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(kind, id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "valor de catálogo no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar valor de catálogo (falla si está en uso)
// @Tags         catalogs
// @Security     Bearer
// @Param        id  path  int  true  "ID del valor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/{catalog}/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	kind, ok := catalogKind(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "catálogo desconocido"})
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if err := h.uc.Delete(kind, id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
