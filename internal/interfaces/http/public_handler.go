package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/application/usecase"
)

// PublicHandler sirve la vista pública de solo lectura (sin autenticación).
type PublicHandler struct {
	uc *usecase.PublicUseCase
}

// NewPublicHandler construye el handler.
func NewPublicHandler(uc *usecase.PublicUseCase) *PublicHandler {
	return &PublicHandler{uc: uc}
}

// View godoc
// @Summary      Ver inventario público de un dueño
// @Tags         public
// @Produce      json
// @Param        ownerId  path  string  true  "ID del dueño"
// @Success      200      {object}  dto.PublicSpoolsResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/public/spools/{ownerId} [get]
func (h *PublicHandler) View(c *fiber.Ctx) error {
	ownerID := c.Params("ownerId")
	if ownerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "ownerId es requerido"})
	}
	out, err := h.uc.View(ownerID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
