package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/application/usecase"
)

// SharingHandler administra las reglas de compartición del dueño autenticado.
type SharingHandler struct {
	uc *usecase.SharingUseCase
}

// NewSharingHandler construye el handler.
func NewSharingHandler(uc *usecase.SharingUseCase) *SharingHandler {
	return &SharingHandler{uc: uc}
}

// Get godoc
// @Summary      Ver reglas de compartición
// @Tags         sharing
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SharingRulesResponse
// @Router       /api/sharing [get]
func (h *SharingHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetOwnerID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Put godoc
// @Summary      Reemplazar reglas de compartición
// @Tags         sharing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PutSharingRequest  true  "Conjunto completo de reglas"
// @Success      200   {object}  dto.SharingRulesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sharing [put]
func (h *SharingHandler) Put(c *fiber.Ctx) error {
	var in dto.PutSharingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Put(GetOwnerID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
