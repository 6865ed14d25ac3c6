package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/pkg/logger"
)

// ManagerHandler maneja el recurso Manager.
type ManagerHandler struct {
	uc  *usecase.ManagerUseCase
	log *logger.Logger
}

// NewManagerHandler construye el handler.
func NewManagerHandler(uc *usecase.ManagerUseCase, log *logger.Logger) *ManagerHandler {
	return &ManagerHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar manager
// @Tags         managers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateManagerRequest  true  "Datos del manager"
// @Success      201   {object}  dto.ManagerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /user/manager/ [post]
func (h *ManagerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManagerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener manager por ID
// @Tags         managers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del manager"
// @Success      200  {object}  dto.ManagerResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /user/manager/{id} [get]
func (h *ManagerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetClaim(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
