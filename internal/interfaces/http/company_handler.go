package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/pkg/logger"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	log *logger.Logger
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /user/company/ [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
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
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /user/company/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetClaim(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// AssignPlan godoc
// @Summary      Asignar plan a la empresa del token
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AssignPlanRequest  true  "company_id, plan_id"
// @Success      200   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /user/company/assign-plan [post]
func (h *CompanyHandler) AssignPlan(c *fiber.Ctx) error {
	var in dto.AssignPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AssignPlan(c.UserContext(), GetClaim(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByIDs godoc
// @Summary      Empresas por lote de ids
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompaniesByIDsRequest  true  "ids"
// @Success      200   {array}   dto.CompanySummary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /user/company/by-ids [post]
func (h *CompanyHandler) GetByIDs(c *fiber.Ctx) error {
	var in dto.CompaniesByIDsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.GetByIDs(c.UserContext(), in.IDs)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SearchByName godoc
// @Summary      Buscar empresa por nombre
// @Tags         email
// @Produce      json
// @Param        name  query  string  true  "Nombre exacto (sin distinguir mayúsculas)"
// @Success      200   {object}  dto.CompanySummary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /user/email/company [get]
func (h *CompanyHandler) SearchByName(c *fiber.Ctx) error {
	out, err := h.uc.SearchByName(c.UserContext(), c.Query("name"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
