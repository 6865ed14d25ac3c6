package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/pkg/logger"
)

// UserHandler maneja registro de personas, consultas y vínculos con empresas.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Completar registro de un usuario pre-registrado
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /user/user/ [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Provision godoc
// @Summary      Pre-registrar una persona en una empresa
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ProvisionMemberRequest  true  "Documento y nombre"
// @Success      201   {object}  dto.MembershipResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /user/user/provision [post]
func (h *UserHandler) Provision(c *fiber.Ctx) error {
	var in dto.ProvisionMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Provision(c.UserContext(), GetClaim(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /user/user/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetClaim(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CompaniesByDocument godoc
// @Summary      Empresas de un usuario por documento
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UserDocumentRequest  true  "document_type, document_id"
// @Success      200   {object}  dto.UserCompaniesResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /user/user/companies [post]
func (h *UserHandler) CompaniesByDocument(c *fiber.Ctx) error {
	var in dto.UserDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CompaniesByDocument(c.UserContext(), GetClaim(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CompaniesByUserID godoc
// @Summary      Empresas de un usuario por id
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UserIDRequest  true  "id"
// @Success      200   {object}  dto.UserCompaniesResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /user/user/companies-user [post]
func (h *UserHandler) CompaniesByUserID(c *fiber.Ctx) error {
	var in dto.UserIDRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CompaniesByUserID(c.UserContext(), GetClaim(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ValidateEmail godoc
// @Summary      Verificar que un email pertenece a una empresa
// @Tags         email
// @Produce      json
// @Param        email       query  string  true  "Login del usuario"
// @Param        company_id  query  string  true  "ID de la empresa"
// @Success      200  {object}  dto.UserValidationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /user/email/validate [get]
func (h *UserHandler) ValidateEmail(c *fiber.Ctx) error {
	out, err := h.uc.ValidateEmail(c.UserContext(), c.Query("email"), c.Query("company_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
