package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-api/internal/application/auth"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	UserUC        *usecase.UserUseCase
	ManagerUC     *usecase.ManagerUseCase
	AuthUC        *auth.AuthUseCase
	Authenticator *auth.Authenticator
	Log           *logger.Logger
}

// Router registra las rutas de la API bajo /user. La identidad se resuelve
// para todas las rutas; cada caso de uso decide si exige una.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/user", IdentityMiddleware(deps.Authenticator))

	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/auth/login", authHandler.Login)

	companies := api.Group("/company")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	companies.Post("/", companyHandler.Create)
	companies.Post("/assign-plan", companyHandler.AssignPlan)
	companies.Post("/by-ids", companyHandler.GetByIDs)
	companies.Get("/:id", companyHandler.GetByID)

	users := api.Group("/user")
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Post("/", userHandler.Register)
	users.Post("/provision", userHandler.Provision)
	users.Post("/companies", userHandler.CompaniesByDocument)
	users.Post("/companies-user", userHandler.CompaniesByUserID)
	users.Get("/:id", userHandler.GetByID)

	managers := api.Group("/manager")
	managerHandler := NewManagerHandler(deps.ManagerUC, deps.Log)
	managers.Post("/", managerHandler.Create)
	managers.Get("/:id", managerHandler.GetByID)

	email := api.Group("/email")
	email.Get("/company", companyHandler.SearchByName)
	email.Get("/validate", userHandler.ValidateEmail)
}
