package dto

import "time"

// CreateCompanyRequest entrada para registrar una empresa.
type CreateCompanyRequest struct {
	Username    string  `json:"username" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,max=72"`
	FirstName   string  `json:"first_name" validate:"required,personname"`
	LastName    string  `json:"last_name" validate:"required,personname"`
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Greeting    *string `json:"greeting" validate:"omitempty,max=500"`
	Farewell    *string `json:"farewell" validate:"omitempty,max=500"`
	BirthDate   string  `json:"birth_date" validate:"required,datetime=2006-01-02,notfuture"`
	PhoneNumber string  `json:"phone_number" validate:"required,max=30"`
	Country     string  `json:"country" validate:"required,max=100"`
	City        string  `json:"city" validate:"required,max=100"`
}

// CompanyResponse salida de una empresa (sin password).
type CompanyResponse struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Name             string    `json:"name"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Greeting         *string   `json:"greeting,omitempty"`
	Farewell         *string   `json:"farewell,omitempty"`
	BirthDate        string    `json:"birth_date"`
	PhoneNumber      string    `json:"phone_number"`
	Country          string    `json:"country"`
	City             string    `json:"city"`
	PlanID           *string   `json:"plan_id,omitempty"`
	RegistrationDate time.Time `json:"registration_date"`
}

// CompanySummary par id/nombre usado en búsquedas y lotes.
type CompanySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompaniesByIDsRequest lote ordenado de ids de empresa.
type CompaniesByIDsRequest struct {
	IDs []string `json:"ids"`
}

// AssignPlanRequest asigna un plan a la empresa del token.
type AssignPlanRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
	PlanID    string `json:"plan_id" validate:"required,max=100"`
}
