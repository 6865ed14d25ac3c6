package dto

import "time"

// RegisterUserRequest registro de una persona pre-registrada por una empresa.
type RegisterUserRequest struct {
	Username     string `json:"username" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,max=72"`
	FirstName    string `json:"first_name" validate:"required,personname"`
	LastName     string `json:"last_name" validate:"required,personname"`
	BirthDate    string `json:"birth_date" validate:"required,datetime=2006-01-02,notfuture"`
	PhoneNumber  string `json:"phone_number" validate:"required,max=30"`
	DocumentType string `json:"document_type" validate:"required,max=50"`
	DocumentID   string `json:"document_id" validate:"required,max=50"`
	Importance   int    `json:"importance" validate:"min=1,max=10"`
	AllowCall    bool   `json:"allow_call"`
	AllowSMS     bool   `json:"allow_sms"`
	AllowEmail   bool   `json:"allow_email"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	DocumentType     string    `json:"document_type"`
	DocumentID       string    `json:"document_id"`
	BirthDate        *string   `json:"birth_date,omitempty"`
	PhoneNumber      string    `json:"phone_number"`
	Importance       int       `json:"importance"`
	AllowCall        bool      `json:"allow_call"`
	AllowSMS         bool      `json:"allow_sms"`
	AllowEmail       bool      `json:"allow_email"`
	RegistrationDate time.Time `json:"registration_date"`
}

// UserDocumentRequest identifica a un usuario por documento.
type UserDocumentRequest struct {
	DocumentType string `json:"document_type" validate:"required,max=50"`
	DocumentID   string `json:"document_id" validate:"required,max=50"`
}

// UserIDRequest identifica a un usuario por id.
type UserIDRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

// UserCompaniesResponse empresas vinculadas a un usuario, en orden de vinculación.
type UserCompaniesResponse struct {
	UserID    string            `json:"user_id"`
	Companies []CompanyResponse `json:"companies"`
}

// ProvisionMemberRequest pre-registra a una persona en una empresa.
// CompanyID es opcional para tokens de empresa (se usa el subject).
type ProvisionMemberRequest struct {
	CompanyID    string `json:"company_id" validate:"omitempty,uuid"`
	DocumentType string `json:"document_type" validate:"required,max=50"`
	DocumentID   string `json:"document_id" validate:"required,max=50"`
	FirstName    string `json:"first_name" validate:"required,personname"`
	LastName     string `json:"last_name" validate:"required,personname"`
}

// MembershipResponse vínculo creado o existente.
type MembershipResponse struct {
	CompanyID    string    `json:"company_id"`
	UserID       string    `json:"user_id"`
	DocumentType string    `json:"document_type"`
	DocumentID   string    `json:"document_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserValidationResponse confirma que un email pertenece a una empresa.
type UserValidationResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
}
