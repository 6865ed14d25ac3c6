package dto

import "time"

// CreateManagerRequest entrada para registrar un manager.
type CreateManagerRequest struct {
	Username  string `json:"username" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,max=72"`
	FirstName string `json:"first_name" validate:"required,personname"`
	LastName  string `json:"last_name" validate:"required,personname"`
}

// ManagerResponse salida de un manager.
type ManagerResponse struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	RegistrationDate time.Time `json:"registration_date"`
}
