package entity

import "time"

// Company es la cuenta de una organización cliente.
type Company struct {
	Account
	Name        string
	Greeting    *string
	Farewell    *string
	BirthDate   time.Time // fecha de nacimiento de quien registra; nunca futura
	PhoneNumber string
	Country     string
	City        string
	PlanID      *string
}
