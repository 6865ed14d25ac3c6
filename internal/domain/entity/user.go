package entity

import "time"

// Rango permitido para User.Importance.
const (
	MinImportance = 1
	MaxImportance = 10
)

// Document es la identidad documental (tipo, número) de una persona.
// Es única entre usuarios y es la clave con la que las empresas pre-registran.
type Document struct {
	Type string
	ID   string
}

// User es la cuenta de una persona final atendida por una o más empresas.
type User struct {
	Account
	Document    Document
	BirthDate   *time.Time // nil mientras el usuario solo está pre-registrado
	PhoneNumber string
	Importance  int
	AllowCall   bool
	AllowSMS    bool
	AllowEmail  bool
}

// Registered informa si la persona ya completó su registro (tiene login).
func (u *User) Registered() bool {
	return u.Username != ""
}
