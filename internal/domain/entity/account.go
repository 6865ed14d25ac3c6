package entity

import "time"

// Kind discrimina los tres tipos de cuenta. Se persiste en accounts.kind y
// es el valor que viaja como user_type en los tokens.
type Kind string

const (
	KindCompany Kind = "company"
	KindUser    Kind = "user"
	KindManager Kind = "manager"
)

// Valid informa si k es uno de los tipos conocidos.
func (k Kind) Valid() bool {
	switch k {
	case KindCompany, KindUser, KindManager:
		return true
	default:
		return false
	}
}

// Account es la identidad base compartida por Company, User y Manager.
// Username es único entre todos los tipos; un usuario pre-registrado por una
// empresa puede no tenerlo todavía (cadena vacía, NULL en base de datos).
type Account struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt
	FirstName    string
	LastName     string
	Kind         Kind
	RegisteredAt time.Time // se asigna una vez al crear
}
