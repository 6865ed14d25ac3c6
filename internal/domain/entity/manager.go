package entity

// Manager es una cuenta interna con acceso amplio de lectura; no añade campos.
type Manager struct {
	Account
}
