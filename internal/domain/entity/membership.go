package entity

import "time"

// Membership vincula un User con una Company a través de su documento.
// Clave natural: (CompanyID, UserID, Document.Type, Document.ID). El documento
// debe coincidir con el del User para que el vínculo habilite su registro.
type Membership struct {
	CompanyID string
	UserID    string
	Document  Document
	CreatedAt time.Time
}
