package auth

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/directorio-api/internal/domain/policy"
	"github.com/jhoicas/directorio-api/pkg/jwt"
)

// Authenticator decodifica la credencial bearer en un Claim.
// Es puro: solo depende del token y del secreto configurado.
type Authenticator struct {
	secret string
}

// NewAuthenticator construye el autenticador con el secreto HS256.
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: secret}
}

// Authenticate devuelve el claim del token o nil ("sin identidad") ante
// token ausente, malformado, con firma incorrecta, vencido o sin subject.
// Nunca devuelve error: el caller trata nil como anónimo.
func (a *Authenticator) Authenticate(raw string) *policy.Claim {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	claims, err := jwt.Parse(a.secret, raw)
	if err != nil || claims.Subject == "" {
		return nil
	}
	sub := claims.Subject
	// los ids se guardan en forma canónica; un sub en mayúsculas debe coincidir igual
	if id, err := uuid.Parse(sub); err == nil {
		sub = id.String()
	}
	return &policy.Claim{
		Subject: sub,
		Role:    policy.ParseRole(claims.UserType),
	}
}
