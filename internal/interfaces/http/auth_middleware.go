package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-api/internal/application/auth"
	"github.com/jhoicas/directorio-api/internal/domain/policy"
)

// LocalClaim clave en c.Locals del claim autenticado.
const LocalClaim = "claim"

// LegacyTokenHeader header alternativo que usan clientes antiguos (token crudo, sin "Bearer").
const LegacyTokenHeader = "token"

// IdentityMiddleware resuelve la identidad del caller y la deja en Locals.
// Nunca rechaza: sin token o con token inválido la petición sigue como anónima
// y es la política de cada operación la que decide (401 o acceso público).
func IdentityMiddleware(authn *auth.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claim := authn.Authenticate(rawToken(c)); claim != nil {
			c.Locals(LocalClaim, claim)
		}
		return c.Next()
	}
}

// rawToken extrae el token de "Authorization: Bearer <t>"; con otro esquema
// (Basic de un proxy, por ejemplo) o sin Authorization usa el header legacy.
func rawToken(c *fiber.Ctx) string {
	if h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(c.Get(LegacyTokenHeader))
}

// GetClaim devuelve el claim del contexto o nil si la petición es anónima.
func GetClaim(c *fiber.Ctx) *policy.Claim {
	claim, _ := c.Locals(LocalClaim).(*policy.Claim)
	return claim
}
