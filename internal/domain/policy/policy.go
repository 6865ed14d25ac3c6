// Package policy decide quién puede ver, asociar o modificar cada registro.
//
// Es una tabla de decisión pura: no consulta la base de datos. Los hechos que
// requieren datos (pertenencia, id del usuario resuelto) los aporta el caller
// en Target. La evaluación siempre sigue el mismo orden:
//
//  1. sin identidad            -> authentication required (401)
//  2. rol fuera del conjunto   -> not authorized (403, mensaje de la operación)
//  3. chequeo de propiedad     -> not authorized (403, mensaje específico)
package policy

import (
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// Role es el rol que trae el token. Cualquier valor no reconocido es RoleUnknown.
type Role string

const (
	RoleCompany Role = Role(entity.KindCompany)
	RoleUser    Role = Role(entity.KindUser)
	RoleManager Role = Role(entity.KindManager)
	RoleUnknown Role = "unknown"
)

// ParseRole normaliza el claim user_type.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleCompany, RoleUser, RoleManager:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// Claim es la identidad decodificada de la credencial del caller.
// Un *Claim nil significa anónimo.
type Claim struct {
	Subject string
	Role    Role
}

// Operation identifica una operación protegida.
type Operation int

const (
	OpViewCompany Operation = iota
	OpViewUser
	OpViewManager
	OpUserCompanies
	OpAssignPlan
	OpProvisionMember
)

// Target son los hechos sobre el recurso que necesita el chequeo fino.
type Target struct {
	// ID del recurso (empresa o usuario) tal como lo pidió el caller.
	ID string
	// IsMember: existe una Membership (claim.Subject como empresa, ID como usuario).
	IsMember bool
}

type rule struct {
	roles      []Role
	roleDenied string
	// owner devuelve "" si el chequeo fino pasa o el mensaje de denegación.
	owner func(c *Claim, t Target) string
}

var rules = map[Operation]rule{
	OpViewCompany: {
		roles:      []Role{RoleManager, RoleCompany},
		roleDenied: "not authorized to view companies",
		owner: func(c *Claim, t Target) string {
			if c.Role == RoleCompany && c.Subject != t.ID {
				return "not authorized to view this company"
			}
			return ""
		},
	},
	OpViewUser: {
		roles:      []Role{RoleManager, RoleCompany},
		roleDenied: "not authorized to view users",
		owner: func(c *Claim, t Target) string {
			if c.Role == RoleCompany && !t.IsMember {
				return "not authorized to view this user"
			}
			return ""
		},
	},
	OpViewManager: {
		roles:      []Role{RoleManager},
		roleDenied: "not authorized to view manager details",
	},
	OpUserCompanies: {
		roles:      []Role{RoleUser, RoleManager},
		roleDenied: "not authorized to view user companies",
		owner: func(c *Claim, t Target) string {
			if c.Role == RoleUser && c.Subject != t.ID {
				return "not authorized to view this user's companies"
			}
			return ""
		},
	},
	OpAssignPlan: {
		roles:      []Role{RoleCompany},
		roleDenied: "not authorized to assign plans",
		owner: func(c *Claim, t Target) string {
			if c.Subject != t.ID {
				return "not authorized to assign a plan to this company"
			}
			return ""
		},
	},
	OpProvisionMember: {
		roles:      []Role{RoleManager, RoleCompany},
		roleDenied: "not authorized to provision members",
		owner: func(c *Claim, t Target) string {
			if c.Role == RoleCompany && c.Subject != t.ID {
				return "not authorized to provision members for this company"
			}
			return ""
		},
	},
}

// RequireRole es la primera fase: identidad presente y rol dentro del
// conjunto permitido para op. No necesita datos del recurso.
func RequireRole(op Operation, c *Claim) error {
	if c == nil || c.Subject == "" {
		return domain.AuthenticationRequired()
	}
	r, ok := rules[op]
	if !ok {
		return domain.Forbidden("operation not allowed")
	}
	for _, allowed := range r.roles {
		if c.Role == allowed {
			return nil
		}
	}
	return domain.Forbidden(r.roleDenied)
}

// Authorize evalúa la regla completa de op contra el recurso t.
func Authorize(op Operation, c *Claim, t Target) error {
	if err := RequireRole(op, c); err != nil {
		return err
	}
	if r := rules[op]; r.owner != nil {
		if reason := r.owner(c, t); reason != "" {
			return domain.Forbidden(reason)
		}
	}
	return nil
}
