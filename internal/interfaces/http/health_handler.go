package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-api/pkg/logger"
)

// Pinger comprueba que el almacenamiento responde (*pgxpool.Pool lo cumple).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler expone liveness y readiness.
type HealthHandler struct {
	service string
	db      Pinger
	log     *logger.Logger
}

// NewHealthHandler construye el handler. db puede ser nil (driver en memoria).
func NewHealthHandler(service string, db Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{service: service, db: db, log: log}
}

// Live responde siempre 200 mientras el proceso esté vivo.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}

// Ready responde 503 si la base de datos no contesta en 2s.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.log.Warn().Err(err).Msg("readiness: base de datos no disponible")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "database": "down"})
		}
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
