package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aeroparts-api/internal/store"
)

// StateHandler expone el snapshot completo del estado (lectura consistente:
// todas las colecciones y contadores de un mismo commit).
type StateHandler struct {
	store *store.Store
}

// NewStateHandler construye el handler.
func NewStateHandler(s *store.Store) *StateHandler {
	return &StateHandler{store: s}
}

// Snapshot GET /api/state
func (h *StateHandler) Snapshot(c *fiber.Ctx) error {
	return c.JSON(h.store.Snapshot())
}
