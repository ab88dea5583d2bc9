// Package workflow contiene el motor de transiciones entre documentos: las
// tres operaciones que convierten un documento en otro y actualizan los
// libros dependientes (inventario, cuentas por pagar/cobrar) como una sola
// transacción lógica sobre el snapshot del store.
package workflow

import (
	"github.com/jhoicas/aeroparts-api/internal/store"
	"github.com/jhoicas/aeroparts-api/pkg/logger"
)

// Ubicación por defecto de los lotes creados al recibir una orden de compra.
const defaultLocation = "Main Warehouse"

// Engine ejecuta las transiciones del workflow. Cada transición es un único
// Commit: o se aplican todas sus mutaciones o ninguna.
type Engine struct {
	store *store.Store
	log   *logger.Logger
}

// NewEngine construye el motor.
func NewEngine(s *store.Store, log *logger.Logger) *Engine {
	return &Engine{store: s, log: log}
}
