package persist

import (
	"context"
	"time"

	"github.com/jhoicas/aeroparts-api/internal/store"
	"github.com/jhoicas/aeroparts-api/pkg/logger"
)

// saveTimeout máximo por escritura del snapshot.
const saveTimeout = 5 * time.Second

// Writer es el worker write-behind: recibe cada snapshot confirmado y lo
// persiste en segundo plano. El canal guarda solo el último snapshot
// pendiente (latest-wins): escribir el estado N habiendo saltado el N-1 es
// equivalente, porque cada snapshot es completo. Un commit nunca espera ni
// se entera de un fallo de persistencia.
type Writer struct {
	snapshots SnapshotStore
	log       *logger.Logger
	pending   chan store.State
	done      chan struct{}
}

// NewWriter construye el worker. Llamar Run en una goroutine y registrar
// Enqueue como observador del store.
func NewWriter(snapshots SnapshotStore, log *logger.Logger) *Writer {
	return &Writer{
		snapshots: snapshots,
		log:       log,
		pending:   make(chan store.State, 1),
		done:      make(chan struct{}),
	}
}

// Enqueue encola un snapshot sin bloquear: si ya había uno pendiente se
// descarta en favor del más reciente.
func (w *Writer) Enqueue(st store.State) {
	for {
		select {
		case w.pending <- st:
			return
		default:
			select {
			case <-w.pending: // descarta el pendiente anterior
			default:
			}
		}
	}
}

// Run consume snapshots hasta que el contexto se cancele; antes de salir
// drena el último pendiente para no perder el estado final.
func (w *Writer) Run(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case st := <-w.pending:
			w.save(st)
		case <-ctx.Done():
			select {
			case st := <-w.pending:
				w.save(st)
			default:
			}
			return
		}
	}
}

// Wait bloquea hasta que Run haya terminado (para el apagado ordenado).
func (w *Writer) Wait() {
	<-w.done
}

func (w *Writer) save(st store.State) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := w.snapshots.Save(ctx, st); err != nil {
		// Durabilidad de mejor esfuerzo: se loguea y se sigue.
		w.log.Error().Err(err).Msg("fallo al persistir snapshot")
		return
	}
	w.log.Debug().Msg("snapshot persistido")
}
