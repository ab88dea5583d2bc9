// Package persist contiene el adaptador de persistencia: el snapshot
// completo del store se serializa a un único slot fijo en Redis en cada
// commit (write-behind) y se rehidrata al arrancar. La durabilidad es de
// mejor esfuerzo: un fallo de escritura se loguea y se ignora.
package persist

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/aeroparts-api/internal/store"
	"github.com/jhoicas/aeroparts-api/pkg/logger"
)

// StateKey es el slot fijo donde vive el snapshot completo.
const StateKey = "aeroparts:state"

// SnapshotStore es el puerto de persistencia del snapshot. Load retorna
// (nil, nil) cuando el slot no existe.
type SnapshotStore interface {
	Load(ctx context.Context) (*store.State, error)
	Save(ctx context.Context, st store.State) error
}

// RedisStore persiste el snapshot en un único key de Redis, sin TTL.
type RedisStore struct {
	client *redis.Client
}

// Asegura que RedisStore implementa el puerto.
var _ SnapshotStore = (*RedisStore)(nil)

// NewRedisStore construye el adaptador con el cliente.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load lee y parsea el slot. Slot ausente → (nil, nil); payload corrupto →
// error (el caller arranca con el estado vacío por defecto).
func (r *RedisStore) Load(ctx context.Context) (*store.State, error) {
	data, err := r.client.Get(ctx, StateKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	st, err := decodeState(data)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Save serializa y escribe el snapshot completo en el slot.
func (r *RedisStore) Save(ctx context.Context, st store.State) error {
	data, err := encodeState(st)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, StateKey, data, 0).Err()
}

// LoadInitial rehidrata el estado inicial: slot ausente o corrupto produce
// el estado vacío por defecto (colecciones vacías, contadores en 1), nunca
// un error hacia arriba.
func LoadInitial(ctx context.Context, ss SnapshotStore, log *logger.Logger) store.State {
	st, err := ss.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("snapshot persistido ilegible; arrancando con estado vacío")
		return store.NewState()
	}
	if st == nil {
		log.Info().Msg("sin snapshot persistido; arrancando con estado vacío")
		return store.NewState()
	}
	log.Info().
		Int("parts", len(st.Parts)).
		Int("quotes", len(st.Quotes)).
		Int("invoices", len(st.Invoices)).
		Int("purchase_orders", len(st.PurchaseOrders)).
		Msg("estado rehidratado desde persistencia")
	return *st
}
