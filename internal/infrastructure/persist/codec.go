package persist

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/aeroparts-api/internal/store"
)

// encodeState serializa el snapshot completo a JSON (el mismo payload que
// exponen los endpoints de lectura).
func encodeState(st store.State) ([]byte, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("serializar snapshot: %w", err)
	}
	return data, nil
}

// decodeState parsea un snapshot persistido. Un payload corrupto retorna
// error; el caller decide el fallback (estado vacío por defecto).
// Contadores en 0 (snapshots de versiones viejas) se normalizan a 1.
func decodeState(data []byte) (store.State, error) {
	st := store.NewState()
	if err := json.Unmarshal(data, &st); err != nil {
		return store.State{}, fmt.Errorf("parsear snapshot: %w", err)
	}
	if st.NextQuoteSeq < 1 {
		st.NextQuoteSeq = 1
	}
	if st.NextInvoiceSeq < 1 {
		st.NextInvoiceSeq = 1
	}
	if st.NextPOSeq < 1 {
		st.NextPOSeq = 1
	}
	return st, nil
}
