package store

import (
	"fmt"

	"github.com/google/uuid"
)

// Prefijos de numeración de documentos.
const (
	QuotePrefix   = "QT"
	InvoicePrefix = "INV"
	POPrefix      = "PO"
)

// NewID genera un identificador opaco único (UUID v4).
func NewID() string {
	return uuid.New().String()
}

// FormatSequence formatea un número de documento: QT-0001, INV-0042, PO-0137.
// Relleno a 4 dígitos; a partir de 10000 no se vuelve a rellenar.
func FormatSequence(prefix string, n int) string {
	return fmt.Sprintf("%s-%04d", prefix, n)
}

// NextQuoteNumber asigna el siguiente número de cotización e incrementa el
// contador. Debe llamarse dentro del Commit que crea el documento; el número
// nunca se reusa aunque el documento se borre después.
func (st *State) NextQuoteNumber() string {
	n := FormatSequence(QuotePrefix, st.NextQuoteSeq)
	st.NextQuoteSeq++
	return n
}

// NextInvoiceNumber asigna el siguiente número de factura e incrementa el contador.
func (st *State) NextInvoiceNumber() string {
	n := FormatSequence(InvoicePrefix, st.NextInvoiceSeq)
	st.NextInvoiceSeq++
	return n
}

// NextPONumber asigna el siguiente número de orden de compra e incrementa el contador.
func (st *State) NextPONumber() string {
	n := FormatSequence(POPrefix, st.NextPOSeq)
	st.NextPOSeq++
	return n
}
