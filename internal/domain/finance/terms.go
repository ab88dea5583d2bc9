package finance

import (
	"strconv"
	"strings"
	"time"
)

// DefaultTermsDays aplica cuando el término de pago no trae dígitos
// ("COD", "Prepaid", cadena vacía).
const DefaultTermsDays = 30

// TermsDays extrae los días del término de pago: "Net 45" → 45, "2 weeks" → 2.
// Sin dígitos o no parseable → DefaultTermsDays.
func TermsDays(terms string) int {
	var b strings.Builder
	for _, r := range terms {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	days, err := strconv.Atoi(b.String())
	if err != nil || days == 0 {
		return DefaultTermsDays
	}
	return days
}

// DueDate calcula la fecha de vencimiento: now + días del término.
func DueDate(now time.Time, terms string) time.Time {
	return now.AddDate(0, 0, TermsDays(terms))
}

// Buckets de antigüedad de saldos vencidos.
const (
	BucketCurrent = "0-30"
	BucketMid     = "31-60"
	BucketLate    = "61+"
)

// AgingBucket clasifica un saldo por días transcurridos desde su vencimiento.
// Saldos aún no vencidos caen en "0-30".
func AgingBucket(now, dueDate time.Time) string {
	days := int(now.Sub(dueDate).Hours() / 24)
	switch {
	case days <= 30:
		return BucketCurrent
	case days <= 60:
		return BucketMid
	default:
		return BucketLate
	}
}
