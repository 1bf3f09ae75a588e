package catalog

import (
	"strconv"
	"strings"
)

// Money is an amount in centavos.
type Money int64

// String formats the amount the Brazilian way, e.g. "R$ 1.234,56".
func (m Money) String() string {
	return "R$ " + m.Plain()
}

// Plain formats the amount without the currency symbol, e.g. "150,00".
func (m Money) Plain() string {
	neg := m < 0
	v := int64(m)
	if neg {
		v = -v
	}
	whole := strconv.FormatInt(v/100, 10)
	cents := v % 100

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(whole) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(whole[:lead])
	for i := lead; i < len(whole); i += 3 {
		b.WriteByte('.')
		b.WriteString(whole[i : i+3])
	}
	b.WriteByte(',')
	if cents < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(cents, 10))
	return b.String()
}

// Status is the payment state of a reservation.
type Status string

const (
	StatusPartial   Status = "Parcial"
	StatusPaid      Status = "Pago"
	StatusCancelled Status = "Cancelado"
)

// Known reports whether s is one of the defined statuses.
func (s Status) Known() bool {
	switch s {
	case StatusPartial, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}
