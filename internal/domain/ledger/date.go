package ledger

import (
	"fmt"
	"time"
)

// DateFormat formato ISO-8601 usado para fechas civiles.
const DateFormat = "2006-01-02"

// Date es una fecha civil (sin hora ni zona). Se obtiene convirtiendo un instante a una zona
// concreta con DateOf; dos instantes del mismo día local producen el mismo Date.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate devuelve la fecha normalizada (ej. 32 de enero -> 1 de febrero).
func NewDate(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{year: y, month: m, day: d}
}

// DateOf convierte el instante t a loc y devuelve su fecha de calendario.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate lee una fecha en formato YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return NewDate(t.Date()), nil
}

// IsZero, String, Before y After: accesores de una línea sobre la fecha civil.
// String usa DateFormat.
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) String() string     { return d.Time(time.UTC).Format(DateFormat) }
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// AddDays suma n días (n puede ser negativo).
func (d Date) AddDays(n int) Date {
	return NewDate(d.year, d.month, d.day+n)
}

// Compare devuelve -1, 0 o +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

// Time devuelve la medianoche de la fecha en loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
