package liquidacion

import (
	"fmt"
	"time"
)

// All reporting windows are whole-day boundaries in UTC, matching how sale
// timestamps are stored.

var mesesLargos = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var mesesCortos = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// RangoSemana returns the Monday 00:00:00 — Sunday 23:59:59.999 window of the
// week containing ahora.
func RangoSemana(ahora time.Time) (inicio, fin time.Time) {
	ahora = ahora.UTC()
	// Monday-based offset: Sunday counts as the 7th day of the running week.
	retroceso := (int(ahora.Weekday()) + 6) % 7
	inicio = time.Date(ahora.Year(), ahora.Month(), ahora.Day()-retroceso, 0, 0, 0, 0, time.UTC)
	fin = inicio.AddDate(0, 0, 7).Add(-time.Millisecond)
	return inicio, fin
}

// RangoMes returns the first and last instant of the given calendar month.
func RangoMes(anio int, mes time.Month) (inicio, fin time.Time) {
	inicio = time.Date(anio, mes, 1, 0, 0, 0, 0, time.UTC)
	fin = inicio.AddDate(0, 1, 0).Add(-time.Millisecond)
	return inicio, fin
}

// InicioDia normalizes a calendar date to 00:00:00.000 UTC.
func InicioDia(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// FinDia normalizes a calendar date to 23:59:59.999 UTC, so date-bounded
// filters are inclusive of the whole last day.
func FinDia(d time.Time) time.Time {
	return InicioDia(d).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// EtiquetaMes renders a month in the business's display locale: "enero 2026".
func EtiquetaMes(anio int, mes time.Month) string {
	return fmt.Sprintf("%s %d", mesesLargos[mes-1], anio)
}

// FormatearFecha renders a date as "2 ene 2026".
func FormatearFecha(d time.Time) string {
	return fmt.Sprintf("%d %s %d", d.Day(), mesesCortos[d.Month()-1], d.Year())
}

// EtiquetaRango labels an inclusive date range: a single date when both
// bounds fall on the same day, otherwise "desde → hasta".
func EtiquetaRango(desde, hasta time.Time) string {
	if InicioDia(desde).Equal(InicioDia(hasta)) {
		return FormatearFecha(desde)
	}
	return FormatearFecha(desde) + " → " + FormatearFecha(hasta)
}

// etiquetaSemana numbers the week within its month from the Monday the week
// starts on: "Semana 1" through "Semana 5".
func etiquetaSemana(inicio time.Time) string {
	return fmt.Sprintf("Semana %d", (inicio.Day()+6)/7)
}
