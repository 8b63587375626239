package helper

import (
	"fmt"
	"strings"
	"time"
)

// Formatos que manda la app móvil. SQLite en el teléfono guarda ISO-8601
// con o sin hora, y a veces con fracción de segundos.
var formatosISO = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

const (
	FormatoFecha     = "2006-01-02"
	FormatoFechaHora = "2006-01-02T15:04:05"
)

// ParseFechaISO acepta cualquier variante ISO-8601 razonable.
func ParseFechaISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	for _, layout := range formatosISO {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
}

// SoloFecha trunca al inicio del día (resolución de los LWW por fecha).
func SoloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func FormatFecha(t time.Time) string {
	return t.Format(FormatoFecha)
}

func FormatFechaHora(t time.Time) string {
	return t.Format(FormatoFechaHora)
}

// FormatFechaPtr: nil si es nil o zero (las columnas DATE nullable viajan como null).
func FormatFechaPtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(FormatoFecha)
	return &s
}

func FormatFechaHoraPtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(FormatoFechaHora)
	return &s
}
