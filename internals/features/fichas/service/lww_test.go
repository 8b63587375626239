package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fecha(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func TestGanaMovil(t *testing.T) {
	t.Run("movil mas reciente gana", func(t *testing.T) {
		assert.True(t, GanaMovil(fecha(2024, 3, 5), fecha(2024, 1, 10)))
	})

	t.Run("servidor mas reciente gana", func(t *testing.T) {
		assert.False(t, GanaMovil(fecha(2024, 1, 10), fecha(2024, 3, 5)))
	})

	t.Run("mismo dia gana el servidor", func(t *testing.T) {
		// La comparación es por fecha: misma fecha con horas distintas empata
		// y el empate favorece al servidor.
		m := time.Date(2024, 3, 5, 23, 59, 0, 0, time.Local)
		s := time.Date(2024, 3, 5, 0, 1, 0, 0, time.Local)
		assert.False(t, GanaMovil(&m, &s))
	})

	t.Run("servidor sin updated_at pierde contra cualquier fecha real", func(t *testing.T) {
		assert.True(t, GanaMovil(fecha(2024, 1, 1), nil))
		cero := time.Time{}
		assert.True(t, GanaMovil(fecha(2024, 1, 1), &cero))
	})

	t.Run("movil sin timestamp pierde siempre", func(t *testing.T) {
		assert.False(t, GanaMovil(nil, fecha(2020, 1, 1)))
		assert.False(t, GanaMovil(nil, nil))
	})

	t.Run("idempotente tras aplicar", func(t *testing.T) {
		// Si el móvil ganó y el servidor quedó con la fecha de hoy, reenviar
		// el mismo cambio ya no gana.
		hoy := time.Now()
		assert.False(t, GanaMovil(fecha(2024, 3, 5), &hoy))
	})
}

func TestGanaMovilSecuenciaCreciente(t *testing.T) {
	// Una cadena de cambios con fechas estrictamente crecientes se aplica
	// completa: tras cada aplicación el servidor queda al menos en la fecha
	// del cambio, y el siguiente vuelve a ganar.
	secuencia := []*time.Time{
		fecha(2024, 1, 10),
		fecha(2024, 1, 11),
		fecha(2024, 2, 1),
		fecha(2024, 3, 5),
	}

	var servidor *time.Time
	for _, ts := range secuencia {
		assert.True(t, GanaMovil(ts, servidor))
		servidor = ts
	}

	// Reenviar cualquier cambio de la cadena, incluido el último, ya pierde:
	// el estado final es el del cambio más reciente.
	for _, ts := range secuencia {
		assert.False(t, GanaMovil(ts, servidor))
	}
}

func TestParseMovilTS(t *testing.T) {
	t.Run("iso con hora", func(t *testing.T) {
		ts := ParseMovilTS("2024-03-05T14:22:01")
		if assert.NotNil(t, ts) {
			assert.Equal(t, 2024, ts.Year())
			assert.Equal(t, time.March, ts.Month())
		}
	})

	t.Run("solo fecha", func(t *testing.T) {
		assert.NotNil(t, ParseMovilTS("2024-03-05"))
	})

	t.Run("vacio o basura degradan a nil", func(t *testing.T) {
		assert.Nil(t, ParseMovilTS(""))
		assert.Nil(t, ParseMovilTS("ayer"))
		assert.Nil(t, ParseMovilTS(nil))
		assert.Nil(t, ParseMovilTS(12345.0))
	})
}
