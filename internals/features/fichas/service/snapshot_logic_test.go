package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capsmanizales_backend/internals/features/fichas/model"
)

func visita(id, familiaID uint, fechaVisita time.Time) model.ApsVisitaModel {
	return model.ApsVisitaModel{ID: id, ApsFichaFamiliaID: familiaID, FechaVisita: fechaVisita}
}

func dia(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestUltimaVisitaPorFamilia(t *testing.T) {
	validas := map[uint]bool{10: true, 20: true}

	t.Run("se queda con la mas reciente por familia", func(t *testing.T) {
		out := UltimaVisitaPorFamilia([]model.ApsVisitaModel{
			visita(1, 10, dia(2024, 1, 10)),
			visita(2, 10, dia(2024, 3, 5)),
			visita(3, 20, dia(2024, 2, 1)),
		}, validas)

		require.Len(t, out, 2)
		assert.Equal(t, uint(2), out[0].ID)
		assert.Equal(t, uint(3), out[1].ID)
	})

	t.Run("empate de fecha gana el id mayor", func(t *testing.T) {
		out := UltimaVisitaPorFamilia([]model.ApsVisitaModel{
			visita(7, 10, dia(2024, 5, 1)),
			visita(4, 10, dia(2024, 5, 1)),
		}, validas)

		require.Len(t, out, 1)
		assert.Equal(t, uint(7), out[0].ID)
	})

	t.Run("familias no validas quedan fuera", func(t *testing.T) {
		out := UltimaVisitaPorFamilia([]model.ApsVisitaModel{
			visita(1, 99, dia(2024, 1, 1)),
			visita(2, 10, dia(2024, 1, 1)),
		}, validas)

		require.Len(t, out, 1)
		assert.Equal(t, uint(10), out[0].ApsFichaFamiliaID)
	})

	t.Run("orden por id de visita ascendente", func(t *testing.T) {
		out := UltimaVisitaPorFamilia([]model.ApsVisitaModel{
			visita(30, 20, dia(2024, 1, 1)),
			visita(5, 10, dia(2024, 1, 1)),
		}, validas)

		require.Len(t, out, 2)
		assert.Equal(t, uint(5), out[0].ID)
		assert.Equal(t, uint(30), out[1].ID)
	})
}

func TestPaginar(t *testing.T) {
	visitas := make([]model.ApsVisitaModel, 0, 7)
	for i := uint(1); i <= 7; i++ {
		visitas = append(visitas, visita(i, i, dia(2024, 1, int(i))))
	}

	t.Run("primera pagina", func(t *testing.T) {
		pagina, meta := Paginar(visitas, 1, 3)
		require.Len(t, pagina, 3)
		assert.Equal(t, uint(1), pagina[0].ID)
		assert.Equal(t, 7, meta.Total)
		assert.Equal(t, 3, meta.Pages)
		assert.True(t, meta.HasNext)
		assert.False(t, meta.HasPrev)
	})

	t.Run("ultima pagina incompleta", func(t *testing.T) {
		pagina, meta := Paginar(visitas, 3, 3)
		require.Len(t, pagina, 1)
		assert.Equal(t, uint(7), pagina[0].ID)
		assert.False(t, meta.HasNext)
		assert.True(t, meta.HasPrev)
	})

	t.Run("pagina fuera de rango devuelve vacio con totales reales", func(t *testing.T) {
		pagina, meta := Paginar(visitas, 9, 3)
		assert.Empty(t, pagina)
		assert.Equal(t, 7, meta.Total)
		assert.Equal(t, 3, meta.Pages)
		assert.False(t, meta.HasNext)
	})

	t.Run("parametros invalidos usan defaults", func(t *testing.T) {
		pagina, meta := Paginar(visitas, 0, -5)
		assert.Len(t, pagina, 7)
		assert.Equal(t, 1, meta.Page)
		assert.Equal(t, 100, meta.PerPage)
	})
}

func version(personaID, familiaID uint, documento string, fechaVisita time.Time) PersonaConFecha {
	return PersonaConFecha{
		Persona: model.ApsPersonaModel{
			ID:                personaID,
			ApsFichaFamiliaID: familiaID,
			NumeroDocumento:   documento,
		},
		Visita: model.ApsVisitaModel{FechaVisita: fechaVisita},
	}
}

func TestSeleccionarVersionesVigentes(t *testing.T) {
	t.Run("gana la version de la visita mas reciente", func(t *testing.T) {
		out := SeleccionarVersionesVigentes([]PersonaConFecha{
			version(1, 10, "1053800111", dia(2024, 1, 10)),
			version(2, 10, "1053800111", dia(2024, 3, 5)),
		})

		require.Len(t, out, 1)
		assert.Equal(t, uint(2), out[0].ID)
	})

	t.Run("empate de fecha gana el id mayor", func(t *testing.T) {
		out := SeleccionarVersionesVigentes([]PersonaConFecha{
			version(9, 10, "1053800111", dia(2024, 3, 5)),
			version(4, 10, "1053800111", dia(2024, 3, 5)),
		})

		require.Len(t, out, 1)
		assert.Equal(t, uint(9), out[0].ID)
	})

	t.Run("el agrupamiento es por familia", func(t *testing.T) {
		// El mismo documento en dos familias produce una versión por familia;
		// la fecha de una familia no pisa a la otra.
		out := SeleccionarVersionesVigentes([]PersonaConFecha{
			version(1, 10, "1053800111", dia(2024, 1, 1)),
			version(2, 20, "1053800111", dia(2024, 6, 1)),
		})

		require.Len(t, out, 2)
	})

	t.Run("documentos distintos no compiten", func(t *testing.T) {
		out := SeleccionarVersionesVigentes([]PersonaConFecha{
			version(1, 10, "111", dia(2024, 1, 1)),
			version(2, 10, "222", dia(2024, 1, 1)),
			version(3, 10, "333", dia(2024, 1, 1)),
		})

		assert.Len(t, out, 3)
	})
}
