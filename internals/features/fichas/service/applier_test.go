package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capsmanizales_backend/internals/features/fichas/model"
)

func TestExtraerControl(t *testing.T) {
	item := map[string]any{
		"id":                float64(42),
		"remote_id":         float64(900),
		"last_modified_at":  "2024-03-05",
		"is_synced":         false,
		"deleted_at":        nil,
		"apellido_familiar": "García",
	}

	localID, remoteID, lastModified := extraerControl(item)

	assert.Equal(t, float64(42), localID)
	require.NotNil(t, remoteID)
	assert.Equal(t, uint(900), *remoteID)
	assert.Equal(t, "2024-03-05", lastModified)

	// Solo quedan columnas reales.
	assert.Equal(t, map[string]any{"apellido_familiar": "García"}, item)
}

func TestExtraerControlSinRemoteID(t *testing.T) {
	item := map[string]any{"id": "local-7"}
	localID, remoteID, lastModified := extraerControl(item)

	assert.Equal(t, "local-7", localID)
	assert.Nil(t, remoteID)
	assert.Nil(t, lastModified)
}

func TestAsignarCamposFamilia(t *testing.T) {
	t.Run("create estricto rechaza campo desconocido", func(t *testing.T) {
		var f model.ApsFichaFamiliaModel
		err := asignarCamposFamilia(&f, map[string]any{
			"apellido_familiar": "García",
			"campo_fantasma":    1,
		}, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "campo_fantasma")
	})

	t.Run("update ignora campo desconocido", func(t *testing.T) {
		var f model.ApsFichaFamiliaModel
		err := asignarCamposFamilia(&f, map[string]any{
			"apellido_familiar": "García",
			"campo_fantasma":    1,
		}, false)
		require.NoError(t, err)
		require.NotNil(t, f.ApellidoFamiliar)
		assert.Equal(t, "García", *f.ApellidoFamiliar)
	})

	t.Run("created_at conserva la hora", func(t *testing.T) {
		var f model.ApsFichaFamiliaModel
		err := asignarCamposFamilia(&f, map[string]any{
			"created_at": "2024-03-05T14:22:01",
		}, true)
		require.NoError(t, err)
		assert.Equal(t, 14, f.CreatedAt.Hour())
	})

	t.Run("fecha invalida es error del registro", func(t *testing.T) {
		var f model.ApsFichaFamiliaModel
		err := asignarCamposFamilia(&f, map[string]any{"created_at": "ayer"}, true)
		assert.Error(t, err)
	})
}

func TestAsignarCamposVisita(t *testing.T) {
	t.Run("fechas se truncan a dia", func(t *testing.T) {
		var v model.ApsVisitaModel
		err := asignarCamposVisita(&v, map[string]any{
			"fecha_visita": "2024-03-05T14:22:01",
			"created_at":   "2024-03-05T08:00:00",
		}, true)
		require.NoError(t, err)
		assert.Equal(t, 0, v.FechaVisita.Hour())
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), v.CreatedAt)
	})

	t.Run("numeros del JSON llegan como float64", func(t *testing.T) {
		var v model.ApsVisitaModel
		err := asignarCamposVisita(&v, map[string]any{
			"aps_ficha_familia_id": float64(33),
			"duracion":             float64(5),
			"estado_ficha":         float64(800),
		}, true)
		require.NoError(t, err)
		assert.Equal(t, uint(33), v.ApsFichaFamiliaID)
		require.NotNil(t, v.Duracion)
		assert.Equal(t, uint(5), *v.Duracion)
		require.NotNil(t, v.EstadoFicha)
		assert.Equal(t, 800, *v.EstadoFicha)
	})

	t.Run("entero no entero falla", func(t *testing.T) {
		var v model.ApsVisitaModel
		err := asignarCamposVisita(&v, map[string]any{"duracion": 5.5}, true)
		assert.Error(t, err)
	})
}

func TestAsignarCamposPersonaNulos(t *testing.T) {
	var p model.ApsPersonaModel
	err := asignarCamposPersona(&p, map[string]any{
		"nombres":           "Ana",
		"apellidos":         "Mejía",
		"nombre2":           nil,
		"auth_oficina":      nil,
		"vigencia_registro": true,
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Nombres)
	assert.Nil(t, p.Nombre2)
	assert.Nil(t, p.AuthOficina)
	require.NotNil(t, p.VigenciaRegistro)
	assert.True(t, *p.VigenciaRegistro)
}

func TestTablasSyncOrden(t *testing.T) {
	tablas := tablasSync()
	require.Len(t, tablas, 12)

	// Cabeceras antes que dependientes: un lote puede crear la familia, su
	// visita y sus personas en la misma pasada.
	assert.Equal(t, "familias", tablas[0].clave)
	assert.Equal(t, "visitas", tablas[1].clave)
	assert.Equal(t, "personas", tablas[2].clave)
	assert.Equal(t, "ubicaciones_familia", tablas[3].clave)

	soloFamilia := 0
	for _, tabla := range tablas {
		if tabla.fechaCompleta {
			soloFamilia++
			assert.Equal(t, "familias", tabla.clave)
		}
	}
	assert.Equal(t, 1, soloFamilia)
}

func TestCoerciones(t *testing.T) {
	t.Run("asString acepta numeros", func(t *testing.T) {
		s, err := asString("x", float64(1053800111))
		require.NoError(t, err)
		assert.Equal(t, "1053800111", s)
	})

	t.Run("asInt acepta string numerico", func(t *testing.T) {
		n, err := asInt("x", "42")
		require.NoError(t, err)
		assert.Equal(t, 42, n)
	})

	t.Run("asUint rechaza negativos", func(t *testing.T) {
		_, err := asUint("x", float64(-1))
		assert.Error(t, err)
	})

	t.Run("asBoolPtr entiende variantes", func(t *testing.T) {
		b, err := asBoolPtr("x", float64(1))
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.True(t, *b)

		b, err = asBoolPtr("x", "false")
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.False(t, *b)

		b, err = asBoolPtr("x", nil)
		require.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("asFechaPtr con vacio es nil", func(t *testing.T) {
		f, err := asFechaPtr("x", "")
		require.NoError(t, err)
		assert.Nil(t, f)
	})
}
