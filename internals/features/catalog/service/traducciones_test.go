package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func nuevaTraduccionesPrueba() *Traducciones {
	return &Traducciones{
		opciones: map[uint]string{
			1:   "Sí",
			2:   "No",
			800: "Activa",
		},
		comunas:     map[uint]string{10: "Comuna San José"},
		barrios:     map[uint]string{5: "Barrio Chipre"},
		tiposDoc:    map[uint]string{1: "Cédula de ciudadanía"},
		oficinas:    map[uint]string{3: "CAPS Centro"},
		profesiones: map[uint]string{7: "Enfermería"},
	}
}

func TestTraduccionesLookup(t *testing.T) {
	tr := nuevaTraduccionesPrueba()

	id := uint(800)
	assert.Equal(t, "Activa", tr.Opcion(&id))
	assert.Equal(t, "Activa", tr.OpcionID(800))

	comuna := uint(10)
	assert.Equal(t, "Comuna San José", tr.Comuna(&comuna))

	// Desconocido o nulo → cadena vacía, nunca error.
	desconocido := uint(999)
	assert.Equal(t, "", tr.Opcion(&desconocido))
	assert.Equal(t, "", tr.Opcion(nil))
	cero := uint(0)
	assert.Equal(t, "", tr.Opcion(&cero))
	assert.Equal(t, "", tr.OpcionID(0))
}

func TestDescripcionesDesdeIDs(t *testing.T) {
	tr := nuevaTraduccionesPrueba()

	assert.Equal(t, []string{"Sí", "No"}, tr.DescripcionesDesdeIDs("1,2"))
	assert.Equal(t, []string{"Sí", "No"}, tr.DescripcionesDesdeIDs(" 1 , 2 "))

	// Tokens no numéricos se descartan sin error.
	assert.Equal(t, []string{"Sí"}, tr.DescripcionesDesdeIDs("1,abc,x2"))

	// IDs inexistentes no aportan etiqueta.
	assert.Equal(t, []string{"No"}, tr.DescripcionesDesdeIDs("999,2"))

	assert.Empty(t, tr.DescripcionesDesdeIDs(""))
	assert.Empty(t, tr.DescripcionesDesdeIDs("   "))
	assert.Empty(t, tr.DescripcionesDesdeIDs("a,b,c"))
}
