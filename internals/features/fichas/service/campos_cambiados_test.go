package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestTotalCamposActualizados(t *testing.T) {
	t.Run("sin personas vigentes es N/A", func(t *testing.T) {
		assert.Equal(t, "N/A", TotalCamposActualizados(nil))
		assert.Equal(t, "N/A", TotalCamposActualizados([]PersonaVigenteConEstilo{}))
	})

	t.Run("personas sin historial de actualizaciones es N/A", func(t *testing.T) {
		// Una sola versión por documento: nunca fueron actualizadas.
		out := TotalCamposActualizados([]PersonaVigenteConEstilo{
			{NumeroDocumento: "111", CantidadVersiones: 1, CantidadCamposCambiados: intPtr(4)},
			{NumeroDocumento: "222", CantidadVersiones: 1, CantidadCamposCambiados: nil},
		})
		assert.Equal(t, "N/A", out)
	})

	t.Run("suma solo las personas con mas de una version", func(t *testing.T) {
		out := TotalCamposActualizados([]PersonaVigenteConEstilo{
			{NumeroDocumento: "111", CantidadVersiones: 3, CantidadCamposCambiados: intPtr(5)},
			{NumeroDocumento: "222", CantidadVersiones: 1, CantidadCamposCambiados: intPtr(99)},
			{NumeroDocumento: "333", CantidadVersiones: 2, CantidadCamposCambiados: intPtr(2)},
		})
		assert.Equal(t, 7, out)
	})

	t.Run("actualizada sin registro de estilos suma cero pero no es N/A", func(t *testing.T) {
		out := TotalCamposActualizados([]PersonaVigenteConEstilo{
			{NumeroDocumento: "111", CantidadVersiones: 2, CantidadCamposCambiados: nil},
		})
		assert.Equal(t, 0, out)
	})
}
