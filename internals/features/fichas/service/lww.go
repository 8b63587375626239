package service

import (
	"time"

	helper "capsmanizales_backend/internals/helpers"
)

// La resolución de conflictos compara a resolución de DÍA: la mayoría de las
// tablas persisten updated_at como DATE, así que dos escrituras del mismo día
// empatan y gana el servidor (el móvil queda skipped).

// GanaMovil decide Last-Write-Wins. mobileTS viene del last_modified_at del
// móvil (nil o vacío → fecha mínima); serverTS es el updated_at persistido
// (nil o zero → fecha mínima). Solo estrictamente mayor gana.
func GanaMovil(mobileTS *time.Time, serverTS *time.Time) bool {
	m := fechaMinima
	if mobileTS != nil && !mobileTS.IsZero() {
		m = helper.SoloFecha(*mobileTS)
	}
	s := fechaMinima
	if serverTS != nil && !serverTS.IsZero() {
		s = helper.SoloFecha(*serverTS)
	}
	return m.After(s)
}

var fechaMinima = time.Date(1, time.January, 1, 0, 0, 0, 0, time.Local)

// ParseMovilTS interpreta el last_modified_at que manda la app. Cadena vacía
// o formato irreconocible degradan a nil (fecha mínima): el registro del
// móvil pierde el LWW en vez de reventar el lote.
func ParseMovilTS(raw any) *time.Time {
	s, ok := raw.(string)
	if !ok || s == "" {
		return nil
	}
	t, err := helper.ParseFechaISO(s)
	if err != nil {
		return nil
	}
	return &t
}
