package service

// =======================================================
// Indicador "total de campos actualizados" por ficha.
// =======================================================

// PersonaVigenteConEstilo empareja una versión vigente de persona con su
// registro de estilos de vida (puede no existir) y el total de versiones que
// su documento acumula en el historial.
type PersonaVigenteConEstilo struct {
	NumeroDocumento         string
	CantidadVersiones       int64
	CantidadCamposCambiados *int
}

// TotalCamposActualizados suma cantidad_campos_cambiados de las personas
// vigentes cuyo documento tiene más de una versión (es decir, fueron
// actualizadas alguna vez). Sin personas vigentes o sin actualizaciones el
// indicador es el centinela "N/A", no cero: cero significaría "hubo
// actualizaciones pero sin cambios de campos".
func TotalCamposActualizados(personas []PersonaVigenteConEstilo) any {
	if len(personas) == 0 {
		return "N/A"
	}

	total := 0
	huboActualizaciones := false
	for _, p := range personas {
		if p.CantidadVersiones > 1 {
			huboActualizaciones = true
			if p.CantidadCamposCambiados != nil {
				total += *p.CantidadCamposCambiados
			}
		}
	}
	if !huboActualizaciones {
		return "N/A"
	}
	return total
}
