package dto

// =======================================================
// POST /api/v1/sync/changes
// =======================================================

// CambiosEntidad agrupa los registros del móvil por tipo de operación.
// Cada registro viaja como mapa crudo: el servicio decide campo por campo
// qué se acepta según la tabla.
type CambiosEntidad struct {
	Created []map[string]any `json:"created"`
	Updated []map[string]any `json:"updated"`
	Deleted []map[string]any `json:"deleted"`
}

// LoteCambios es el cuerpo completo del push. Las claves ausentes se
// procesan como lotes vacíos.
type LoteCambios struct {
	Familias                         *CambiosEntidad `json:"familias"`
	Visitas                          *CambiosEntidad `json:"visitas"`
	Personas                         *CambiosEntidad `json:"personas"`
	UbicacionesFamilia               *CambiosEntidad `json:"ubicaciones_familia"`
	CondicionesHabitatFamilia        *CambiosEntidad `json:"condiciones_habitat_familia"`
	PersonaAntecedenteMedico         *CambiosEntidad `json:"persona_antecedente_medico"`
	PersonaComponenteMental          *CambiosEntidad `json:"persona_componente_mental"`
	PersonaCondicionesSalud          *CambiosEntidad `json:"persona_condiciones_salud"`
	PersonaDatoBasico                *CambiosEntidad `json:"persona_dato_basico"`
	PersonaEstilosVidaConducta       *CambiosEntidad `json:"persona_estilos_vida_conducta"`
	PersonaMaternidad                *CambiosEntidad `json:"persona_maternidad"`
	PersonaPracticasSaludSaludSexual *CambiosEntidad `json:"persona_practicas_salud_salud_sexual"`
}

// Entidad devuelve el lote de una clave; nil si el push no la incluyó.
func (l *LoteCambios) Entidad(clave string) *CambiosEntidad {
	switch clave {
	case "familias":
		return l.Familias
	case "visitas":
		return l.Visitas
	case "personas":
		return l.Personas
	case "ubicaciones_familia":
		return l.UbicacionesFamilia
	case "condiciones_habitat_familia":
		return l.CondicionesHabitatFamilia
	case "persona_antecedente_medico":
		return l.PersonaAntecedenteMedico
	case "persona_componente_mental":
		return l.PersonaComponenteMental
	case "persona_condiciones_salud":
		return l.PersonaCondicionesSalud
	case "persona_dato_basico":
		return l.PersonaDatoBasico
	case "persona_estilos_vida_conducta":
		return l.PersonaEstilosVidaConducta
	case "persona_maternidad":
		return l.PersonaMaternidad
	case "persona_practicas_salud_salud_sexual":
		return l.PersonaPracticasSaludSaludSexual
	}
	return nil
}

// ResultadoRegistro es el acuse por registro. local_id siempre vuelve tal
// cual llegó para que el móvil pueda mapear remote_id.
type ResultadoRegistro struct {
	LocalID           any    `json:"local_id"`
	RemoteID          *uint  `json:"remote_id,omitempty"`
	Status            string `json:"status"`
	Error             string `json:"error,omitempty"`
	NewLastModifiedAt string `json:"new_last_modified_at,omitempty"`
	ConflictResolved  string `json:"conflict_resolved,omitempty"`
	Action            string `json:"action,omitempty"`
}

type ResultadosEntidad struct {
	Created []ResultadoRegistro `json:"created"`
	Updated []ResultadoRegistro `json:"updated"`
	Deleted []ResultadoRegistro `json:"deleted"`
}

// SyncResults lleva las 12 claves siempre presentes, con listas vacías
// para las entidades que el lote no tocó.
type SyncResults map[string]*ResultadosEntidad

func NewSyncResults() SyncResults {
	claves := []string{
		"familias", "personas", "visitas", "ubicaciones_familia",
		"condiciones_habitat_familia",
		"persona_antecedente_medico", "persona_componente_mental",
		"persona_condiciones_salud", "persona_dato_basico",
		"persona_estilos_vida_conducta", "persona_maternidad",
		"persona_practicas_salud_salud_sexual",
	}
	out := make(SyncResults, len(claves))
	for _, k := range claves {
		out[k] = &ResultadosEntidad{
			Created: []ResultadoRegistro{},
			Updated: []ResultadoRegistro{},
			Deleted: []ResultadoRegistro{},
		}
	}
	return out
}
