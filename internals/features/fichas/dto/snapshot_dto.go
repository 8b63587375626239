package dto

// =======================================================
// Respuesta de GET /api/v1/sync/initial-data
// =======================================================

// FamiliaSync viaja con los datos del responsable ya resueltos (username,
// nombre, oficina, profesión) para que el móvil no necesite catálogos.
type FamiliaSync struct {
	ID                       uint    `json:"id"`
	ApellidoFamiliar         *string `json:"apellido_familiar"`
	CelularCabezaFamilia     *string `json:"celular_cabeza_familia"`
	NumeroIntegrantesFamilia *int    `json:"numero_integrantes_familia"`
	EstadoFichaID            *uint   `json:"estado_ficha_id"`
	EstadoFichaDescripcion   string  `json:"estado_ficha_descripcion"`
	DocumentoCabezaFamilia   *string `json:"documento_cabeza_familia"`
	CreatedAt                *string `json:"created_at"`
	UpdatedAt                *string `json:"updated_at"`
	CreatedBy                uint    `json:"created_by"`
	CreatedByUsername        *string `json:"created_by_username"`
	CreatedByName            *string `json:"created_by_name"`
	CreatedByDocumento       *string `json:"created_by_documento"`
	CreatedByOficina         string  `json:"created_by_oficina"`
	CreatedByProfesion       string  `json:"created_by_profesion"`
	UpdatedBy                uint    `json:"updated_by"`
	UpdatedByUsername        *string `json:"updated_by_username"`
	UpdatedByName            *string `json:"updated_by_name"`
	UpdatedByDocumento       *string `json:"updated_by_documento"`
	UpdatedByOficina         string  `json:"updated_by_oficina"`
	UpdatedByProfesion       string  `json:"updated_by_profesion"`
	FechaUltimaCorreccion    *string `json:"fecha_ultima_correccion"`
	// int cuando hay actualizaciones, "N/A" cuando no.
	TotalCamposActualizadosUltimaVisita any `json:"total_campos_actualizados_ultima_visita"`
}

type PersonaSync struct {
	ID                  uint    `json:"id"`
	ApsFichaFamiliaID   uint    `json:"aps_ficha_familia_id"`
	FechaRegistro       *string `json:"fecha_registro"`
	Nombres             string  `json:"nombres"`
	Apellidos           string  `json:"apellidos"`
	NumeroDocumento     string  `json:"numero_documento"`
	TbTipoDocumentoID   uint    `json:"tb_tipo_documento_id"`
	TbTipoDocumentoTipo string  `json:"tb_tipo_documento_tipo"`
	SexoID              uint    `json:"sexo_id"`
	SexoDescripcion     string  `json:"sexo_descripcion"`
	EtniaID             uint    `json:"etnia_id"`
	EtniaDescripcion    string  `json:"etnia_descripcion"`
	Edad                int     `json:"edad"`
	FechaNacimiento     *string `json:"fecha_nacimiento"`
	CreatedAt           *string `json:"created_at"`
	UpdatedAt           *string `json:"updated_at"`
	CreatedBy           uint    `json:"created_by"`
	UpdatedBy           uint    `json:"updated_by"`
	ApsVisitaID         uint    `json:"aps_visita_id"`
	Novedad             string  `json:"novedad"`
}

type VisitaSync struct {
	ID                       uint    `json:"id"`
	ApsFichaFamiliaID        uint    `json:"aps_ficha_familia_id"`
	FechaVisita              *string `json:"fecha_visita"`
	TipoActividadID          *uint   `json:"tipo_actividad_id"`
	TipoActividadDescripcion *string `json:"tipo_actividad_descripcion"`
	CodigoCups               *string `json:"codigo_cups"`
	AuthOficinaID            *uint   `json:"auth_oficina_id"`
	AuthOficinaNombre        *string `json:"auth_oficina_nombre"`
	ComProfesionID           *uint   `json:"com_profesion_id"`
	ComProfesionDescripcion  *string `json:"com_profesion_descripcion"`
	CreatedAt                *string `json:"created_at"`
	UpdatedAt                *string `json:"updated_at"`
	CreatedBy                uint    `json:"created_by"`
	CreatedByUsername        *string `json:"created_by_username"`
	CreatedByName            *string `json:"created_by_name"`
	CreatedByDocumento       *string `json:"created_by_documento"`
	UpdatedBy                uint    `json:"updated_by"`
	UpdatedByUsername        *string `json:"updated_by_username"`
	UpdatedByName            *string `json:"updated_by_name"`
	UpdatedByDocumento       *string `json:"updated_by_documento"`
	DuracionID               *uint   `json:"duracion_id"`
	DuracionDescripcion      *string `json:"duracion_descripcion"`
}

type UbicacionFamiliaSync struct {
	ID                            uint    `json:"id"`
	ApsVisitaID                   uint    `json:"aps_visita_id"`
	Zona                          int     `json:"zona"`
	BaseComunaCorregimientoID     uint    `json:"base_comuna_corregimiento_id"`
	BaseComunaCorregimientoNombre string  `json:"base_comuna_corregimiento_nombre"`
	BaseBarrioVeredaID            uint    `json:"base_barrio_vereda_id"`
	BaseBarrioVeredaNombre        string  `json:"base_barrio_vereda_nombre"`
	Direccion                     string  `json:"direccion"`
	FichaCatastral                *string `json:"ficha_catastral"`
	NumeroCuadrante               *int    `json:"numero_cuadrante"`
	CreatedAt                     *string `json:"created_at"`
	UpdatedAt                     *string `json:"updated_at"`
	CreatedBy                     uint    `json:"created_by"`
	UpdatedBy                     uint    `json:"updated_by"`
}

// CondicionHabitatSync traduce los campos *_txt ("1,4,9") a listas de
// descripciones legibles.
type CondicionHabitatSync struct {
	ID                   uint     `json:"id"`
	ApsVisitaID          uint     `json:"aps_visita_id"`
	ApsFichaFamilia      *uint    `json:"aps_ficha_familia"`
	AspectosGenerales    []string `json:"aspectos_generales"`
	CondicionesLocativas []string `json:"condiciones_locativas"`
	CondicionesAgua      []string `json:"condiciones_agua"`
	DotacionSanitaria    []string `json:"dotacion_sanitaria"`
	Alimentos            []string `json:"alimentos"`
	TenenciaAnimales     []string `json:"tenencia_animales"`
	EntornoVivienda      []string `json:"entorno_vivienda"`
	NumeroPerros         *int     `json:"numero_perros"`
	NumeroGatos          *int     `json:"numero_gatos"`
	CreatedAt            *string  `json:"created_at"`
	UpdatedAt            *string  `json:"updated_at"`
	CreatedBy            uint     `json:"created_by"`
	UpdatedBy            uint     `json:"updated_by"`
}

// DetalleSync es la proyección mínima compartida por las siete tablas
// clínicas: el móvil solo necesita las referencias y el sello de auditoría.
type DetalleSync struct {
	ID           uint    `json:"id"`
	ApsPersonaID uint    `json:"aps_persona_id"`
	ApsVisitaID  uint    `json:"aps_visita_id"`
	CreatedAt    *string `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`
	CreatedBy    uint    `json:"created_by"`
	UpdatedBy    uint    `json:"updated_by"`
}

type TransactionalData struct {
	Familias                         []FamiliaSync          `json:"familias"`
	Personas                         []PersonaSync          `json:"personas"`
	Visitas                          []VisitaSync           `json:"visitas"`
	UbicacionesFamilia               []UbicacionFamiliaSync `json:"ubicaciones_familia"`
	CondicionesHabitatFamilia        []CondicionHabitatSync `json:"condiciones_habitat_familia"`
	PersonaAntecedenteMedico         []DetalleSync          `json:"persona_antecedente_medico"`
	PersonaComponenteMental          []DetalleSync          `json:"persona_componente_mental"`
	PersonaCondicionesSalud          []DetalleSync          `json:"persona_condiciones_salud"`
	PersonaDatoBasico                []DetalleSync          `json:"persona_dato_basico"`
	PersonaEstilosVidaConducta       []DetalleSync          `json:"persona_estilos_vida_conducta"`
	PersonaMaternidad                []DetalleSync          `json:"persona_maternidad"`
	PersonaPracticasSaludSaludSexual []DetalleSync          `json:"persona_practicas_salud_salud_sexual"`
}

// EmptyTransactionalData mantiene las 12 claves presentes (arreglos vacíos,
// nunca null) para que el cliente no tenga que distinguir ausencia de vacío.
func EmptyTransactionalData() TransactionalData {
	return TransactionalData{
		Familias:                         []FamiliaSync{},
		Personas:                         []PersonaSync{},
		Visitas:                          []VisitaSync{},
		UbicacionesFamilia:               []UbicacionFamiliaSync{},
		CondicionesHabitatFamilia:        []CondicionHabitatSync{},
		PersonaAntecedenteMedico:         []DetalleSync{},
		PersonaComponenteMental:          []DetalleSync{},
		PersonaCondicionesSalud:          []DetalleSync{},
		PersonaDatoBasico:                []DetalleSync{},
		PersonaEstilosVidaConducta:       []DetalleSync{},
		PersonaMaternidad:                []DetalleSync{},
		PersonaPracticasSaludSaludSexual: []DetalleSync{},
	}
}

type PaginationMeta struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// EmptyPaginationMeta conserva page/per_page solicitados con totales en cero.
func EmptyPaginationMeta(page, perPage int) PaginationMeta {
	return PaginationMeta{Page: page, PerPage: perPage}
}

type SnapshotResponse struct {
	Message           string            `json:"message,omitempty"`
	CatalogData       map[string]any    `json:"catalog_data"`
	TransactionalData TransactionalData `json:"transactional_data"`
	PaginationMeta    PaginationMeta    `json:"pagination_meta"`
	LastSyncTimestamp string            `json:"last_sync_timestamp"`
}

// EmptySnapshot arma la respuesta vacía normalizada (siempre HTTP 200).
func EmptySnapshot(message string, page, perPage int, timestamp string) SnapshotResponse {
	return SnapshotResponse{
		Message:           message,
		CatalogData:       map[string]any{},
		TransactionalData: EmptyTransactionalData(),
		PaginationMeta:    EmptyPaginationMeta(page, perPage),
		LastSyncTimestamp: timestamp,
	}
}
