package model

import "time"

// ApsUbicacionFamiliaModel: ubicación geográfica levantada en una visita.
// Soft delete por deleted_at (sin gorm.DeletedAt a propósito: el snapshot
// del original no filtra registros borrados y aquí tampoco).
type ApsUbicacionFamiliaModel struct {
	ID                        uint       `gorm:"column:id;primaryKey" json:"id"`
	ApsVisitaID               uint       `gorm:"column:aps_visita_id" json:"aps_visita_id"`
	Zona                      int        `gorm:"column:zona" json:"zona"`
	BaseComunaCorregimientoID uint       `gorm:"column:base_comuna_corregimiento_id" json:"base_comuna_corregimiento_id"`
	BaseBarrioVeredaID        uint       `gorm:"column:base_barrio_vereda_id" json:"base_barrio_vereda_id"`
	Direccion                 string     `gorm:"column:direccion" json:"direccion"`
	FichaCatastral            *string    `gorm:"column:ficha_catastral;default:''" json:"ficha_catastral"`
	NumeroCuadrante           *int       `gorm:"column:numero_cuadrante;default:0" json:"numero_cuadrante"`
	CreatedAt                 time.Time  `gorm:"column:created_at;type:date" json:"created_at"`
	UpdatedAt                 time.Time  `gorm:"column:updated_at;type:date" json:"updated_at"`
	CreatedBy                 uint       `gorm:"column:created_by" json:"created_by"`
	UpdatedBy                 uint       `gorm:"column:updated_by" json:"updated_by"`
	DeletedAt                 *time.Time `gorm:"column:deleted_at;type:date" json:"deleted_at"`
}

func (ApsUbicacionFamiliaModel) TableName() string { return "aps_ubicacion_familia" }

// ApsCondicionesHabitatFamiliaModel: condiciones de la vivienda por visita.
// Los campos *_txt guardan listas de ids "1,4,9" que se traducen server-side.
type ApsCondicionesHabitatFamiliaModel struct {
	ID                         uint       `gorm:"column:id;primaryKey" json:"id"`
	ApsVisitaID                uint       `gorm:"column:aps_visita_id" json:"aps_visita_id"`
	ApsFichaFamilia            *uint      `gorm:"column:aps_ficha_familia" json:"aps_ficha_familia"`
	ApsAspectosGeneralesTxt    string     `gorm:"column:aps_aspectos_generales_txt;default:''" json:"aps_aspectos_generales_txt"`
	ApsCondicionesLocativasTxt string     `gorm:"column:aps_condiciones_locativas_txt;default:''" json:"aps_condiciones_locativas_txt"`
	ApsCondicionesAguaTxt      string     `gorm:"column:aps_condiciones_agua_txt;default:''" json:"aps_condiciones_agua_txt"`
	ApsDotacionSanitariaTxt    string     `gorm:"column:aps_dotacion_sanitaria_txt;default:''" json:"aps_dotacion_sanitaria_txt"`
	ApsAlimentosTxt            string     `gorm:"column:aps_alimentos_txt;default:''" json:"aps_alimentos_txt"`
	ApsTenenciaAnimalesTxt     string     `gorm:"column:aps_tenencia_animales_txt;default:''" json:"aps_tenencia_animales_txt"`
	ApsEntornoViviendaTxt      string     `gorm:"column:aps_entorno_vivienda_txt;default:''" json:"aps_entorno_vivienda_txt"`
	NumeroPerros               *int       `gorm:"column:numero_perros" json:"numero_perros"`
	NumeroGatos                *int       `gorm:"column:numero_gatos" json:"numero_gatos"`
	CreatedAt                  time.Time  `gorm:"column:created_at;type:date" json:"created_at"`
	UpdatedAt                  time.Time  `gorm:"column:updated_at;type:date" json:"updated_at"`
	CreatedBy                  uint       `gorm:"column:created_by" json:"created_by"`
	UpdatedBy                  uint       `gorm:"column:updated_by" json:"updated_by"`
	DeletedAt                  *time.Time `gorm:"column:deleted_at;type:date" json:"deleted_at"`
}

func (ApsCondicionesHabitatFamiliaModel) TableName() string { return "aps_condiciones_habitat_familia" }
