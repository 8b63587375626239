package model

import "time"

// ApsVisitaModel es un encuentro en terreno. La invalidación (borrado lógico)
// guarda quién y cuándo: valido=false + invalidated_by/invalidated_at.
type ApsVisitaModel struct {
	ID                       uint       `gorm:"column:id;primaryKey" json:"id"`
	ApsFichaFamiliaID        uint       `gorm:"column:aps_ficha_familia_id" json:"aps_ficha_familia_id"`
	FechaVisita              time.Time  `gorm:"column:fecha_visita;type:date" json:"fecha_visita"`
	TipoActividad            *uint      `gorm:"column:tipo_actividad" json:"tipo_actividad"`
	CodigoCups               *string    `gorm:"column:codigo_cups" json:"codigo_cups"`
	AuthOficina              *uint      `gorm:"column:auth_oficina" json:"auth_oficina"`
	ComProfesion             *uint      `gorm:"column:com_profesion" json:"com_profesion"`
	Duracion                 *uint      `gorm:"column:duracion" json:"duracion"` // id de aps_cue_opcion
	CreatedAt                time.Time  `gorm:"column:created_at;type:date" json:"created_at"`
	UpdatedAt                time.Time  `gorm:"column:updated_at;type:date" json:"updated_at"`
	CreatedBy                uint       `gorm:"column:created_by" json:"created_by"`
	UpdatedBy                uint       `gorm:"column:updated_by" json:"updated_by"`
	ApsVisitaOrigenID        *uint      `gorm:"column:aps_visita_origen_id" json:"aps_visita_origen_id"`
	VigenciaRegistro         *bool      `gorm:"column:vigencia_registro" json:"vigencia_registro"`
	Valido                   *bool      `gorm:"column:valido" json:"valido"`
	InvalidatedBy            *uint      `gorm:"column:invalidated_by" json:"invalidated_by"`
	InvalidatedAt            *time.Time `gorm:"column:invalidated_at;type:date" json:"invalidated_at"`
	ApellidoFamiliar         *string    `gorm:"column:apellido_familiar" json:"apellido_familiar"`
	CelularCabezaFamilia     *string    `gorm:"column:celular_cabeza_familia" json:"celular_cabeza_familia"`
	NumeroIntegrantesFamilia *int       `gorm:"column:numero_integrantes_familia" json:"numero_integrantes_familia"`
	EstadoFicha              *int       `gorm:"column:estado_ficha" json:"estado_ficha"`
}

func (ApsVisitaModel) TableName() string { return "aps_visita" }
