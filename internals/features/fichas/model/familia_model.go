package model

import "time"

// ApsFichaFamiliaModel es la ficha familiar (cabeza de hogar). Nunca se borra
// físicamente: la eliminación desde el móvil baja vigencia_registro a 0.
type ApsFichaFamiliaModel struct {
	ID                       uint       `gorm:"column:id;primaryKey" json:"id"`
	ApellidoFamiliar         *string    `gorm:"column:apellido_familiar" json:"apellido_familiar"`
	TelefonoCabezaFamilia    *string    `gorm:"column:telefono_cabeza_familia" json:"telefono_cabeza_familia"`
	CelularCabezaFamilia     *string    `gorm:"column:celular_cabeza_familia" json:"celular_cabeza_familia"`
	NumeroIntegrantesFamilia *int       `gorm:"column:numero_integrantes_familia;default:1" json:"numero_integrantes_familia"`
	EstadoFicha              *uint      `gorm:"column:estado_ficha" json:"estado_ficha"`
	IntegrantesConFicha      *int       `gorm:"column:integrantes_con_ficha" json:"integrantes_con_ficha"`
	DocumentoCabezaFamilia   *string    `gorm:"column:documento_cabeza_familia" json:"documento_cabeza_familia"`
	VigenciaRegistro         int        `gorm:"column:vigencia_registro;default:1" json:"vigencia_registro"`
	CreatedAt                time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt                time.Time  `gorm:"column:updated_at" json:"updated_at"`
	CreatedBy                uint       `gorm:"column:created_by" json:"created_by"`
	UpdatedBy                uint       `gorm:"column:updated_by" json:"updated_by"`
	FechaUltimaCorreccion    *time.Time `gorm:"column:fecha_ultima_correccion" json:"fecha_ultima_correccion"`
}

func (ApsFichaFamiliaModel) TableName() string { return "aps_ficha_familia" }
