package model

import "time"

// ApsPersonaModel es una VERSIÓN de una persona, no la persona en sí.
// El historial es append-only: cada actualización en terreno inserta una fila
// nueva con el mismo numero_documento apuntando a la visita que la produjo.
// La versión "vigente" se deriva leyendo el máximo fecha_visita por documento,
// nunca mutando filas viejas.
//
// Las columnas de puntaje/riesgo clínico del esquema legado no se modelan
// aquí: el cálculo de riesgo vive en el aplicativo web.
type ApsPersonaModel struct {
	ID                 uint      `gorm:"column:id;primaryKey" json:"id"`
	Puntaje            *int      `gorm:"column:puntaje" json:"puntaje"`
	ApsFichaFamiliaID  uint      `gorm:"column:aps_ficha_familia_id" json:"aps_ficha_familia_id"`
	FechaRegistro      time.Time `gorm:"column:fecha_registro;type:date" json:"fecha_registro"`
	Nombres            string    `gorm:"column:nombres" json:"nombres"`
	Nombre2            *string   `gorm:"column:nombre2" json:"nombre2"`
	Apellidos          string    `gorm:"column:apellidos" json:"apellidos"`
	Apellido2          *string   `gorm:"column:apellido2" json:"apellido2"`
	TbTipoDocumentoID  uint      `gorm:"column:tb_tipo_documento_id" json:"tb_tipo_documento_id"`
	NumeroDocumento    string    `gorm:"column:numero_documento" json:"numero_documento"`
	FechaNacimiento    time.Time `gorm:"column:fecha_nacimiento;type:date" json:"fecha_nacimiento"`
	Edad               int       `gorm:"column:edad" json:"edad"`
	RangoEdad          int       `gorm:"column:rango_edad" json:"rango_edad"`
	Sexo               uint      `gorm:"column:sexo" json:"sexo"`
	Etnia              uint      `gorm:"column:etnia" json:"etnia"`
	IdentidadSexual    int       `gorm:"column:identidad_sexual" json:"identidad_sexual"`
	Transgenero        string    `gorm:"column:transgenero" json:"transgenero"`
	AuthOficina        *uint     `gorm:"column:auth_oficina" json:"auth_oficina"`
	ComProfesion       *uint     `gorm:"column:com_profesion" json:"com_profesion"`
	ApsPersonaOrigenID *uint     `gorm:"column:aps_persona_origen_id" json:"aps_persona_origen_id"`
	VigenciaRegistro   *bool     `gorm:"column:vigencia_registro;default:true" json:"vigencia_registro"`
	ApsVisitaID        uint      `gorm:"column:aps_visita_id" json:"aps_visita_id"`
	CreatedAt          time.Time `gorm:"column:created_at;type:date" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;type:date" json:"updated_at"`
	CreatedBy          uint      `gorm:"column:created_by" json:"created_by"`
	UpdatedBy          uint      `gorm:"column:updated_by" json:"updated_by"`
}

func (ApsPersonaModel) TableName() string { return "aps_persona" }
