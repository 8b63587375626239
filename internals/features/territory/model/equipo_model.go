package model

// Territorio: un usuario ve las comunas de los equipos a los que pertenece
// (user → equipo_user → equipo_comuna_corregimiento).

type EquipoModel struct {
	ID           uint   `gorm:"column:id;primaryKey" json:"id"`
	NumeroEquipo int    `gorm:"column:numero_equipo" json:"numero_equipo"`
	Nombre       string `gorm:"column:nombre" json:"nombre"`
	Estado       bool   `gorm:"column:estado;default:true" json:"estado"`
	Tipo         string `gorm:"column:tipo" json:"tipo"`
}

func (EquipoModel) TableName() string { return "equipo" }

type EquipoUserModel struct {
	ID       uint `gorm:"column:id;primaryKey" json:"id"`
	EquipoID uint `gorm:"column:equipo_id" json:"equipo_id"`
	UserID   uint `gorm:"column:user_id" json:"user_id"`
}

func (EquipoUserModel) TableName() string { return "equipo_user" }

type EquipoComunaCorregimientoModel struct {
	ID                        uint `gorm:"column:id;primaryKey" json:"id"`
	EquipoID                  uint `gorm:"column:equipo_id" json:"equipo_id"`
	BaseComunaCorregimientoID uint `gorm:"column:base_comuna_corregimiento_id" json:"base_comuna_corregimiento_id"`
}

func (EquipoComunaCorregimientoModel) TableName() string { return "equipo_comuna_corregimiento" }
