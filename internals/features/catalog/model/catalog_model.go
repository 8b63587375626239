package model

// Tablas de referencia (solo lectura desde el protocolo de sincronización).

type ApsCueOpcionModel struct {
	ID             uint   `gorm:"column:id;primaryKey" json:"id"`
	ApsCuePregunta uint   `gorm:"column:aps_cue_pregunta" json:"aps_cue_pregunta"`
	Orden          *int   `gorm:"column:orden" json:"orden"`
	Descripcion    string `gorm:"column:descripcion" json:"descripcion"`
	Estado         bool   `gorm:"column:estado;default:true" json:"estado"`
}

func (ApsCueOpcionModel) TableName() string { return "aps_cue_opcion" }

type BaseComunaCorregimientoModel struct {
	ID     uint   `gorm:"column:id;primaryKey" json:"id"`
	Codigo string `gorm:"column:codigo" json:"codigo"`
	Nombre string `gorm:"column:nombre" json:"nombre"`
	Zona   int    `gorm:"column:zona" json:"zona"`
}

func (BaseComunaCorregimientoModel) TableName() string { return "base_comuna_corregimiento" }

type BaseBarrioVeredaModel struct {
	ID                      uint   `gorm:"column:id;primaryKey" json:"id"`
	BaseComunaCorregimiento uint   `gorm:"column:base_comuna_corregimiento" json:"base_comuna_corregimiento"`
	Codigo                  string `gorm:"column:codigo" json:"codigo"`
	Nombre                  string `gorm:"column:nombre" json:"nombre"`
	Microterritorio         *int   `gorm:"column:microterritorio" json:"microterritorio"`
}

func (BaseBarrioVeredaModel) TableName() string { return "base_barrio_vereda" }

type BaseTipoDocumentoModel struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Tipo string `gorm:"column:tipo" json:"tipo"`
}

func (BaseTipoDocumentoModel) TableName() string { return "tb_tipo_documento" }
