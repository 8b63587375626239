package model

import "time"

// Tablas de usuarios y autorización del sistema legado (Yii2); este backend
// solo las lee, la administración de usuarios vive en el aplicativo web.

type UserModel struct {
	ID                        uint       `gorm:"column:id;primaryKey" json:"id"`
	Name                      string     `gorm:"column:name" json:"name"`
	Username                  string     `gorm:"column:username;unique" json:"username"`
	ComProfesion              *uint      `gorm:"column:com_profesion" json:"com_profesion"`
	Documento                 string     `gorm:"column:documento" json:"documento"`
	Email                     string     `gorm:"column:email" json:"email"`
	PasswordHash              string     `gorm:"column:password_hash" json:"-"`
	Estado                    int        `gorm:"column:estado" json:"estado"`
	AuthOficina               uint       `gorm:"column:auth_oficina" json:"auth_oficina"`
	CreatedAt                 time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt                 time.Time  `gorm:"column:updated_at" json:"updated_at"`
	CreatedBy                 uint       `gorm:"column:created_by" json:"created_by"`
	UpdatedBy                 uint       `gorm:"column:updated_by" json:"updated_by"`
	UltimaLecturaRecordatorio *time.Time `gorm:"column:ultima_lectura_recordatorio;type:date" json:"ultima_lectura_recordatorio"`
}

func (UserModel) TableName() string { return "user" }

type AuthOficinaModel struct {
	ID     uint   `gorm:"column:id;primaryKey" json:"id"`
	Nombre string `gorm:"column:nombre" json:"nombre"`
	Estado int    `gorm:"column:estado;default:1" json:"estado"`
}

func (AuthOficinaModel) TableName() string { return "auth_oficina" }

type ComProfesionModel struct {
	ID     uint   `gorm:"column:id;primaryKey" json:"id"`
	Tipo   string `gorm:"column:tipo" json:"tipo"`
	Estado int    `gorm:"column:estado;default:1" json:"estado"`
	Grupo  int    `gorm:"column:grupo" json:"grupo"`
}

func (ComProfesionModel) TableName() string { return "com_profesion" }

type AuthAssignmentModel struct {
	ItemName  string    `gorm:"column:item_name;primaryKey" json:"item_name"`
	UserID    uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (AuthAssignmentModel) TableName() string { return "auth_assignment" }
