package service

import (
	"gorm.io/gorm"
)

// ResolverComunas resuelve el territorio visible de un usuario en dos saltos:
// equipos del usuario → comunas de esos equipos. tieneEquipos distingue al
// usuario sin equipos del que tiene equipos sin comunas (los mensajes del
// snapshot vacío son distintos).
//
// Un resultado vacío significa "sin territorio" y quien llama DEBE responder
// el snapshot vacío: un set vacío nunca se interpreta como acceso sin
// restricción.
func ResolverComunas(db *gorm.DB, userID uint) (comunaIDs []uint, tieneEquipos bool, err error) {
	var equipoIDs []uint
	if err := db.Table("equipo_user").
		Where("user_id = ?", userID).
		Pluck("equipo_id", &equipoIDs).Error; err != nil {
		return nil, false, err
	}
	if len(equipoIDs) == 0 {
		return nil, false, nil
	}

	if err := db.Table("equipo_comuna_corregimiento").
		Where("equipo_id IN ?", equipoIDs).
		Distinct("base_comuna_corregimiento_id").
		Pluck("base_comuna_corregimiento_id", &comunaIDs).Error; err != nil {
		return nil, true, err
	}
	return comunaIDs, true, nil
}
