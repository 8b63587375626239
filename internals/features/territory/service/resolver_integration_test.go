package service

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"capsmanizales_backend/internals/features/territory/model"
)

func abrirDBPrueba(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skipf("TEST_DB_DSN no definido; prueba de integración omitida")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestResolverComunas(t *testing.T) {
	db := abrirDBPrueba(t)
	require.NoError(t, db.Migrator().DropTable(&model.EquipoUserModel{}, &model.EquipoComunaCorregimientoModel{}))
	require.NoError(t, db.AutoMigrate(&model.EquipoUserModel{}, &model.EquipoComunaCorregimientoModel{}))

	require.NoError(t, db.Create(&[]model.EquipoUserModel{
		{EquipoID: 1, UserID: 7},
		{EquipoID: 2, UserID: 7},
	}).Error)
	require.NoError(t, db.Create(&[]model.EquipoComunaCorregimientoModel{
		{EquipoID: 1, BaseComunaCorregimientoID: 10},
		{EquipoID: 2, BaseComunaCorregimientoID: 10}, // repetida a propósito
		{EquipoID: 2, BaseComunaCorregimientoID: 20},
	}).Error)

	t.Run("usuario con equipos y comunas", func(t *testing.T) {
		comunas, tieneEquipos, err := ResolverComunas(db, 7)
		require.NoError(t, err)
		assert.True(t, tieneEquipos)
		assert.ElementsMatch(t, []uint{10, 20}, comunas)
	})

	t.Run("usuario sin equipos", func(t *testing.T) {
		comunas, tieneEquipos, err := ResolverComunas(db, 999)
		require.NoError(t, err)
		assert.False(t, tieneEquipos)
		assert.Empty(t, comunas)
	})

	t.Run("equipos sin comunas", func(t *testing.T) {
		require.NoError(t, db.Create(&model.EquipoUserModel{EquipoID: 33, UserID: 8}).Error)
		comunas, tieneEquipos, err := ResolverComunas(db, 8)
		require.NoError(t, err)
		assert.True(t, tieneEquipos)
		assert.Empty(t, comunas)
	})
}
