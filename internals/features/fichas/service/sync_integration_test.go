package service

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"capsmanizales_backend/internals/constants"
	catalogModel "capsmanizales_backend/internals/features/catalog/model"
	"capsmanizales_backend/internals/features/fichas/dto"
	"capsmanizales_backend/internals/features/fichas/model"
	authModel "capsmanizales_backend/internals/features/users/auth/model"
)

// Pruebas contra MySQL real. Se omiten si TEST_DB_DSN no está definido:
//
//	TEST_DB_DSN="root:pass@tcp(localhost:3306)/capsmanizales_test?charset=utf8mb4&parseTime=true&loc=Local"
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

func migrarFamilias(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Migrator().DropTable(&model.ApsFichaFamiliaModel{}))
	require.NoError(t, db.AutoMigrate(&model.ApsFichaFamiliaModel{}))
}

// migrarSnapshot recrea todas las tablas que toca el armado del snapshot.
func migrarSnapshot(t *testing.T, db *gorm.DB) {
	t.Helper()
	modelos := []any{
		&model.ApsFichaFamiliaModel{},
		&model.ApsVisitaModel{},
		&model.ApsPersonaModel{},
		&model.ApsUbicacionFamiliaModel{},
		&model.ApsCondicionesHabitatFamiliaModel{},
		&model.ApsPersonaAntecedenteMedicoModel{},
		&model.ApsPersonaComponenteMentalModel{},
		&model.ApsPersonaCondicionesSaludModel{},
		&model.ApsPersonaDatoBasicoModel{},
		&model.ApsPersonaEstilosVidaConductaModel{},
		&model.ApsPersonaMaternidadModel{},
		&model.ApsPersonaPracticasSaludModel{},
		&catalogModel.ApsCueOpcionModel{},
		&catalogModel.BaseComunaCorregimientoModel{},
		&catalogModel.BaseBarrioVeredaModel{},
		&catalogModel.BaseTipoDocumentoModel{},
		&authModel.UserModel{},
		&authModel.AuthOficinaModel{},
		&authModel.ComProfesionModel{},
	}
	require.NoError(t, db.Migrator().DropTable(modelos...))
	require.NoError(t, db.AutoMigrate(modelos...))
}

func TestSnapshotExcluyeApellidoSentinela(t *testing.T) {
	db := abrirDBPrueba(t)
	migrarSnapshot(t, db)

	activa := constants.EstadoFichaActiva
	dia := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	apGarcia := "García"
	apSentinela := constants.ApellidoSentinela
	apRamirez := "Ramírez"

	// Familia 1: limpia. Familia 2: apellido_familiar con el literal "NULL".
	// Familia 3: apellido válido, pero su única persona viene con apellidos
	// "NULL", así que nunca llega a ser candidata.
	require.NoError(t, db.Create(&[]model.ApsFichaFamiliaModel{
		{ID: 1, ApellidoFamiliar: &apGarcia, VigenciaRegistro: 1, CreatedAt: dia, UpdatedAt: dia},
		{ID: 2, ApellidoFamiliar: &apSentinela, VigenciaRegistro: 1, CreatedAt: dia, UpdatedAt: dia},
		{ID: 3, ApellidoFamiliar: &apRamirez, VigenciaRegistro: 1, CreatedAt: dia, UpdatedAt: dia},
	}).Error)

	require.NoError(t, db.Create(&[]model.ApsVisitaModel{
		{ID: 1, ApsFichaFamiliaID: 1, FechaVisita: dia, EstadoFicha: &activa, CreatedAt: dia, UpdatedAt: dia},
		{ID: 2, ApsFichaFamiliaID: 2, FechaVisita: dia, EstadoFicha: &activa, CreatedAt: dia, UpdatedAt: dia},
		{ID: 3, ApsFichaFamiliaID: 3, FechaVisita: dia, EstadoFicha: &activa, CreatedAt: dia, UpdatedAt: dia},
	}).Error)

	require.NoError(t, db.Create(&[]model.ApsUbicacionFamiliaModel{
		{ID: 1, ApsVisitaID: 1, BaseComunaCorregimientoID: 10, CreatedAt: dia, UpdatedAt: dia},
		{ID: 2, ApsVisitaID: 2, BaseComunaCorregimientoID: 10, CreatedAt: dia, UpdatedAt: dia},
		{ID: 3, ApsVisitaID: 3, BaseComunaCorregimientoID: 10, CreatedAt: dia, UpdatedAt: dia},
	}).Error)

	require.NoError(t, db.Create(&[]model.ApsPersonaModel{
		{ID: 1, ApsFichaFamiliaID: 1, ApsVisitaID: 1, Nombres: "Ana", Apellidos: apGarcia,
			NumeroDocumento: "100", FechaRegistro: dia, FechaNacimiento: dia, CreatedAt: dia, UpdatedAt: dia},
		{ID: 2, ApsFichaFamiliaID: 2, ApsVisitaID: 2, Nombres: "Luis", Apellidos: "Pérez",
			NumeroDocumento: "200", FechaRegistro: dia, FechaNacimiento: dia, CreatedAt: dia, UpdatedAt: dia},
		{ID: 3, ApsFichaFamiliaID: 3, ApsVisitaID: 3, Nombres: "Eva", Apellidos: apSentinela,
			NumeroDocumento: "300", FechaRegistro: dia, FechaNacimiento: dia, CreatedAt: dia, UpdatedAt: dia},
	}).Error)

	snap, err := NewSnapshotBuilder(db).Construir([]uint{10}, 1, 100)
	require.NoError(t, err)

	require.Len(t, snap.TransactionalData.Familias, 1)
	assert.Equal(t, uint(1), snap.TransactionalData.Familias[0].ID)

	require.Len(t, snap.TransactionalData.Visitas, 1)
	assert.Equal(t, uint(1), snap.TransactionalData.Visitas[0].ID)

	require.Len(t, snap.TransactionalData.Personas, 1)
	assert.Equal(t, apGarcia, snap.TransactionalData.Personas[0].Apellidos)

	assert.Equal(t, 1, snap.PaginationMeta.Total)
}

func TestApplierCicloFamilia(t *testing.T) {
	db := abrirDBPrueba(t)
	migrarFamilias(t, db)
	applier := NewChangeApplier(db)

	// CREATE
	res, err := applier.Aplicar(&dto.LoteCambios{
		Familias: &dto.CambiosEntidad{
			Created: []map[string]any{{
				"id":                "local-1",
				"apellido_familiar": "García",
				"created_at":        "2024-03-05T10:00:00",
				"created_by":        float64(1),
				"updated_by":        float64(1),
			}},
		},
	}, 1)
	require.NoError(t, err)
	require.Len(t, res["familias"].Created, 1)

	creado := res["familias"].Created[0]
	assert.Equal(t, "success", creado.Status)
	require.NotNil(t, creado.RemoteID)
	remoteID := *creado.RemoteID

	// UPDATE con timestamp viejo: el servidor (recién escrito hoy) gana.
	res, err = applier.Aplicar(&dto.LoteCambios{
		Familias: &dto.CambiosEntidad{
			Updated: []map[string]any{{
				"id":                "local-1",
				"remote_id":         float64(remoteID),
				"last_modified_at":  "2020-01-01T00:00:00",
				"apellido_familiar": "Pisado",
			}},
		},
	}, 1)
	require.NoError(t, err)
	require.Len(t, res["familias"].Updated, 1)
	assert.Equal(t, "skipped_older_mobile_version", res["familias"].Updated[0].ConflictResolved)

	var f model.ApsFichaFamiliaModel
	require.NoError(t, db.First(&f, remoteID).Error)
	require.NotNil(t, f.ApellidoFamiliar)
	assert.Equal(t, "García", *f.ApellidoFamiliar)

	// DELETE: borrado lógico por vigencia_registro.
	res, err = applier.Aplicar(&dto.LoteCambios{
		Familias: &dto.CambiosEntidad{
			Deleted: []map[string]any{{
				"id":        "local-1",
				"remote_id": float64(remoteID),
			}},
		},
	}, 1)
	require.NoError(t, err)
	require.Len(t, res["familias"].Deleted, 1)
	assert.Equal(t, "soft_deleted", res["familias"].Deleted[0].Action)

	require.NoError(t, db.First(&f, remoteID).Error)
	assert.Equal(t, 0, f.VigenciaRegistro)
}

func TestApplierSecuenciaActualizacionesCrecientes(t *testing.T) {
	db := abrirDBPrueba(t)
	migrarFamilias(t, db)
	applier := NewChangeApplier(db)

	res, err := applier.Aplicar(&dto.LoteCambios{
		Familias: &dto.CambiosEntidad{
			Created: []map[string]any{{
				"id":                "local-1",
				"apellido_familiar": "Primera",
				"created_at":        "2024-03-05T10:00:00",
				"created_by":        float64(1),
				"updated_by":        float64(1),
			}},
		},
	}, 1)
	require.NoError(t, err)
	require.NotNil(t, res["familias"].Created[0].RemoteID)
	remoteID := *res["familias"].Created[0].RemoteID

	// Cada cambio llega con fecha estrictamente mayor que el estado del
	// servidor: todos deben aplicarse.
	for _, caso := range []struct{ ts, apellido string }{
		{"2030-01-01T08:00:00", "Segunda"},
		{"2030-01-02T08:00:00", "Tercera"},
	} {
		res, err = applier.Aplicar(&dto.LoteCambios{
			Familias: &dto.CambiosEntidad{
				Updated: []map[string]any{{
					"id":                "local-1",
					"remote_id":         float64(remoteID),
					"last_modified_at":  caso.ts,
					"apellido_familiar": caso.apellido,
				}},
			},
		}, 1)
		require.NoError(t, err)
		require.Len(t, res["familias"].Updated, 1)
		assert.Equal(t, "success", res["familias"].Updated[0].Status)
		assert.Equal(t, "LWW", res["familias"].Updated[0].ConflictResolved)
	}

	// Un rezagado con fecha vieja ya no pisa nada.
	res, err = applier.Aplicar(&dto.LoteCambios{
		Familias: &dto.CambiosEntidad{
			Updated: []map[string]any{{
				"id":                "local-1",
				"remote_id":         float64(remoteID),
				"last_modified_at":  "2020-05-05T08:00:00",
				"apellido_familiar": "Vieja",
			}},
		},
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, "skipped_older_mobile_version", res["familias"].Updated[0].ConflictResolved)

	var f model.ApsFichaFamiliaModel
	require.NoError(t, db.First(&f, remoteID).Error)
	require.NotNil(t, f.ApellidoFamiliar)
	assert.Equal(t, "Tercera", *f.ApellidoFamiliar)
}

func TestApplierRegistroMaloNoContaminaElLote(t *testing.T) {
	db := abrirDBPrueba(t)
	migrarFamilias(t, db)
	applier := NewChangeApplier(db)

	res, err := applier.Aplicar(&dto.LoteCambios{
		Familias: &dto.CambiosEntidad{
			Created: []map[string]any{
				{
					"id":             "malo",
					"campo_fantasma": 1,
					"created_at":     "2024-03-05T10:00:00",
				},
				{
					"id":                "bueno",
					"apellido_familiar": "Mejía",
					"created_at":        "2024-03-05T10:00:00",
					"created_by":        float64(1),
					"updated_by":        float64(1),
				},
			},
		},
	}, 1)
	require.NoError(t, err)
	require.Len(t, res["familias"].Created, 2)

	assert.Equal(t, "failed", res["familias"].Created[0].Status)
	assert.Contains(t, res["familias"].Created[0].Error, "campo_fantasma")
	assert.Equal(t, "success", res["familias"].Created[1].Status)

	var total int64
	require.NoError(t, db.Model(&model.ApsFichaFamiliaModel{}).Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestApplierUpdateRegistroInexistente(t *testing.T) {
	db := abrirDBPrueba(t)
	migrarFamilias(t, db)
	applier := NewChangeApplier(db)

	res, err := applier.Aplicar(&dto.LoteCambios{
		Familias: &dto.CambiosEntidad{
			Updated: []map[string]any{{
				"id":               "local-1",
				"remote_id":        float64(99999),
				"last_modified_at": "2030-01-01",
			}},
		},
	}, 1)
	require.NoError(t, err)
	require.Len(t, res["familias"].Updated, 1)
	assert.Equal(t, "failed", res["familias"].Updated[0].Status)
	assert.Equal(t, "Record not found on server", res["familias"].Updated[0].Error)
}
