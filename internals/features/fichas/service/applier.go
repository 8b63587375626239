package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"capsmanizales_backend/internals/features/fichas/dto"
	helper "capsmanizales_backend/internals/helpers"
)

// =======================================================
// Motor del push de cambios. Una transacción por lote,
// un savepoint por registro: un registro malo se revierte
// solo y el resto del lote sigue. Si el commit final
// falla, se pierde TODO el lote (el móvil reintenta).
// =======================================================

// tablaSync describe cómo se persiste cada entidad del lote. El motor es el
// mismo para las doce tablas; solo cambian estos ganchos.
type tablaSync struct {
	clave string
	// Las fichas de familia guardan updated_at con hora; el resto de tablas
	// son columnas DATE y trabajan a resolución de día.
	fechaCompleta bool
	crear         func(tx *gorm.DB, item map[string]any, ahora time.Time) (uint, error)
	buscarTS      func(tx *gorm.DB, remoteID uint) (bool, *time.Time, error)
	actualizar    func(tx *gorm.DB, remoteID uint, item map[string]any, ahora time.Time) error
	borrar        func(tx *gorm.DB, remoteID uint, userID uint, ahora time.Time) error
}

type ChangeApplier struct {
	DB *gorm.DB
}

func NewChangeApplier(db *gorm.DB) *ChangeApplier {
	return &ChangeApplier{DB: db}
}

// Aplicar procesa el lote completo en orden de dependencias (familias antes
// que visitas, visitas antes que personas, personas antes que detalles).
// Devuelve error solo si la transacción no pudo confirmarse.
func (a *ChangeApplier) Aplicar(lote *dto.LoteCambios, userID uint) (dto.SyncResults, error) {
	resultados := dto.NewSyncResults()

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		for _, t := range tablasSync() {
			cambios := lote.Entidad(t.clave)
			if cambios == nil {
				continue
			}
			a.aplicarTabla(tx, t, cambios, resultados[t.clave], userID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultados, nil
}

func (a *ChangeApplier) aplicarTabla(tx *gorm.DB, t tablaSync, cambios *dto.CambiosEntidad, res *dto.ResultadosEntidad, userID uint) {
	ahora := time.Now()
	if !t.fechaCompleta {
		ahora = helper.SoloFecha(ahora)
	}

	for _, item := range cambios.Created {
		res.Created = append(res.Created, a.crearRegistro(tx, t, item, ahora))
	}
	for _, item := range cambios.Updated {
		res.Updated = append(res.Updated, a.actualizarRegistro(tx, t, item, ahora))
	}
	for _, item := range cambios.Deleted {
		res.Deleted = append(res.Deleted, a.borrarRegistro(tx, t, item, userID, ahora))
	}
}

// extraerControl saca del mapa los campos de control de sincronización que
// nunca llegan a una columna.
func extraerControl(item map[string]any) (localID any, remoteID *uint, lastModified any) {
	localID = item["id"]
	delete(item, "id")

	if raw, ok := item["remote_id"]; ok {
		if id, err := asUint("remote_id", raw); err == nil && id != 0 {
			remoteID = &id
		}
		delete(item, "remote_id")
	}

	lastModified = item["last_modified_at"]
	delete(item, "last_modified_at")
	delete(item, "is_synced")
	delete(item, "deleted_at")
	return
}

func (a *ChangeApplier) formato(t tablaSync, ts time.Time) string {
	if t.fechaCompleta {
		return helper.FormatFechaHora(ts)
	}
	return helper.FormatFecha(ts)
}

func (a *ChangeApplier) crearRegistro(tx *gorm.DB, t tablaSync, item map[string]any, ahora time.Time) dto.ResultadoRegistro {
	localID, _, _ := extraerControl(item)

	tx.SavePoint("sp_registro")
	remoteID, err := t.crear(tx, item, ahora)
	if err != nil {
		tx.RollbackTo("sp_registro")
		return dto.ResultadoRegistro{LocalID: localID, Status: "failed", Error: err.Error()}
	}
	return dto.ResultadoRegistro{
		LocalID:           localID,
		RemoteID:          &remoteID,
		NewLastModifiedAt: a.formato(t, ahora),
		Status:            "success",
	}
}

func (a *ChangeApplier) actualizarRegistro(tx *gorm.DB, t tablaSync, item map[string]any, ahora time.Time) dto.ResultadoRegistro {
	localID, remoteID, lastModified := extraerControl(item)
	if remoteID == nil {
		return dto.ResultadoRegistro{LocalID: localID, Status: "failed", Error: "No remote_id provided for update"}
	}

	encontrado, serverTS, err := t.buscarTS(tx, *remoteID)
	if err != nil {
		return dto.ResultadoRegistro{LocalID: localID, RemoteID: remoteID, Status: "failed", Error: err.Error()}
	}
	if !encontrado {
		return dto.ResultadoRegistro{LocalID: localID, RemoteID: remoteID, Status: "failed", Error: "Record not found on server"}
	}

	if !GanaMovil(ParseMovilTS(lastModified), serverTS) {
		// Gana el servidor: el móvil debe quedarse con la versión remota.
		ts := fechaMinima
		if serverTS != nil && !serverTS.IsZero() {
			ts = helper.SoloFecha(*serverTS)
		}
		return dto.ResultadoRegistro{
			LocalID:           localID,
			RemoteID:          remoteID,
			NewLastModifiedAt: helper.FormatFecha(ts),
			Status:            "success",
			ConflictResolved:  "skipped_older_mobile_version",
		}
	}

	tx.SavePoint("sp_registro")
	if err := t.actualizar(tx, *remoteID, item, ahora); err != nil {
		tx.RollbackTo("sp_registro")
		return dto.ResultadoRegistro{LocalID: localID, RemoteID: remoteID, Status: "failed", Error: err.Error()}
	}
	return dto.ResultadoRegistro{
		LocalID:           localID,
		RemoteID:          remoteID,
		NewLastModifiedAt: a.formato(t, ahora),
		Status:            "success",
		ConflictResolved:  "LWW",
	}
}

func (a *ChangeApplier) borrarRegistro(tx *gorm.DB, t tablaSync, item map[string]any, userID uint, ahora time.Time) dto.ResultadoRegistro {
	localID, remoteID, _ := extraerControl(item)
	if remoteID == nil {
		return dto.ResultadoRegistro{LocalID: localID, Status: "failed", Error: "No remote_id provided for deletion"}
	}

	tx.SavePoint("sp_registro")
	if err := t.borrar(tx, *remoteID, userID, ahora); err != nil {
		tx.RollbackTo("sp_registro")
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ResultadoRegistro{LocalID: localID, RemoteID: remoteID, Status: "failed", Error: "Record not found on server for deletion"}
		}
		return dto.ResultadoRegistro{LocalID: localID, RemoteID: remoteID, Status: "failed", Error: err.Error()}
	}
	return dto.ResultadoRegistro{
		LocalID:           localID,
		RemoteID:          remoteID,
		Status:            "success",
		Action:            "soft_deleted",
		NewLastModifiedAt: a.formato(t, ahora),
	}
}
