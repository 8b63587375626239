package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capsmanizales_backend/internals/features/fichas/dto"
	"capsmanizales_backend/internals/features/fichas/service"
	territoryService "capsmanizales_backend/internals/features/territory/service"
	helper "capsmanizales_backend/internals/helpers"
)

type SyncController struct {
	DB      *gorm.DB
	Builder *service.SnapshotBuilder
	Applier *service.ChangeApplier
}

func NewSyncController(db *gorm.DB) *SyncController {
	return &SyncController{
		DB:      db,
		Builder: service.NewSnapshotBuilder(db),
		Applier: service.NewChangeApplier(db),
	}
}

// InitialData entrega el snapshot paginado del territorio del usuario.
// Sin territorio no hay error: se responde 200 con el snapshot vacío para
// que la app termine su flujo de sincronización normalmente.
func (ctrl *SyncController) InitialData(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado para sincronización")
	}

	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 100)

	comunaIDs, tieneEquipos, err := territoryService.ResolverComunas(ctrl.DB, userID)
	if err != nil {
		log.Printf("❌ resolviendo territorio user=%d: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error consultando territorios del usuario")
	}

	ahora := time.Now().Format(time.RFC3339Nano)
	if !tieneEquipos {
		return helper.JsonOK(c, dto.EmptySnapshot(
			"Usuario no tiene equipos asignados, por lo tanto no tiene territorios.",
			page, perPage, ahora))
	}
	if len(comunaIDs) == 0 {
		return helper.JsonOK(c, dto.EmptySnapshot(
			"Usuario con equipos pero sin comunas/territorios asignados.",
			page, perPage, ahora))
	}

	snapshot, err := ctrl.Builder.Construir(comunaIDs, page, perPage)
	if err != nil {
		log.Printf("❌ armando snapshot user=%d: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error construyendo datos de sincronización")
	}
	return helper.JsonOK(c, snapshot)
}

// Changes aplica el lote de cambios del móvil. Los fallos por registro van
// en sync_results; solo un commit fallido tumba la petición completa.
func (ctrl *SyncController) Changes(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuario no encontrado para sincronización")
	}

	var lote dto.LoteCambios
	if err := c.BodyParser(&lote); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	resultados, err := ctrl.Applier.Aplicar(&lote, userID)
	if err != nil {
		log.Printf("❌ commit del lote de cambios user=%d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error al guardar cambios en la base de datos",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Sincronización de cambios procesada",
		"sync_results": resultados,
	})
}
