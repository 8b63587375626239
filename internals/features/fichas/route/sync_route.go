package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capsmanizales_backend/internals/features/fichas/controller"
	authMw "capsmanizales_backend/internals/middlewares/auth"
)

// SyncRoutes monta los dos endpoints de sincronización, ambos detrás del
// token.
func SyncRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSyncController(db)

	sync := api.Group("/sync", authMw.AuthMiddleware(db))
	sync.Get("/initial-data", ctrl.InitialData)
	sync.Post("/changes", ctrl.Changes)
}
