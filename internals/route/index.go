package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fichasRoute "capsmanizales_backend/internals/features/fichas/route"
	authRoute "capsmanizales_backend/internals/features/users/auth/route"
)

// SetupRoutes registra todo bajo /api/v1.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/v1")

	authRoute.AuthRoutes(api, db)
	fichasRoute.SyncRoutes(api, db)
}
