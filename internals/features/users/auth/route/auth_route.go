package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capsmanizales_backend/internals/features/users/auth/controller"
	authMw "capsmanizales_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", ctrl.Login)
	auth.Get("/protected", authMw.AuthMiddleware(db), ctrl.Protected)
}
