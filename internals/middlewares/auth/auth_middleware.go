package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"capsmanizales_backend/internals/configs"
	"capsmanizales_backend/internals/constants"
	userModel "capsmanizales_backend/internals/features/users/auth/model"
)

// AuthMiddleware valida el bearer token y deja la identidad en Locals:
// user_id (uint), username (string), oficina_id (uint).
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Solicitud sin token de acceso",
				"error":   "authorization_required",
			})
		}

		if configs.JWTSecret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("método de firma inesperado")
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "El token ha expirado",
					"error":   "token_expired",
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Firma del token inválida",
				"error":   "invalid_token",
			})
		}

		username, _ := claims["sub"].(string)
		if username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Firma del token inválida",
				"error":   "invalid_token",
			})
		}

		// La identidad del token es el username; el usuario debe existir y estar activo.
		var user userModel.UserModel
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Firma del token inválida",
					"error":   "invalid_token",
				})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if user.Estado != constants.UsuarioActivo {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Usuario inactivo. Contacte al administrador",
				"error":   "user_inactive",
			})
		}

		c.Locals("user_id", user.ID)
		c.Locals("username", user.Username)
		c.Locals("oficina_id", user.AuthOficina)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	const p = "Bearer "
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):]), nil
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	return "", errors.New("authorization header ausente")
}
