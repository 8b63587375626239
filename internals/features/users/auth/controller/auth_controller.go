package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"capsmanizales_backend/internals/configs"
	"capsmanizales_backend/internals/constants"
	"capsmanizales_backend/internals/features/users/auth/dto"
	"capsmanizales_backend/internals/features/users/auth/model"
	helper "capsmanizales_backend/internals/helpers"
)

var validateLogin = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =======================
// 🔑 Login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido")
	}
	if err := validateLogin.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.Where("username = ?", body.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Usuario o contraseña inválidos")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error consultando usuario")
	}

	if user.Estado != constants.UsuarioActivo {
		return helper.JsonError(c, fiber.StatusForbidden, "Usuario inactivo. Contacte al administrador")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuario o contraseña inválidos")
	}

	expiresAt := time.Now().UTC().Add(configs.JWTExpiry())
	claims := jwt.MapClaims{
		"sub": user.Username,
		"exp": expiresAt.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar el token")
	}

	var profesion *dto.ProfesionDTO
	if user.ComProfesion != nil {
		var p model.ComProfesionModel
		if err := ctrl.DB.First(&p, *user.ComProfesion).Error; err == nil {
			profesion = &dto.ProfesionDTO{
				ID: p.ID, RemoteID: p.ID,
				Tipo: p.Tipo, Descripcion: p.Tipo,
				Grupo: p.Grupo, Estado: p.Estado,
			}
		}
	}

	var oficina *dto.OficinaDTO
	if user.AuthOficina != 0 {
		var o model.AuthOficinaModel
		if err := ctrl.DB.First(&o, user.AuthOficina).Error; err == nil {
			oficina = &dto.OficinaDTO{
				ID: o.ID, RemoteID: o.ID,
				Nombre: o.Nombre, Descripcion: o.Nombre,
				Estado: o.Estado,
			}
		}
	}

	permisos := []string{}
	var assignments []model.AuthAssignmentModel
	if err := ctrl.DB.Where("user_id = ?", user.ID).Find(&assignments).Error; err == nil {
		for _, a := range assignments {
			permisos = append(permisos, a.ItemName)
		}
	}

	createdAt := user.CreatedAt.Format(helper.FormatoFechaHora)
	updatedAt := user.UpdatedAt.Format(helper.FormatoFechaHora)
	return helper.JsonOK(c, dto.LoginResponse{
		Success: true,
		Message: "Login exitoso",
		Data: &dto.LoginData{
			User: dto.UsuarioDTO{
				ID:        user.ID,
				Username:  user.Username,
				Email:     user.Email,
				Documento: user.Documento,
				Nombres:   user.Name,
				Apellidos: "",
				Estado:    user.Estado,
				CreatedAt: &createdAt,
				UpdatedAt: &updatedAt,
			},
			Profesion: profesion,
			Oficina:   oficina,
			Permisos:  permisos,
			Token:     token,
			ExpiresAt: expiresAt.Format(helper.FormatoFechaHora),
		},
	})
}

// =======================
// 🔒 Protected (sonda de token para la app)
// =======================
func (ctrl *AuthController) Protected(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	oficinaID, _ := c.Locals("oficina_id").(uint)

	if username == "" {
		return helper.JsonMessage(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	return helper.JsonOK(c, fiber.Map{
		"message":        "Acceso concedido a un recurso protegido",
		"logged_in_as":   username,
		"user_office_id": oficinaID,
	})
}
