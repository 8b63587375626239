package dto

// ============================
// Request DTO
// ============================

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ============================
// Response DTOs (contrato con la app móvil)
// ============================

type UsuarioDTO struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Documento string  `json:"documento"`
	Nombres   string  `json:"nombres"`
	Apellidos string  `json:"apellidos"`
	Estado    int     `json:"estado"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

type ProfesionDTO struct {
	ID          uint   `json:"id"`
	RemoteID    uint   `json:"remote_id"`
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`
	Grupo       int    `json:"grupo"`
	Estado      int    `json:"estado"`
}

type OficinaDTO struct {
	ID          uint   `json:"id"`
	RemoteID    uint   `json:"remote_id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Estado      int    `json:"estado"`
}

type LoginData struct {
	User      UsuarioDTO    `json:"user"`
	Profesion *ProfesionDTO `json:"profesion"`
	Oficina   *OficinaDTO   `json:"oficina"`
	Permisos  []string      `json:"permisos"`
	Token     string        `json:"token"`
	ExpiresAt string        `json:"expires_at"`
}

type LoginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    *LoginData `json:"data"`
}
