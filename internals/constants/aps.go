package constants

const (
	// Estado de ficha familiar "Activa" en aps_cue_opcion.
	EstadoFichaActiva = 800

	// Dato sucio heredado del sistema legado: apellidos guardados como el
	// string literal "NULL" (no confundir con NULL de SQL).
	ApellidoSentinela = "NULL"

	// user.estado
	UsuarioActivo   = 1
	UsuarioInactivo = 0
)
