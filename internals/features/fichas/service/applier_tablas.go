package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"capsmanizales_backend/internals/features/fichas/model"
	helper "capsmanizales_backend/internals/helpers"
)

// =======================================================
// Registro de tablas sincronizables. Los ganchos por tabla
// son la asignación de campos, el acceso al updated_at y
// la política de borrado lógico; el resto es genérico.
// =======================================================

type ganchos[M any] struct {
	asignar   func(*M, map[string]any, bool) error
	updatedAt func(*M) *time.Time
	id        func(*M) uint
	borrarSet func(*M, uint, time.Time)
	// Campos que el CREATE exige presentes (fechas que el móvil debe mandar).
	requeridos []string
}

func tablaDe[M any](clave string, fechaCompleta bool, g ganchos[M]) tablaSync {
	return tablaSync{
		clave:         clave,
		fechaCompleta: fechaCompleta,
		crear: func(tx *gorm.DB, item map[string]any, ahora time.Time) (uint, error) {
			for _, campo := range g.requeridos {
				if _, ok := item[campo]; !ok {
					return 0, fmt.Errorf("campo %s requerido", campo)
				}
			}
			var m M
			if err := g.asignar(&m, item, true); err != nil {
				return 0, err
			}
			*g.updatedAt(&m) = ahora
			if err := tx.Create(&m).Error; err != nil {
				return 0, err
			}
			return g.id(&m), nil
		},
		buscarTS: func(tx *gorm.DB, remoteID uint) (bool, *time.Time, error) {
			var m M
			err := tx.First(&m, remoteID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil, nil
			}
			if err != nil {
				return false, nil, err
			}
			ts := *g.updatedAt(&m)
			return true, &ts, nil
		},
		actualizar: func(tx *gorm.DB, remoteID uint, item map[string]any, ahora time.Time) error {
			var m M
			if err := tx.First(&m, remoteID).Error; err != nil {
				return err
			}
			if err := g.asignar(&m, item, false); err != nil {
				return err
			}
			*g.updatedAt(&m) = ahora
			return tx.Save(&m).Error
		},
		borrar: func(tx *gorm.DB, remoteID uint, userID uint, ahora time.Time) error {
			var m M
			if err := tx.First(&m, remoteID).Error; err != nil {
				return err
			}
			g.borrarSet(&m, userID, ahora)
			*g.updatedAt(&m) = ahora
			return tx.Save(&m).Error
		},
	}
}

// tablasSync devuelve las doce tablas en orden de dependencias: primero las
// cabeceras (familia, visita, persona), luego lo que les cuelga. El orden
// importa porque los created de un lote referencian ids recién insertados.
func tablasSync() []tablaSync {
	return []tablaSync{
		tablaDe("familias", true, ganchos[model.ApsFichaFamiliaModel]{
			asignar:   asignarCamposFamilia,
			updatedAt: func(m *model.ApsFichaFamiliaModel) *time.Time { return &m.UpdatedAt },
			id:        func(m *model.ApsFichaFamiliaModel) uint { return m.ID },
			borrarSet: func(m *model.ApsFichaFamiliaModel, _ uint, _ time.Time) {
				m.VigenciaRegistro = 0
			},
			requeridos: []string{"created_at"},
		}),
		tablaDe("visitas", false, ganchos[model.ApsVisitaModel]{
			asignar:   asignarCamposVisita,
			updatedAt: func(m *model.ApsVisitaModel) *time.Time { return &m.UpdatedAt },
			id:        func(m *model.ApsVisitaModel) uint { return m.ID },
			borrarSet: func(m *model.ApsVisitaModel, userID uint, ahora time.Time) {
				valido := false
				m.Valido = &valido
				m.InvalidatedAt = &ahora
				m.InvalidatedBy = &userID
			},
			requeridos: []string{"fecha_visita", "created_at"},
		}),
		tablaDe("personas", false, ganchos[model.ApsPersonaModel]{
			asignar:   asignarCamposPersona,
			updatedAt: func(m *model.ApsPersonaModel) *time.Time { return &m.UpdatedAt },
			id:        func(m *model.ApsPersonaModel) uint { return m.ID },
			borrarSet: func(m *model.ApsPersonaModel, _ uint, _ time.Time) {
				vigente := false
				m.VigenciaRegistro = &vigente
			},
			requeridos: []string{"fecha_registro", "created_at"},
		}),
		tablaDe("ubicaciones_familia", false, ganchos[model.ApsUbicacionFamiliaModel]{
			asignar:   asignarCamposUbicacion,
			updatedAt: func(m *model.ApsUbicacionFamiliaModel) *time.Time { return &m.UpdatedAt },
			id:        func(m *model.ApsUbicacionFamiliaModel) uint { return m.ID },
			borrarSet: func(m *model.ApsUbicacionFamiliaModel, _ uint, ahora time.Time) {
				m.DeletedAt = &ahora
			},
			requeridos: []string{"created_at"},
		}),
		tablaDe("condiciones_habitat_familia", false, ganchos[model.ApsCondicionesHabitatFamiliaModel]{
			asignar:   asignarCamposHabitat,
			updatedAt: func(m *model.ApsCondicionesHabitatFamiliaModel) *time.Time { return &m.UpdatedAt },
			id:        func(m *model.ApsCondicionesHabitatFamiliaModel) uint { return m.ID },
			borrarSet: func(m *model.ApsCondicionesHabitatFamiliaModel, _ uint, ahora time.Time) {
				m.DeletedAt = &ahora
			},
			requeridos: []string{"created_at"},
		}),
		tablaDetalleAntecedente(),
		tablaDetalleComponenteMental(),
		tablaDetalleCondicionesSalud(),
		tablaDetalleDatoBasico(),
		tablaDetalleEstilosVida(),
		tablaDetalleMaternidad(),
		tablaDetallePracticasSalud(),
	}
}

// asignarCampos* copian valores del JSON crudo al modelo. En CREATE
// (estricto) un campo desconocido tumba el registro; en UPDATE se ignora,
// porque versiones viejas de la app mandan columnas que ya no existen.

func asignarCamposFamilia(f *model.ApsFichaFamiliaModel, item map[string]any, estricto bool) error {
	for campo, v := range item {
		var err error
		switch campo {
		case "apellido_familiar":
			f.ApellidoFamiliar, err = asStringPtr(campo, v)
		case "telefono_cabeza_familia":
			f.TelefonoCabezaFamilia, err = asStringPtr(campo, v)
		case "celular_cabeza_familia":
			f.CelularCabezaFamilia, err = asStringPtr(campo, v)
		case "numero_integrantes_familia":
			f.NumeroIntegrantesFamilia, err = asIntPtr(campo, v)
		case "estado_ficha":
			f.EstadoFicha, err = asUintPtr(campo, v)
		case "integrantes_con_ficha":
			f.IntegrantesConFicha, err = asIntPtr(campo, v)
		case "documento_cabeza_familia":
			f.DocumentoCabezaFamilia, err = asStringPtr(campo, v)
		case "vigencia_registro":
			f.VigenciaRegistro, err = asInt(campo, v)
		case "created_at":
			// La ficha familiar es la única tabla con timestamp completo.
			f.CreatedAt, err = asFechaHora(campo, v)
		case "updated_at":
			f.UpdatedAt, err = asFechaHora(campo, v)
		case "fecha_ultima_correccion":
			f.FechaUltimaCorreccion, err = asFechaHoraPtr(campo, v)
		case "created_by":
			f.CreatedBy, err = asUint(campo, v)
		case "updated_by":
			f.UpdatedBy, err = asUint(campo, v)
		default:
			if estricto {
				return fmt.Errorf("campo desconocido: %s", campo)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func asignarCamposVisita(m *model.ApsVisitaModel, item map[string]any, estricto bool) error {
	for campo, v := range item {
		var err error
		switch campo {
		case "aps_ficha_familia_id":
			m.ApsFichaFamiliaID, err = asUint(campo, v)
		case "fecha_visita":
			m.FechaVisita, err = asFecha(campo, v)
		case "tipo_actividad":
			m.TipoActividad, err = asUintPtr(campo, v)
		case "codigo_cups":
			m.CodigoCups, err = asStringPtr(campo, v)
		case "auth_oficina":
			m.AuthOficina, err = asUintPtr(campo, v)
		case "com_profesion":
			m.ComProfesion, err = asUintPtr(campo, v)
		case "duracion":
			m.Duracion, err = asUintPtr(campo, v)
		case "created_at":
			m.CreatedAt, err = asFecha(campo, v)
		case "updated_at":
			m.UpdatedAt, err = asFecha(campo, v)
		case "created_by":
			m.CreatedBy, err = asUint(campo, v)
		case "updated_by":
			m.UpdatedBy, err = asUint(campo, v)
		case "aps_visita_origen_id":
			m.ApsVisitaOrigenID, err = asUintPtr(campo, v)
		case "vigencia_registro":
			m.VigenciaRegistro, err = asBoolPtr(campo, v)
		case "valido":
			m.Valido, err = asBoolPtr(campo, v)
		case "apellido_familiar":
			m.ApellidoFamiliar, err = asStringPtr(campo, v)
		case "celular_cabeza_familia":
			m.CelularCabezaFamilia, err = asStringPtr(campo, v)
		case "numero_integrantes_familia":
			m.NumeroIntegrantesFamilia, err = asIntPtr(campo, v)
		case "estado_ficha":
			m.EstadoFicha, err = asIntPtr(campo, v)
		default:
			if estricto {
				return fmt.Errorf("campo desconocido: %s", campo)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func asignarCamposPersona(m *model.ApsPersonaModel, item map[string]any, estricto bool) error {
	for campo, v := range item {
		var err error
		switch campo {
		case "puntaje":
			m.Puntaje, err = asIntPtr(campo, v)
		case "aps_ficha_familia_id":
			m.ApsFichaFamiliaID, err = asUint(campo, v)
		case "fecha_registro":
			m.FechaRegistro, err = asFecha(campo, v)
		case "nombres":
			m.Nombres, err = asString(campo, v)
		case "nombre2":
			m.Nombre2, err = asStringPtr(campo, v)
		case "apellidos":
			m.Apellidos, err = asString(campo, v)
		case "apellido2":
			m.Apellido2, err = asStringPtr(campo, v)
		case "tb_tipo_documento_id":
			m.TbTipoDocumentoID, err = asUint(campo, v)
		case "numero_documento":
			m.NumeroDocumento, err = asString(campo, v)
		case "fecha_nacimiento":
			m.FechaNacimiento, err = asFecha(campo, v)
		case "edad":
			m.Edad, err = asInt(campo, v)
		case "rango_edad":
			m.RangoEdad, err = asInt(campo, v)
		case "sexo":
			m.Sexo, err = asUint(campo, v)
		case "etnia":
			m.Etnia, err = asUint(campo, v)
		case "identidad_sexual":
			m.IdentidadSexual, err = asInt(campo, v)
		case "transgenero":
			m.Transgenero, err = asString(campo, v)
		case "auth_oficina":
			m.AuthOficina, err = asUintPtr(campo, v)
		case "com_profesion":
			m.ComProfesion, err = asUintPtr(campo, v)
		case "aps_persona_origen_id":
			m.ApsPersonaOrigenID, err = asUintPtr(campo, v)
		case "vigencia_registro":
			m.VigenciaRegistro, err = asBoolPtr(campo, v)
		case "aps_visita_id":
			m.ApsVisitaID, err = asUint(campo, v)
		case "created_at":
			m.CreatedAt, err = asFecha(campo, v)
		case "updated_at":
			m.UpdatedAt, err = asFecha(campo, v)
		case "created_by":
			m.CreatedBy, err = asUint(campo, v)
		case "updated_by":
			m.UpdatedBy, err = asUint(campo, v)
		default:
			if estricto {
				return fmt.Errorf("campo desconocido: %s", campo)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func asignarCamposUbicacion(m *model.ApsUbicacionFamiliaModel, item map[string]any, estricto bool) error {
	for campo, v := range item {
		var err error
		switch campo {
		case "aps_visita_id":
			m.ApsVisitaID, err = asUint(campo, v)
		case "zona":
			m.Zona, err = asInt(campo, v)
		case "base_comuna_corregimiento_id":
			m.BaseComunaCorregimientoID, err = asUint(campo, v)
		case "base_barrio_vereda_id":
			m.BaseBarrioVeredaID, err = asUint(campo, v)
		case "direccion":
			m.Direccion, err = asString(campo, v)
		case "ficha_catastral":
			m.FichaCatastral, err = asStringPtr(campo, v)
		case "numero_cuadrante":
			m.NumeroCuadrante, err = asIntPtr(campo, v)
		case "created_at":
			m.CreatedAt, err = asFecha(campo, v)
		case "updated_at":
			m.UpdatedAt, err = asFecha(campo, v)
		case "created_by":
			m.CreatedBy, err = asUint(campo, v)
		case "updated_by":
			m.UpdatedBy, err = asUint(campo, v)
		default:
			if estricto {
				return fmt.Errorf("campo desconocido: %s", campo)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func asignarCamposHabitat(m *model.ApsCondicionesHabitatFamiliaModel, item map[string]any, estricto bool) error {
	for campo, v := range item {
		var err error
		switch campo {
		case "aps_visita_id":
			m.ApsVisitaID, err = asUint(campo, v)
		case "aps_ficha_familia":
			m.ApsFichaFamilia, err = asUintPtr(campo, v)
		case "aps_aspectos_generales_txt":
			m.ApsAspectosGeneralesTxt, err = asString(campo, v)
		case "aps_condiciones_locativas_txt":
			m.ApsCondicionesLocativasTxt, err = asString(campo, v)
		case "aps_condiciones_agua_txt":
			m.ApsCondicionesAguaTxt, err = asString(campo, v)
		case "aps_dotacion_sanitaria_txt":
			m.ApsDotacionSanitariaTxt, err = asString(campo, v)
		case "aps_alimentos_txt":
			m.ApsAlimentosTxt, err = asString(campo, v)
		case "aps_tenencia_animales_txt":
			m.ApsTenenciaAnimalesTxt, err = asString(campo, v)
		case "aps_entorno_vivienda_txt":
			m.ApsEntornoViviendaTxt, err = asString(campo, v)
		case "numero_perros":
			m.NumeroPerros, err = asIntPtr(campo, v)
		case "numero_gatos":
			m.NumeroGatos, err = asIntPtr(campo, v)
		case "created_at":
			m.CreatedAt, err = asFecha(campo, v)
		case "updated_at":
			m.UpdatedAt, err = asFecha(campo, v)
		case "created_by":
			m.CreatedBy, err = asUint(campo, v)
		case "updated_by":
			m.UpdatedBy, err = asUint(campo, v)
		default:
			if estricto {
				return fmt.Errorf("campo desconocido: %s", campo)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// asFechaHora conserva la hora (solo la usa la ficha familiar).
func asFechaHora(campo string, v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, fmt.Errorf("campo %s: fecha requerida", campo)
	}
	t, err := helper.ParseFechaISO(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("campo %s: %v", campo, err)
	}
	return t, nil
}

func asFechaHoraPtr(campo string, v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && s == "" {
		return nil, nil
	}
	t, err := asFechaHora(campo, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
