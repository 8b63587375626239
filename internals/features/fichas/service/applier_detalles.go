package service

import (
	"fmt"
	"time"

	"capsmanizales_backend/internals/features/fichas/model"
)

// =======================================================
// Tablas clínicas de detalle. Las siete comparten política:
// DATE en auditoría, borrado lógico por deleted_at y
// created_at obligatorio al crear.
// =======================================================

func tablaDetalleAntecedente() tablaSync {
	return tablaDe("persona_antecedente_medico", false, ganchos[model.ApsPersonaAntecedenteMedicoModel]{
		asignar: func(m *model.ApsPersonaAntecedenteMedicoModel, item map[string]any, estricto bool) error {
			for campo, v := range item {
				var err error
				switch campo {
				case "aps_persona_id":
					m.ApsPersonaID, err = asUint(campo, v)
				case "aps_visita_id":
					m.ApsVisitaID, err = asUint(campo, v)
				case "aps_antecedente_personal_txt":
					m.ApsAntecedentePersonalTxt, err = asString(campo, v)
				case "aps_enfermedad_actual_txt":
					m.ApsEnfermedadActualTxt, err = asString(campo, v)
				case "aps_antecedente_familiar_primer_segundo_grado_txt":
					m.ApsAntecedenteFamiliarPrimerSegundoGradoTxt, err = asString(campo, v)
				case "aps_sintoma_reciente_sin_causa_aparente_txt":
					m.ApsSintomaRecienteSinCausaAparenteTxt, err = asString(campo, v)
				default:
					err = asignarAuditoria(&m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy, campo, v, estricto)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
		updatedAt: func(m *model.ApsPersonaAntecedenteMedicoModel) *time.Time { return &m.UpdatedAt },
		id:        func(m *model.ApsPersonaAntecedenteMedicoModel) uint { return m.ID },
		borrarSet: func(m *model.ApsPersonaAntecedenteMedicoModel, _ uint, ahora time.Time) {
			m.DeletedAt = &ahora
		},
		requeridos: []string{"created_at"},
	})
}

func tablaDetalleComponenteMental() tablaSync {
	return tablaDe("persona_componente_mental", false, ganchos[model.ApsPersonaComponenteMentalModel]{
		asignar: func(m *model.ApsPersonaComponenteMentalModel, item map[string]any, estricto bool) error {
			for campo, v := range item {
				var err error
				switch campo {
				case "aps_persona_id":
					m.ApsPersonaID, err = asUint(campo, v)
				case "aps_visita_id":
					m.ApsVisitaID, err = asUint(campo, v)
				case "se_ha_sentido_triste_decaido_ultimas_dos_semanas":
					m.SeHaSentidoTristeDecaidoUltimasDosSemanas, err = asIntPtr(campo, v)
				case "ha_pensado_deseado_estaria_mejor_muerto":
					m.HaPensadoDeseadoEstariaMejorMuerto, err = asIntPtr(campo, v)
				case "miembro_familia_comportamiento_extranio_diferente_anormal":
					m.MiembroFamiliaComportamientoExtranioDiferenteAnormal, err = asIntPtr(campo, v)
				case "situacion_reciente_problema_psicosocial":
					m.SituacionRecienteProblemaPsicosocial, err = asIntPtr(campo, v)
				case "resultado_apgar_familiar":
					m.ResultadoApgarFamiliar, err = asStringPtr(campo, v)
				case "sospecha_confirmacion_violencia_intrafamiliar":
					m.SospechaConfirmacionViolenciaIntrafamiliar, err = asIntPtr(campo, v)
				case "agredido_fisica_psicologica_por_familiar_ultimos_tres_meses":
					m.AgredidoFisicaPsicologicaPorFamiliarUltimosTresMeses, err = asIntPtr(campo, v)
				case "hospitalizado_debido_violencia_intrafamiliar":
					m.HospitalizadoDebidoViolenciaIntrafamiliar, err = asIntPtr(campo, v)
				case "han_utilizado_elementos_contundentes_para_agredirle":
					m.HanUtilizadoElementosContundentesParaAgredirle, err = asIntPtr(campo, v)
				case "aps_consumo_spa_txt":
					m.ApsConsumoSpaTxt, err = asString(campo, v)
				default:
					err = asignarAuditoria(&m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy, campo, v, estricto)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
		updatedAt: func(m *model.ApsPersonaComponenteMentalModel) *time.Time { return &m.UpdatedAt },
		id:        func(m *model.ApsPersonaComponenteMentalModel) uint { return m.ID },
		borrarSet: func(m *model.ApsPersonaComponenteMentalModel, _ uint, ahora time.Time) {
			m.DeletedAt = &ahora
		},
		requeridos: []string{"created_at"},
	})
}

func tablaDetalleCondicionesSalud() tablaSync {
	return tablaDe("persona_condiciones_salud", false, ganchos[model.ApsPersonaCondicionesSaludModel]{
		asignar: func(m *model.ApsPersonaCondicionesSaludModel, item map[string]any, estricto bool) error {
			for campo, v := range item {
				var err error
				switch campo {
				case "aps_persona_id":
					m.ApsPersonaID, err = asUint(campo, v)
				case "aps_visita_id":
					m.ApsVisitaID, err = asUint(campo, v)
				case "circunferencia_abdominal_cm":
					m.CircunferenciaAbdominalCm, err = asIntPtr(campo, v)
				case "interpretacion_circunferencia":
					m.InterpretacionCircunferencia, err = asStringPtr(campo, v)
				case "presion_arterial_sistolica":
					m.PresionArterialSistolica, err = asIntPtr(campo, v)
				case "presion_arterial_diastolica":
					m.PresionArterialDiastolica, err = asIntPtr(campo, v)
				case "nivel":
					m.Nivel, err = asStringPtr(campo, v)
				case "resultado_ultima_citologia_cervico_uterina":
					m.ResultadoUltimaCitologiaCervicoUterina, err = asIntPtr(campo, v)
				case "fecha_programada_citologia_cervico_uterina":
					m.FechaProgramadaCitologiaCervicoUterina, err = asFechaPtr(campo, v)
				case "resultado_antigeno_prostatico":
					m.ResultadoAntigenoProstatico, err = asIntPtr(campo, v)
				case "resultado_ultima_mamografia":
					m.ResultadoUltimaMamografia, err = asIntPtr(campo, v)
				case "en_su_embarazo_su_madre_consumio_alcohol_cigarrillo":
					m.EnSuEmbarazoSuMadreConsumioAlcoholCigarrillo, err = asIntPtr(campo, v)
				default:
					err = asignarAuditoria(&m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy, campo, v, estricto)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
		updatedAt: func(m *model.ApsPersonaCondicionesSaludModel) *time.Time { return &m.UpdatedAt },
		id:        func(m *model.ApsPersonaCondicionesSaludModel) uint { return m.ID },
		borrarSet: func(m *model.ApsPersonaCondicionesSaludModel, _ uint, ahora time.Time) {
			m.DeletedAt = &ahora
		},
		requeridos: []string{"created_at"},
	})
}

func tablaDetalleDatoBasico() tablaSync {
	return tablaDe("persona_dato_basico", false, ganchos[model.ApsPersonaDatoBasicoModel]{
		asignar: func(m *model.ApsPersonaDatoBasicoModel, item map[string]any, estricto bool) error {
			for campo, v := range item {
				var err error
				switch campo {
				case "aps_persona_id":
					m.ApsPersonaID, err = asUint(campo, v)
				case "aps_visita_id":
					m.ApsVisitaID, err = asUint(campo, v)
				case "aps_dato_basico_condicion_txt":
					m.ApsDatoBasicoCondicionTxt, err = asString(campo, v)
				case "aps_dato_basico_discapacidad_txt":
					m.ApsDatoBasicoDiscapacidadTxt, err = asString(campo, v)
				case "condicion_dependencia_discapacidad":
					m.CondicionDependenciaDiscapacidad, err = asStringPtr(campo, v)
				case "parentesco":
					m.Parentesco, err = asInt(campo, v)
				case "regimen":
					m.Regimen, err = asInt(campo, v)
				case "eps_id":
					m.EpsID, err = asUintPtr(campo, v)
				case "ocupacion_principal":
					m.OcupacionPrincipal, err = asIntPtr(campo, v)
				case "depende_economicamente_familiar":
					m.DependeEconomicamenteFamiliar, err = asIntPtr(campo, v)
				case "escolaridad":
					m.Escolaridad, err = asIntPtr(campo, v)
				case "abandono_estudios_primaria_bachiller":
					m.AbandonoEstudiosPrimariaBachiller, err = asIntPtr(campo, v)
				default:
					err = asignarAuditoria(&m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy, campo, v, estricto)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
		updatedAt: func(m *model.ApsPersonaDatoBasicoModel) *time.Time { return &m.UpdatedAt },
		id:        func(m *model.ApsPersonaDatoBasicoModel) uint { return m.ID },
		borrarSet: func(m *model.ApsPersonaDatoBasicoModel, _ uint, ahora time.Time) {
			m.DeletedAt = &ahora
		},
		requeridos: []string{"created_at"},
	})
}

func tablaDetalleEstilosVida() tablaSync {
	return tablaDe("persona_estilos_vida_conducta", false, ganchos[model.ApsPersonaEstilosVidaConductaModel]{
		asignar: func(m *model.ApsPersonaEstilosVidaConductaModel, item map[string]any, estricto bool) error {
			for campo, v := range item {
				var err error
				switch campo {
				case "aps_persona_id":
					m.ApsPersonaID, err = asUint(campo, v)
				case "aps_visita_id":
					m.ApsVisitaID, err = asUint(campo, v)
				case "practica_actividad_fisica_minutos":
					m.PracticaActividadFisicaMinutos, err = asIntPtr(campo, v)
				case "aps_habitos_alimentacion_txt":
					m.ApsHabitosAlimentacionTxt, err = asString(campo, v)
				case "aps_exposicion_humo_txt":
					m.ApsExposicionHumoTxt, err = asString(campo, v)
				case "aps_inasistencia_controles_txt":
					m.ApsInasistenciaControlesTxt, err = asString(campo, v)
				case "eps_entrega_cumplidamente_metodo_planificacion_familiar":
					m.EpsEntregaCumplidamenteMetodoPlanificacionFamiliar, err = asIntPtr(campo, v)
				case "aps_adherencia_tratamiento_txt":
					m.ApsAdherenciaTratamientoTxt, err = asString(campo, v)
				case "aps_dificultades_recibir_tratamiento_txt":
					m.ApsDificultadesRecibirTratamientoTxt, err = asString(campo, v)
				case "aps_remision_a_txt":
					m.ApsRemisionATxt, err = asString(campo, v)
				case "especifique_remision_a":
					m.EspecifiqueRemisionA, err = asStringPtr(campo, v)
				case "aps_valoracion_equipo_aps_txt":
					m.ApsValoracionEquipoApsTxt, err = asString(campo, v)
				case "cual_valoracion":
					m.CualValoracion, err = asStringPtr(campo, v)
				case "peso":
					m.Peso, err = asFloatPtr(campo, v)
				case "talla":
					m.Talla, err = asFloatPtr(campo, v)
				case "interpretacion_IMC":
					m.InterpretacionIMC, err = asStringPtr(campo, v)
				case "valor_imc":
					m.ValorImc, err = asFloat(campo, v)
				case "perimetro_brazo":
					m.PerimetroBrazo, err = asIntPtr(campo, v)
				case "interpretacion_perimetro":
					m.InterpretacionPerimetro, err = asStringPtr(campo, v)
				case "interpretacion_FINDRICS":
					m.InterpretacionFINDRICS, err = asStringPtr(campo, v)
				case "valor_findrics":
					m.ValorFindrics, err = asIntPtr(campo, v)
				case "interpretacion_riesgo_epoc":
					m.InterpretacionRiesgoEpoc, err = asStringPtr(campo, v)
				case "valor_riesgo_epoc":
					m.ValorRiesgoEpoc, err = asIntPtr(campo, v)
				case "interpretacion_riesgo_caries":
					m.InterpretacionRiesgoCaries, err = asStringPtr(campo, v)
				case "valor_riesgo_caries":
					m.ValorRiesgoCaries, err = asIntPtr(campo, v)
				case "novedad":
					m.Novedad, err = asIntPtr(campo, v)
				case "observaciones":
					m.Observaciones, err = asStringPtr(campo, v)
				case "intervenciones":
					m.Intervenciones, err = asStringPtr(campo, v)
				case "estado_registro":
					m.EstadoRegistro, err = asIntPtr(campo, v)
				case "tipo_actividad":
					m.TipoActividad, err = asIntPtr(campo, v)
				case "adjunto":
					m.Adjunto, err = asStringPtr(campo, v)
				case "cantidad_campos_cambiados":
					m.CantidadCamposCambiados, err = asIntPtr(campo, v)
				case "razon_remision_ebs":
					m.RazonRemisionEbs, err = asStringPtr(campo, v)
				default:
					err = asignarAuditoria(&m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy, campo, v, estricto)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
		updatedAt: func(m *model.ApsPersonaEstilosVidaConductaModel) *time.Time { return &m.UpdatedAt },
		id:        func(m *model.ApsPersonaEstilosVidaConductaModel) uint { return m.ID },
		borrarSet: func(m *model.ApsPersonaEstilosVidaConductaModel, _ uint, ahora time.Time) {
			m.DeletedAt = &ahora
		},
		requeridos: []string{"created_at"},
	})
}

func tablaDetalleMaternidad() tablaSync {
	return tablaDe("persona_maternidad", false, ganchos[model.ApsPersonaMaternidadModel]{
		asignar: func(m *model.ApsPersonaMaternidadModel, item map[string]any, estricto bool) error {
			for campo, v := range item {
				var err error
				switch campo {
				case "aps_persona_id":
					m.ApsPersonaID, err = asUint(campo, v)
				case "aps_visita_id":
					m.ApsVisitaID, err = asUint(campo, v)
				case "numero_partos_cesareas":
					m.NumeroPartosCesareas, err = asIntPtr(campo, v)
				case "antecedente_cesarea_parto_instrumentado":
					m.AntecedenteCesareaPartoInstrumentado, err = asIntPtr(campo, v)
				case "edad_momento_nacer_primer_hijo":
					m.EdadMomentoNacerPrimerHijo, err = asIntPtr(campo, v)
				case "ha_lactado":
					m.HaLactado, err = asIntPtr(campo, v)
				case "embarazo_actual_aceptado":
					m.EmbarazoActualAceptado, err = asIntPtr(campo, v)
				case "clasificacion_riesgo_obstetrico":
					m.ClasificacionRiesgoObstetrico, err = asIntPtr(campo, v)
				case "aps_motivo_riesgo_txt":
					m.ApsMotivoRiesgoTxt, err = asString(campo, v)
				case "primigestante":
					m.Primigestante, err = asIntPtr(campo, v)
				case "conoce_fecha_probable_parto":
					m.ConoceFechaProbableParto, err = asIntPtr(campo, v)
				case "fecha_probable_parto":
					m.FechaProbableParto, err = asFechaPtr(campo, v)
				case "complicaciones_parto_puerperio":
					m.ComplicacionesPartoPuerperio, err = asIntPtr(campo, v)
				default:
					err = asignarAuditoria(&m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy, campo, v, estricto)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
		updatedAt: func(m *model.ApsPersonaMaternidadModel) *time.Time { return &m.UpdatedAt },
		id:        func(m *model.ApsPersonaMaternidadModel) uint { return m.ID },
		borrarSet: func(m *model.ApsPersonaMaternidadModel, _ uint, ahora time.Time) {
			m.DeletedAt = &ahora
		},
		requeridos: []string{"created_at"},
	})
}

func tablaDetallePracticasSalud() tablaSync {
	return tablaDe("persona_practicas_salud_salud_sexual", false, ganchos[model.ApsPersonaPracticasSaludModel]{
		asignar: func(m *model.ApsPersonaPracticasSaludModel, item map[string]any, estricto bool) error {
			for campo, v := range item {
				var err error
				switch campo {
				case "aps_persona_id":
					m.ApsPersonaID, err = asUint(campo, v)
				case "aps_visita_id":
					m.ApsVisitaID, err = asUint(campo, v)
				case "biberon":
					m.Biberon, err = asIntPtr(campo, v)
				case "esquema_vacunacion_completo":
					m.EsquemaVacunacionCompleto, err = asIntPtr(campo, v)
				case "fecha_proxima_vacunacion":
					m.FechaProximaVacunacion, err = asFechaPtr(campo, v)
				case "cepillado_diario_minimo":
					m.CepilladoDiarioMinimo, err = asInt(campo, v)
				case "seda_dental_minimo":
					m.SedaDentalMinimo, err = asIntPtr(campo, v)
				case "primera_menstruacion_antes_doce_anios":
					m.PrimeraMenstruacionAntesDoceAnios, err = asIntPtr(campo, v)
				case "ultima_menstruacion_despues_cincuenta_anios":
					m.UltimaMenstruacionDespuesCincuentaAnios, err = asIntPtr(campo, v)
				case "actualmente_tiene_relaciones_sexuales":
					m.ActualmenteTieneRelacionesSexuales, err = asIntPtr(campo, v)
				case "aps_practica_sexual_riesgosa_txt":
					m.ApsPracticaSexualRiesgosaTxt, err = asString(campo, v)
				case "aps_metodo_planificacion_txt":
					m.ApsMetodoPlanificacionTxt, err = asString(campo, v)
				case "constante_metodo_planificacion":
					m.ConstanteMetodoPlanificacion, err = asIntPtr(campo, v)
				case "utilizado_anticonceptivos_orales_mas_diez_anios":
					m.UtilizadoAnticonceptivosOralesMasDiezAnios, err = asIntPtr(campo, v)
				default:
					err = asignarAuditoria(&m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy, campo, v, estricto)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
		updatedAt: func(m *model.ApsPersonaPracticasSaludModel) *time.Time { return &m.UpdatedAt },
		id:        func(m *model.ApsPersonaPracticasSaludModel) uint { return m.ID },
		borrarSet: func(m *model.ApsPersonaPracticasSaludModel, _ uint, ahora time.Time) {
			m.DeletedAt = &ahora
		},
		requeridos: []string{"created_at"},
	})
}

// asignarAuditoria resuelve los cuatro campos de auditoría comunes a todas
// las tablas de detalle; cualquier otro campo cae al comportamiento
// estricto/permisivo según la fase.
func asignarAuditoria(createdAt, updatedAt *time.Time, createdBy, updatedBy *uint, campo string, v any, estricto bool) error {
	var err error
	switch campo {
	case "created_at":
		*createdAt, err = asFecha(campo, v)
	case "updated_at":
		*updatedAt, err = asFecha(campo, v)
	case "created_by":
		*createdBy, err = asUint(campo, v)
	case "updated_by":
		*updatedBy, err = asUint(campo, v)
	default:
		if estricto {
			return fmt.Errorf("campo desconocido: %s", campo)
		}
	}
	return err
}
