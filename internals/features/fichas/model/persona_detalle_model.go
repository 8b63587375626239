package model

import "time"

// =======================================================
// Registros clínicos por persona y visita. Todos comparten
// el mismo patrón: FK a aps_persona + aps_visita, campos
// *_txt con listas de ids separadas por coma, y borrado
// lógico vía deleted_at.
// =======================================================

type ApsPersonaAntecedenteMedicoModel struct {
	ID                                          uint       `gorm:"column:id;primaryKey" json:"id"`
	ApsPersonaID                                uint       `gorm:"column:aps_persona_id" json:"aps_persona_id"`
	ApsVisitaID                                 uint       `gorm:"column:aps_visita_id" json:"aps_visita_id"`
	ApsAntecedentePersonalTxt                   string     `gorm:"column:aps_antecedente_personal_txt" json:"aps_antecedente_personal_txt"`
	ApsEnfermedadActualTxt                      string     `gorm:"column:aps_enfermedad_actual_txt" json:"aps_enfermedad_actual_txt"`
	ApsAntecedenteFamiliarPrimerSegundoGradoTxt string     `gorm:"column:aps_antecedente_familiar_primer_segundo_grado_txt" json:"aps_antecedente_familiar_primer_segundo_grado_txt"`
	ApsSintomaRecienteSinCausaAparenteTxt       string     `gorm:"column:aps_sintoma_reciente_sin_causa_aparente_txt" json:"aps_sintoma_reciente_sin_causa_aparente_txt"`
	CreatedAt                                   time.Time  `gorm:"column:created_at;type:date" json:"created_at"`
	UpdatedAt                                   time.Time  `gorm:"column:updated_at;type:date" json:"updated_at"`
	CreatedBy                                   uint       `gorm:"column:created_by" json:"created_by"`
	UpdatedBy                                   uint       `gorm:"column:updated_by" json:"updated_by"`
	DeletedAt                                   *time.Time `gorm:"column:deleted_at;type:date" json:"deleted_at"`
}

func (ApsPersonaAntecedenteMedicoModel) TableName() string { return "aps_persona_antecedente_medico" }

type ApsPersonaComponenteMentalModel struct {
	ID                                                   uint       `gorm:"column:id;primaryKey" json:"id"`
	ApsPersonaID                                         uint       `gorm:"column:aps_persona_id" json:"aps_persona_id"`
	ApsVisitaID                                          uint       `gorm:"column:aps_visita_id" json:"aps_visita_id"`
	SeHaSentidoTristeDecaidoUltimasDosSemanas            *int       `gorm:"column:se_ha_sentido_triste_decaido_ultimas_dos_semanas" json:"se_ha_sentido_triste_decaido_ultimas_dos_semanas"`
	HaPensadoDeseadoEstariaMejorMuerto                   *int       `gorm:"column:ha_pensado_deseado_estaria_mejor_muerto" json:"ha_pensado_deseado_estaria_mejor_muerto"`
	MiembroFamiliaComportamientoExtranioDiferenteAnormal *int       `gorm:"column:miembro_familia_comportamiento_extranio_diferente_anormal" json:"miembro_familia_comportamiento_extranio_diferente_anormal"`
	SituacionRecienteProblemaPsicosocial                 *int       `gorm:"column:situacion_reciente_problema_psicosocial" json:"situacion_reciente_problema_psicosocial"`
	ResultadoApgarFamiliar                               *string    `gorm:"column:resultado_apgar_familiar" json:"resultado_apgar_familiar"`
	SospechaConfirmacionViolenciaIntrafamiliar           *int       `gorm:"column:sospecha_confirmacion_violencia_intrafamiliar" json:"sospecha_confirmacion_violencia_intrafamiliar"`
	AgredidoFisicaPsicologicaPorFamiliarUltimosTresMeses *int       `gorm:"column:agredido_fisica_psicologica_por_familiar_ultimos_tres_meses" json:"agredido_fisica_psicologica_por_familiar_ultimos_tres_meses"`
	HospitalizadoDebidoViolenciaIntrafamiliar            *int       `gorm:"column:hospitalizado_debido_violencia_intrafamiliar" json:"hospitalizado_debido_violencia_intrafamiliar"`
	HanUtilizadoElementosContundentesParaAgredirle       *int       `gorm:"column:han_utilizado_elementos_contundentes_para_agredirle" json:"han_utilizado_elementos_contundentes_para_agredirle"`
	ApsConsumoSpaTxt                                     string     `gorm:"column:aps_consumo_spa_txt" json:"aps_consumo_spa_txt"`
	CreatedAt                                            time.Time  `gorm:"column:created_at;type:date" json:"created_at"`
	UpdatedAt                                            time.Time  `gorm:"column:updated_at;type:date" json:"updated_at"`
	CreatedBy                                            uint       `gorm:"column:created_by" json:"created_by"`
	UpdatedBy                                            uint       `gorm:"column:updated_by" json:"updated_by"`
	DeletedAt                                            *time.Time `gorm:"column:deleted_at;type:date" json:"deleted_at"`
}

func (ApsPersonaComponenteMentalModel) TableName() string { return "aps_persona_componente_mental" }

type ApsPersonaCondicionesSaludModel struct {
	ID                                           uint       `gorm:"column:id;primaryKey" json:"id"`
	ApsPersonaID                                 uint       `gorm:"column:aps_persona_id" json:"aps_persona_id"`
	ApsVisitaID                                  uint       `gorm:"column:aps_visita_id" json:"aps_visita_id"`
	CircunferenciaAbdominalCm                    *int       `gorm:"column:circunferencia_abdominal_cm" json:"circunferencia_abdominal_cm"`
	InterpretacionCircunferencia                 *string    `gorm:"column:interpretacion_circunferencia" json:"interpretacion_circunferencia"`
	PresionArterialSistolica                     *int       `gorm:"column:presion_arterial_sistolica" json:"presion_arterial_sistolica"`
	PresionArterialDiastolica                    *int       `gorm:"column:presion_arterial_diastolica" json:"presion_arterial_diastolica"`
	Nivel                                        *string    `gorm:"column:nivel" json:"nivel"`
	ResultadoUltimaCitologiaCervicoUterina       *int       `gorm:"column:resultado_ultima_citologia_cervico_uterina" json:"resultado_ultima_citologia_cervico_uterina"`
	FechaProgramadaCitologiaCervicoUterina       *time.Time `gorm:"column:fecha_programada_citologia_cervico_uterina;type:date" json:"fecha_programada_citologia_cervico_uterina"`
	ResultadoAntigenoProstatico                  *int       `gorm:"column:resultado_antigeno_prostatico" json:"resultado_antigeno_prostatico"`
	ResultadoUltimaMamografia                    *int       `gorm:"column:resultado_ultima_mamografia" json:"resultado_ultima_mamografia"`
	EnSuEmbarazoSuMadreConsumioAlcoholCigarrillo *int       `gorm:"column:en_su_embarazo_su_madre_consumio_alcohol_cigarrillo" json:"en_su_embarazo_su_madre_consumio_alcohol_cigarrillo"`
	CreatedAt                                    time.Time  `gorm:"column:created_at;type:date" json:"created_at"`
	UpdatedAt                                    time.Time  `gorm:"column:updated_at;type:date" json:"updated_at"`
	CreatedBy                                    uint       `gorm:"column:created_by" json:"created_by"`
	UpdatedBy                                    uint       `gorm:"column:updated_by" json:"updated_by"`
	DeletedAt                                    *time.Time `gorm:"column:deleted_at;type:date" json:"deleted_at"`
}

func (ApsPersonaCondicionesSaludModel) TableName() string { return "aps_persona_condiciones_salud" }

// ApsPersonaDatoBasicoModel: afiliación y contexto socioeconómico. Las ~75
// columnas puntaje_* del esquema legado pertenecen al motor de riesgo del
// aplicativo web y no participan en la sincronización.
type ApsPersonaDatoBasicoModel struct {
	ID                                uint       `gorm:"column:id;primaryKey" json:"id"`
	ApsPersonaID                      uint       `gorm:"column:aps_persona_id" json:"aps_persona_id"`
	ApsVisitaID                       uint       `gorm:"column:aps_visita_id" json:"aps_visita_id"`
	ApsDatoBasicoCondicionTxt         string     `gorm:"column:aps_dato_basico_condicion_txt" json:"aps_dato_basico_condicion_txt"`
	ApsDatoBasicoDiscapacidadTxt      string     `gorm:"column:aps_dato_basico_discapacidad_txt" json:"aps_dato_basico_discapacidad_txt"`
	CondicionDependenciaDiscapacidad  *string    `gorm:"column:condicion_dependencia_discapacidad" json:"condicion_dependencia_discapacidad"`
	Parentesco                        int        `gorm:"column:parentesco" json:"parentesco"`
	Regimen                           int        `gorm:"column:regimen" json:"regimen"`
	EpsID                             *uint      `gorm:"column:eps_id" json:"eps_id"`
	OcupacionPrincipal                *int       `gorm:"column:ocupacion_principal" json:"ocupacion_principal"`
	DependeEconomicamenteFamiliar     *int       `gorm:"column:depende_economicamente_familiar" json:"depende_economicamente_familiar"`
	Escolaridad                       *int       `gorm:"column:escolaridad" json:"escolaridad"`
	AbandonoEstudiosPrimariaBachiller *int       `gorm:"column:abandono_estudios_primaria_bachiller" json:"abandono_estudios_primaria_bachiller"`
	CreatedAt                         time.Time  `gorm:"column:created_at;type:date" json:"created_at"`
	UpdatedAt                         time.Time  `gorm:"column:updated_at;type:date" json:"updated_at"`
	CreatedBy                         uint       `gorm:"column:created_by" json:"created_by"`
	UpdatedBy                         uint       `gorm:"column:updated_by" json:"updated_by"`
	DeletedAt                         *time.Time `gorm:"column:deleted_at;type:date" json:"deleted_at"`
}

func (ApsPersonaDatoBasicoModel) TableName() string { return "aps_persona_dato_basico" }

// ApsPersonaEstilosVidaConductaModel guarda además cantidad_campos_cambiados,
// la métrica que alimenta el indicador de cambios por visita.
type ApsPersonaEstilosVidaConductaModel struct {
	ID                                                 uint       `gorm:"column:id;primaryKey" json:"id"`
	ApsPersonaID                                       uint       `gorm:"column:aps_persona_id" json:"aps_persona_id"`
	ApsVisitaID                                        uint       `gorm:"column:aps_visita_id" json:"aps_visita_id"`
	PracticaActividadFisicaMinutos                     *int       `gorm:"column:practica_actividad_fisica_minutos" json:"practica_actividad_fisica_minutos"`
	ApsHabitosAlimentacionTxt                          string     `gorm:"column:aps_habitos_alimentacion_txt" json:"aps_habitos_alimentacion_txt"`
	ApsExposicionHumoTxt                               string     `gorm:"column:aps_exposicion_humo_txt" json:"aps_exposicion_humo_txt"`
	ApsInasistenciaControlesTxt                        string     `gorm:"column:aps_inasistencia_controles_txt" json:"aps_inasistencia_controles_txt"`
	EpsEntregaCumplidamenteMetodoPlanificacionFamiliar *int       `gorm:"column:eps_entrega_cumplidamente_metodo_planificacion_familiar" json:"eps_entrega_cumplidamente_metodo_planificacion_familiar"`
	ApsAdherenciaTratamientoTxt                        string     `gorm:"column:aps_adherencia_tratamiento_txt" json:"aps_adherencia_tratamiento_txt"`
	ApsDificultadesRecibirTratamientoTxt               string     `gorm:"column:aps_dificultades_recibir_tratamiento_txt" json:"aps_dificultades_recibir_tratamiento_txt"`
	ApsRemisionATxt                                    string     `gorm:"column:aps_remision_a_txt" json:"aps_remision_a_txt"`
	EspecifiqueRemisionA                               *string    `gorm:"column:especifique_remision_a" json:"especifique_remision_a"`
	ApsValoracionEquipoApsTxt                          string     `gorm:"column:aps_valoracion_equipo_aps_txt" json:"aps_valoracion_equipo_aps_txt"`
	CualValoracion                                     *string    `gorm:"column:cual_valoracion" json:"cual_valoracion"`
	Peso                                               *float64   `gorm:"column:peso" json:"peso"`
	Talla                                              *float64   `gorm:"column:talla" json:"talla"`
	InterpretacionIMC                                  *string    `gorm:"column:interpretacion_IMC" json:"interpretacion_IMC"`
	ValorImc                                           float64    `gorm:"column:valor_imc" json:"valor_imc"`
	PerimetroBrazo                                     *int       `gorm:"column:perimetro_brazo" json:"perimetro_brazo"`
	InterpretacionPerimetro                            *string    `gorm:"column:interpretacion_perimetro" json:"interpretacion_perimetro"`
	InterpretacionFINDRICS                             *string    `gorm:"column:interpretacion_FINDRICS" json:"interpretacion_FINDRICS"`
	ValorFindrics                                      *int       `gorm:"column:valor_findrics" json:"valor_findrics"`
	InterpretacionRiesgoEpoc                           *string    `gorm:"column:interpretacion_riesgo_epoc" json:"interpretacion_riesgo_epoc"`
	ValorRiesgoEpoc                                    *int       `gorm:"column:valor_riesgo_epoc" json:"valor_riesgo_epoc"`
	InterpretacionRiesgoCaries                         *string    `gorm:"column:interpretacion_riesgo_caries" json:"interpretacion_riesgo_caries"`
	ValorRiesgoCaries                                  *int       `gorm:"column:valor_riesgo_caries" json:"valor_riesgo_caries"`
	Novedad                                            *int       `gorm:"column:novedad" json:"novedad"`
	Observaciones                                      *string    `gorm:"column:observaciones" json:"observaciones"`
	Intervenciones                                     *string    `gorm:"column:intervenciones" json:"intervenciones"`
	EstadoRegistro                                     *int       `gorm:"column:estado_registro;default:0" json:"estado_registro"`
	TipoActividad                                      *int       `gorm:"column:tipo_actividad;default:0" json:"tipo_actividad"`
	Adjunto                                            *string    `gorm:"column:adjunto" json:"adjunto"`
	CantidadCamposCambiados                            *int       `gorm:"column:cantidad_campos_cambiados" json:"cantidad_campos_cambiados"`
	RazonRemisionEbs                                   *string    `gorm:"column:razon_remision_ebs" json:"razon_remision_ebs"`
	CreatedAt                                          time.Time  `gorm:"column:created_at;type:date" json:"created_at"`
	UpdatedAt                                          time.Time  `gorm:"column:updated_at;type:date" json:"updated_at"`
	CreatedBy                                          uint       `gorm:"column:created_by" json:"created_by"`
	UpdatedBy                                          uint       `gorm:"column:updated_by" json:"updated_by"`
	DeletedAt                                          *time.Time `gorm:"column:deleted_at;type:date" json:"deleted_at"`
}

func (ApsPersonaEstilosVidaConductaModel) TableName() string {
	return "aps_persona_estilos_vida_conducta"
}

type ApsPersonaMaternidadModel struct {
	ID                                   uint       `gorm:"column:id;primaryKey" json:"id"`
	ApsPersonaID                         uint       `gorm:"column:aps_persona_id" json:"aps_persona_id"`
	ApsVisitaID                          uint       `gorm:"column:aps_visita_id" json:"aps_visita_id"`
	NumeroPartosCesareas                 *int       `gorm:"column:numero_partos_cesareas" json:"numero_partos_cesareas"`
	AntecedenteCesareaPartoInstrumentado *int       `gorm:"column:antecedente_cesarea_parto_instrumentado" json:"antecedente_cesarea_parto_instrumentado"`
	EdadMomentoNacerPrimerHijo           *int       `gorm:"column:edad_momento_nacer_primer_hijo" json:"edad_momento_nacer_primer_hijo"`
	HaLactado                            *int       `gorm:"column:ha_lactado" json:"ha_lactado"`
	EmbarazoActualAceptado               *int       `gorm:"column:embarazo_actual_aceptado" json:"embarazo_actual_aceptado"`
	ClasificacionRiesgoObstetrico        *int       `gorm:"column:clasificacion_riesgo_obstetrico" json:"clasificacion_riesgo_obstetrico"`
	ApsMotivoRiesgoTxt                   string     `gorm:"column:aps_motivo_riesgo_txt" json:"aps_motivo_riesgo_txt"`
	Primigestante                        *int       `gorm:"column:primigestante" json:"primigestante"`
	ConoceFechaProbableParto             *int       `gorm:"column:conoce_fecha_probable_parto" json:"conoce_fecha_probable_parto"`
	FechaProbableParto                   *time.Time `gorm:"column:fecha_probable_parto;type:date" json:"fecha_probable_parto"`
	ComplicacionesPartoPuerperio         *int       `gorm:"column:complicaciones_parto_puerperio" json:"complicaciones_parto_puerperio"`
	CreatedAt                            time.Time  `gorm:"column:created_at;type:date" json:"created_at"`
	UpdatedAt                            time.Time  `gorm:"column:updated_at;type:date" json:"updated_at"`
	CreatedBy                            uint       `gorm:"column:created_by" json:"created_by"`
	UpdatedBy                            uint       `gorm:"column:updated_by" json:"updated_by"`
	DeletedAt                            *time.Time `gorm:"column:deleted_at;type:date" json:"deleted_at"`
}

func (ApsPersonaMaternidadModel) TableName() string { return "aps_persona_maternidad" }

type ApsPersonaPracticasSaludModel struct {
	ID                                         uint       `gorm:"column:id;primaryKey" json:"id"`
	ApsPersonaID                               uint       `gorm:"column:aps_persona_id" json:"aps_persona_id"`
	ApsVisitaID                                uint       `gorm:"column:aps_visita_id" json:"aps_visita_id"`
	Biberon                                    *int       `gorm:"column:biberon" json:"biberon"`
	EsquemaVacunacionCompleto                  *int       `gorm:"column:esquema_vacunacion_completo" json:"esquema_vacunacion_completo"`
	FechaProximaVacunacion                     *time.Time `gorm:"column:fecha_proxima_vacunacion;type:date" json:"fecha_proxima_vacunacion"`
	CepilladoDiarioMinimo                      int        `gorm:"column:cepillado_diario_minimo" json:"cepillado_diario_minimo"`
	SedaDentalMinimo                           *int       `gorm:"column:seda_dental_minimo" json:"seda_dental_minimo"`
	PrimeraMenstruacionAntesDoceAnios          *int       `gorm:"column:primera_menstruacion_antes_doce_anios" json:"primera_menstruacion_antes_doce_anios"`
	UltimaMenstruacionDespuesCincuentaAnios    *int       `gorm:"column:ultima_menstruacion_despues_cincuenta_anios" json:"ultima_menstruacion_despues_cincuenta_anios"`
	ActualmenteTieneRelacionesSexuales         *int       `gorm:"column:actualmente_tiene_relaciones_sexuales" json:"actualmente_tiene_relaciones_sexuales"`
	ApsPracticaSexualRiesgosaTxt               string     `gorm:"column:aps_practica_sexual_riesgosa_txt" json:"aps_practica_sexual_riesgosa_txt"`
	ApsMetodoPlanificacionTxt                  string     `gorm:"column:aps_metodo_planificacion_txt" json:"aps_metodo_planificacion_txt"`
	ConstanteMetodoPlanificacion               *int       `gorm:"column:constante_metodo_planificacion" json:"constante_metodo_planificacion"`
	UtilizadoAnticonceptivosOralesMasDiezAnios *int       `gorm:"column:utilizado_anticonceptivos_orales_mas_diez_anios" json:"utilizado_anticonceptivos_orales_mas_diez_anios"`
	CreatedAt                                  time.Time  `gorm:"column:created_at;type:date" json:"created_at"`
	UpdatedAt                                  time.Time  `gorm:"column:updated_at;type:date" json:"updated_at"`
	CreatedBy                                  uint       `gorm:"column:created_by" json:"created_by"`
	UpdatedBy                                  uint       `gorm:"column:updated_by" json:"updated_by"`
	DeletedAt                                  *time.Time `gorm:"column:deleted_at;type:date" json:"deleted_at"`
}

func (ApsPersonaPracticasSaludModel) TableName() string {
	return "aps_persona_practicas_salud_salud_sexual"
}
