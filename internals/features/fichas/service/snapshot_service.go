package service

import (
	"time"

	"gorm.io/gorm"

	"capsmanizales_backend/internals/constants"
	catalogService "capsmanizales_backend/internals/features/catalog/service"
	"capsmanizales_backend/internals/features/fichas/dto"
	"capsmanizales_backend/internals/features/fichas/model"
	authModel "capsmanizales_backend/internals/features/users/auth/model"
	helper "capsmanizales_backend/internals/helpers"
)

// SnapshotBuilder arma la foto inicial para el móvil: última visita por
// familia dentro del territorio, paginada, con todo traducido server-side
// para que la app no cargue catálogos.
type SnapshotBuilder struct {
	DB *gorm.DB
}

func NewSnapshotBuilder(db *gorm.DB) *SnapshotBuilder {
	return &SnapshotBuilder{DB: db}
}

func (b *SnapshotBuilder) Construir(comunaIDs []uint, page, perPage int) (dto.SnapshotResponse, error) {
	ahora := time.Now().Format(time.RFC3339Nano)

	// 1. Visitas alcanzables desde el territorio, vía sus ubicaciones.
	var visitaIDsTerritorio []uint
	if err := b.DB.Model(&model.ApsUbicacionFamiliaModel{}).
		Where("base_comuna_corregimiento_id IN ?", comunaIDs).
		Distinct("aps_visita_id").
		Pluck("aps_visita_id", &visitaIDsTerritorio).Error; err != nil {
		return dto.SnapshotResponse{}, err
	}
	if len(visitaIDsTerritorio) == 0 {
		return dto.EmptySnapshot("No hay visitas en los territorios asignados al usuario.", page, perPage, ahora), nil
	}

	// 2. Solo fichas activas.
	var visitasTerritorio []model.ApsVisitaModel
	if err := b.DB.
		Where("id IN ? AND estado_ficha = ?", visitaIDsTerritorio, constants.EstadoFichaActiva).
		Find(&visitasTerritorio).Error; err != nil {
		return dto.SnapshotResponse{}, err
	}

	// 3. Personas con apellidos reales (el móvil marca con el literal "NULL"
	// las filas incompletas) → familias candidatas.
	visitaIDs := make([]uint, 0, len(visitasTerritorio))
	for _, v := range visitasTerritorio {
		visitaIDs = append(visitaIDs, v.ID)
	}

	familiasValidas := map[uint]bool{}
	if len(visitaIDs) > 0 {
		var familiaIDs []uint
		if err := b.DB.Model(&model.ApsPersonaModel{}).
			Where("aps_visita_id IN ? AND apellidos <> ?", visitaIDs, constants.ApellidoSentinela).
			Distinct("aps_ficha_familia_id").
			Pluck("aps_ficha_familia_id", &familiaIDs).Error; err != nil {
			return dto.SnapshotResponse{}, err
		}
		if len(familiaIDs) > 0 {
			var validas []uint
			if err := b.DB.Model(&model.ApsFichaFamiliaModel{}).
				Where("id IN ? AND apellido_familiar IS NOT NULL AND apellido_familiar <> '' AND apellido_familiar <> ?",
					familiaIDs, constants.ApellidoSentinela).
				Pluck("id", &validas).Error; err != nil {
				return dto.SnapshotResponse{}, err
			}
			for _, id := range validas {
				familiasValidas[id] = true
			}
		}
	}

	// 4. Una visita por familia, la última, y paginación estable.
	ultimas := UltimaVisitaPorFamilia(visitasTerritorio, familiasValidas)
	if len(ultimas) == 0 {
		return dto.EmptySnapshot("No hay visitas válidas con familias activas en los territorios asignados al usuario.", page, perPage, ahora), nil
	}
	pagina, meta := Paginar(ultimas, page, perPage)

	paginaVisitaIDs := make([]uint, 0, len(pagina))
	paginaFamiliaIDs := make([]uint, 0, len(pagina))
	familiasVistas := map[uint]bool{}
	for _, v := range pagina {
		paginaVisitaIDs = append(paginaVisitaIDs, v.ID)
		if !familiasVistas[v.ApsFichaFamiliaID] {
			familiasVistas[v.ApsFichaFamiliaID] = true
			paginaFamiliaIDs = append(paginaFamiliaIDs, v.ApsFichaFamiliaID)
		}
	}

	traducciones, err := catalogService.CargarTraducciones(b.DB)
	if err != nil {
		return dto.SnapshotResponse{}, err
	}

	// 5. Familias de la página.
	var familias []model.ApsFichaFamiliaModel
	if err := b.DB.Where("id IN ?", paginaFamiliaIDs).Find(&familias).Error; err != nil {
		return dto.SnapshotResponse{}, err
	}

	// 6. Versión vigente de cada persona de esas familias.
	personas, err := b.personasDePagina(paginaFamiliaIDs)
	if err != nil {
		return dto.SnapshotResponse{}, err
	}
	personaIDs := make([]uint, 0, len(personas))
	for _, p := range personas {
		personaIDs = append(personaIDs, p.ID)
	}

	usuarios, err := b.cargarUsuarios(pagina, familias)
	if err != nil {
		return dto.SnapshotResponse{}, err
	}

	indicadores, err := b.indicadoresPorFamilia(paginaFamiliaIDs)
	if err != nil {
		return dto.SnapshotResponse{}, err
	}

	novedades, err := b.novedadesPorPersona(personaIDs, traducciones)
	if err != nil {
		return dto.SnapshotResponse{}, err
	}

	datos := dto.EmptyTransactionalData()

	for _, f := range familias {
		datos.Familias = append(datos.Familias, serializarFamilia(f, usuarios, traducciones, indicadores[f.ID]))
	}
	for _, p := range personas {
		datos.Personas = append(datos.Personas, serializarPersona(p, traducciones, novedades[p.ID]))
	}
	for _, v := range pagina {
		datos.Visitas = append(datos.Visitas, serializarVisita(v, usuarios, traducciones))
	}

	var ubicaciones []model.ApsUbicacionFamiliaModel
	if err := b.DB.Where("aps_visita_id IN ?", paginaVisitaIDs).Find(&ubicaciones).Error; err != nil {
		return dto.SnapshotResponse{}, err
	}
	for _, u := range ubicaciones {
		datos.UbicacionesFamilia = append(datos.UbicacionesFamilia, serializarUbicacion(u, traducciones))
	}

	var habitats []model.ApsCondicionesHabitatFamiliaModel
	if err := b.DB.Where("aps_visita_id IN ?", paginaVisitaIDs).Find(&habitats).Error; err != nil {
		return dto.SnapshotResponse{}, err
	}
	for _, h := range habitats {
		datos.CondicionesHabitatFamilia = append(datos.CondicionesHabitatFamilia, serializarHabitat(h, traducciones))
	}

	if err := b.cargarDetalles(personaIDs, &datos); err != nil {
		return dto.SnapshotResponse{}, err
	}

	return dto.SnapshotResponse{
		CatalogData:       map[string]any{},
		TransactionalData: datos,
		PaginationMeta:    meta,
		LastSyncTimestamp: ahora,
	}, nil
}

// personasDePagina trae todas las versiones de persona de las familias de la
// página y se queda con la vigente por documento dentro de cada familia.
func (b *SnapshotBuilder) personasDePagina(familiaIDs []uint) ([]model.ApsPersonaModel, error) {
	if len(familiaIDs) == 0 {
		return nil, nil
	}
	var versiones []model.ApsPersonaModel
	if err := b.DB.
		Where("aps_ficha_familia_id IN ? AND apellidos <> ?", familiaIDs, constants.ApellidoSentinela).
		Find(&versiones).Error; err != nil {
		return nil, err
	}
	if len(versiones) == 0 {
		return nil, nil
	}

	visitaIDs := make([]uint, 0, len(versiones))
	for _, p := range versiones {
		visitaIDs = append(visitaIDs, p.ApsVisitaID)
	}
	var visitas []model.ApsVisitaModel
	if err := b.DB.Where("id IN ?", visitaIDs).Find(&visitas).Error; err != nil {
		return nil, err
	}
	visitaPorID := make(map[uint]model.ApsVisitaModel, len(visitas))
	for _, v := range visitas {
		visitaPorID[v.ID] = v
	}

	conFecha := make([]PersonaConFecha, 0, len(versiones))
	for _, p := range versiones {
		v, ok := visitaPorID[p.ApsVisitaID]
		if !ok {
			// Versión huérfana: sin visita no hay fecha para comparar.
			continue
		}
		conFecha = append(conFecha, PersonaConFecha{Persona: p, Visita: v})
	}
	return SeleccionarVersionesVigentes(conFecha), nil
}

func (b *SnapshotBuilder) cargarUsuarios(visitas []model.ApsVisitaModel, familias []model.ApsFichaFamiliaModel) (map[uint]authModel.UserModel, error) {
	idSet := map[uint]bool{}
	for _, v := range visitas {
		idSet[v.CreatedBy] = true
		idSet[v.UpdatedBy] = true
	}
	for _, f := range familias {
		idSet[f.CreatedBy] = true
		idSet[f.UpdatedBy] = true
	}
	delete(idSet, 0)

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	usuarios := map[uint]authModel.UserModel{}
	if len(ids) == 0 {
		return usuarios, nil
	}
	var filas []authModel.UserModel
	if err := b.DB.Where("id IN ?", ids).Find(&filas).Error; err != nil {
		return nil, err
	}
	for _, u := range filas {
		usuarios[u.ID] = u
	}
	return usuarios, nil
}

// indicadoresPorFamilia calcula total_campos_actualizados_ultima_visita para
// cada familia de la página con tres consultas en bloque.
func (b *SnapshotBuilder) indicadoresPorFamilia(familiaIDs []uint) (map[uint]any, error) {
	out := map[uint]any{}
	if len(familiaIDs) == 0 {
		return out, nil
	}

	var vigentes []model.ApsPersonaModel
	if err := b.DB.
		Where("aps_ficha_familia_id IN ? AND vigencia_registro = ?", familiaIDs, true).
		Find(&vigentes).Error; err != nil {
		return nil, err
	}

	documentos := map[string]bool{}
	personaIDs := make([]uint, 0, len(vigentes))
	for _, p := range vigentes {
		documentos[p.NumeroDocumento] = true
		personaIDs = append(personaIDs, p.ID)
	}

	versionesPorDocumento := map[string]int64{}
	if len(documentos) > 0 {
		docs := make([]string, 0, len(documentos))
		for d := range documentos {
			docs = append(docs, d)
		}
		var filas []struct {
			NumeroDocumento string
			Total           int64
		}
		if err := b.DB.Model(&model.ApsPersonaModel{}).
			Select("numero_documento, COUNT(*) AS total").
			Where("numero_documento IN ?", docs).
			Group("numero_documento").
			Scan(&filas).Error; err != nil {
			return nil, err
		}
		for _, f := range filas {
			versionesPorDocumento[f.NumeroDocumento] = f.Total
		}
	}

	cambiosPorPersona := map[uint][]*int{}
	if len(personaIDs) > 0 {
		var estilos []model.ApsPersonaEstilosVidaConductaModel
		if err := b.DB.Where("aps_persona_id IN ?", personaIDs).Find(&estilos).Error; err != nil {
			return nil, err
		}
		for _, e := range estilos {
			cambiosPorPersona[e.ApsPersonaID] = append(cambiosPorPersona[e.ApsPersonaID], e.CantidadCamposCambiados)
		}
	}

	porFamilia := map[uint][]PersonaVigenteConEstilo{}
	for _, p := range vigentes {
		cambios := cambiosPorPersona[p.ID]
		if len(cambios) == 0 {
			cambios = []*int{nil}
		}
		for _, c := range cambios {
			porFamilia[p.ApsFichaFamiliaID] = append(porFamilia[p.ApsFichaFamiliaID], PersonaVigenteConEstilo{
				NumeroDocumento:         p.NumeroDocumento,
				CantidadVersiones:       versionesPorDocumento[p.NumeroDocumento],
				CantidadCamposCambiados: c,
			})
		}
	}

	for _, id := range familiaIDs {
		out[id] = TotalCamposActualizados(porFamilia[id])
	}
	return out, nil
}

// novedadesPorPersona traduce la novedad registrada en estilos de vida.
func (b *SnapshotBuilder) novedadesPorPersona(personaIDs []uint, tr *catalogService.Traducciones) (map[uint]string, error) {
	out := map[uint]string{}
	if len(personaIDs) == 0 {
		return out, nil
	}
	var estilos []model.ApsPersonaEstilosVidaConductaModel
	if err := b.DB.Where("aps_persona_id IN ?", personaIDs).Find(&estilos).Error; err != nil {
		return nil, err
	}
	for _, e := range estilos {
		if e.Novedad != nil && *e.Novedad > 0 {
			out[e.ApsPersonaID] = tr.OpcionID(uint(*e.Novedad))
		}
	}
	return out, nil
}

func (b *SnapshotBuilder) cargarDetalles(personaIDs []uint, datos *dto.TransactionalData) error {
	if len(personaIDs) == 0 {
		return nil
	}

	var antecedentes []model.ApsPersonaAntecedenteMedicoModel
	if err := b.DB.Where("aps_persona_id IN ?", personaIDs).Find(&antecedentes).Error; err != nil {
		return err
	}
	for _, r := range antecedentes {
		datos.PersonaAntecedenteMedico = append(datos.PersonaAntecedenteMedico,
			detalleSync(r.ID, r.ApsPersonaID, r.ApsVisitaID, r.CreatedAt, r.UpdatedAt, r.CreatedBy, r.UpdatedBy))
	}

	var mentales []model.ApsPersonaComponenteMentalModel
	if err := b.DB.Where("aps_persona_id IN ?", personaIDs).Find(&mentales).Error; err != nil {
		return err
	}
	for _, r := range mentales {
		datos.PersonaComponenteMental = append(datos.PersonaComponenteMental,
			detalleSync(r.ID, r.ApsPersonaID, r.ApsVisitaID, r.CreatedAt, r.UpdatedAt, r.CreatedBy, r.UpdatedBy))
	}

	var saludes []model.ApsPersonaCondicionesSaludModel
	if err := b.DB.Where("aps_persona_id IN ?", personaIDs).Find(&saludes).Error; err != nil {
		return err
	}
	for _, r := range saludes {
		datos.PersonaCondicionesSalud = append(datos.PersonaCondicionesSalud,
			detalleSync(r.ID, r.ApsPersonaID, r.ApsVisitaID, r.CreatedAt, r.UpdatedAt, r.CreatedBy, r.UpdatedBy))
	}

	var basicos []model.ApsPersonaDatoBasicoModel
	if err := b.DB.Where("aps_persona_id IN ?", personaIDs).Find(&basicos).Error; err != nil {
		return err
	}
	for _, r := range basicos {
		datos.PersonaDatoBasico = append(datos.PersonaDatoBasico,
			detalleSync(r.ID, r.ApsPersonaID, r.ApsVisitaID, r.CreatedAt, r.UpdatedAt, r.CreatedBy, r.UpdatedBy))
	}

	var estilos []model.ApsPersonaEstilosVidaConductaModel
	if err := b.DB.Where("aps_persona_id IN ?", personaIDs).Find(&estilos).Error; err != nil {
		return err
	}
	for _, r := range estilos {
		datos.PersonaEstilosVidaConducta = append(datos.PersonaEstilosVidaConducta,
			detalleSync(r.ID, r.ApsPersonaID, r.ApsVisitaID, r.CreatedAt, r.UpdatedAt, r.CreatedBy, r.UpdatedBy))
	}

	var maternidades []model.ApsPersonaMaternidadModel
	if err := b.DB.Where("aps_persona_id IN ?", personaIDs).Find(&maternidades).Error; err != nil {
		return err
	}
	for _, r := range maternidades {
		datos.PersonaMaternidad = append(datos.PersonaMaternidad,
			detalleSync(r.ID, r.ApsPersonaID, r.ApsVisitaID, r.CreatedAt, r.UpdatedAt, r.CreatedBy, r.UpdatedBy))
	}

	var practicas []model.ApsPersonaPracticasSaludModel
	if err := b.DB.Where("aps_persona_id IN ?", personaIDs).Find(&practicas).Error; err != nil {
		return err
	}
	for _, r := range practicas {
		datos.PersonaPracticasSaludSaludSexual = append(datos.PersonaPracticasSaludSaludSexual,
			detalleSync(r.ID, r.ApsPersonaID, r.ApsVisitaID, r.CreatedAt, r.UpdatedAt, r.CreatedBy, r.UpdatedBy))
	}

	return nil
}

// =======================================================
// Serialización a DTO
// =======================================================

func detalleSync(id, personaID, visitaID uint, createdAt, updatedAt time.Time, createdBy, updatedBy uint) dto.DetalleSync {
	return dto.DetalleSync{
		ID:           id,
		ApsPersonaID: personaID,
		ApsVisitaID:  visitaID,
		CreatedAt:    helper.FormatFechaPtr(&createdAt),
		UpdatedAt:    helper.FormatFechaPtr(&updatedAt),
		CreatedBy:    createdBy,
		UpdatedBy:    updatedBy,
	}
}

func serializarFamilia(f model.ApsFichaFamiliaModel, usuarios map[uint]authModel.UserModel, tr *catalogService.Traducciones, indicador any) dto.FamiliaSync {
	out := dto.FamiliaSync{
		ID:                                  f.ID,
		ApellidoFamiliar:                    f.ApellidoFamiliar,
		CelularCabezaFamilia:                f.CelularCabezaFamilia,
		NumeroIntegrantesFamilia:            f.NumeroIntegrantesFamilia,
		EstadoFichaID:                       f.EstadoFicha,
		EstadoFichaDescripcion:              tr.Opcion(f.EstadoFicha),
		DocumentoCabezaFamilia:              f.DocumentoCabezaFamilia,
		CreatedAt:                           helper.FormatFechaHoraPtr(&f.CreatedAt),
		UpdatedAt:                           helper.FormatFechaHoraPtr(&f.UpdatedAt),
		CreatedBy:                           f.CreatedBy,
		UpdatedBy:                           f.UpdatedBy,
		FechaUltimaCorreccion:               helper.FormatFechaHoraPtr(f.FechaUltimaCorreccion),
		TotalCamposActualizadosUltimaVisita: indicador,
	}
	if indicador == nil {
		out.TotalCamposActualizadosUltimaVisita = "N/A"
	}
	if u, ok := usuarios[f.CreatedBy]; ok {
		out.CreatedByUsername = &u.Username
		out.CreatedByName = &u.Name
		out.CreatedByDocumento = &u.Documento
		out.CreatedByOficina = tr.Oficina(&u.AuthOficina)
		out.CreatedByProfesion = tr.Profesion(u.ComProfesion)
	}
	if u, ok := usuarios[f.UpdatedBy]; ok {
		out.UpdatedByUsername = &u.Username
		out.UpdatedByName = &u.Name
		out.UpdatedByDocumento = &u.Documento
		out.UpdatedByOficina = tr.Oficina(&u.AuthOficina)
		out.UpdatedByProfesion = tr.Profesion(u.ComProfesion)
	}
	return out
}

func serializarPersona(p model.ApsPersonaModel, tr *catalogService.Traducciones, novedad string) dto.PersonaSync {
	return dto.PersonaSync{
		ID:                  p.ID,
		ApsFichaFamiliaID:   p.ApsFichaFamiliaID,
		FechaRegistro:       helper.FormatFechaPtr(&p.FechaRegistro),
		Nombres:             p.Nombres,
		Apellidos:           p.Apellidos,
		NumeroDocumento:     p.NumeroDocumento,
		TbTipoDocumentoID:   p.TbTipoDocumentoID,
		TbTipoDocumentoTipo: tr.TipoDocumento(&p.TbTipoDocumentoID),
		SexoID:              p.Sexo,
		SexoDescripcion:     tr.OpcionID(p.Sexo),
		EtniaID:             p.Etnia,
		EtniaDescripcion:    tr.OpcionID(p.Etnia),
		Edad:                p.Edad,
		FechaNacimiento:     helper.FormatFechaPtr(&p.FechaNacimiento),
		CreatedAt:           helper.FormatFechaPtr(&p.CreatedAt),
		UpdatedAt:           helper.FormatFechaPtr(&p.UpdatedAt),
		CreatedBy:           p.CreatedBy,
		UpdatedBy:           p.UpdatedBy,
		ApsVisitaID:         p.ApsVisitaID,
		Novedad:             novedad,
	}
}

func serializarVisita(v model.ApsVisitaModel, usuarios map[uint]authModel.UserModel, tr *catalogService.Traducciones) dto.VisitaSync {
	out := dto.VisitaSync{
		ID:                       v.ID,
		ApsFichaFamiliaID:        v.ApsFichaFamiliaID,
		FechaVisita:              helper.FormatFechaPtr(&v.FechaVisita),
		TipoActividadID:          v.TipoActividad,
		TipoActividadDescripcion: traduccionPtr(v.TipoActividad, tr.Opcion),
		CodigoCups:               v.CodigoCups,
		AuthOficinaID:            v.AuthOficina,
		AuthOficinaNombre:        traduccionPtr(v.AuthOficina, tr.Oficina),
		ComProfesionID:           v.ComProfesion,
		ComProfesionDescripcion:  traduccionPtr(v.ComProfesion, tr.Profesion),
		CreatedAt:                helper.FormatFechaPtr(&v.CreatedAt),
		UpdatedAt:                helper.FormatFechaPtr(&v.UpdatedAt),
		CreatedBy:                v.CreatedBy,
		UpdatedBy:                v.UpdatedBy,
		DuracionID:               v.Duracion,
		DuracionDescripcion:      traduccionPtr(v.Duracion, tr.Opcion),
	}
	if u, ok := usuarios[v.CreatedBy]; ok {
		out.CreatedByUsername = &u.Username
		out.CreatedByName = &u.Name
		out.CreatedByDocumento = &u.Documento
	}
	if u, ok := usuarios[v.UpdatedBy]; ok {
		out.UpdatedByUsername = &u.Username
		out.UpdatedByName = &u.Name
		out.UpdatedByDocumento = &u.Documento
	}
	return out
}

func serializarUbicacion(u model.ApsUbicacionFamiliaModel, tr *catalogService.Traducciones) dto.UbicacionFamiliaSync {
	return dto.UbicacionFamiliaSync{
		ID:                            u.ID,
		ApsVisitaID:                   u.ApsVisitaID,
		Zona:                          u.Zona,
		BaseComunaCorregimientoID:     u.BaseComunaCorregimientoID,
		BaseComunaCorregimientoNombre: tr.Comuna(&u.BaseComunaCorregimientoID),
		BaseBarrioVeredaID:            u.BaseBarrioVeredaID,
		BaseBarrioVeredaNombre:        tr.Barrio(&u.BaseBarrioVeredaID),
		Direccion:                     u.Direccion,
		FichaCatastral:                u.FichaCatastral,
		NumeroCuadrante:               u.NumeroCuadrante,
		CreatedAt:                     helper.FormatFechaPtr(&u.CreatedAt),
		UpdatedAt:                     helper.FormatFechaPtr(&u.UpdatedAt),
		CreatedBy:                     u.CreatedBy,
		UpdatedBy:                     u.UpdatedBy,
	}
}

func serializarHabitat(h model.ApsCondicionesHabitatFamiliaModel, tr *catalogService.Traducciones) dto.CondicionHabitatSync {
	return dto.CondicionHabitatSync{
		ID:                   h.ID,
		ApsVisitaID:          h.ApsVisitaID,
		ApsFichaFamilia:      h.ApsFichaFamilia,
		AspectosGenerales:    tr.DescripcionesDesdeIDs(h.ApsAspectosGeneralesTxt),
		CondicionesLocativas: tr.DescripcionesDesdeIDs(h.ApsCondicionesLocativasTxt),
		CondicionesAgua:      tr.DescripcionesDesdeIDs(h.ApsCondicionesAguaTxt),
		DotacionSanitaria:    tr.DescripcionesDesdeIDs(h.ApsDotacionSanitariaTxt),
		Alimentos:            tr.DescripcionesDesdeIDs(h.ApsAlimentosTxt),
		TenenciaAnimales:     tr.DescripcionesDesdeIDs(h.ApsTenenciaAnimalesTxt),
		EntornoVivienda:      tr.DescripcionesDesdeIDs(h.ApsEntornoViviendaTxt),
		NumeroPerros:         h.NumeroPerros,
		NumeroGatos:          h.NumeroGatos,
		CreatedAt:            helper.FormatFechaPtr(&h.CreatedAt),
		UpdatedAt:            helper.FormatFechaPtr(&h.UpdatedAt),
		CreatedBy:            h.CreatedBy,
		UpdatedBy:            h.UpdatedBy,
	}
}

func traduccionPtr(id *uint, lookup func(*uint) string) *string {
	if id == nil {
		return nil
	}
	desc := lookup(id)
	return &desc
}
