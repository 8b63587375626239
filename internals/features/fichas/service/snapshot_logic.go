package service

import (
	"sort"

	"capsmanizales_backend/internals/features/fichas/dto"
	"capsmanizales_backend/internals/features/fichas/model"
)

// =======================================================
// Lógica pura del snapshot: selección de última visita,
// versión vigente por persona y paginación en memoria.
// =======================================================

// UltimaVisitaPorFamilia reduce las visitas activas a una por familia: la de
// fecha_visita más reciente. Empate de fecha → gana el id mayor (la fila
// insertada después). El resultado queda ordenado por id de visita ascendente
// para que la paginación sea estable entre requests.
func UltimaVisitaPorFamilia(visitas []model.ApsVisitaModel, familiasValidas map[uint]bool) []model.ApsVisitaModel {
	porFamilia := map[uint]model.ApsVisitaModel{}
	for _, v := range visitas {
		if !familiasValidas[v.ApsFichaFamiliaID] {
			continue
		}
		actual, ok := porFamilia[v.ApsFichaFamiliaID]
		if !ok {
			porFamilia[v.ApsFichaFamiliaID] = v
			continue
		}
		if v.FechaVisita.After(actual.FechaVisita) ||
			(v.FechaVisita.Equal(actual.FechaVisita) && v.ID > actual.ID) {
			porFamilia[v.ApsFichaFamiliaID] = v
		}
	}

	out := make([]model.ApsVisitaModel, 0, len(porFamilia))
	for _, v := range porFamilia {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Paginar corta la lista ya ordenada y arma los metadatos. Una página más
// allá del final devuelve lista vacía con los totales reales.
func Paginar(visitas []model.ApsVisitaModel, page, perPage int) ([]model.ApsVisitaModel, dto.PaginationMeta) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 100
	}

	total := len(visitas)
	pages := (total + perPage - 1) / perPage

	inicio := (page - 1) * perPage
	fin := inicio + perPage
	var pagina []model.ApsVisitaModel
	if inicio < total {
		if fin > total {
			fin = total
		}
		pagina = visitas[inicio:fin]
	} else {
		pagina = []model.ApsVisitaModel{}
	}

	meta := dto.PaginationMeta{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
	return pagina, meta
}

// PersonaConFecha acompaña cada versión de persona con la visita que la
// produjo; la selección de versión vigente compara por su fecha_visita.
type PersonaConFecha struct {
	Persona model.ApsPersonaModel
	Visita  model.ApsVisitaModel
}

// SeleccionarVersionesVigentes escoge, por familia y por numero_documento
// DENTRO de esa familia, la versión con fecha_visita máxima. Empate → gana el
// id de persona mayor. El agrupamiento es por familia: el mismo documento en
// dos familias distintas produce dos versiones, una por familia.
func SeleccionarVersionesVigentes(versiones []PersonaConFecha) []model.ApsPersonaModel {
	type clave struct {
		familiaID uint
		documento string
	}
	elegidas := map[clave]PersonaConFecha{}
	orden := []clave{}

	for _, v := range versiones {
		k := clave{v.Persona.ApsFichaFamiliaID, v.Persona.NumeroDocumento}
		actual, ok := elegidas[k]
		if !ok {
			elegidas[k] = v
			orden = append(orden, k)
			continue
		}
		if v.Visita.FechaVisita.After(actual.Visita.FechaVisita) ||
			(v.Visita.FechaVisita.Equal(actual.Visita.FechaVisita) && v.Persona.ID > actual.Persona.ID) {
			elegidas[k] = v
		}
	}

	out := make([]model.ApsPersonaModel, 0, len(elegidas))
	for _, k := range orden {
		out = append(out, elegidas[k].Persona)
	}
	return out
}
